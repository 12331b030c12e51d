package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	domainErrors "github.com/polkiloo/outsourcing/internal/domain/errors"
	"github.com/polkiloo/outsourcing/internal/domain/model"
	"github.com/polkiloo/outsourcing/internal/test"
)

func validSupplier(name string, rating float64) model.Supplier {
	return model.Supplier{
		Name:            name,
		City:            "Lahore",
		Reliability:     model.ReliabilityMedium,
		AvgDeliveryDays: 3,
		Specialties:     []string{"hinges"},
		Status:          model.SupplierStatusActive,
		Rating:          rating,
	}
}

func TestSupplierUseCaseListSortsByRating(t *testing.T) {
	repo := &test.SupplierRepositoryStub{Suppliers: []model.Supplier{
		{ID: 1, Name: "low", Rating: 3.1},
		{ID: 2, Name: "top", Rating: 4.9},
		{ID: 3, Name: "tie-a", Rating: 4.0},
		{ID: 4, Name: "tie-b", Rating: 4.0},
	}}
	uc := NewSupplierUseCase(repo)

	list, err := uc.List(context.Background(), model.SupplierFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"top", "tie-a", "tie-b", "low"}
	for i, name := range want {
		if list[i].Name != name {
			t.Fatalf("position %d: expected %s, got %s", i, name, list[i].Name)
		}
	}
}

func TestSupplierUseCaseListPropagatesError(t *testing.T) {
	uc := NewSupplierUseCase(&test.SupplierRepositoryStub{ListErr: errors.New("db")})
	if _, err := uc.List(context.Background(), model.SupplierFilter{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestSupplierUseCaseAddAssignsIncreasingIDs(t *testing.T) {
	repo := &test.SupplierRepositoryStub{Suppliers: []model.Supplier{{ID: 7, Name: "existing"}}}
	uc := NewSupplierUseCase(repo)

	prev := int64(7)
	for i := 0; i < 3; i++ {
		s := test.RandomSupplier()
		s.Status = ""
		created, err := uc.Add(context.Background(), s)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID <= prev {
			t.Fatalf("expected id greater than %d, got %d", prev, created.ID)
		}
		if created.Status != model.SupplierStatusActive {
			t.Fatalf("expected default status active, got %q", created.Status)
		}
		prev = created.ID
	}
}

func TestSupplierUseCaseAddValidation(t *testing.T) {
	cases := map[string]func(*model.Supplier){
		"empty name":          func(s *model.Supplier) { s.Name = "  " },
		"rating too low":      func(s *model.Supplier) { s.Rating = 0.5 },
		"rating too high":     func(s *model.Supplier) { s.Rating = 5.1 },
		"NaN rating":          func(s *model.Supplier) { s.Rating = math.NaN() },
		"infinite rating":     func(s *model.Supplier) { s.Rating = math.Inf(1) },
		"zero delivery days":  func(s *model.Supplier) { s.AvgDeliveryDays = 0 },
		"unknown reliability": func(s *model.Supplier) { s.Reliability = "great" },
		"unknown status":      func(s *model.Supplier) { s.Status = "paused" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			repo := &test.SupplierRepositoryStub{}
			uc := NewSupplierUseCase(repo)
			s := validSupplier("ok", 4)
			mutate(&s)
			if _, err := uc.Add(context.Background(), s); !errors.Is(err, domainErrors.ErrInvalidInput) {
				t.Fatalf("expected invalid input, got %v", err)
			}
			if len(repo.Suppliers) != 0 {
				t.Fatalf("invalid supplier must not be stored")
			}
		})
	}
}

func TestSupplierUseCaseUpdate(t *testing.T) {
	repo := &test.SupplierRepositoryStub{Suppliers: []model.Supplier{func() model.Supplier {
		s := validSupplier("a", 4)
		s.ID = 1
		return s
	}()}}
	uc := NewSupplierUseCase(repo)

	rating := 4.7
	city := "Karachi"
	updated, found, err := uc.Update(context.Background(), 1, model.SupplierUpdate{Rating: &rating, City: &city})
	if err != nil || !found {
		t.Fatalf("unexpected result found=%v err=%v", found, err)
	}
	if updated.Rating != 4.7 || updated.City != "Karachi" || updated.Name != "a" {
		t.Fatalf("unexpected merge result: %+v", updated)
	}

	if _, found, err := uc.Update(context.Background(), 99, model.SupplierUpdate{Rating: &rating}); found || err != nil {
		t.Fatalf("expected not found without error, got found=%v err=%v", found, err)
	}

	bad := 9.0
	if _, found, err := uc.Update(context.Background(), 1, model.SupplierUpdate{Rating: &bad}); !found || !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got found=%v err=%v", found, err)
	}
	if repo.Suppliers[0].Rating != 4.7 {
		t.Fatalf("rejected update must not be stored, rating=%v", repo.Suppliers[0].Rating)
	}
}

func TestSupplierUseCaseSeed(t *testing.T) {
	repo := &test.SupplierRepositoryStub{}
	uc := NewSupplierUseCase(repo)
	seed := []model.Supplier{validSupplier("a", 4), validSupplier("b", 3)}

	n, err := uc.Seed(context.Background(), seed)
	if err != nil || n != 2 {
		t.Fatalf("expected 2 inserted, got %d err=%v", n, err)
	}

	n, err = uc.Seed(context.Background(), seed)
	if err != nil || n != 0 {
		t.Fatalf("expected non-empty registry to be left alone, got %d err=%v", n, err)
	}
	if len(repo.Suppliers) != 2 {
		t.Fatalf("expected 2 suppliers, got %d", len(repo.Suppliers))
	}

	failing := NewSupplierUseCase(&test.SupplierRepositoryStub{ListErr: errors.New("db")})
	if _, err := failing.Seed(context.Background(), seed); err == nil {
		t.Fatal("expected list error")
	}

	invalidSeed := []model.Supplier{validSupplier("a", 4), validSupplier("", 4)}
	n, err = NewSupplierUseCase(&test.SupplierRepositoryStub{}).Seed(context.Background(), invalidSeed)
	if n != 1 || !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected failure after one insert, got %d err=%v", n, err)
	}
}

package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	domainErrors "github.com/polkiloo/outsourcing/internal/domain/errors"
	"github.com/polkiloo/outsourcing/internal/domain/model"
	"github.com/polkiloo/outsourcing/internal/metrics"
	"github.com/polkiloo/outsourcing/internal/storage/memory"
	testhelpers "github.com/polkiloo/outsourcing/internal/test"
	"github.com/polkiloo/outsourcing/internal/usecase"
)

type facadeFixture struct {
	facade  *OutsourcingFacade
	store   *memory.Store
	source  *testhelpers.QuoteSourceStub
	metrics *metrics.Metrics
}

func newFacade() facadeFixture {
	store := memory.NewStore()
	source := &testhelpers.QuoteSourceStub{}
	matcher := usecase.NewSupplierMatcher(store.Suppliers())
	m := metrics.New()
	facade := NewOutsourcingFacade(
		usecase.NewSupplierUseCase(store.Suppliers()),
		matcher,
		usecase.NewSearchUseCase(matcher, source),
		usecase.NewOrderUseCase(store.Orders(), store.Suppliers()),
		usecase.NewStatisticsUseCase(store.Orders()),
		store,
		m,
		zap.NewNop(),
	)
	return facadeFixture{facade: facade, store: store, source: source, metrics: m}
}

func (f facadeFixture) scrape(t *testing.T) string {
	t.Helper()
	rec := httptest.NewRecorder()
	f.metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	return rec.Body.String()
}

func TestOutsourcingFacadeSeedSuppliers(t *testing.T) {
	fix := newFacade()
	ctx := context.Background()

	n, err := fix.facade.SeedSuppliers(ctx)
	if err != nil || n != 3 {
		t.Fatalf("expected 3 seeded suppliers, got %d err=%v", n, err)
	}
	n, err = fix.facade.SeedSuppliers(ctx)
	if err != nil || n != 0 {
		t.Fatalf("seeding must be skipped for a populated registry, got %d err=%v", n, err)
	}

	suppliers, err := fix.facade.GetSuppliers(ctx, model.SupplierFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suppliers) != 3 || suppliers[0].Name != "Quick Hardware Solutions" {
		t.Fatalf("expected rating order, got %+v", suppliers)
	}
	if suppliers[0].ID != 1 || suppliers[1].ID != 3 || suppliers[2].ID != 2 {
		t.Fatalf("unexpected ids %d %d %d", suppliers[0].ID, suppliers[1].ID, suppliers[2].ID)
	}
}

func TestOutsourcingFacadeSuitableSuppliers(t *testing.T) {
	fix := newFacade()
	ctx := context.Background()
	_, _ = fix.facade.SeedSuppliers(ctx)

	matched, err := fix.facade.GetSuitableSuppliers(ctx, "imported hinges", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matched) != 1 || matched[0].Name != "Quick Hardware Solutions" {
		t.Fatalf("unexpected match %+v", matched)
	}

	matched, _ = fix.facade.GetSuitableSuppliers(ctx, "x", "hardware")
	if len(matched) != 2 || matched[0].Name != "Quick Hardware Solutions" || matched[1].Name != "Metro Hardware Traders" {
		t.Fatalf("unexpected category match %+v", matched)
	}
}

func TestOutsourcingFacadeSearchRecordsOutcome(t *testing.T) {
	fix := newFacade()
	ctx := context.Background()
	_, _ = fix.facade.SeedSuppliers(ctx)

	results, err := fix.facade.SearchExternalProducts(ctx, "rare parts", "")
	if err != nil || len(results) != 1 {
		t.Fatalf("expected one supplier result, got %v err=%v", results, err)
	}
	if _, err := fix.facade.SearchExternalProducts(ctx, "laptops", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fix.source.Err = errors.New("catalog down")
	if _, err := fix.facade.SearchExternalProducts(ctx, "rare parts", ""); err == nil {
		t.Fatal("expected source error")
	}

	out := fix.scrape(t)
	for _, want := range []string{
		`outsourcing_product_searches_total{outcome="success"} 1`,
		`outsourcing_product_searches_total{outcome="empty"} 1`,
		`outsourcing_product_searches_total{outcome="error"} 1`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in metrics output", want)
		}
	}
}

func TestOutsourcingFacadeOrderLifecycle(t *testing.T) {
	fix := newFacade()
	ctx := context.Background()
	_, _ = fix.facade.SeedSuppliers(ctx)

	product, err := fix.facade.CreateOutsourcedProduct(ctx, model.ProductInput{Name: "brass hinge", EstimatedPrice: 120, SupplierID: 1})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	if !strings.HasPrefix(product.ID, "OP-") || product.SupplierName != "Quick Hardware Solutions" || product.EstimatedDelivery != 3 {
		t.Fatalf("unexpected product %+v", product)
	}

	if _, err := fix.facade.CreateOutsourcedProduct(ctx, model.ProductInput{Name: "x", SupplierID: 42}); !errors.Is(err, domainErrors.ErrSupplierNotFound) {
		t.Fatalf("expected supplier not found, got %v", err)
	}

	order, err := fix.facade.CreateOutsourcedOrder(ctx, model.OrderInput{
		CustomerName:     "Ayesha",
		Product:          *product,
		Quantity:         3,
		AgreedPrice:      110.1,
		ExpectedDelivery: time.Now().AddDate(0, 0, 3),
		AdvanceAmount:    100,
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if order.TotalAmount != 330.3 || order.PaymentStatus != model.PaymentStatusAdvancePaid || order.Status != model.OrderStatusPending {
		t.Fatalf("unexpected order %+v", order)
	}

	got, err := fix.facade.GetOrder(ctx, order.ID)
	if err != nil || got.ID != order.ID {
		t.Fatalf("get order: %v %+v", err, got)
	}

	if _, _, err := fix.facade.UpdateOrderStatus(ctx, order.ID, model.OrderStatusShipped, nil); !errors.Is(err, domainErrors.ErrInvalidTransition) {
		t.Fatalf("expected invalid transition, got %v", err)
	}

	notes := "confirmed by phone"
	for _, status := range []model.OrderStatus{model.OrderStatusConfirmed, model.OrderStatusOrdered, model.OrderStatusShipped} {
		var n *string
		if status == model.OrderStatusConfirmed {
			n = &notes
		}
		if _, found, err := fix.facade.UpdateOrderStatus(ctx, order.ID, status, n); err != nil || !found {
			t.Fatalf("move to %s: found=%v err=%v", status, found, err)
		}
	}

	tracking := "TRK-77"
	delivered := model.OrderStatusDelivered
	updated, found, err := fix.facade.UpdateOrder(ctx, order.ID, model.OrderUpdate{Status: &delivered, TrackingInfo: &tracking})
	if err != nil || !found {
		t.Fatalf("deliver: found=%v err=%v", found, err)
	}
	if updated.ActualDelivery == nil || updated.TrackingInfo != "TRK-77" || updated.Notes != notes {
		t.Fatalf("unexpected delivered order %+v", updated)
	}

	if _, found, err := fix.facade.UpdateOrderStatus(ctx, "OUT-missing", model.OrderStatusConfirmed, nil); err != nil || found {
		t.Fatalf("expected not found without error, got found=%v err=%v", found, err)
	}

	stats, err := fix.facade.GetOrderStatistics(ctx)
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if stats.TotalOrders != 1 || stats.CompletedOrders != 1 || stats.PendingOrders != 0 || stats.TotalValue != 330.3 {
		t.Fatalf("unexpected statistics %+v", stats)
	}

	orders, err := fix.facade.GetOutsourcedOrders(ctx, model.OrderFilter{Search: "ayesha"})
	if err != nil || len(orders) != 1 {
		t.Fatalf("expected search hit, got %v err=%v", orders, err)
	}

	out := fix.scrape(t)
	for _, want := range []string{
		"outsourcing_orders_created_total 1",
		`outsourcing_order_status_updates_total{status="confirmed"} 1`,
		`outsourcing_order_status_updates_total{status="delivered"} 1`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in metrics output", want)
		}
	}
	if strings.Contains(out, `status="shipped"} 2`) {
		t.Fatal("rejected transitions must not be counted")
	}
}

func TestOutsourcingFacadeSupplierManagement(t *testing.T) {
	fix := newFacade()
	ctx := context.Background()

	created, err := fix.facade.AddSupplier(ctx, testhelpers.RandomSupplier())
	if err != nil {
		t.Fatalf("add supplier: %v", err)
	}
	if created.ID != 1 {
		t.Fatalf("expected first id 1, got %d", created.ID)
	}
	if _, err := fix.facade.AddSupplier(ctx, model.Supplier{Name: ""}); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}

	inactive := model.SupplierStatusInactive
	updated, found, err := fix.facade.UpdateSupplier(ctx, created.ID, model.SupplierUpdate{Status: &inactive})
	if err != nil || !found || updated.Status != inactive {
		t.Fatalf("update supplier: %+v found=%v err=%v", updated, found, err)
	}
	if _, found, err := fix.facade.UpdateSupplier(ctx, 404, model.SupplierUpdate{Status: &inactive}); err != nil || found {
		t.Fatalf("expected missing supplier, got found=%v err=%v", found, err)
	}

	if !strings.Contains(fix.scrape(t), "outsourcing_suppliers_added_total 1") {
		t.Fatal("expected one supplier added")
	}
}

func TestOutsourcingFacadePing(t *testing.T) {
	fix := newFacade()
	if err := fix.facade.Ping(context.Background()); err != nil {
		t.Fatalf("memory store must be healthy: %v", err)
	}
}

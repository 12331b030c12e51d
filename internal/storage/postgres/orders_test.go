package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/polkiloo/outsourcing/internal/domain/errors"
	"github.com/polkiloo/outsourcing/internal/domain/model"
)

var orderRowColumns = []string{"id", "quotation_id", "sales_order_id", "customer_id", "customer_name", "product",
	"quantity", "agreed_price", "total_amount", "status", "order_date", "expected_delivery", "actual_delivery",
	"payment_status", "advance_amount", "supplier_order_ref", "tracking_info", "notes", "created_at", "updated_at"}

func orderRows() *pgxmockv3.Rows {
	return pgxmockv3.NewRows(orderRowColumns)
}

func addOrderRow(rows *pgxmockv3.Rows, id string, status model.OrderStatus, at time.Time) *pgxmockv3.Rows {
	customer := int64(9)
	product := model.Product{ID: "OP-1", Name: "Hinge", SupplierID: 1, SupplierName: "Quick"}
	return rows.AddRow(id, nil, nil, &customer, "Customer", product, 2, 10.0, 20.0, status, at, at.Add(72*time.Hour),
		nil, model.PaymentStatusPending, 0.0, "", "", "", at, at)
}

func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmockv3.AnyArg()
	}
	return args
}

func TestOrderRepositoryCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &orderRepository{storage: storage}

	order := model.Order{ID: "OUT-1", CustomerName: "c", Product: model.Product{SupplierID: 3}, Quantity: 1}

	mock.ExpectExec("INSERT INTO outsourced_orders").WithArgs(anyArgs(21)...).WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	created, err := repo.Create(context.Background(), order)
	if err != nil || created.ID != "OUT-1" {
		t.Fatalf("unexpected result: %+v err=%v", created, err)
	}

	mock.ExpectExec("INSERT INTO outsourced_orders").WithArgs(anyArgs(21)...).WillReturnError(&pgconn.PgError{Code: "23505"})
	if _, err := repo.Create(context.Background(), order); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}

	mock.ExpectExec("INSERT INTO outsourced_orders").WithArgs(anyArgs(21)...).WillReturnError(errors.New("insert"))
	if _, err := repo.Create(context.Background(), order); err == nil || errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected raw error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestOrderRepositoryGetByID(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &orderRepository{storage: storage}
	now := time.Now()

	mock.ExpectQuery("FROM outsourced_orders WHERE id=").WithArgs("OUT-1").WillReturnRows(addOrderRow(orderRows(), "OUT-1", model.OrderStatusShipped, now))
	order, err := repo.GetByID(context.Background(), "OUT-1")
	if err != nil || order.Status != model.OrderStatusShipped || order.Product.Name != "Hinge" || *order.CustomerID != 9 {
		t.Fatalf("unexpected order: %+v err=%v", order, err)
	}
	if order.QuotationID != nil || order.ActualDelivery != nil {
		t.Fatalf("expected nullable columns to stay nil: %+v", order)
	}

	mock.ExpectQuery("FROM outsourced_orders WHERE id=").WithArgs("missing").WillReturnError(pgx.ErrNoRows)
	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectQuery("FROM outsourced_orders WHERE id=").WithArgs("err").WillReturnError(errors.New("fail"))
	if _, err := repo.GetByID(context.Background(), "err"); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestOrderRepositoryList(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &orderRepository{storage: storage}
	now := time.Now()

	mock.ExpectQuery("FROM outsourced_orders ORDER BY created_at").WillReturnRows(
		addOrderRow(addOrderRow(orderRows(), "OUT-1", model.OrderStatusPending, now), "OUT-2", model.OrderStatusDelivered, now))
	orders, err := repo.List(context.Background(), model.OrderFilter{})
	if err != nil || len(orders) != 2 {
		t.Fatalf("unexpected result: %v err=%v", orders, err)
	}

	customer, supplier := int64(9), int64(1)
	from, to := now.Add(-time.Hour), now.Add(time.Hour)
	filter := model.OrderFilter{
		Status:     model.OrderStatusPending,
		CustomerID: &customer,
		SupplierID: &supplier,
		DateFrom:   &from,
		DateTo:     &to,
		Search:     "hin",
	}
	mock.ExpectQuery("WHERE status = \\$1 AND customer_id = \\$2 AND supplier_id = \\$3 AND order_date >= \\$4 AND order_date <= \\$5 AND").
		WithArgs(model.OrderStatusPending, customer, supplier, from, to, "%hin%").
		WillReturnRows(addOrderRow(orderRows(), "OUT-1", model.OrderStatusPending, now))
	orders, err = repo.List(context.Background(), filter)
	if err != nil || len(orders) != 1 {
		t.Fatalf("unexpected filtered result: %v err=%v", orders, err)
	}

	mock.ExpectQuery("FROM outsourced_orders").WillReturnError(errors.New("query"))
	if _, err := repo.List(context.Background(), model.OrderFilter{}); err == nil {
		t.Fatal("expected error")
	}

	mock.ExpectQuery("FROM outsourced_orders").WillReturnRows(
		orderRows().AddRow("OUT-3", nil, nil, nil, "c", model.Product{}, "bad", 1.0, 1.0, model.OrderStatusPending, now, now,
			nil, model.PaymentStatusPending, 0.0, "", "", "", now, now))
	if _, err := repo.List(context.Background(), model.OrderFilter{}); err == nil {
		t.Fatal("expected scan error")
	}

	mock.ExpectQuery("FROM outsourced_orders").WillReturnRows(
		addOrderRow(orderRows(), "OUT-1", model.OrderStatusPending, now).RowError(0, errors.New("row err")))
	if _, err := repo.List(context.Background(), model.OrderFilter{}); err == nil || err.Error() != "row err" {
		t.Fatalf("expected row err, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestOrderRepositoryListRowsError(t *testing.T) {
	storage := &Storage{pool: &rowsErrorPool{rows: &errorRows{err: errors.New("rows err")}}}
	repo := &orderRepository{storage: storage}

	if _, err := repo.List(context.Background(), model.OrderFilter{}); err == nil || err.Error() != "rows err" {
		t.Fatalf("expected rows err, got %v", err)
	}
}

func TestOrderRepositoryUpdate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &orderRepository{storage: storage}
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM outsourced_orders WHERE id=.* FOR UPDATE").WithArgs("OUT-1").
		WillReturnRows(addOrderRow(orderRows(), "OUT-1", model.OrderStatusPending, now))
	mock.ExpectExec("UPDATE outsourced_orders SET").WithArgs(anyArgs(10)...).WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	mock.ExpectCommit()
	updated, found, err := repo.Update(context.Background(), "OUT-1", func(o *model.Order) error {
		o.Status = model.OrderStatusConfirmed
		return nil
	})
	if err != nil || !found || updated.Status != model.OrderStatusConfirmed {
		t.Fatalf("unexpected update: %+v found=%v err=%v", updated, found, err)
	}

	mock.ExpectBegin()
	mock.ExpectQuery("FROM outsourced_orders WHERE id=.* FOR UPDATE").WithArgs("missing").WillReturnError(pgx.ErrNoRows)
	mock.ExpectCommit()
	if _, found, err := repo.Update(context.Background(), "missing", func(*model.Order) error { return nil }); found || err != nil {
		t.Fatalf("expected not found, got found=%v err=%v", found, err)
	}

	mock.ExpectBegin()
	mock.ExpectQuery("FROM outsourced_orders WHERE id=.* FOR UPDATE").WithArgs("OUT-1").
		WillReturnRows(addOrderRow(orderRows(), "OUT-1", model.OrderStatusDelivered, now))
	mock.ExpectRollback()
	_, found, err = repo.Update(context.Background(), "OUT-1", func(*model.Order) error { return domainErrors.ErrInvalidTransition })
	if !found || !errors.Is(err, domainErrors.ErrInvalidTransition) {
		t.Fatalf("expected transition error, got found=%v err=%v", found, err)
	}

	mock.ExpectBegin()
	mock.ExpectQuery("FROM outsourced_orders WHERE id=.* FOR UPDATE").WithArgs("OUT-1").
		WillReturnRows(addOrderRow(orderRows(), "OUT-1", model.OrderStatusPending, now))
	mock.ExpectExec("UPDATE outsourced_orders SET").WithArgs(anyArgs(10)...).WillReturnError(errors.New("update"))
	mock.ExpectRollback()
	if _, _, err := repo.Update(context.Background(), "OUT-1", func(*model.Order) error { return nil }); err == nil {
		t.Fatal("expected update error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

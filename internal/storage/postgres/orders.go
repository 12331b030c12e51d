package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/polkiloo/outsourcing/internal/domain/errors"
	"github.com/polkiloo/outsourcing/internal/domain/model"
)

type orderRepository struct {
	storage *Storage
}

const orderColumns = `id, quotation_id, sales_order_id, customer_id, customer_name, product, quantity,
    agreed_price, total_amount, status, order_date, expected_delivery, actual_delivery, payment_status,
    advance_amount, supplier_order_ref, tracking_info, notes, created_at, updated_at`

func scanOrder(row rowScanner) (model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.QuotationID, &o.SalesOrderID, &o.CustomerID, &o.CustomerName, &o.Product,
		&o.Quantity, &o.AgreedPrice, &o.TotalAmount, &o.Status, &o.OrderDate, &o.ExpectedDelivery,
		&o.ActualDelivery, &o.PaymentStatus, &o.AdvanceAmount, &o.SupplierOrderRef, &o.TrackingInfo,
		&o.Notes, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

func (r *orderRepository) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	const query = `INSERT INTO outsourced_orders (` + orderColumns + `, supplier_id)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err := r.storage.pool.Exec(ctx, query, order.ID, order.QuotationID, order.SalesOrderID, order.CustomerID,
		order.CustomerName, order.Product, order.Quantity, order.AgreedPrice, order.TotalAmount, order.Status,
		order.OrderDate, order.ExpectedDelivery, order.ActualDelivery, order.PaymentStatus, order.AdvanceAmount,
		order.SupplierOrderRef, order.TrackingInfo, order.Notes, order.CreatedAt, order.UpdatedAt,
		order.Product.SupplierID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: order %s already exists", domainErrors.ErrInvalidInput, order.ID)
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM outsourced_orders WHERE id=$1`
	o, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	var where whereBuilder
	if filter.Status != "" {
		where.add("status = $%[1]d", filter.Status)
	}
	if filter.CustomerID != nil {
		where.add("customer_id = $%[1]d", *filter.CustomerID)
	}
	if filter.SupplierID != nil {
		where.add("supplier_id = $%[1]d", *filter.SupplierID)
	}
	if filter.DateFrom != nil {
		where.add("order_date >= $%[1]d", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		where.add("order_date <= $%[1]d", *filter.DateTo)
	}
	if filter.Search != "" {
		where.add(`(product->>'Name' ILIKE $%[1]d OR customer_name ILIKE $%[1]d
            OR product->>'SupplierName' ILIKE $%[1]d OR id ILIKE $%[1]d)`, containsPattern(filter.Search))
	}

	query := `SELECT ` + orderColumns + ` FROM outsourced_orders` + where.String() + ` ORDER BY created_at, id`
	rows, err := r.storage.pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) Update(ctx context.Context, id string, fn func(*model.Order) error) (*model.Order, bool, error) {
	var (
		updated model.Order
		found   bool
	)
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const selectQuery = `SELECT ` + orderColumns + ` FROM outsourced_orders WHERE id=$1 FOR UPDATE`
		current, err := scanOrder(tx.QueryRow(ctx, selectQuery, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return err
		}
		found = true

		if err := fn(&current); err != nil {
			return err
		}
		current.ID = id

		const updateQuery = `UPDATE outsourced_orders SET status=$2, payment_status=$3, advance_amount=$4,
                             expected_delivery=$5, actual_delivery=$6, supplier_order_ref=$7, tracking_info=$8,
                             notes=$9, updated_at=$10
                             WHERE id=$1`
		if _, err := tx.Exec(ctx, updateQuery, id, current.Status, current.PaymentStatus, current.AdvanceAmount,
			current.ExpectedDelivery, current.ActualDelivery, current.SupplierOrderRef, current.TrackingInfo,
			current.Notes, current.UpdatedAt); err != nil {
			return err
		}
		updated = current
		return nil
	})
	if err != nil || !found {
		return nil, found, err
	}
	return &updated, true, nil
}

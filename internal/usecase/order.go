package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/outsourcing/internal/domain/errors"
	"github.com/polkiloo/outsourcing/internal/domain/model"
	"github.com/polkiloo/outsourcing/internal/domain/repository"
)

const (
	productIDPrefix = "OP-"
	orderIDPrefix   = "OUT-"
)

// OrderUseCase encapsulates the outsourced order ledger.
type OrderUseCase struct {
	orders    repository.OrderRepository
	suppliers repository.SupplierRepository
	now       func() time.Time
	newID     func() string
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, suppliers repository.SupplierRepository) *OrderUseCase {
	return &OrderUseCase{
		orders:    orders,
		suppliers: suppliers,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

func (u *OrderUseCase) supplier(ctx context.Context, id int64) (*model.Supplier, error) {
	s, err := u.suppliers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", domainErrors.ErrSupplierNotFound, id)
		}
		return nil, err
	}
	return s, nil
}

// CreateProduct builds an immutable product record bound to an existing supplier.
func (u *OrderUseCase) CreateProduct(ctx context.Context, in model.ProductInput) (*model.Product, error) {
	if err := ValidateProduct(in); err != nil {
		return nil, err
	}
	s, err := u.supplier(ctx, in.SupplierID)
	if err != nil {
		return nil, err
	}

	now := u.now()
	return &model.Product{
		ID:                productIDPrefix + u.newID(),
		Name:              in.Name,
		Description:       in.Description,
		EstimatedPrice:    in.EstimatedPrice,
		SupplierID:        s.ID,
		SupplierName:      s.Name,
		EstimatedDelivery: s.AvgDeliveryDays,
		Category:          in.Category,
		Specifications:    in.Specifications,
		Images:            append([]string(nil), in.Images...),
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// Create validates input and records a pending order.
func (u *OrderUseCase) Create(ctx context.Context, in model.OrderInput) (*model.Order, error) {
	if err := ValidateOrder(in); err != nil {
		return nil, err
	}
	s, err := u.supplier(ctx, in.Product.SupplierID)
	if err != nil {
		return nil, err
	}

	total := decimal.NewFromFloat(in.AgreedPrice).Mul(decimal.NewFromInt(int64(in.Quantity)))
	if math.IsInf(total.InexactFloat64(), 0) {
		return nil, invalid("total amount out of range")
	}
	if decimal.NewFromFloat(in.AdvanceAmount).GreaterThan(total) {
		return nil, invalid("advance amount exceeds total %s", total.StringFixed(2))
	}

	now := u.now()
	product := in.Product
	if product.ID == "" {
		product.ID = productIDPrefix + u.newID()
		product.SupplierName = s.Name
		product.EstimatedDelivery = s.AvgDeliveryDays
		product.CreatedAt = now
		product.UpdatedAt = now
	}
	if product.SupplierName == "" {
		product.SupplierName = s.Name
	}
	if product.EstimatedDelivery == 0 {
		product.EstimatedDelivery = s.AvgDeliveryDays
	}

	order := model.Order{
		ID:               orderIDPrefix + u.newID(),
		QuotationID:      in.QuotationID,
		SalesOrderID:     in.SalesOrderID,
		CustomerID:       in.CustomerID,
		CustomerName:     in.CustomerName,
		Product:          product,
		Quantity:         in.Quantity,
		AgreedPrice:      in.AgreedPrice,
		TotalAmount:      total.InexactFloat64(),
		Status:           model.OrderStatusPending,
		OrderDate:        now,
		ExpectedDelivery: in.ExpectedDelivery,
		PaymentStatus:    model.PaymentStatusFor(in.AdvanceAmount),
		AdvanceAmount:    in.AdvanceAmount,
		SupplierOrderRef: in.SupplierOrderRef,
		TrackingInfo:     in.TrackingInfo,
		Notes:            in.Notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	return u.orders.Create(ctx, order)
}

// Get returns a single order.
func (u *OrderUseCase) Get(ctx context.Context, id string) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// List returns orders matching filter, newest first.
func (u *OrderUseCase) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	orders, err := u.orders.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

// Update applies a partial modification atomically. found is false when id is unknown.
func (u *OrderUseCase) Update(ctx context.Context, id string, update model.OrderUpdate) (*model.Order, bool, error) {
	return u.orders.Update(ctx, id, func(o *model.Order) error {
		return applyOrderUpdate(o, update, u.now())
	})
}

// UpdateStatus moves the order to status; notes are written only when given.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id string, status model.OrderStatus, notes *string) (*model.Order, bool, error) {
	return u.Update(ctx, id, model.OrderUpdate{Status: &status, Notes: notes})
}

func applyOrderUpdate(o *model.Order, update model.OrderUpdate, now time.Time) error {
	if update.ActualDelivery != nil {
		t := *update.ActualDelivery
		o.ActualDelivery = &t
	}

	if update.Status != nil {
		to := *update.Status
		if !to.Valid() {
			return invalid("unknown order status %q", to)
		}
		if !o.Status.CanTransition(to) {
			return fmt.Errorf("%w: %s -> %s", domainErrors.ErrInvalidTransition, o.Status, to)
		}
		if to == model.OrderStatusDelivered && o.ActualDelivery == nil {
			t := now
			o.ActualDelivery = &t
		}
		o.Status = to
	}

	if update.AdvanceAmount != nil {
		advance := *update.AdvanceAmount
		if !amount(advance) {
			return invalid("advance amount must not be negative")
		}
		if advance > o.TotalAmount {
			return invalid("advance amount exceeds total %.2f", o.TotalAmount)
		}
		o.AdvanceAmount = advance
		if update.PaymentStatus == nil && o.PaymentStatus != model.PaymentStatusFullPaid {
			o.PaymentStatus = model.PaymentStatusFor(advance)
		}
	}

	if update.PaymentStatus != nil {
		if !update.PaymentStatus.Valid() {
			return invalid("unknown payment status %q", *update.PaymentStatus)
		}
		o.PaymentStatus = *update.PaymentStatus
	}

	if update.ExpectedDelivery != nil {
		if update.ExpectedDelivery.IsZero() {
			return invalid("expected delivery must be set")
		}
		o.ExpectedDelivery = *update.ExpectedDelivery
	}
	if update.SupplierOrderRef != nil {
		o.SupplierOrderRef = *update.SupplierOrderRef
	}
	if update.TrackingInfo != nil {
		o.TrackingInfo = *update.TrackingInfo
	}
	if update.Notes != nil {
		o.Notes = *update.Notes
	}

	o.UpdatedAt = now
	return nil
}

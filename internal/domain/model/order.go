package model

import "time"

// OrderStatus describes outsourced order lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusOrdered   OrderStatus = "ordered"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// next holds the single forward step allowed from each non-terminal status.
var next = map[OrderStatus]OrderStatus{
	OrderStatusPending:   OrderStatusConfirmed,
	OrderStatusConfirmed: OrderStatusOrdered,
	OrderStatusOrdered:   OrderStatusShipped,
	OrderStatusShipped:   OrderStatusDelivered,
}

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusOrdered,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are possible.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// Open reports whether the order is still in flight.
func (s OrderStatus) Open() bool {
	return s.Valid() && !s.Terminal()
}

// CanTransition reports whether an order may move from s to to.
// Writing the current status again is always allowed.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	if !to.Valid() {
		return false
	}
	if s == to {
		return true
	}
	if s.Terminal() {
		return false
	}
	if to == OrderStatusCancelled {
		return true
	}
	return next[s] == to
}

// PaymentStatus describes how much of an order was paid to the supplier.
type PaymentStatus string

const (
	PaymentStatusPending     PaymentStatus = "pending"
	PaymentStatusAdvancePaid PaymentStatus = "advance_paid"
	PaymentStatusFullPaid    PaymentStatus = "full_paid"
)

// Valid reports whether s is a known payment status.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusAdvancePaid, PaymentStatusFullPaid:
		return true
	}
	return false
}

// PaymentStatusFor derives payment status from an advance amount.
func PaymentStatusFor(advance float64) PaymentStatus {
	if advance > 0 {
		return PaymentStatusAdvancePaid
	}
	return PaymentStatusPending
}

// Order is a product outsourced from a supplier on behalf of a customer.
type Order struct {
	ID               string
	QuotationID      *int64
	SalesOrderID     *int64
	CustomerID       *int64
	CustomerName     string
	Product          Product
	Quantity         int
	AgreedPrice      float64
	TotalAmount      float64
	Status           OrderStatus
	OrderDate        time.Time
	ExpectedDelivery time.Time
	ActualDelivery   *time.Time
	PaymentStatus    PaymentStatus
	AdvanceAmount    float64
	SupplierOrderRef string
	TrackingInfo     string
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// OrderUpdate carries a partial order modification. Nil fields are left untouched.
type OrderUpdate struct {
	Status           *OrderStatus
	PaymentStatus    *PaymentStatus
	AdvanceAmount    *float64
	ExpectedDelivery *time.Time
	ActualDelivery   *time.Time
	SupplierOrderRef *string
	TrackingInfo     *string
	Notes            *string
}

package dto

import "time"

// OrderRequest is the payload for placing an outsourced order.
// Dates accept RFC 3339 timestamps or plain YYYY-MM-DD.
type OrderRequest struct {
	QuotationID      *int64  `json:"quotationId"`
	OrderID          *int64  `json:"orderId"`
	CustomerID       *int64  `json:"customerId"`
	CustomerName     string  `json:"customerName"`
	Product          Product `json:"product"`
	Quantity         int     `json:"quantity"`
	AgreedPrice      float64 `json:"agreedPrice"`
	ExpectedDelivery string  `json:"expectedDelivery"`
	AdvanceAmount    float64 `json:"advanceAmount"`
	SupplierOrderRef string  `json:"supplierOrderRef"`
	TrackingInfo     string  `json:"trackingInfo"`
	Notes            string  `json:"notes"`
}

// OrderUpdateRequest carries a partial order update.
type OrderUpdateRequest struct {
	Status           *string  `json:"status"`
	PaymentStatus    *string  `json:"paymentStatus"`
	AdvanceAmount    *float64 `json:"advanceAmount"`
	ExpectedDelivery *string  `json:"expectedDelivery"`
	ActualDelivery   *string  `json:"actualDelivery"`
	SupplierOrderRef *string  `json:"supplierOrderRef"`
	TrackingInfo     *string  `json:"trackingInfo"`
	Notes            *string  `json:"notes"`
}

// StatusUpdateRequest changes only the lifecycle status.
type StatusUpdateRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
}

// OrderResponse describes a ledger entry.
type OrderResponse struct {
	ID               string     `json:"id"`
	QuotationID      *int64     `json:"quotationId,omitempty"`
	OrderID          *int64     `json:"orderId,omitempty"`
	CustomerID       *int64     `json:"customerId,omitempty"`
	CustomerName     string     `json:"customerName"`
	Product          Product    `json:"product"`
	Quantity         int        `json:"quantity"`
	AgreedPrice      float64    `json:"agreedPrice"`
	TotalAmount      float64    `json:"totalAmount"`
	Status           string     `json:"status"`
	OrderDate        time.Time  `json:"orderDate"`
	ExpectedDelivery time.Time  `json:"expectedDelivery"`
	ActualDelivery   *time.Time `json:"actualDelivery,omitempty"`
	PaymentStatus    string     `json:"paymentStatus"`
	AdvanceAmount    float64    `json:"advanceAmount"`
	SupplierOrderRef string     `json:"supplierOrderRef,omitempty"`
	TrackingInfo     string     `json:"trackingInfo,omitempty"`
	Notes            string     `json:"notes,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// StatisticsResponse summarises the ledger.
type StatisticsResponse struct {
	TotalOrders     int     `json:"totalOrders"`
	PendingOrders   int     `json:"pendingOrders"`
	CompletedOrders int     `json:"completedOrders"`
	TotalValue      float64 `json:"totalValue"`
	AvgDeliveryTime int     `json:"avgDeliveryTime"`
}

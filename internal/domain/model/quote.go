package model

// Availability tells whether a quoted product ships from stock.
type Availability string

const (
	AvailabilityInStock       Availability = "in_stock"
	AvailabilityOrderRequired Availability = "order_required"
)

// Quote is a price, availability and delivery offer for a product from one supplier.
type Quote struct {
	Name           string
	Description    string
	EstimatedPrice float64
	Availability   Availability
	DeliveryDays   int
}

// SupplierQuotes groups quotes returned by a single supplier.
type SupplierQuotes struct {
	Supplier Supplier
	Products []Quote
}

package dto

// QuoteResponse is a single product offer.
type QuoteResponse struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	EstimatedPrice float64 `json:"estimatedPrice"`
	Availability   string  `json:"availability"`
	DeliveryDays   int     `json:"deliveryDays"`
}

// SearchResultResponse groups quotes by supplier.
type SearchResultResponse struct {
	Supplier SupplierResponse `json:"supplier"`
	Products []QuoteResponse  `json:"products"`
}

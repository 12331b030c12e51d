package dto

// SupplierRequest is the payload for registering a supplier.
type SupplierRequest struct {
	Name            string   `json:"name"`
	Contact         string   `json:"contact"`
	Phone           string   `json:"phone"`
	Email           string   `json:"email"`
	Address         string   `json:"address"`
	City            string   `json:"city"`
	Reliability     string   `json:"reliability"`
	AvgDeliveryDays int      `json:"avgDeliveryDays"`
	Specialties     []string `json:"specialties"`
	Status          string   `json:"status"`
	Rating          float64  `json:"rating"`
	Notes           string   `json:"notes"`
}

// SupplierUpdateRequest carries a partial supplier update; absent fields stay unchanged.
type SupplierUpdateRequest struct {
	Name            *string  `json:"name"`
	Contact         *string  `json:"contact"`
	Phone           *string  `json:"phone"`
	Email           *string  `json:"email"`
	Address         *string  `json:"address"`
	City            *string  `json:"city"`
	Reliability     *string  `json:"reliability"`
	AvgDeliveryDays *int     `json:"avgDeliveryDays"`
	Specialties     []string `json:"specialties"`
	Status          *string  `json:"status"`
	Rating          *float64 `json:"rating"`
	Notes           *string  `json:"notes"`
}

// SupplierResponse describes a registry entry.
type SupplierResponse struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Contact         string   `json:"contact"`
	Phone           string   `json:"phone"`
	Email           string   `json:"email,omitempty"`
	Address         string   `json:"address"`
	City            string   `json:"city"`
	Reliability     string   `json:"reliability"`
	AvgDeliveryDays int      `json:"avgDeliveryDays"`
	Specialties     []string `json:"specialties"`
	Status          string   `json:"status"`
	Rating          float64  `json:"rating"`
	Notes           string   `json:"notes,omitempty"`
}

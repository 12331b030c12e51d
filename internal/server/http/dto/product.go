package dto

import "time"

// ProductRequest is the payload for creating an outsourced product.
type ProductRequest struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	EstimatedPrice float64  `json:"estimatedPrice"`
	SupplierID     int64    `json:"supplierId"`
	Category       string   `json:"category"`
	Specifications string   `json:"specifications"`
	Images         []string `json:"images"`
}

// Product is the product snapshot exchanged inside orders.
type Product struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Description       string     `json:"description"`
	EstimatedPrice    float64    `json:"estimatedPrice"`
	SupplierID        int64      `json:"supplierId"`
	SupplierName      string     `json:"supplierName"`
	EstimatedDelivery int        `json:"estimatedDelivery"`
	Category          string     `json:"category,omitempty"`
	Specifications    string     `json:"specifications,omitempty"`
	Images            []string   `json:"images,omitempty"`
	CreatedAt         *time.Time `json:"createdAt,omitempty"`
	UpdatedAt         *time.Time `json:"updatedAt,omitempty"`
}

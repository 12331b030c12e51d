package repository

import "context"

// Factory describes access to different domain repositories.
type Factory interface {
	Suppliers() SupplierRepository
	Orders() OrderRepository
	HealthCheck(ctx context.Context) error
	Close()
}

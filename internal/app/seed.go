package app

import "github.com/polkiloo/outsourcing/internal/domain/model"

// DefaultSuppliers returns the sample catalog loaded into an empty registry.
func DefaultSuppliers() []model.Supplier {
	return []model.Supplier{
		{
			Name:            "Quick Hardware Solutions",
			Contact:         "Rashid Ali",
			Phone:           "0300-1234567",
			Email:           "rashid@quickhardware.pk",
			Address:         "Main Market, Hall Road",
			City:            "Lahore",
			Reliability:     model.ReliabilityHigh,
			AvgDeliveryDays: 3,
			Specialties:     []string{"furniture hardware", "imported hinges", "premium handles"},
			Status:          model.SupplierStatusActive,
			Rating:          4.8,
			Notes:           "Reliable supplier for premium imported hardware",
		},
		{
			Name:            "Metro Hardware Traders",
			Contact:         "Saeed Ahmad",
			Phone:           "0321-9876543",
			Email:           "saeed@metrohardware.pk",
			Address:         "Urdu Bazaar",
			City:            "Karachi",
			Reliability:     model.ReliabilityMedium,
			AvgDeliveryDays: 5,
			Specialties:     []string{"bulk fasteners", "industrial hardware", "custom brackets"},
			Status:          model.SupplierStatusActive,
			Rating:          4.2,
			Notes:           "Good for bulk orders and custom items",
		},
		{
			Name:            "Express Parts Supply",
			Contact:         "Imran Khan",
			Phone:           "0333-5555555",
			Address:         "GT Road",
			City:            "Gujranwala",
			Reliability:     model.ReliabilityHigh,
			AvgDeliveryDays: 2,
			Specialties:     []string{"emergency supplies", "rare parts", "quick delivery"},
			Status:          model.SupplierStatusActive,
			Rating:          4.6,
			Notes:           "Best for urgent requirements",
		},
	}
}

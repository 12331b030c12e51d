package model

// Reliability is a coarse supplier trust tier used as a ranking weight.
type Reliability string

const (
	ReliabilityHigh   Reliability = "high"
	ReliabilityMedium Reliability = "medium"
	ReliabilityLow    Reliability = "low"
)

// Weight returns the ranking multiplier of the tier, 0 for unknown values.
func (r Reliability) Weight() float64 {
	switch r {
	case ReliabilityHigh:
		return 3
	case ReliabilityMedium:
		return 2
	case ReliabilityLow:
		return 1
	default:
		return 0
	}
}

// Valid reports whether r is a known tier.
func (r Reliability) Valid() bool {
	return r.Weight() > 0
}

// SupplierStatus tells whether a supplier takes part in matching.
type SupplierStatus string

const (
	SupplierStatusActive   SupplierStatus = "active"
	SupplierStatusInactive SupplierStatus = "inactive"
)

// Valid reports whether s is a known status.
func (s SupplierStatus) Valid() bool {
	return s == SupplierStatusActive || s == SupplierStatusInactive
}

const (
	MinRating = 1.0
	MaxRating = 5.0
)

// Supplier is an external vendor products can be outsourced from.
type Supplier struct {
	ID              int64
	Name            string
	Contact         string
	Phone           string
	Email           string
	Address         string
	City            string
	Reliability     Reliability
	AvgDeliveryDays int
	Specialties     []string
	Status          SupplierStatus
	Rating          float64
	Notes           string
}

// Score is the matcher ranking score: reliability weight times rating.
func (s Supplier) Score() float64 {
	return s.Reliability.Weight() * s.Rating
}

// SupplierUpdate carries a partial supplier modification. Nil fields are left untouched.
type SupplierUpdate struct {
	Name            *string
	Contact         *string
	Phone           *string
	Email           *string
	Address         *string
	City            *string
	Reliability     *Reliability
	AvgDeliveryDays *int
	Specialties     []string
	Status          *SupplierStatus
	Rating          *float64
	Notes           *string
}

// Apply merges the update into s.
func (u SupplierUpdate) Apply(s *Supplier) {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Contact != nil {
		s.Contact = *u.Contact
	}
	if u.Phone != nil {
		s.Phone = *u.Phone
	}
	if u.Email != nil {
		s.Email = *u.Email
	}
	if u.Address != nil {
		s.Address = *u.Address
	}
	if u.City != nil {
		s.City = *u.City
	}
	if u.Reliability != nil {
		s.Reliability = *u.Reliability
	}
	if u.AvgDeliveryDays != nil {
		s.AvgDeliveryDays = *u.AvgDeliveryDays
	}
	if u.Specialties != nil {
		s.Specialties = append([]string(nil), u.Specialties...)
	}
	if u.Status != nil {
		s.Status = *u.Status
	}
	if u.Rating != nil {
		s.Rating = *u.Rating
	}
	if u.Notes != nil {
		s.Notes = *u.Notes
	}
}

package domain

import "time"

// ApartmentStatus tracks occupancy of a unit.
type ApartmentStatus string

const (
	ApartmentOccupied    ApartmentStatus = "OCCUPIED"
	ApartmentVacant      ApartmentStatus = "VACANT"
	ApartmentMaintenance ApartmentStatus = "MAINTENANCE"
)

// Valid reports whether s is a known apartment status.
func (s ApartmentStatus) Valid() bool {
	switch s {
	case ApartmentOccupied, ApartmentVacant, ApartmentMaintenance:
		return true
	}
	return false
}

// Apartment is a unit managed by the syndic.
type Apartment struct {
	ID         string          `json:"id"`
	Number     string          `json:"number"`
	Floor      int             `json:"floor"`
	SizeM2     float64         `json:"size_m2"`
	Rooms      int             `json:"rooms"`
	Status     ApartmentStatus `json:"status"`
	MonthlyFee float64         `json:"monthly_fee"`
	OwnerID    string          `json:"owner_id,omitempty"`
	TenantID   string          `json:"tenant_id,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

package domain

import "time"

// UnitStatus enumerates occupancy states for a unit.
type UnitStatus string

const (
	UnitStatusVacant   UnitStatus = "VACANT"
	UnitStatusOccupied UnitStatus = "OCCUPIED"
	UnitStatusNotice   UnitStatus = "NOTICE"
)

// ValidUnitStatus reports whether the value is a known unit status.
func ValidUnitStatus(s UnitStatus) bool {
	switch s {
	case UnitStatusVacant, UnitStatusOccupied, UnitStatusNotice:
		return true
	}
	return false
}

// Property is a managed building or complex.
type Property struct {
	ID        int64
	Name      string
	Address   string
	City      string
	State     string
	Zip       string
	CreatedAt time.Time
	UpdatedAt time.Time

	Units []Unit
}

// Unit is a rentable unit within a property.
type Unit struct {
	ID         int64
	PropertyID int64
	UnitNumber string
	Beds       *int32
	Baths      *int32
	Sqft       *int32
	Status     UnitStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Property *Property
}

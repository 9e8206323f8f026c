package domain

import "time"

// Tenant is a renter occupying a unit.
type Tenant struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	UnitID    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

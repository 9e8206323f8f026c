package dto

import (
	"time"

	"github.com/leaselink/leaselink/internal/domain"
)

// PropertyRequest payload for create and update.
type PropertyRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}

// PropertyResponse with its units when loaded.
type PropertyResponse struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Address   string         `json:"address"`
	City      string         `json:"city"`
	State     string         `json:"state"`
	Zip       string         `json:"zip"`
	Units     []UnitResponse `json:"units,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// CreateUnitRequest payload.
type CreateUnitRequest struct {
	PropertyID int64             `json:"propertyId"`
	UnitNumber string            `json:"unitNumber"`
	Beds       *int32            `json:"beds"`
	Baths      *int32            `json:"baths"`
	Sqft       *int32            `json:"sqft"`
	Status     domain.UnitStatus `json:"status"`
}

// UnitResponse with its property when loaded.
type UnitResponse struct {
	ID         int64             `json:"id"`
	PropertyID int64             `json:"propertyId"`
	UnitNumber string            `json:"unitNumber"`
	Beds       *int32            `json:"beds"`
	Baths      *int32            `json:"baths"`
	Sqft       *int32            `json:"sqft"`
	Status     domain.UnitStatus `json:"status"`
	Property   *PropertyResponse `json:"property,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

// TenantRequest payload for create and update.
type TenantRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	UnitID int64  `json:"unitId"`
}

// TenantResponse shape.
type TenantResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	UnitID    int64     `json:"unitId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

package service

import (
	"context"
	"strings"

	"github.com/leaselink/leaselink/internal/domain"
	"github.com/leaselink/leaselink/internal/repository"
	apperrors "github.com/leaselink/leaselink/pkg/util"
)

// PortfolioService covers the property/unit/tenant directory the dashboard
// lists and edits. Plain CRUD with required-field and reference checks.
type PortfolioService struct {
	properties repository.PropertyRepository
	units      repository.UnitRepository
	tenants    repository.TenantRepository
}

// PortfolioDependencies bundles repositories for the portfolio service.
type PortfolioDependencies struct {
	PropertyRepo repository.PropertyRepository
	UnitRepo     repository.UnitRepository
	TenantRepo   repository.TenantRepository
}

// NewPortfolioService constructs the service.
func NewPortfolioService(deps PortfolioDependencies) *PortfolioService {
	return &PortfolioService{
		properties: deps.PropertyRepo,
		units:      deps.UnitRepo,
		tenants:    deps.TenantRepo,
	}
}

// ListProperties returns all properties with their units attached.
func (s *PortfolioService) ListProperties(ctx context.Context) ([]domain.Property, error) {
	properties, err := s.properties.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range properties {
		id := properties[i].ID
		units, err := s.units.List(ctx, &id)
		if err != nil {
			return nil, err
		}
		properties[i].Units = units
	}
	return properties, nil
}

// GetProperty returns one property with its units.
func (s *PortfolioService) GetProperty(ctx context.Context, id int64) (*domain.Property, error) {
	property, err := s.properties.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "property")
	}
	units, err := s.units.List(ctx, &property.ID)
	if err != nil {
		return nil, err
	}
	property.Units = units
	return property, nil
}

// CreateProperty persists a new property.
func (s *PortfolioService) CreateProperty(ctx context.Context, property *domain.Property) error {
	if strings.TrimSpace(property.Name) == "" || strings.TrimSpace(property.Address) == "" {
		return apperrors.NewValidationError("name and address are required", nil)
	}
	return s.properties.Create(ctx, property)
}

// UpdateProperty overwrites the basic fields of an existing property.
func (s *PortfolioService) UpdateProperty(ctx context.Context, property *domain.Property) (*domain.Property, error) {
	existing, err := s.properties.GetByID(ctx, property.ID)
	if err != nil {
		return nil, notFoundAs(err, "property")
	}
	existing.Name = property.Name
	existing.Address = property.Address
	existing.City = property.City
	existing.State = property.State
	existing.Zip = property.Zip
	if err := s.properties.Update(ctx, existing); err != nil {
		return nil, notFoundAs(err, "property")
	}
	return existing, nil
}

// DeleteProperty removes a property; its units go with it.
func (s *PortfolioService) DeleteProperty(ctx context.Context, id int64) error {
	return notFoundAs(s.properties.Delete(ctx, id), "property")
}

// ListUnits returns units, optionally restricted to one property.
func (s *PortfolioService) ListUnits(ctx context.Context, propertyID *int64) ([]domain.Unit, error) {
	return s.units.List(ctx, propertyID)
}

// CreateUnit persists a new unit under an existing property.
func (s *PortfolioService) CreateUnit(ctx context.Context, unit *domain.Unit) error {
	if unit.PropertyID == 0 || strings.TrimSpace(unit.UnitNumber) == "" {
		return apperrors.NewValidationError("propertyId and unitNumber are required", nil)
	}
	if unit.Status == "" {
		unit.Status = domain.UnitStatusVacant
	}
	if !domain.ValidUnitStatus(unit.Status) {
		return apperrors.NewValidationError("invalid unit status", map[string]any{"status": unit.Status})
	}
	if _, err := s.properties.GetByID(ctx, unit.PropertyID); err != nil {
		return notFoundAs(err, "property")
	}
	return s.units.Create(ctx, unit)
}

// ListTenants returns all tenants.
func (s *PortfolioService) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	return s.tenants.List(ctx)
}

// GetTenant returns one tenant.
func (s *PortfolioService) GetTenant(ctx context.Context, id int64) (*domain.Tenant, error) {
	tenant, err := s.tenants.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "tenant")
	}
	return tenant, nil
}

// CreateTenant persists a new tenant in an existing unit.
func (s *PortfolioService) CreateTenant(ctx context.Context, tenant *domain.Tenant) error {
	if strings.TrimSpace(tenant.Name) == "" || strings.TrimSpace(tenant.Email) == "" || tenant.UnitID == 0 {
		return apperrors.NewValidationError("name, email, and unitId are required", nil)
	}
	if _, err := s.units.GetByID(ctx, tenant.UnitID); err != nil {
		return notFoundAs(err, "unit")
	}
	return s.tenants.Create(ctx, tenant)
}

// UpdateTenant overwrites a tenant's contact fields and unit.
func (s *PortfolioService) UpdateTenant(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error) {
	existing, err := s.tenants.GetByID(ctx, tenant.ID)
	if err != nil {
		return nil, notFoundAs(err, "tenant")
	}
	if tenant.UnitID != 0 && tenant.UnitID != existing.UnitID {
		if _, err := s.units.GetByID(ctx, tenant.UnitID); err != nil {
			return nil, notFoundAs(err, "unit")
		}
		existing.UnitID = tenant.UnitID
	}
	existing.Name = tenant.Name
	existing.Email = tenant.Email
	existing.Phone = tenant.Phone
	if err := s.tenants.Update(ctx, existing); err != nil {
		return nil, notFoundAs(err, "tenant")
	}
	return existing, nil
}

// DeleteTenant removes a tenant.
func (s *PortfolioService) DeleteTenant(ctx context.Context, id int64) error {
	return notFoundAs(s.tenants.Delete(ctx, id), "tenant")
}

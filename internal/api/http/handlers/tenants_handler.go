package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/leaselink/leaselink/internal/api/dto"
	"github.com/leaselink/leaselink/internal/domain"
	"github.com/leaselink/leaselink/internal/service"
	apperrors "github.com/leaselink/leaselink/pkg/util"
)

// TenantsHandler manages tenant endpoints.
type TenantsHandler struct {
	service *service.PortfolioService
}

// NewTenantsHandler constructs the handler.
func NewTenantsHandler(portfolioService *service.PortfolioService) *TenantsHandler {
	return &TenantsHandler{service: portfolioService}
}

// List handles GET /api/tenants.
func (h *TenantsHandler) List(c *fiber.Ctx) error {
	tenants, err := h.service.ListTenants(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.TenantResponse, 0, len(tenants))
	for i := range tenants {
		items = append(items, tenantResponse(&tenants[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get handles GET /api/tenants/:id.
func (h *TenantsHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	tenant, err := h.service.GetTenant(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": tenantResponse(tenant)})
}

// Create handles POST /api/tenants.
func (h *TenantsHandler) Create(c *fiber.Ctx) error {
	var req dto.TenantRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	tenant := &domain.Tenant{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		UnitID: req.UnitID,
	}
	if err := h.service.CreateTenant(c.Context(), tenant); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": tenantResponse(tenant)})
}

// Update handles PUT /api/tenants/:id.
func (h *TenantsHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.TenantRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	tenant, err := h.service.UpdateTenant(c.Context(), &domain.Tenant{
		ID:     id,
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		UnitID: req.UnitID,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": tenantResponse(tenant)})
}

// Delete handles DELETE /api/tenants/:id.
func (h *TenantsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteTenant(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/leaselink/leaselink/internal/api/dto"
	"github.com/leaselink/leaselink/internal/domain"
	"github.com/leaselink/leaselink/internal/service"
	apperrors "github.com/leaselink/leaselink/pkg/util"
)

// PropertiesHandler manages property endpoints.
type PropertiesHandler struct {
	service *service.PortfolioService
}

// NewPropertiesHandler constructs the handler.
func NewPropertiesHandler(portfolioService *service.PortfolioService) *PropertiesHandler {
	return &PropertiesHandler{service: portfolioService}
}

// List handles GET /api/properties.
func (h *PropertiesHandler) List(c *fiber.Ctx) error {
	properties, err := h.service.ListProperties(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.PropertyResponse, 0, len(properties))
	for i := range properties {
		items = append(items, propertyResponse(&properties[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get handles GET /api/properties/:id.
func (h *PropertiesHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	property, err := h.service.GetProperty(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": propertyResponse(property)})
}

// Create handles POST /api/properties.
func (h *PropertiesHandler) Create(c *fiber.Ctx) error {
	var req dto.PropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	property := &domain.Property{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		Zip:     req.Zip,
	}
	if err := h.service.CreateProperty(c.Context(), property); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": propertyResponse(property)})
}

// Update handles PUT /api/properties/:id.
func (h *PropertiesHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.PropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	property, err := h.service.UpdateProperty(c.Context(), &domain.Property{
		ID:      id,
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		Zip:     req.Zip,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": propertyResponse(property)})
}

// Delete handles DELETE /api/properties/:id.
func (h *PropertiesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteProperty(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

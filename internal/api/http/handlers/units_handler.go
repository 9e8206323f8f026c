package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/leaselink/leaselink/internal/api/dto"
	"github.com/leaselink/leaselink/internal/domain"
	"github.com/leaselink/leaselink/internal/service"
	apperrors "github.com/leaselink/leaselink/pkg/util"
)

// UnitsHandler manages unit endpoints.
type UnitsHandler struct {
	service *service.PortfolioService
}

// NewUnitsHandler constructs the handler.
func NewUnitsHandler(portfolioService *service.PortfolioService) *UnitsHandler {
	return &UnitsHandler{service: portfolioService}
}

// List handles GET /api/units with an optional propertyId filter.
func (h *UnitsHandler) List(c *fiber.Ctx) error {
	units, err := h.service.ListUnits(c.Context(), parseIDQuery(c, "propertyId"))
	if err != nil {
		return err
	}
	items := make([]dto.UnitResponse, 0, len(units))
	for i := range units {
		items = append(items, unitResponse(&units[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Create handles POST /api/units.
func (h *UnitsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUnitRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	unit := &domain.Unit{
		PropertyID: req.PropertyID,
		UnitNumber: req.UnitNumber,
		Beds:       req.Beds,
		Baths:      req.Baths,
		Sqft:       req.Sqft,
		Status:     req.Status,
	}
	if err := h.service.CreateUnit(c.Context(), unit); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": unitResponse(unit)})
}

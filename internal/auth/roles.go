package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/leaselink/leaselink/internal/domain"
	apperrors "github.com/leaselink/leaselink/pkg/util"
)

// RequireRole ensures the authenticated identity holds one of the allowed
// roles. Membership is an exact match; there is no role hierarchy.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("not authenticated")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[identity.Role]; !exists {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}

package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/leaselink/leaselink/internal/domain"
	apperrors "github.com/leaselink/leaselink/pkg/util"
)

const identityKey = "auth_identity"

// SessionCookieName is the cookie the dashboard stores the session token in.
const SessionCookieName = "token"

// Middleware validates session cookies and loads identities.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// tokenFromRequest prefers the session cookie and falls back to a bearer
// header for non-browser clients.
func tokenFromRequest(c *fiber.Ctx) string {
	if cookie := c.Cookies(SessionCookieName); cookie != "" {
		return cookie
	}
	header := c.Get(fiber.HeaderAuthorization)
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}

// Require rejects the request unless it carries a valid session token.
func (m *Middleware) Require(c *fiber.Ctx) error {
	token := tokenFromRequest(c)
	if token == "" {
		return apperrors.NewUnauthorized("not authenticated")
	}

	identity, err := m.tokens.Verify(token)
	if err != nil {
		return apperrors.NewUnauthorized("invalid or expired token")
	}

	c.Locals(identityKey, identity)
	return c.Next()
}

// Optional loads the identity when a valid token is present and continues
// either way. Used by the "who am I" route, where an anonymous caller is a
// normal outcome rather than an error.
func (m *Middleware) Optional(c *fiber.Ctx) error {
	if token := tokenFromRequest(c); token != "" {
		if identity, err := m.tokens.Verify(token); err == nil {
			c.Locals(identityKey, identity)
		}
	}
	return c.Next()
}

// IdentityFromContext retrieves the authenticated identity.
func IdentityFromContext(c *fiber.Ctx) (domain.Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return domain.Identity{}, false
	}
	identity, ok := val.(domain.Identity)
	return identity, ok
}

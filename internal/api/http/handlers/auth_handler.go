package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/leaselink/leaselink/internal/api/dto"
	"github.com/leaselink/leaselink/internal/auth"
	"github.com/leaselink/leaselink/internal/config"
	"github.com/leaselink/leaselink/internal/service"
	apperrors "github.com/leaselink/leaselink/pkg/util"
)

// AuthHandler exposes login, register, logout and identity endpoints.
type AuthHandler struct {
	auth         *service.AuthService
	cookieSecure bool
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(authService *service.AuthService, cfg config.AuthConfig) *AuthHandler {
	return &AuthHandler{auth: authService, cookieSecure: cfg.CookieSecure}
}

// sessionCookie carries the session token to the browser. HttpOnly and
// SameSite=Lax always; Secure when the deployment serves HTTPS. Max-Age
// matches the token TTL so cookie and token expire together.
func (h *AuthHandler) sessionCookie(token string, expiresAt time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}

func (h *AuthHandler) clearSessionCookie() *fiber.Cookie {
	return &fiber.Cookie{
		Name:     auth.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password are required", nil)
	}

	identity, token, expiresAt, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.Cookie(h.sessionCookie(token, expiresAt))
	return c.JSON(fiber.Map{"data": fiber.Map{"user": dto.NewUserResponse(identity)}})
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password are required", nil)
	}

	identity, token, expiresAt, err := h.auth.Register(c.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		return err
	}

	c.Cookie(h.sessionCookie(token, expiresAt))
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"user": dto.NewUserResponse(identity)}})
}

// Logout handles POST /api/auth/logout. Tokens are stateless, so logging out
// is purely a client-side cookie clear; the endpoint always succeeds.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(h.clearSessionCookie())
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "logged out"}})
}

// Me handles GET /api/auth/me. An anonymous caller gets a null user rather
// than an error; only protected routes reject missing identities.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return c.JSON(fiber.Map{"data": fiber.Map{"user": nil}})
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"user": dto.NewUserResponse(identity)}})
}

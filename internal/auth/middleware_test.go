package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/leaselink/leaselink/internal/domain"
	apperrors "github.com/leaselink/leaselink/pkg/util"
)

func newTestApp(tm *TokenManager, protected fiber.Handler, extra ...fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if err := c.Next(); err != nil {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"message": domainErr.Message})
		}
		return nil
	})
	m := NewMiddleware(tm)
	chain := append([]fiber.Handler{m.Require}, extra...)
	chain = append(chain, protected)
	app.Get("/protected", chain...)
	app.Get("/optional", m.Optional, func(c *fiber.Ctx) error {
		if identity, ok := IdentityFromContext(c); ok {
			return c.JSON(fiber.Map{"email": identity.Email})
		}
		return c.JSON(fiber.Map{"email": nil})
	})
	return app
}

func okHandler(c *fiber.Ctx) error {
	identity, _ := IdentityFromContext(c)
	return c.JSON(fiber.Map{"id": identity.ID})
}

func TestRequire_ValidCookie(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	app := newTestApp(tm, okHandler)

	token, _, err := tm.Issue(domain.Identity{ID: 3, Email: "staff@leaselink.com", Role: domain.RoleStaff})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestRequire_MissingAndInvalidToken(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	app := newTestApp(tm, okHandler)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without cookie, got %d", resp.StatusCode)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "garbage"})
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 with bad token, got %d", resp.StatusCode)
	}
}

func TestRequire_BearerFallback(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	app := newTestApp(tm, okHandler)

	token, _, err := tm.Issue(domain.Identity{ID: 1, Email: "admin@leaselink.com", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 via bearer header, got %d", resp.StatusCode)
	}
}

func TestRequireRole(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	app := newTestApp(tm, okHandler, RequireRole(domain.RoleAdmin, domain.RoleManager))

	cases := []struct {
		role domain.Role
		want int
	}{
		{domain.RoleAdmin, http.StatusOK},
		{domain.RoleManager, http.StatusOK},
		{domain.RoleStaff, http.StatusForbidden},
	}
	for _, tc := range cases {
		token, _, err := tm.Issue(domain.Identity{ID: 1, Email: "x@leaselink.com", Role: tc.role})
		if err != nil {
			t.Fatalf("Issue error: %v", err)
		}
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test error: %v", err)
		}
		if resp.StatusCode != tc.want {
			t.Fatalf("role %s: expected %d, got %d", tc.role, tc.want, resp.StatusCode)
		}
	}
}

func TestOptional_AnonymousContinues(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	app := newTestApp(tm, okHandler)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/optional", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for anonymous optional route, got %d", resp.StatusCode)
	}
}

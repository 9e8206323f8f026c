package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/leaselink/leaselink/internal/api/http/handlers"
	"github.com/leaselink/leaselink/internal/auth"
	"github.com/leaselink/leaselink/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Properties     *handlers.PropertiesHandler
	Units          *handlers.UnitsHandler
	Tenants        *handlers.TenantsHandler
	Tickets        *handlers.TicketsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires the HTTP surface. Auth endpoints are public (the
// identity query accepts anonymous callers); everything else requires a
// session, with mutations on the directory gated by role.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	api := app.Group("/api")

	api.Get("/health", cfg.Health.Live)
	api.Get("/health/ready", cfg.Health.Ready)

	authGroup := api.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Get("/me", cfg.AuthMiddleware.Optional, cfg.Auth.Me)

	manage := auth.RequireRole(domain.RoleAdmin, domain.RoleManager)
	adminOnly := auth.RequireRole(domain.RoleAdmin)

	properties := api.Group("/properties", cfg.AuthMiddleware.Require)
	properties.Get("/", cfg.Properties.List)
	properties.Get("/:id", cfg.Properties.Get)
	properties.Post("/", manage, cfg.Properties.Create)
	properties.Put("/:id", manage, cfg.Properties.Update)
	properties.Delete("/:id", adminOnly, cfg.Properties.Delete)

	units := api.Group("/units", cfg.AuthMiddleware.Require)
	units.Get("/", cfg.Units.List)
	units.Post("/", manage, cfg.Units.Create)

	tenants := api.Group("/tenants", cfg.AuthMiddleware.Require)
	tenants.Get("/", cfg.Tenants.List)
	tenants.Get("/:id", cfg.Tenants.Get)
	tenants.Post("/", manage, cfg.Tenants.Create)
	tenants.Put("/:id", manage, cfg.Tenants.Update)
	tenants.Delete("/:id", adminOnly, cfg.Tenants.Delete)

	tickets := api.Group("/tickets", cfg.AuthMiddleware.Require)
	tickets.Get("/", cfg.Tickets.List)
	tickets.Get("/:id", cfg.Tickets.Get)
	tickets.Post("/", cfg.Tickets.Create)
	tickets.Patch("/:id", cfg.Tickets.Update)
	tickets.Post("/:id/comments", cfg.Tickets.AddComment)
	tickets.Delete("/:id", manage, cfg.Tickets.Delete)
}

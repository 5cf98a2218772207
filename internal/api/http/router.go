package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/linguahub/moderation-service/internal/api/http/handlers"
	"github.com/linguahub/moderation-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Reports        *handlers.ReportsHandler
	Moderation     *handlers.ModerationHandler
	Users          *handlers.UsersHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	reports := app.Group("/reports", cfg.AuthMiddleware.Handle)
	reports.Post("", cfg.Reports.Submit)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireAdmin())

	admin.Get("/reports", cfg.Moderation.List)
	admin.Get("/reports/:id", cfg.Moderation.Detail)
	admin.Post("/reports/:id/action", cfg.Moderation.TakeAction)
	admin.Post("/reports/:id/status", cfg.Moderation.UpdateStatus)
	admin.Delete("/reports/:id", cfg.Moderation.Delete)
	admin.Get("/audit", cfg.Moderation.AuditHistory)

	admin.Get("/users", cfg.Users.List)
	admin.Post("/users", cfg.Users.Create)
	admin.Post("/users/:id/role", cfg.Users.ChangeRole)
	admin.Post("/users/:id/status", cfg.Users.UpdateStatus)
}

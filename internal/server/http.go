// Package server builds the fiber app: middleware, health check, and the
// identity routes.
package server

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	identityhandler "biometric-core-api/internal/identity/handler"
)

// Pinger is used by /health for readiness (e.g. *sql.DB).
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Deps holds optional dependencies for HTTP routes.
type Deps struct {
	// Identity serves the enrollment/verification/directory routes. If nil,
	// the routes are not registered.
	Identity *identityhandler.Server
	// HealthPinger is checked by /health. If nil, the DB ping is skipped.
	HealthPinger Pinger
	// CORSAllowOrigins is the comma-separated allowed origins for the browser
	// client. Empty means fiber's default (allow all).
	CORSAllowOrigins string
}

// New builds the fiber app with logging, CORS, the health endpoint, and the
// identity routes.
//
// Route → handler mapping:
//   - GET  /api/users          → identity/handler.ListUsers
//   - POST /api/users/enroll   → identity/handler.Enroll
//   - POST /api/users/verify   → identity/handler.Verify
func New(deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	corsCfg := cors.Config{}
	if deps.CORSAllowOrigins != "" {
		corsCfg.AllowOrigins = deps.CORSAllowOrigins
	}
	app.Use(cors.New(corsCfg))

	app.Get("/health", func(c *fiber.Ctx) error {
		status := "ok"
		if deps.HealthPinger != nil {
			if err := deps.HealthPinger.PingContext(c.UserContext()); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"status": "unavailable",
					"time":   time.Now().UTC(),
				})
			}
		}
		return c.JSON(fiber.Map{
			"status": status,
			"time":   time.Now().UTC(),
		})
	})

	if deps.Identity != nil {
		users := app.Group("/api/users")
		users.Get("/", deps.Identity.ListUsers)
		users.Post("/enroll", deps.Identity.Enroll)
		users.Post("/verify", deps.Identity.Verify)
	}

	return app
}

package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/gema-tutor/internal/config"
	"github.com/noah-isme/gema-tutor/internal/handler"
	"github.com/noah-isme/gema-tutor/internal/middleware"
	"github.com/noah-isme/gema-tutor/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	TutorHandler *handler.TutorHandler
	// AskLimiter overrides the per-IP limiter in front of the ask route.
	AskLimiter fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	if deps.TutorHandler != nil {
		limiter := deps.AskLimiter
		if limiter == nil {
			limiter = middleware.RateLimit("tutor_ask", cfg.RateLimitMax, cfg.RateLimitWindow)
		}
		tutor := api.Group("/tutor")
		deps.TutorHandler.Register(tutor, limiter)
	}
}

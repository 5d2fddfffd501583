package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares registra os middlewares globais na ordem certa:
// recovery primeiro, depois CORS e rate limit.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}

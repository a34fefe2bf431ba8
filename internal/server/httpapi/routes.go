package httpapi

import (
	"github.com/foodprint-app/foodprint/internal/server/auth"
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler, tokens *auth.TokenIssuer) {
	app.Post("/api/register", h.Register)
	app.Post("/api/login", h.Login)
	app.Get("/api/health", h.Health)

	app.Get("/api/profile", RequireAuth(tokens), h.Profile)
}

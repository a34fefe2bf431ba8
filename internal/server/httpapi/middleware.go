package httpapi

import (
	"strings"

	"github.com/foodprint-app/foodprint/internal/server/auth"
	"github.com/gofiber/fiber/v2"
)

const userIDKey = "userID"

// RequireAuth verifies the Authorization: Bearer header and stores the
// account id bound to the token in the request locals. A missing, malformed,
// expired or tampered token is rejected the same way.
func RequireAuth(tokens *auth.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		userID, err := tokens.Verify(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

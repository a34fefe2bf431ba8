// Package httpapi exposes the authentication endpoints over HTTP.
// Error bodies are deliberately undifferentiated: registration failures all
// read the same, and an unknown username is indistinguishable from a wrong
// password.
package httpapi

import (
	"errors"

	"github.com/foodprint-app/foodprint/internal/common"
	"github.com/foodprint-app/foodprint/internal/logging"
	"github.com/foodprint-app/foodprint/internal/server/services"
	"github.com/gofiber/fiber/v2"
)

type RegisterInput struct {
	Username           string `json:"username"`
	Email              string `json:"email"`
	Password           string `json:"password"`
	FullAddress        string `json:"fullAddress"`
	ShoppingPreference string `json:"shoppingPreference"`
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthHandler struct {
	users  *services.UserService
	logger logging.Logger
}

func NewAuthHandler(users *services.UserService, logger logging.Logger) *AuthHandler {
	return &AuthHandler{users: users, logger: logger.With("module", "httpapi")}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Registration failed",
		})
	}

	_, err := h.users.Register(c.UserContext(), services.RegisterInput{
		Username:           input.Username,
		Email:              input.Email,
		Password:           []byte(input.Password),
		FullAddress:        input.FullAddress,
		ShoppingPreference: input.ShoppingPreference,
	})
	if err != nil {
		if !errors.Is(err, common.ErrValidation) && !errors.Is(err, common.ErrDuplicateAccount) {
			h.logger.Error(c.UserContext(), "registration failed", "error", err.Error())
		}
		// same body for validation, duplicate and internal faults, so the
		// response never reveals which field collided
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Registration failed",
		})
	}

	h.logger.Info(c.UserContext(), "user registered", "username", input.Username)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created",
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	result, err := h.users.Login(c.UserContext(), input.Username, []byte(input.Password))
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid credentials",
			})
		}
		h.logger.Error(c.UserContext(), "login failed", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Login failed",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"token": result.Token,
		"user":  result.User,
	})
}

// Profile returns the account bound to the bearer token verified by
// RequireAuth.
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	userID, _ := c.Locals(userIDKey).(string)

	user, err := h.users.Profile(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}
		h.logger.Error(c.UserContext(), "profile lookup failed", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

func (h *AuthHandler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "OK"})
}

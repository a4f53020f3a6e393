package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"guitar-learning-system/middleware"
	"guitar-learning-system/services"
)

func SetupAuthRoutes(app *fiber.App, sessionService *services.SessionService, jwtSecret string) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Post("/signup", func(c *fiber.Ctx) error {
		var req services.SignUpInput
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		result, err := sessionService.SignUp(req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailRegistered):
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{
					"error": "email already registered",
				})
			case errors.Is(err, services.ErrMissingFields),
				errors.Is(err, services.ErrBadPreferences),
				errors.Is(err, services.ErrInvalidLevel):
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": err.Error(),
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "signup failed",
				"cause": err.Error(),
			})
		}
		return c.Status(fiber.StatusCreated).JSON(result)
	})

	app.Post("/signin", func(c *fiber.Ctx) error {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		result, err := sessionService.SignIn(req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) || errors.Is(err, services.ErrUserNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "invalid email or password",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "signin failed",
				"cause": err.Error(),
			})
		}
		return c.JSON(result)
	})

	app.Post("/demo", func(c *fiber.Ctx) error {
		result, err := sessionService.Demo()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "demo session failed",
				"cause": err.Error(),
			})
		}
		return c.JSON(result)
	})

	// Scoped to the one route, not a catch-all prefix: a "/" group would drag
	// the bearer check in front of every route registered after it.
	app.Post("/signout", middleware.UserContextMiddleware(sessionService, jwtSecret), func(c *fiber.Ctx) error {
		tokenID, _ := c.Locals("token_id").(string)
		if err := sessionService.SignOut(tokenID); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "signout failed",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"status": "signed out"})
	})
}

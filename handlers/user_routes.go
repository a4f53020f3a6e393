package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"guitar-learning-system/content"
	"guitar-learning-system/middleware"
	"guitar-learning-system/models"
	"guitar-learning-system/services"
)

func SetupUserRoutes(
	app *fiber.App,
	sessionService *services.SessionService,
	progressionService *services.ProgressionService,
	contentService *services.ContentService,
	jwtSecret string,
) {
	authed := middleware.UserContextMiddleware(sessionService, jwtSecret)
	userGrp := app.Group("/user", authed)
	contentGrp := app.Group("/content", authed)

	// requireSelf rejects requests where the path user doesn't match the token.
	requireSelf := func(c *fiber.Ctx) (string, error) {
		userID, _ := c.Locals("user_id").(string)
		if c.Params("userId") != userID {
			return "", c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "cannot act on another user",
			})
		}
		return userID, nil
	}

	userGrp.Get("/:userId", func(c *fiber.Ctx) error {
		userID, err := requireSelf(c)
		if err != nil || userID == "" {
			return err
		}
		user, err := sessionService.GetUser(userID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "user not found",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to load user",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"user":            user,
			"levelProgress":   progressionService.LevelProgress(user.ID),
			"overallProgress": progressionService.OverallProgress(user.ID),
		})
	})

	userGrp.Put("/:userId", func(c *fiber.Ctx) error {
		userID, err := requireSelf(c)
		if err != nil || userID == "" {
			return err
		}
		var update models.UserUpdate
		if err := c.BodyParser(&update); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		user, err := sessionService.UpdateProfile(userID, update)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "user not found",
				})
			case errors.Is(err, services.ErrInvalidLevel), errors.Is(err, services.ErrBadPreferences):
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": err.Error(),
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "update failed",
				"cause": err.Error(),
			})
		}
		return c.JSON(user)
	})

	userGrp.Post("/:userId/points", func(c *fiber.Ctx) error {
		userID, err := requireSelf(c)
		if err != nil || userID == "" {
			return err
		}
		var req services.ActivityInput
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		activity, err := progressionService.AwardPoints(userID, req)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to award points",
				"cause": err.Error(),
			})
		}
		if activity == nil {
			// Unknown user: dropped without error.
			return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"status": "dropped"})
		}
		user, err := sessionService.GetUser(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to reload user",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"activity": activity,
			"user":     user,
		})
	})

	userGrp.Get("/:userId/activities", func(c *fiber.Ctx) error {
		activities, err := progressionService.RecentActivities(c.Params("userId"))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to load activities",
				"cause": err.Error(),
			})
		}
		return c.JSON(activities)
	})

	userGrp.Get("/:userId/progress", func(c *fiber.Ctx) error {
		userID := c.Params("userId")
		user, err := sessionService.GetUser(userID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "user not found",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to load user",
				"cause": err.Error(),
			})
		}
		thresholds, _ := services.ThresholdsForLevel(user.Level)
		return c.JSON(fiber.Map{
			"level":           user.Level,
			"levelProgress":   progressionService.LevelProgress(userID),
			"overallProgress": progressionService.OverallProgress(userID),
			"thresholds":      thresholds,
		})
	})

	contentGrp.Get("/themes/all", func(c *fiber.Ctx) error {
		return c.JSON(content.MusicThemes)
	})

	contentGrp.Get("/:kind", func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		kind := content.Kind(c.Params("kind"))
		if !kind.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "unknown content kind",
			})
		}
		return c.JSON(contentService.FilteredContent(userID, kind))
	})

	contentGrp.Post("/:kind/progress", func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		kind := content.Kind(c.Params("kind"))
		if !kind.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "unknown content kind",
			})
		}
		var req struct {
			ItemKey  string `json:"itemKey"`
			Progress int    `json:"progress"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		if req.ItemKey == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "itemKey is required",
			})
		}
		if err := contentService.SetItemProgress(userID, kind, req.ItemKey, req.Progress); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to save progress",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"status": "saved"})
	})
}

package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"guitar-learning-system/middleware"
	"guitar-learning-system/models"
	"guitar-learning-system/services"
)

func SetupSocialRoutes(
	app *fiber.App,
	sessionService *services.SessionService,
	socialService *services.SocialService,
	jwtSecret string,
) {
	authed := middleware.UserContextMiddleware(sessionService, jwtSecret)
	users := app.Group("/users", authed)
	friends := app.Group("/friends", authed)
	chats := app.Group("/chats", authed)
	posts := app.Group("/posts", authed)

	users.Get("/search", func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		users, err := socialService.SearchUsers(userID, c.Query("q"))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "search failed",
				"cause": err.Error(),
			})
		}
		return c.JSON(users)
	})

	users.Get("/online", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"online": socialService.Presence.OnlineUsers(),
		})
	})

	friends.Get("/", func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		friends, err := socialService.Friends(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to load friends",
				"cause": err.Error(),
			})
		}
		return c.JSON(friends)
	})

	friends.Get("/requests", func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		reqs, err := socialService.FriendRequests(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to load friend requests",
				"cause": err.Error(),
			})
		}
		return c.JSON(reqs)
	})

	friends.Post("/requests", func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		var req struct {
			Username string `json:"username"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		created, err := socialService.SendFriendRequest(userID, req.Username)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "user not found",
				})
			case errors.Is(err, services.ErrAlreadyFriends), errors.Is(err, services.ErrDuplicateRequest):
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{
					"error": err.Error(),
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to send friend request",
				"cause": err.Error(),
			})
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	})

	friends.Post("/requests/:requestId/accept", func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		req, err := socialService.AcceptFriendRequest(userID, c.Params("requestId"))
		if err != nil {
			return friendRequestError(c, err)
		}
		return c.JSON(req)
	})

	friends.Post("/requests/:requestId/decline", func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		req, err := socialService.DeclineFriendRequest(userID, c.Params("requestId"))
		if err != nil {
			return friendRequestError(c, err)
		}
		return c.JSON(req)
	})

	chats.Get("/", func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		chats, err := socialService.Chats(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to load chats",
				"cause": err.Error(),
			})
		}
		return c.JSON(chats)
	})

	chats.Post("/", func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		var req struct {
			Participants         []string `json:"participants"`
			ParticipantNames     []string `json:"participantNames"`
			ParticipantUsernames []string `json:"participantUsernames"`
			GroupName            string   `json:"groupName"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		chat, err := socialService.CreateChat(userID, services.CreateChatInput{
			Participants:         req.Participants,
			ParticipantNames:     req.ParticipantNames,
			ParticipantUsernames: req.ParticipantUsernames,
			GroupName:            req.GroupName,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNoParticipants):
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "participants are required",
				})
			case errors.Is(err, services.ErrUserNotFound):
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "user not found",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to create chat",
				"cause": err.Error(),
			})
		}
		return c.Status(fiber.StatusCreated).JSON(chat)
	})

	chats.Get("/:chatId/messages", func(c *fiber.Ctx) error {
		msgs, err := socialService.ChatMessages(c.Params("chatId"))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to load messages",
				"cause": err.Error(),
			})
		}
		return c.JSON(msgs)
	})

	chats.Post("/:chatId/messages", func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		var req struct {
			Content string `json:"content"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		msg, err := socialService.SendMessage(userID, c.Params("chatId"), req.Content)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyContent):
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "message content is required",
				})
			case errors.Is(err, services.ErrChatNotFound):
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "chat not found",
				})
			case errors.Is(err, services.ErrUserNotFound):
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "user not found",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to send message",
				"cause": err.Error(),
			})
		}
		return c.Status(fiber.StatusCreated).JSON(msg)
	})

	posts.Get("/", func(c *fiber.Ctx) error {
		posts, err := socialService.Posts()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to load posts",
				"cause": err.Error(),
			})
		}
		return c.JSON(posts)
	})

	posts.Post("/", func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		var req struct {
			Content string          `json:"content"`
			Type    models.PostType `json:"type"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		post, err := socialService.CreateCommunityPost(userID, req.Content, req.Type)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyContent):
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "post content is required",
				})
			case errors.Is(err, services.ErrUserNotFound):
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "user not found",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to create post",
				"cause": err.Error(),
			})
		}
		return c.Status(fiber.StatusCreated).JSON(post)
	})

	posts.Post("/:postId/like", func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		post, err := socialService.LikeCommunityPost(userID, c.Params("postId"))
		if err != nil {
			if errors.Is(err, services.ErrPostNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "post not found",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to toggle like",
				"cause": err.Error(),
			})
		}
		return c.JSON(post)
	})
}

func friendRequestError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrRequestNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "friend request not found",
		})
	case errors.Is(err, services.ErrRequestNotPending):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "friend request already resolved",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "failed to update friend request",
		"cause": err.Error(),
	})
}

package notifications

import (
	"github.com/gofiber/fiber/v2"
	apiError "github.com/grantradar/grantradar-go/lib/api/errors"
	utils2 "github.com/grantradar/grantradar-go/lib/api/utils"
	"github.com/grantradar/grantradar-go/lib/notification"
)

func Init(c *fiber.App, notificationManager *notification.Manager) {
	c.Get("/notifications", func(c *fiber.Ctx) error {
		recipient := c.Get(utils2.ActorHeader)
		if recipient == "" {
			return c.Status(400).JSON(apiError.NewMissingParamError(utils2.ActorHeader))
		}

		notifications, err := notificationManager.List(recipient)
		if err != nil {
			return c.Status(500).JSON(apiError.InternalServerError)
		}
		return c.JSON(notifications)
	})

	c.Get("/notifications/unread-count", func(c *fiber.Ctx) error {
		recipient := c.Get(utils2.ActorHeader)
		if recipient == "" {
			return c.Status(400).JSON(apiError.NewMissingParamError(utils2.ActorHeader))
		}

		count, err := notificationManager.UnreadCount(recipient)
		if err != nil {
			return c.Status(500).JSON(apiError.InternalServerError)
		}
		return c.JSON(fiber.Map{
			"count": count,
		})
	})

	c.Post("/notifications/:notificationId/read", func(c *fiber.Ctx) error {
		if err := notificationManager.MarkRead(c.Params("notificationId")); err != nil {
			return c.Status(404).JSON(apiError.NotificationNotFoundError)
		}
		return c.SendStatus(204)
	})

	c.Post("/notifications/read-all", func(c *fiber.Ctx) error {
		recipient := c.Get(utils2.ActorHeader)
		if recipient == "" {
			return c.Status(400).JSON(apiError.NewMissingParamError(utils2.ActorHeader))
		}

		if err := notificationManager.MarkAllRead(recipient); err != nil {
			return c.Status(500).JSON(apiError.InternalServerError)
		}
		return c.SendStatus(204)
	})
}

package applications

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	apiError "github.com/grantradar/grantradar-go/lib/api/errors"
	utils2 "github.com/grantradar/grantradar-go/lib/api/utils"
	"github.com/grantradar/grantradar-go/lib/grant"
	"github.com/grantradar/grantradar-go/lib/notification"
	"github.com/grantradar/grantradar-go/lib/pipeline"
	"github.com/grantradar/grantradar-go/lib/team"
)

type CreateDto struct {
	GrantID string `json:"grant_id" validate:"required"`
	Title   string `json:"title" validate:"required"`
}

type UpdateDto struct {
	Title    *string `json:"title"`
	Notes    *string `json:"notes"`
	Assignee *string `json:"assignee"`
}

type MoveDto struct {
	Stage    string `json:"stage" validate:"required"`
	Position int    `json:"position" validate:"gte=0"`
}

func Init(c *fiber.App, boardManager *pipeline.Manager, grantManager *grant.Manager,
	teamManager *team.Manager, notificationManager *notification.Manager, validate *validator.Validate) {
	c.Post("/applications", func(c *fiber.Ctx) error {
		if !utils2.RequireAction(c, teamManager, team.ActionEditContent) {
			return nil
		}

		var dto CreateDto
		if err := c.BodyParser(&dto); err != nil {
			return c.Status(400).JSON(apiError.InvalidRequestError)
		}
		if err := validate.Struct(dto); err != nil {
			return c.Status(422).JSON(apiError.ValidationError)
		}

		if _, err := grantManager.GetGrant(dto.GrantID); err != nil {
			return c.Status(404).JSON(apiError.GrantNotFoundError)
		}

		application, err := boardManager.CreateApplication(dto.GrantID, dto.Title)
		if err != nil {
			return c.Status(500).JSON(apiError.InternalServerError)
		}
		return c.Status(201).JSON(application)
	})

	c.Get("/applications/board", func(c *fiber.Ctx) error {
		board, err := boardManager.Board()
		if err != nil {
			return c.Status(500).JSON(apiError.InternalServerError)
		}
		return c.JSON(board)
	})

	c.Get("/applications/:applicationId", func(c *fiber.Ctx) error {
		application, err := boardManager.GetApplication(c.Params("applicationId"))
		if err != nil {
			return c.Status(404).JSON(apiError.ApplicationNotFoundError)
		}
		return c.JSON(application)
	})

	c.Patch("/applications/:applicationId", func(c *fiber.Ctx) error {
		if !utils2.RequireAction(c, teamManager, team.ActionEditContent) {
			return nil
		}

		var dto UpdateDto
		if err := c.BodyParser(&dto); err != nil {
			return c.Status(400).JSON(apiError.InvalidRequestError)
		}

		application, err := boardManager.UpdateApplication(c.Params("applicationId"), pipeline.ApplicationUpdate{
			Title:    dto.Title,
			Notes:    dto.Notes,
			Assignee: dto.Assignee,
		})
		if err != nil {
			return c.Status(404).JSON(apiError.ApplicationNotFoundError)
		}

		if dto.Assignee != nil && *dto.Assignee != "" {
			payload, _ := json.Marshal(fiber.Map{"application_id": application.ID, "title": application.Title})
			notificationManager.Notify(*dto.Assignee, notification.KindApplicationMoved, string(payload))
		}

		return c.JSON(application)
	})

	c.Post("/applications/:applicationId/move", func(c *fiber.Ctx) error {
		if !utils2.RequireAction(c, teamManager, team.ActionEditContent) {
			return nil
		}

		var dto MoveDto
		if err := c.BodyParser(&dto); err != nil {
			return c.Status(400).JSON(apiError.InvalidRequestError)
		}
		if !pipeline.IsValidStage(dto.Stage) {
			return c.Status(400).JSON(apiError.NewInvalidParamError("stage"))
		}

		application, err := boardManager.Move(c.Params("applicationId"), dto.Stage, dto.Position)
		if err != nil {
			return c.Status(404).JSON(apiError.ApplicationNotFoundError)
		}

		if application.Assignee != nil {
			payload, _ := json.Marshal(fiber.Map{
				"application_id": application.ID,
				"title":          application.Title,
				"stage":          application.Stage,
			})
			notificationManager.Notify(*application.Assignee, notification.KindApplicationMoved, string(payload))
		}

		return c.JSON(application)
	})

	c.Delete("/applications/:applicationId", func(c *fiber.Ctx) error {
		if !utils2.RequireAction(c, teamManager, team.ActionEditContent) {
			return nil
		}

		if err := boardManager.RemoveApplication(c.Params("applicationId")); err != nil {
			return c.Status(404).JSON(apiError.ApplicationNotFoundError)
		}
		return c.SendStatus(204)
	})
}

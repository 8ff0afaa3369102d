package components

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	apiError "github.com/grantradar/grantradar-go/lib/api/errors"
	utils2 "github.com/grantradar/grantradar-go/lib/api/utils"
	"github.com/grantradar/grantradar-go/lib/component"
	"github.com/grantradar/grantradar-go/lib/diff"
	"github.com/grantradar/grantradar-go/lib/notification"
	"github.com/grantradar/grantradar-go/lib/team"
	"github.com/grantradar/grantradar-go/lib/utils"
)

type CreateDto struct {
	Title    string   `json:"title" validate:"required"`
	Category string   `json:"category"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
}

type UpdateDto struct {
	Title    *string  `json:"title"`
	Category *string  `json:"category"`
	Content  *string  `json:"content"`
	Tags     []string `json:"tags"`
}

type SaveVersionDto struct {
	SnapshotName *string `json:"snapshot_name"`
}

// ComparisonResponse wraps the raw change list with the rendered views
// the frontend switches between.
type ComparisonResponse struct {
	*component.VersionComparison
	Unified []diff.UnifiedRow `json:"unified"`
	Split   []diff.SplitRow   `json:"split"`
}

func Init(c *fiber.App, componentManager *component.Manager, teamManager *team.Manager,
	notificationManager *notification.Manager, validate *validator.Validate) {
	c.Post("/components", func(c *fiber.Ctx) error {
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

		owner := c.Get(utils2.ActorHeader)
		createdComponent, err := componentManager.CreateComponent(dto.Title, dto.Category, dto.Content, owner, dto.Tags)
		if err != nil {
			return c.Status(500).JSON(apiError.InternalServerError)
		}
		return c.Status(201).JSON(createdComponent)
	})

	c.Get("/components", func(c *fiber.Ctx) error {
		components, err := componentManager.ListComponents()
		if err != nil {
			return c.Status(500).JSON(apiError.InternalServerError)
		}
		return c.JSON(components)
	})

	c.Get("/components/:componentId", func(c *fiber.Ctx) error {
		foundComponent, err := componentManager.GetComponent(c.Params("componentId"))
		if err != nil {
			return c.Status(404).JSON(apiError.ComponentNotFoundError)
		}
		return c.JSON(foundComponent)
	})

	c.Patch("/components/:componentId", func(c *fiber.Ctx) error {
		if !utils2.RequireAction(c, teamManager, team.ActionEditContent) {
			return nil
		}

		var dto UpdateDto
		if err := c.BodyParser(&dto); err != nil {
			return c.Status(400).JSON(apiError.InvalidRequestError)
		}

		updatedComponent, err := componentManager.UpdateComponent(c.Params("componentId"), component.ComponentUpdate{
			Title:    dto.Title,
			Category: dto.Category,
			Content:  dto.Content,
			Tags:     dto.Tags,
		})
		if err != nil {
			return c.Status(404).JSON(apiError.ComponentNotFoundError)
		}
		return c.JSON(updatedComponent)
	})

	c.Delete("/components/:componentId", func(c *fiber.Ctx) error {
		if !utils2.RequireAction(c, teamManager, team.ActionEditContent) {
			return nil
		}

		if err := componentManager.RemoveComponent(c.Params("componentId")); err != nil {
			return c.Status(404).JSON(apiError.ComponentNotFoundError)
		}
		return c.SendStatus(204)
	})

	c.Post("/components/:componentId/versions", func(c *fiber.Ctx) error {
		if !utils2.RequireAction(c, teamManager, team.ActionEditContent) {
			return nil
		}

		var dto SaveVersionDto
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&dto); err != nil {
				return c.Status(400).JSON(apiError.InvalidRequestError)
			}
		}

		actor := c.Get(utils2.ActorHeader)
		version, err := componentManager.SaveVersion(c.Params("componentId"), dto.SnapshotName, actor)
		if err != nil {
			return c.Status(404).JSON(apiError.ComponentNotFoundError)
		}

		if actor != "" {
			notificationManager.Notify(actor, notification.KindVersionSaved, version.ComponentID)
		}

		return c.Status(201).JSON(version)
	})

	c.Get("/components/:componentId/versions", func(c *fiber.Ctx) error {
		versions, err := componentManager.ListVersions(c.Params("componentId"))
		if err != nil {
			return c.Status(404).JSON(apiError.ComponentNotFoundError)
		}
		return c.JSON(versions)
	})

	c.Get("/components/:componentId/versions/:version", func(c *fiber.Ctx) error {
		versionNumber, err := utils.CheckValidVersion(c.Params("version"))
		if err != nil {
			return c.Status(400).JSON(apiError.InvalidVersionError)
		}

		version, err := componentManager.GetVersion(c.Params("componentId"), *versionNumber)
		if err != nil {
			return c.Status(404).JSON(apiError.VersionNotFoundError)
		}
		return c.JSON(version)
	})

	c.Delete("/components/:componentId/versions/:version", func(c *fiber.Ctx) error {
		if !utils2.RequireAction(c, teamManager, team.ActionEditContent) {
			return nil
		}

		versionNumber, err := utils.CheckValidVersion(c.Params("version"))
		if err != nil {
			return c.Status(400).JSON(apiError.InvalidVersionError)
		}

		if err := componentManager.DeleteVersion(c.Params("componentId"), *versionNumber); err != nil {
			return c.Status(404).JSON(apiError.VersionNotFoundError)
		}
		return c.SendStatus(204)
	})

	c.Post("/components/:componentId/versions/:version/restore", func(c *fiber.Ctx) error {
		if !utils2.RequireAction(c, teamManager, team.ActionEditContent) {
			return nil
		}

		versionNumber, err := utils.CheckValidVersion(c.Params("version"))
		if err != nil {
			return c.Status(400).JSON(apiError.InvalidVersionError)
		}

		actor := c.Get(utils2.ActorHeader)
		version, err := componentManager.RestoreVersion(c.Params("componentId"), *versionNumber, actor)
		if err != nil {
			return c.Status(404).JSON(apiError.VersionNotFoundError)
		}
		return c.Status(201).JSON(version)
	})

	c.Get("/components/:componentId/diff", func(c *fiber.Ctx) error {
		fromParam := c.Query("from")
		if fromParam == "" {
			return c.Status(400).JSON(apiError.NewMissingParamError("from"))
		}
		toParam := c.Query("to")
		if toParam == "" {
			return c.Status(400).JSON(apiError.NewMissingParamError("to"))
		}

		fromVersion, err := utils.CheckValidVersion(fromParam)
		if err != nil {
			return c.Status(400).JSON(apiError.NewInvalidParamError("from"))
		}
		toVersion, err := utils.CheckValidVersion(toParam)
		if err != nil {
			return c.Status(400).JSON(apiError.NewInvalidParamError("to"))
		}

		foundComponent, err := componentManager.GetComponent(c.Params("componentId"))
		if err != nil {
			return c.Status(404).JSON(apiError.ComponentNotFoundError)
		}
		if *fromVersion > foundComponent.Head || *toVersion > foundComponent.Head {
			return c.Status(400).JSON(apiError.VersionHigherThanHeadError)
		}

		comparison, err := componentManager.CompareVersions(c.Params("componentId"), *fromVersion, *toVersion)
		if err != nil {
			return c.Status(404).JSON(apiError.VersionNotFoundError)
		}

		return c.JSON(ComparisonResponse{
			VersionComparison: comparison,
			Unified:           diff.Unified(comparison.Changes),
			Split:             diff.Split(comparison.Changes),
		})
	})
}

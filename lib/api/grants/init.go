package grants

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/grantradar/grantradar-go/lib/account"
	apiError "github.com/grantradar/grantradar-go/lib/api/errors"
	utils2 "github.com/grantradar/grantradar-go/lib/api/utils"
	"github.com/grantradar/grantradar-go/lib/grant"
	"github.com/grantradar/grantradar-go/lib/settings"
	"github.com/grantradar/grantradar-go/lib/team"
)

type CreateDto struct {
	Title       string     `json:"title" validate:"required"`
	Funder      string     `json:"funder" validate:"required"`
	Description string     `json:"description"`
	AmountMin   int64      `json:"amount_min" validate:"gte=0"`
	AmountMax   int64      `json:"amount_max" validate:"gte=0"`
	Deadline    *time.Time `json:"deadline"`
	FocusAreas  []string   `json:"focus_areas"`
}

type MatchDto struct {
	FocusAreas   []string `json:"focus_areas"`
	AnnualBudget int64    `json:"annual_budget" validate:"gte=0"`
}

func Init(c *fiber.App, grantManager *grant.Manager, accountManager *account.Manager,
	teamManager *team.Manager, retrievedSettings *settings.Settings, validate *validator.Validate) {
	c.Post("/grants", func(c *fiber.Ctx) error {
		if !utils2.RequireAction(c, teamManager, team.ActionEditContent) {
			return nil
		}

		var dto CreateDto
		if err := c.BodyParser(&dto); err != nil {
			return c.Status(400).JSON(apiError.InvalidRequestError)
		}
		if err := validate.Struct(dto); err != nil {
			return c.Status(422).JSON(apiError.Error{
				Message: "Validation failed: " + err.Error(),
				Error:   422,
			})
		}

		createdGrant, err := grantManager.CreateGrant(grant.CreateGrant{
			Title:       dto.Title,
			Funder:      dto.Funder,
			Description: dto.Description,
			AmountMin:   dto.AmountMin,
			AmountMax:   dto.AmountMax,
			Deadline:    dto.Deadline,
			FocusAreas:  dto.FocusAreas,
		})
		if err != nil {
			return c.Status(500).JSON(apiError.InternalServerError)
		}
		return c.Status(201).JSON(createdGrant)
	})

	c.Get("/grants", func(c *fiber.Ctx) error {
		grants, err := grantManager.ListGrants()
		if err != nil {
			return c.Status(500).JSON(apiError.InternalServerError)
		}
		return c.JSON(grants)
	})

	// Match against the stored org profile, or against an explicit
	// profile posted in the body.
	c.Post("/grants/match", func(c *fiber.Ctx) error {
		var profile grant.MatchProfile

		if len(c.Body()) > 0 {
			var dto MatchDto
			if err := c.BodyParser(&dto); err != nil {
				return c.Status(400).JSON(apiError.InvalidRequestError)
			}
			if err := validate.Struct(dto); err != nil {
				return c.Status(422).JSON(apiError.ValidationError)
			}
			profile = grant.MatchProfile{
				FocusAreas:   dto.FocusAreas,
				AnnualBudget: dto.AnnualBudget,
			}
		} else {
			stored, err := accountManager.MatchProfile(retrievedSettings.DefaultAccountID)
			if err != nil {
				return c.Status(500).JSON(apiError.InternalServerError)
			}
			profile = *stored
		}

		matches, err := grantManager.Match(profile)
		if err != nil {
			return c.Status(500).JSON(apiError.InternalServerError)
		}
		return c.JSON(matches)
	})

	c.Get("/grants/:grantId", func(c *fiber.Ctx) error {
		foundGrant, err := grantManager.GetGrant(c.Params("grantId"))
		if err != nil {
			return c.Status(404).JSON(apiError.GrantNotFoundError)
		}
		return c.JSON(foundGrant)
	})

	c.Delete("/grants/:grantId", func(c *fiber.Ctx) error {
		if !utils2.RequireAction(c, teamManager, team.ActionEditContent) {
			return nil
		}

		if err := grantManager.RemoveGrant(c.Params("grantId")); err != nil {
			return c.Status(404).JSON(apiError.GrantNotFoundError)
		}
		return c.SendStatus(204)
	})
}

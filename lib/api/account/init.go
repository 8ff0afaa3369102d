package account

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	account2 "github.com/grantradar/grantradar-go/lib/account"
	apiError "github.com/grantradar/grantradar-go/lib/api/errors"
	"github.com/grantradar/grantradar-go/lib/settings"
)

type UpdateDto struct {
	OrgName      *string  `json:"org_name"`
	ContactEmail *string  `json:"contact_email" validate:"omitempty,email"`
	FocusAreas   []string `json:"focus_areas"`
	AnnualBudget *int64   `json:"annual_budget" validate:"omitempty,gte=0"`
	EmailDigest  *bool    `json:"email_digest"`
}

func Init(c *fiber.App, accountManager *account2.Manager, retrievedSettings *settings.Settings,
	validate *validator.Validate) {
	c.Get("/account", func(c *fiber.Ctx) error {
		foundAccount, err := accountManager.GetAccount(retrievedSettings.DefaultAccountID)
		if err != nil {
			return c.Status(500).JSON(apiError.InternalServerError)
		}
		return c.JSON(foundAccount)
	})

	c.Patch("/account", func(c *fiber.Ctx) error {
		var dto UpdateDto
		if err := c.BodyParser(&dto); err != nil {
			return c.Status(400).JSON(apiError.InvalidRequestError)
		}
		if err := validate.Struct(dto); err != nil {
			return c.Status(422).JSON(apiError.ValidationError)
		}

		updatedAccount, err := accountManager.UpdateAccount(retrievedSettings.DefaultAccountID, account2.AccountUpdate{
			OrgName:      dto.OrgName,
			ContactEmail: dto.ContactEmail,
			FocusAreas:   dto.FocusAreas,
			AnnualBudget: dto.AnnualBudget,
			EmailDigest:  dto.EmailDigest,
		})
		if err != nil {
			return c.Status(400).JSON(apiError.Error{
				Message: err.Error(),
				Error:   400,
			})
		}
		return c.JSON(updatedAccount)
	})
}

package team

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	apiError "github.com/grantradar/grantradar-go/lib/api/errors"
	utils2 "github.com/grantradar/grantradar-go/lib/api/utils"
	"github.com/grantradar/grantradar-go/lib/notification"
	team2 "github.com/grantradar/grantradar-go/lib/team"
)

type AddMemberDto struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required"`
}

type ChangeRoleDto struct {
	Role string `json:"role" validate:"required"`
}

func Init(c *fiber.App, teamManager *team2.Manager, notificationManager *notification.Manager,
	validate *validator.Validate) {
	c.Post("/team/members", func(c *fiber.Ctx) error {
		if !utils2.RequireAction(c, teamManager, team2.ActionManageTeam) {
			return nil
		}

		var dto AddMemberDto
		if err := c.BodyParser(&dto); err != nil {
			return c.Status(400).JSON(apiError.InvalidRequestError)
		}
		if err := validate.Struct(dto); err != nil {
			return c.Status(422).JSON(apiError.ValidationError)
		}
		if !team2.IsValidRole(dto.Role) {
			return c.Status(400).JSON(apiError.NewInvalidParamError("role"))
		}

		member, err := teamManager.AddMember(dto.Name, dto.Email, team2.Role(dto.Role))
		if err != nil {
			return c.Status(500).JSON(apiError.InternalServerError)
		}

		payload, _ := json.Marshal(fiber.Map{"member_id": member.ID, "name": member.Name, "role": member.Role})
		notificationManager.Notify(member.ID, notification.KindMemberAdded, string(payload))

		return c.Status(201).JSON(member)
	})

	c.Get("/team/members", func(c *fiber.Ctx) error {
		members, err := teamManager.ListMembers()
		if err != nil {
			return c.Status(500).JSON(apiError.InternalServerError)
		}
		return c.JSON(members)
	})

	c.Get("/team/members/:memberId", func(c *fiber.Ctx) error {
		member, err := teamManager.GetMember(c.Params("memberId"))
		if err != nil {
			return c.Status(404).JSON(apiError.MemberNotFoundError)
		}
		return c.JSON(member)
	})

	c.Patch("/team/members/:memberId/role", func(c *fiber.Ctx) error {
		if !utils2.RequireAction(c, teamManager, team2.ActionManageTeam) {
			return nil
		}

		var dto ChangeRoleDto
		if err := c.BodyParser(&dto); err != nil {
			return c.Status(400).JSON(apiError.InvalidRequestError)
		}
		if !team2.IsValidRole(dto.Role) {
			return c.Status(400).JSON(apiError.NewInvalidParamError("role"))
		}

		member, err := teamManager.ChangeRole(c.Params("memberId"), team2.Role(dto.Role))
		if err != nil {
			if err.Error() == "cannot demote the last owner" {
				return c.Status(409).JSON(apiError.Error{
					Message: err.Error(),
					Error:   409,
				})
			}
			return c.Status(404).JSON(apiError.MemberNotFoundError)
		}
		return c.JSON(member)
	})

	c.Delete("/team/members/:memberId", func(c *fiber.Ctx) error {
		if !utils2.RequireAction(c, teamManager, team2.ActionManageTeam) {
			return nil
		}

		if err := teamManager.RemoveMember(c.Params("memberId")); err != nil {
			if err.Error() == "cannot remove the last owner" {
				return c.Status(409).JSON(apiError.Error{
					Message: err.Error(),
					Error:   409,
				})
			}
			return c.Status(404).JSON(apiError.MemberNotFoundError)
		}
		return c.SendStatus(204)
	})
}

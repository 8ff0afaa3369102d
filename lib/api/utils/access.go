package utils

import (
	"github.com/gofiber/fiber/v2"
	apiError "github.com/grantradar/grantradar-go/lib/api/errors"
	"github.com/grantradar/grantradar-go/lib/team"
)

// ActorHeader carries the acting team member's id on mutating requests.
const ActorHeader = "X-Actor-Id"

// RequireAction resolves the acting member from the request header and
// checks the role matrix. On denial it writes the error response and
// returns false, so handlers can bail out with a plain return.
func RequireAction(c *fiber.Ctx, teamManager *team.Manager, action team.Action) bool {
	actor := c.Get(ActorHeader)

	allowed, err := teamManager.MemberCan(actor, action)
	if err != nil {
		c.Status(401).JSON(apiError.UnauthorizedError)
		return false
	}
	if !allowed {
		c.Status(403).JSON(apiError.ForbiddenError)
		return false
	}
	return true
}

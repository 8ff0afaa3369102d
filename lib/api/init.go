package api

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	account2 "github.com/grantradar/grantradar-go/lib/account"
	accountAPI "github.com/grantradar/grantradar-go/lib/api/account"
	"github.com/grantradar/grantradar-go/lib/api/applications"
	"github.com/grantradar/grantradar-go/lib/api/components"
	"github.com/grantradar/grantradar-go/lib/api/grants"
	"github.com/grantradar/grantradar-go/lib/api/notifications"
	"github.com/grantradar/grantradar-go/lib/api/stats"
	teamAPI "github.com/grantradar/grantradar-go/lib/api/team"
	"github.com/grantradar/grantradar-go/lib/component"
	"github.com/grantradar/grantradar-go/lib/db"
	"github.com/grantradar/grantradar-go/lib/grant"
	"github.com/grantradar/grantradar-go/lib/notification"
	"github.com/grantradar/grantradar-go/lib/pipeline"
	"github.com/grantradar/grantradar-go/lib/settings"
	team2 "github.com/grantradar/grantradar-go/lib/team"
	"github.com/grantradar/grantradar-go/lib/ws"
)

// Managers bundles the domain managers the resource handlers mount.
type Managers struct {
	Grants        *grant.Manager
	Board         *pipeline.Manager
	Components    *component.Manager
	Team          *team2.Manager
	Notifications *notification.Manager
	Account       *account2.Manager
}

func InitAPI(c *fiber.App, store db.DataStore, managers Managers, hub *ws.Hub,
	retrievedSettings *settings.Settings, validate *validator.Validate) {
	grants.Init(c, managers.Grants, managers.Account, managers.Team, retrievedSettings, validate)
	applications.Init(c, managers.Board, managers.Grants, managers.Team, managers.Notifications, validate)
	components.Init(c, managers.Components, managers.Team, managers.Notifications, validate)
	teamAPI.Init(c, managers.Team, managers.Notifications, validate)
	notifications.Init(c, managers.Notifications)
	accountAPI.Init(c, managers.Account, retrievedSettings, validate)
	stats.Init(c, store, hub, retrievedSettings)
}

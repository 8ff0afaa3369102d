package stats

import (
	"github.com/gofiber/fiber/v2"
	"github.com/grantradar/grantradar-go/lib/db"
	"github.com/grantradar/grantradar-go/lib/settings"
	"github.com/grantradar/grantradar-go/lib/ws"
)

func Init(c *fiber.App, store db.DataStore, hub *ws.Hub, retrievedSettings *settings.Settings) {
	checks := []Checker{
		DBChecker{store},
		StreamChecker{hub},
	}

	version, releaseID := settings.BuildInfo()
	if !retrievedSettings.ExposeVersion {
		version = ""
		releaseID = ""
	}

	c.Get("/health", Handler(
		version,
		releaseID,
		"grantradar-api",
		checks,
	))
}

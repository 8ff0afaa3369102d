package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	account2 "github.com/grantradar/grantradar-go/lib/account"
	api2 "github.com/grantradar/grantradar-go/lib/api"
	"github.com/grantradar/grantradar-go/lib/component"
	"github.com/grantradar/grantradar-go/lib/grant"
	"github.com/grantradar/grantradar-go/lib/loadtest"
	"github.com/grantradar/grantradar-go/lib/notification"
	"github.com/grantradar/grantradar-go/lib/pipeline"
	settings2 "github.com/grantradar/grantradar-go/lib/settings"
	team2 "github.com/grantradar/grantradar-go/lib/team"
	"github.com/grantradar/grantradar-go/lib/utils"
	"github.com/grantradar/grantradar-go/lib/ws"
)

func main() {
	setupLogger := utils.SetupLogger()
	defer setupLogger.Sync()

	if len(os.Args) > 1 && os.Args[1] == "loadtest" {
		loadtest.RunFromCLI(setupLogger, os.Args[2:])
		return
	}

	retrievedSettings, err := settings2.ReadConfig("")
	if err != nil {
		setupLogger.Fatal("Error reading configuration: " + err.Error())
		return
	}
	validatorEvaluator := validator.New(validator.WithRequiredStructEnabled())

	setupLogger.Info("Starting GrantRadar...")
	version, _ := settings2.BuildInfo()
	if version != "" {
		setupLogger.Info("Your GrantRadar version is " + version)
	}

	dataStore, err := utils.GetDB(*retrievedSettings, setupLogger)
	if err != nil {
		setupLogger.Fatal("Error connecting to database: " + err.Error())
		return
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	hub := ws.NewHub()
	go hub.Run()

	grantManager := grant.NewManager(dataStore, retrievedSettings.Matching)
	boardManager := pipeline.NewManager(dataStore)
	componentManager := component.NewManager(dataStore)
	teamManager := team2.NewManager(dataStore)
	notificationManager := notification.NewManager(dataStore, hub)
	accountManager := account2.NewManager(dataStore)

	app.Get("/ws/notifications", func(c *fiber.Ctx) error {
		recipient := c.Query("recipient")
		return adaptor.HTTPHandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ws.ServeNotifications(writer, request, hub, retrievedSettings, setupLogger, recipient)
		})(c)
	})

	api2.InitAPI(app, dataStore, api2.Managers{
		Grants:        grantManager,
		Board:         boardManager,
		Components:    componentManager,
		Team:          teamManager,
		Notifications: notificationManager,
		Account:       accountManager,
	}, hub, retrievedSettings, validatorEvaluator)

	fiberString := fmt.Sprintf("%s:%s", retrievedSettings.IP, retrievedSettings.Port)
	setupLogger.Info("Listening on " + fiberString)
	err = app.Listen(fiberString)
	if err != nil {
		setupLogger.Fatal("Server stopped: " + err.Error())
		return
	}
}

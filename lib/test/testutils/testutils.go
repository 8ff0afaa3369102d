package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	account2 "github.com/grantradar/grantradar-go/lib/account"
	api2 "github.com/grantradar/grantradar-go/lib/api"
	apiUtils "github.com/grantradar/grantradar-go/lib/api/utils"
	"github.com/grantradar/grantradar-go/lib/component"
	"github.com/grantradar/grantradar-go/lib/db"
	"github.com/grantradar/grantradar-go/lib/grant"
	"github.com/grantradar/grantradar-go/lib/notification"
	"github.com/grantradar/grantradar-go/lib/pipeline"
	"github.com/grantradar/grantradar-go/lib/settings"
	team2 "github.com/grantradar/grantradar-go/lib/team"
	"github.com/grantradar/grantradar-go/lib/ws"
	"github.com/stretchr/testify/require"
)

// TestDataStore wires the full service against the in-memory store for
// API tests.
type TestDataStore struct {
	DS        db.DataStore
	Settings  *settings.Settings
	Validator *validator.Validate
	Hub       *ws.Hub
	App       *fiber.App

	Grants        *grant.Manager
	Board         *pipeline.Manager
	Components    *component.Manager
	Team          *team2.Manager
	Notifications *notification.Manager
	Account       *account2.Manager
}

func NewTestDataStore(t *testing.T) *TestDataStore {
	t.Helper()

	retrievedSettings, err := settings.ReadConfig("{}")
	require.NoError(t, err)

	store := db.NewMemoryDataStore()
	hub := ws.NewHub()
	go hub.Run()
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	ts := &TestDataStore{
		DS:        store,
		Settings:  retrievedSettings,
		Validator: validator.New(validator.WithRequiredStructEnabled()),
		Hub:       hub,
		App:       app,

		Grants:        grant.NewManager(store, retrievedSettings.Matching),
		Board:         pipeline.NewManager(store),
		Components:    component.NewManager(store),
		Team:          team2.NewManager(store),
		Notifications: notification.NewManager(store, hub),
		Account:       account2.NewManager(store),
	}

	api2.InitAPI(ts.App, store, api2.Managers{
		Grants:        ts.Grants,
		Board:         ts.Board,
		Components:    ts.Components,
		Team:          ts.Team,
		Notifications: ts.Notifications,
		Account:       ts.Account,
	}, hub, retrievedSettings, ts.Validator)

	return ts
}

// Request runs a JSON request against the wired app and returns the
// response.
func (ts *TestDataStore) Request(t *testing.T, method, target string, body any, actor string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if actor != "" {
		req.Header.Set(apiUtils.ActorHeader, actor)
	}

	resp, err := ts.App.Test(req, 1000)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	recorder.Code = resp.StatusCode
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	recorder.Body = bytes.NewBuffer(payload)
	return recorder
}

// Decode unmarshals a recorded response body.
func Decode(t *testing.T, recorder *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), out))
}

package stats

import (
	"time"

	"github.com/grantradar/grantradar-go/lib/db"
	"github.com/grantradar/grantradar-go/lib/ws"
)

type DBChecker struct {
	db db.DataStore
}

func (d DBChecker) Name() string {
	return "database"
}

func (d DBChecker) Check() Check {
	err := d.db.Ping()

	if err != nil {
		return Check{
			Status: StatusFail,
			Output: err.Error(),
		}
	}

	return Check{
		Status:     StatusPass,
		Observed:   "ok",
		ObservedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

type StreamChecker struct {
	hub *ws.Hub
}

func (s StreamChecker) Name() string {
	return "notification-stream"
}

func (s StreamChecker) Check() Check {
	count := s.hub.ClientCount()
	if count < 0 {
		return Check{
			Status: StatusFail,
			Output: "invalid client count",
		}
	}

	return Check{
		Status:   StatusPass,
		Observed: count,
	}
}

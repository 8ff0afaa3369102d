package pipeline

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/grantradar/grantradar-go/lib/db"
	db2 "github.com/grantradar/grantradar-go/lib/models/db"
)

// Pipeline stages, in board order.
const (
	StageDiscovered = "discovered"
	StagePreparing  = "preparing"
	StageSubmitted  = "submitted"
	StageAwarded    = "awarded"
	StageRejected   = "rejected"
)

var Stages = []string{StageDiscovered, StagePreparing, StageSubmitted, StageAwarded, StageRejected}

func IsValidStage(stage string) bool {
	for _, candidate := range Stages {
		if candidate == stage {
			return true
		}
	}
	return false
}

type Manager struct {
	Db db.DataStore
}

func NewManager(db db.DataStore) *Manager {
	return &Manager{
		Db: db,
	}
}

func (m *Manager) CreateApplication(grantID, title string) (*db2.ApplicationDB, error) {
	applications, err := m.Db.ListApplications()
	if err != nil {
		return nil, err
	}

	position := 0
	for _, application := range applications {
		if application.Stage == StageDiscovered {
			position++
		}
	}

	application := db2.ApplicationDB{
		ID:        uuid.NewString(),
		GrantID:   grantID,
		Title:     title,
		Stage:     StageDiscovered,
		Position:  position,
		Notes:     "",
		CreatedAt: time.Now().UTC(),
	}

	if err := m.Db.SaveApplication(application); err != nil {
		return nil, err
	}
	return &application, nil
}

func (m *Manager) GetApplication(applicationID string) (*db2.ApplicationDB, error) {
	return m.Db.GetApplication(applicationID)
}

type ApplicationUpdate struct {
	Title    *string
	Notes    *string
	Assignee *string
}

func (m *Manager) UpdateApplication(applicationID string, update ApplicationUpdate) (*db2.ApplicationDB, error) {
	application, err := m.Db.GetApplication(applicationID)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		application.Title = *update.Title
	}
	if update.Notes != nil {
		application.Notes = *update.Notes
	}
	if update.Assignee != nil {
		if *update.Assignee == "" {
			application.Assignee = nil
		} else {
			application.Assignee = update.Assignee
		}
	}

	if err := m.Db.SaveApplication(*application); err != nil {
		return nil, err
	}
	return application, nil
}

func (m *Manager) RemoveApplication(applicationID string) error {
	return m.Db.RemoveApplication(applicationID)
}

// Move places an application into a stage at the requested position and
// renumbers both affected columns so positions stay dense.
func (m *Manager) Move(applicationID, targetStage string, targetPosition int) (*db2.ApplicationDB, error) {
	if !IsValidStage(targetStage) {
		return nil, errors.New("unknown stage: " + targetStage)
	}

	moved, err := m.Db.GetApplication(applicationID)
	if err != nil {
		return nil, err
	}

	applications, err := m.Db.ListApplications()
	if err != nil {
		return nil, err
	}

	sourceStage := moved.Stage

	sourceColumn := make([]db2.ApplicationDB, 0)
	targetColumn := make([]db2.ApplicationDB, 0)
	for _, application := range applications {
		if application.ID == applicationID {
			continue
		}
		switch application.Stage {
		case sourceStage:
			sourceColumn = append(sourceColumn, application)
		case targetStage:
			targetColumn = append(targetColumn, application)
		}
	}
	if sourceStage == targetStage {
		targetColumn = sourceColumn
	}

	if targetPosition < 0 {
		targetPosition = 0
	}
	if targetPosition > len(targetColumn) {
		targetPosition = len(targetColumn)
	}

	moved.Stage = targetStage
	moved.Position = targetPosition

	targetColumn = append(targetColumn[:targetPosition],
		append([]db2.ApplicationDB{*moved}, targetColumn[targetPosition:]...)...)

	for position, application := range targetColumn {
		application.Position = position
		if err := m.Db.SaveApplication(application); err != nil {
			return nil, err
		}
	}

	if sourceStage != targetStage {
		for position, application := range sourceColumn {
			application.Position = position
			if err := m.Db.SaveApplication(application); err != nil {
				return nil, err
			}
		}
	}

	return m.Db.GetApplication(applicationID)
}

type Column struct {
	Stage        string              `json:"stage"`
	Applications []db2.ApplicationDB `json:"applications"`
}

// Board groups all applications by stage, ordered by position. Every
// stage appears, empty or not, so the UI always renders five columns.
func (m *Manager) Board() ([]Column, error) {
	applications, err := m.Db.ListApplications()
	if err != nil {
		return nil, err
	}

	byStage := make(map[string][]db2.ApplicationDB, len(Stages))
	for _, application := range applications {
		byStage[application.Stage] = append(byStage[application.Stage], application)
	}

	board := make([]Column, 0, len(Stages))
	for _, stage := range Stages {
		column := byStage[stage]
		if column == nil {
			column = make([]db2.ApplicationDB, 0)
		}
		board = append(board, Column{
			Stage:        stage,
			Applications: column,
		})
	}

	return board, nil
}

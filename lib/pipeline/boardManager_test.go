package pipeline

import (
	"testing"

	"github.com/grantradar/grantradar-go/lib/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewManager(db.NewMemoryDataStore())
}

func TestCreateApplicationAppendsToDiscovered(t *testing.T) {
	manager := newTestManager()

	first, err := manager.CreateApplication("g1", "First")
	require.NoError(t, err)
	second, err := manager.CreateApplication("g1", "Second")
	require.NoError(t, err)

	assert.Equal(t, StageDiscovered, first.Stage)
	assert.Equal(t, 0, first.Position)
	assert.Equal(t, 1, second.Position)
}

func TestMoveToAnotherStageRenumbersBothColumns(t *testing.T) {
	manager := newTestManager()

	first, err := manager.CreateApplication("g1", "First")
	require.NoError(t, err)
	second, err := manager.CreateApplication("g1", "Second")
	require.NoError(t, err)
	third, err := manager.CreateApplication("g1", "Third")
	require.NoError(t, err)

	moved, err := manager.Move(second.ID, StagePreparing, 0)
	require.NoError(t, err)
	assert.Equal(t, StagePreparing, moved.Stage)
	assert.Equal(t, 0, moved.Position)

	// Source column closed the gap.
	reloadedFirst, err := manager.GetApplication(first.ID)
	require.NoError(t, err)
	reloadedThird, err := manager.GetApplication(third.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, reloadedFirst.Position)
	assert.Equal(t, 1, reloadedThird.Position)
}

func TestMoveWithinStageReorders(t *testing.T) {
	manager := newTestManager()

	first, err := manager.CreateApplication("g1", "First")
	require.NoError(t, err)
	second, err := manager.CreateApplication("g1", "Second")
	require.NoError(t, err)

	moved, err := manager.Move(second.ID, StageDiscovered, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, moved.Position)

	reloadedFirst, err := manager.GetApplication(first.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloadedFirst.Position)
}

func TestMoveClampsPosition(t *testing.T) {
	manager := newTestManager()

	application, err := manager.CreateApplication("g1", "Only")
	require.NoError(t, err)

	moved, err := manager.Move(application.ID, StageSubmitted, 99)
	require.NoError(t, err)
	assert.Equal(t, 0, moved.Position)

	moved, err = manager.Move(application.ID, StageSubmitted, -5)
	require.NoError(t, err)
	assert.Equal(t, 0, moved.Position)
}

func TestMoveUnknownStage(t *testing.T) {
	manager := newTestManager()

	application, err := manager.CreateApplication("g1", "Only")
	require.NoError(t, err)

	_, err = manager.Move(application.ID, "limbo", 0)
	require.Error(t, err)
}

func TestBoardListsAllStagesInOrder(t *testing.T) {
	manager := newTestManager()

	application, err := manager.CreateApplication("g1", "Only")
	require.NoError(t, err)
	_, err = manager.Move(application.ID, StageAwarded, 0)
	require.NoError(t, err)

	board, err := manager.Board()
	require.NoError(t, err)
	require.Len(t, board, len(Stages))

	for i, column := range board {
		assert.Equal(t, Stages[i], column.Stage)
	}
	assert.Empty(t, board[0].Applications)
	require.Len(t, board[3].Applications, 1)
	assert.Equal(t, application.ID, board[3].Applications[0].ID)
}

func TestUpdateApplicationClearsAssignee(t *testing.T) {
	manager := newTestManager()

	application, err := manager.CreateApplication("g1", "Only")
	require.NoError(t, err)

	assignee := "m1"
	updated, err := manager.UpdateApplication(application.ID, ApplicationUpdate{Assignee: &assignee})
	require.NoError(t, err)
	require.NotNil(t, updated.Assignee)
	assert.Equal(t, "m1", *updated.Assignee)

	empty := ""
	updated, err = manager.UpdateApplication(application.ID, ApplicationUpdate{Assignee: &empty})
	require.NoError(t, err)
	assert.Nil(t, updated.Assignee)
}

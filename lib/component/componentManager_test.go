package component

import (
	"testing"

	"github.com/grantradar/grantradar-go/lib/db"
	"github.com/grantradar/grantradar-go/lib/diff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewManager(db.NewMemoryDataStore())
}

func TestSaveVersionSnapshotsContent(t *testing.T) {
	manager := newTestManager()

	created, err := manager.CreateComponent("Mission", "boilerplate", "first draft", "m1", nil)
	require.NoError(t, err)

	version, err := manager.SaveVersion(created.ID, nil, "m1")
	require.NoError(t, err)
	assert.Equal(t, 1, version.VersionNumber)
	assert.Equal(t, "first draft", version.Content)

	reloaded, err := manager.GetComponent(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.Head)
}

func TestVersionsAreImmutable(t *testing.T) {
	manager := newTestManager()

	created, err := manager.CreateComponent("Mission", "boilerplate", "first draft", "m1", nil)
	require.NoError(t, err)

	_, err = manager.SaveVersion(created.ID, nil, "m1")
	require.NoError(t, err)

	newContent := "second draft"
	_, err = manager.UpdateComponent(created.ID, ComponentUpdate{Content: &newContent})
	require.NoError(t, err)

	// The stored snapshot still carries the old content.
	version, err := manager.GetVersion(created.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "first draft", version.Content)
}

func TestRestoreVersionKeepsHistoryLinear(t *testing.T) {
	manager := newTestManager()

	created, err := manager.CreateComponent("Mission", "boilerplate", "first draft", "m1", nil)
	require.NoError(t, err)

	_, err = manager.SaveVersion(created.ID, nil, "m1")
	require.NoError(t, err)

	newContent := "second draft"
	_, err = manager.UpdateComponent(created.ID, ComponentUpdate{Content: &newContent})
	require.NoError(t, err)
	_, err = manager.SaveVersion(created.ID, nil, "m1")
	require.NoError(t, err)

	restored, err := manager.RestoreVersion(created.ID, 1, "m1")
	require.NoError(t, err)
	assert.Equal(t, 3, restored.VersionNumber)
	assert.Equal(t, "first draft", restored.Content)
	require.NotNil(t, restored.SnapshotName)
	assert.Equal(t, "Restored from v1", *restored.SnapshotName)

	reloaded, err := manager.GetComponent(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "first draft", reloaded.Content)
	assert.Equal(t, 3, reloaded.Head)
}

func TestCompareVersions(t *testing.T) {
	manager := newTestManager()

	created, err := manager.CreateComponent("Mission", "boilerplate", "one\ntwo\nthree", "m1", nil)
	require.NoError(t, err)

	_, err = manager.SaveVersion(created.ID, nil, "m1")
	require.NoError(t, err)

	newContent := "one\ntwo\nnew\nthree"
	_, err = manager.UpdateComponent(created.ID, ComponentUpdate{Content: &newContent})
	require.NoError(t, err)
	_, err = manager.SaveVersion(created.ID, nil, "m1")
	require.NoError(t, err)

	comparison, err := manager.CompareVersions(created.ID, 1, 2)
	require.NoError(t, err)

	assert.Equal(t, 1, comparison.Additions)
	assert.Equal(t, 0, comparison.Deletions)
	require.Len(t, comparison.Changes, 4)
	assert.Equal(t, diff.Add, comparison.Changes[2].Type)
	assert.Equal(t, "new", comparison.Changes[2].Content)
}

func TestCompareMissingVersion(t *testing.T) {
	manager := newTestManager()

	created, err := manager.CreateComponent("Mission", "boilerplate", "content", "m1", nil)
	require.NoError(t, err)

	_, err = manager.CompareVersions(created.ID, 1, 2)
	require.Error(t, err)
}

func TestListVersionsUnknownComponent(t *testing.T) {
	manager := newTestManager()

	_, err := manager.ListVersions("missing")
	require.Error(t, err)
	assert.Equal(t, db.ComponentDoesNotExistError, err.Error())
}

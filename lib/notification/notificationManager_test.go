package notification

import (
	"testing"

	"github.com/grantradar/grantradar-go/lib/db"
	db2 "github.com/grantradar/grantradar-go/lib/models/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	published []db2.NotificationDB
}

func (r *recordingPublisher) PublishNotification(notification db2.NotificationDB) {
	r.published = append(r.published, notification)
}

func TestNotifyStoresAndPublishes(t *testing.T) {
	publisher := &recordingPublisher{}
	manager := NewManager(db.NewMemoryDataStore(), publisher)

	created, err := manager.Notify("member-1", KindApplicationMoved, `{"application_id":"a1"}`)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.Read)

	require.Len(t, publisher.published, 1)
	assert.Equal(t, created.ID, publisher.published[0].ID)

	stored, err := manager.List("member-1")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, KindApplicationMoved, stored[0].Kind)
}

func TestNotifyWithoutPublisher(t *testing.T) {
	manager := NewManager(db.NewMemoryDataStore(), nil)

	_, err := manager.Notify("member-1", KindGrantDeadline, "g1")
	require.NoError(t, err)
}

func TestUnreadLifecycle(t *testing.T) {
	manager := NewManager(db.NewMemoryDataStore(), nil)

	first, err := manager.Notify("member-1", KindVersionSaved, "c1")
	require.NoError(t, err)
	_, err = manager.Notify("member-1", KindVersionSaved, "c2")
	require.NoError(t, err)

	count, err := manager.UnreadCount("member-1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, manager.MarkRead(first.ID))
	count, _ = manager.UnreadCount("member-1")
	assert.Equal(t, 1, count)

	require.NoError(t, manager.MarkAllRead("member-1"))
	count, _ = manager.UnreadCount("member-1")
	assert.Equal(t, 0, count)
}

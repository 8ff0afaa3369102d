package db

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/grantradar/grantradar-go/lib/models/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrantRoundTrip(t *testing.T) {
	store := NewMemoryDataStore()

	saved := db.GrantDB{ID: "g1", Title: "STEM Outreach", Status: "open", CreatedAt: time.Now().UTC()}
	require.NoError(t, store.SaveGrant(saved))

	loaded, err := store.GetGrant("g1")
	require.NoError(t, err)
	assert.Equal(t, "STEM Outreach", loaded.Title)

	require.NoError(t, store.RemoveGrant("g1"))
	_, err = store.GetGrant("g1")
	require.Error(t, err)
	assert.Equal(t, GrantDoesNotExistError, err.Error())
}

func TestListGrantsNewestFirst(t *testing.T) {
	store := NewMemoryDataStore()

	older := db.GrantDB{ID: "g1", CreatedAt: time.Now().UTC().Add(-time.Hour)}
	newer := db.GrantDB{ID: "g2", CreatedAt: time.Now().UTC()}
	require.NoError(t, store.SaveGrant(older))
	require.NoError(t, store.SaveGrant(newer))

	grants, err := store.ListGrants()
	require.NoError(t, err)
	require.Len(t, grants, 2)
	assert.Equal(t, "g2", grants[0].ID)
}

func TestConcurrentGrantAccess(t *testing.T) {
	store := NewMemoryDataStore()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				grant := db.GrantDB{
					ID:        fmt.Sprintf("g-%d-%d", worker, j),
					Title:     "Concurrent grant",
					CreatedAt: time.Now().UTC(),
				}
				assert.NoError(t, store.SaveGrant(grant))
				_, err := store.ListGrants()
				assert.NoError(t, err)
			}
		}(i)
	}
	wg.Wait()

	grants, err := store.ListGrants()
	require.NoError(t, err)
	assert.Len(t, grants, 8*50)
}

func TestComponentVersionsScopedToComponent(t *testing.T) {
	store := NewMemoryDataStore()

	require.NoError(t, store.SaveComponent(db.ComponentDB{ID: "c1"}))
	require.NoError(t, store.SaveComponent(db.ComponentDB{ID: "c2"}))

	require.NoError(t, store.SaveComponentVersion(db.ComponentVersionDB{ComponentID: "c1", VersionNumber: 1}))
	require.NoError(t, store.SaveComponentVersion(db.ComponentVersionDB{ComponentID: "c1", VersionNumber: 2}))
	require.NoError(t, store.SaveComponentVersion(db.ComponentVersionDB{ComponentID: "c2", VersionNumber: 1}))

	versions, err := store.ListComponentVersions("c1")
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, 2, versions[0].VersionNumber)
	assert.Equal(t, 1, versions[1].VersionNumber)
}

func TestSaveVersionForMissingComponent(t *testing.T) {
	store := NewMemoryDataStore()

	err := store.SaveComponentVersion(db.ComponentVersionDB{ComponentID: "missing", VersionNumber: 1})
	require.Error(t, err)
	assert.Equal(t, ComponentDoesNotExistError, err.Error())
}

func TestRemoveComponentDropsVersions(t *testing.T) {
	store := NewMemoryDataStore()

	require.NoError(t, store.SaveComponent(db.ComponentDB{ID: "c1"}))
	require.NoError(t, store.SaveComponentVersion(db.ComponentVersionDB{ComponentID: "c1", VersionNumber: 1}))

	require.NoError(t, store.RemoveComponent("c1"))

	_, err := store.GetComponentVersion("c1", 1)
	require.Error(t, err)
	assert.Equal(t, ComponentVersionNotFoundError, err.Error())
}

func TestNotificationUnreadTracking(t *testing.T) {
	store := NewMemoryDataStore()

	require.NoError(t, store.SaveNotification(db.NotificationDB{ID: "n1", Recipient: "m1"}))
	require.NoError(t, store.SaveNotification(db.NotificationDB{ID: "n2", Recipient: "m1"}))
	require.NoError(t, store.SaveNotification(db.NotificationDB{ID: "n3", Recipient: "m2"}))

	count, err := store.CountUnreadNotifications("m1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, store.MarkNotificationRead("n1"))
	count, _ = store.CountUnreadNotifications("m1")
	assert.Equal(t, 1, count)

	require.NoError(t, store.MarkAllNotificationsRead("m1"))
	count, _ = store.CountUnreadNotifications("m1")
	assert.Equal(t, 0, count)

	// Other recipients are untouched.
	count, _ = store.CountUnreadNotifications("m2")
	assert.Equal(t, 1, count)
}

func TestAccountNotFound(t *testing.T) {
	store := NewMemoryDataStore()

	_, err := store.GetAccount("missing")
	require.Error(t, err)
	assert.Equal(t, AccountNotFoundError, err.Error())
}

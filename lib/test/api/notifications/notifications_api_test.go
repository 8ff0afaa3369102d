package notifications

import (
	"testing"

	db2 "github.com/grantradar/grantradar-go/lib/models/db"
	"github.com/grantradar/grantradar-go/lib/notification"
	"github.com/grantradar/grantradar-go/lib/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListNotificationsRequiresActor(t *testing.T) {
	ts := testutils.NewTestDataStore(t)

	resp := ts.Request(t, "GET", "/notifications", nil, "")
	assert.Equal(t, 400, resp.Code)
}

func TestListNotificationsForRecipient(t *testing.T) {
	ts := testutils.NewTestDataStore(t)

	_, err := ts.Notifications.Notify("member-1", notification.KindGrantDeadline, "g1")
	require.NoError(t, err)
	_, err = ts.Notifications.Notify("member-2", notification.KindGrantDeadline, "g2")
	require.NoError(t, err)

	resp := ts.Request(t, "GET", "/notifications", nil, "member-1")
	require.Equal(t, 200, resp.Code)

	var notifications []db2.NotificationDB
	testutils.Decode(t, resp, &notifications)
	require.Len(t, notifications, 1)
	assert.Equal(t, "member-1", notifications[0].Recipient)
}

func TestUnreadCountAndMarkRead(t *testing.T) {
	ts := testutils.NewTestDataStore(t)

	created, err := ts.Notifications.Notify("member-1", notification.KindVersionSaved, "c1")
	require.NoError(t, err)
	_, err = ts.Notifications.Notify("member-1", notification.KindVersionSaved, "c2")
	require.NoError(t, err)

	resp := ts.Request(t, "GET", "/notifications/unread-count", nil, "member-1")
	require.Equal(t, 200, resp.Code)

	var count struct {
		Count int `json:"count"`
	}
	testutils.Decode(t, resp, &count)
	assert.Equal(t, 2, count.Count)

	resp = ts.Request(t, "POST", "/notifications/"+created.ID+"/read", nil, "member-1")
	require.Equal(t, 204, resp.Code)

	resp = ts.Request(t, "GET", "/notifications/unread-count", nil, "member-1")
	testutils.Decode(t, resp, &count)
	assert.Equal(t, 1, count.Count)
}

func TestMarkAllRead(t *testing.T) {
	ts := testutils.NewTestDataStore(t)

	_, err := ts.Notifications.Notify("member-1", notification.KindApplicationMoved, "a1")
	require.NoError(t, err)
	_, err = ts.Notifications.Notify("member-1", notification.KindApplicationMoved, "a2")
	require.NoError(t, err)

	resp := ts.Request(t, "POST", "/notifications/read-all", nil, "member-1")
	require.Equal(t, 204, resp.Code)

	resp = ts.Request(t, "GET", "/notifications/unread-count", nil, "member-1")

	var count struct {
		Count int `json:"count"`
	}
	testutils.Decode(t, resp, &count)
	assert.Equal(t, 0, count.Count)
}

func TestMarkReadUnknownNotification(t *testing.T) {
	ts := testutils.NewTestDataStore(t)

	resp := ts.Request(t, "POST", "/notifications/missing/read", nil, "member-1")
	assert.Equal(t, 404, resp.Code)
}

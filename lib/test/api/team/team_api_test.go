package team

import (
	"testing"

	db2 "github.com/grantradar/grantradar-go/lib/models/db"
	"github.com/grantradar/grantradar-go/lib/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFirstMemberBootstraps(t *testing.T) {
	ts := testutils.NewTestDataStore(t)

	// Empty team, any actor may add the first owner.
	resp := ts.Request(t, "POST", "/team/members", map[string]any{
		"name":  "Dana Smith",
		"email": "dana@example.org",
		"role":  "owner",
	}, "")

	require.Equal(t, 201, resp.Code)

	var member db2.TeamMemberDB
	testutils.Decode(t, resp, &member)
	assert.Equal(t, "owner", member.Role)
	assert.NotEmpty(t, member.ID)
}

func TestAddMemberInvalidRole(t *testing.T) {
	ts := testutils.NewTestDataStore(t)

	resp := ts.Request(t, "POST", "/team/members", map[string]any{
		"name":  "Dana Smith",
		"email": "dana@example.org",
		"role":  "superuser",
	}, "")

	assert.Equal(t, 400, resp.Code)
}

func TestEditorCannotManageTeam(t *testing.T) {
	ts := testutils.NewTestDataStore(t)

	owner := testutils.GenerateDBTeamMember("owner")
	require.NoError(t, ts.DS.SaveTeamMember(owner))
	editor := testutils.GenerateDBTeamMember("editor")
	require.NoError(t, ts.DS.SaveTeamMember(editor))

	resp := ts.Request(t, "POST", "/team/members", map[string]any{
		"name":  "New Person",
		"email": "new@example.org",
		"role":  "viewer",
	}, editor.ID)

	assert.Equal(t, 403, resp.Code)
}

func TestChangeRole(t *testing.T) {
	ts := testutils.NewTestDataStore(t)

	owner := testutils.GenerateDBTeamMember("owner")
	require.NoError(t, ts.DS.SaveTeamMember(owner))
	viewer := testutils.GenerateDBTeamMember("viewer")
	require.NoError(t, ts.DS.SaveTeamMember(viewer))

	resp := ts.Request(t, "PATCH", "/team/members/"+viewer.ID+"/role", map[string]any{
		"role": "editor",
	}, owner.ID)

	require.Equal(t, 200, resp.Code)

	var updated db2.TeamMemberDB
	testutils.Decode(t, resp, &updated)
	assert.Equal(t, "editor", updated.Role)
}

func TestCannotDemoteLastOwner(t *testing.T) {
	ts := testutils.NewTestDataStore(t)

	owner := testutils.GenerateDBTeamMember("owner")
	require.NoError(t, ts.DS.SaveTeamMember(owner))

	resp := ts.Request(t, "PATCH", "/team/members/"+owner.ID+"/role", map[string]any{
		"role": "viewer",
	}, owner.ID)

	assert.Equal(t, 409, resp.Code)
}

func TestCannotRemoveLastOwner(t *testing.T) {
	ts := testutils.NewTestDataStore(t)

	owner := testutils.GenerateDBTeamMember("owner")
	require.NoError(t, ts.DS.SaveTeamMember(owner))

	resp := ts.Request(t, "DELETE", "/team/members/"+owner.ID, nil, owner.ID)
	assert.Equal(t, 409, resp.Code)
}

func TestRemoveMember(t *testing.T) {
	ts := testutils.NewTestDataStore(t)

	owner := testutils.GenerateDBTeamMember("owner")
	require.NoError(t, ts.DS.SaveTeamMember(owner))
	viewer := testutils.GenerateDBTeamMember("viewer")
	require.NoError(t, ts.DS.SaveTeamMember(viewer))

	resp := ts.Request(t, "DELETE", "/team/members/"+viewer.ID, nil, owner.ID)
	require.Equal(t, 204, resp.Code)

	resp = ts.Request(t, "GET", "/team/members/"+viewer.ID, nil, "")
	assert.Equal(t, 404, resp.Code)
}

func TestAddMemberSendsNotification(t *testing.T) {
	ts := testutils.NewTestDataStore(t)

	resp := ts.Request(t, "POST", "/team/members", map[string]any{
		"name":  "Dana Smith",
		"email": "dana@example.org",
		"role":  "owner",
	}, "")
	require.Equal(t, 201, resp.Code)

	var member db2.TeamMemberDB
	testutils.Decode(t, resp, &member)

	notifications, err := ts.DS.ListNotifications(member.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "member_added", notifications[0].Kind)
}

package team

import (
	"testing"

	"github.com/grantradar/grantradar-go/lib/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewManager(db.NewMemoryDataStore())
}

func TestRoleMatrix(t *testing.T) {
	tests := []struct {
		role    Role
		action  Action
		allowed bool
	}{
		{RoleOwner, ActionManageTeam, true},
		{RoleOwner, ActionEditContent, true},
		{RoleAdmin, ActionManageTeam, true},
		{RoleEditor, ActionManageTeam, false},
		{RoleEditor, ActionEditContent, true},
		{RoleViewer, ActionEditContent, false},
		{RoleViewer, ActionView, true},
	}

	for _, test := range tests {
		assert.Equal(t, test.allowed, Can(test.role, test.action),
			"role %s action %s", test.role, test.action)
	}
}

func TestAddMemberRejectsUnknownRole(t *testing.T) {
	manager := newTestManager()

	_, err := manager.AddMember("Dana", "dana@example.org", "superuser")
	require.Error(t, err)
}

func TestChangeRoleProtectsLastOwner(t *testing.T) {
	manager := newTestManager()

	owner, err := manager.AddMember("Dana", "dana@example.org", RoleOwner)
	require.NoError(t, err)

	_, err = manager.ChangeRole(owner.ID, RoleViewer)
	require.Error(t, err)

	// With a second owner the demotion goes through.
	_, err = manager.AddMember("Sam", "sam@example.org", RoleOwner)
	require.NoError(t, err)

	demoted, err := manager.ChangeRole(owner.ID, RoleViewer)
	require.NoError(t, err)
	assert.Equal(t, string(RoleViewer), demoted.Role)
}

func TestRemoveMemberProtectsLastOwner(t *testing.T) {
	manager := newTestManager()

	owner, err := manager.AddMember("Dana", "dana@example.org", RoleOwner)
	require.NoError(t, err)

	err = manager.RemoveMember(owner.ID)
	require.Error(t, err)

	second, err := manager.AddMember("Sam", "sam@example.org", RoleOwner)
	require.NoError(t, err)

	require.NoError(t, manager.RemoveMember(owner.ID))

	members, err := manager.ListMembers()
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, second.ID, members[0].ID)
}

func TestMemberCanOnEmptyTeam(t *testing.T) {
	manager := newTestManager()

	allowed, err := manager.MemberCan("anyone", ActionManageTeam)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemberCanUnknownMember(t *testing.T) {
	manager := newTestManager()

	_, err := manager.AddMember("Dana", "dana@example.org", RoleOwner)
	require.NoError(t, err)

	_, err = manager.MemberCan("missing", ActionView)
	require.Error(t, err)
}

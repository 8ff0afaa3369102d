package team

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/grantradar/grantradar-go/lib/db"
	db2 "github.com/grantradar/grantradar-go/lib/models/db"
)

type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

type Action string

const (
	ActionManageTeam  Action = "manage_team"
	ActionEditContent Action = "edit_content"
	ActionView        Action = "view"
)

// capabilities is the fixed role matrix. Owners and admins manage the
// team, editors touch content, everyone views.
var capabilities = map[Role]map[Action]bool{
	RoleOwner:  {ActionManageTeam: true, ActionEditContent: true, ActionView: true},
	RoleAdmin:  {ActionManageTeam: true, ActionEditContent: true, ActionView: true},
	RoleEditor: {ActionEditContent: true, ActionView: true},
	RoleViewer: {ActionView: true},
}

func Can(role Role, action Action) bool {
	return capabilities[role][action]
}

func IsValidRole(role string) bool {
	_, ok := capabilities[Role(role)]
	return ok
}

type Manager struct {
	Db db.DataStore
}

func NewManager(db db.DataStore) *Manager {
	return &Manager{
		Db: db,
	}
}

func (m *Manager) AddMember(name, email string, role Role) (*db2.TeamMemberDB, error) {
	if !IsValidRole(string(role)) {
		return nil, errors.New("unknown role: " + string(role))
	}

	member := db2.TeamMemberDB{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Role:     string(role),
		JoinedAt: time.Now().UTC(),
	}

	if err := m.Db.SaveTeamMember(member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (m *Manager) GetMember(memberID string) (*db2.TeamMemberDB, error) {
	return m.Db.GetTeamMember(memberID)
}

func (m *Manager) ListMembers() ([]db2.TeamMemberDB, error) {
	return m.Db.ListTeamMembers()
}

// ChangeRole updates a member's role. The last remaining owner cannot be
// demoted.
func (m *Manager) ChangeRole(memberID string, role Role) (*db2.TeamMemberDB, error) {
	if !IsValidRole(string(role)) {
		return nil, errors.New("unknown role: " + string(role))
	}

	member, err := m.Db.GetTeamMember(memberID)
	if err != nil {
		return nil, err
	}

	if member.Role == string(RoleOwner) && role != RoleOwner {
		lastOwner, err := m.isLastOwner(memberID)
		if err != nil {
			return nil, err
		}
		if lastOwner {
			return nil, errors.New("cannot demote the last owner")
		}
	}

	member.Role = string(role)
	if err := m.Db.SaveTeamMember(*member); err != nil {
		return nil, err
	}
	return member, nil
}

// RemoveMember deletes a member. The last remaining owner cannot be
// removed.
func (m *Manager) RemoveMember(memberID string) error {
	member, err := m.Db.GetTeamMember(memberID)
	if err != nil {
		return err
	}

	if member.Role == string(RoleOwner) {
		lastOwner, err := m.isLastOwner(memberID)
		if err != nil {
			return err
		}
		if lastOwner {
			return errors.New("cannot remove the last owner")
		}
	}

	return m.Db.RemoveTeamMember(memberID)
}

func (m *Manager) isLastOwner(memberID string) (bool, error) {
	members, err := m.Db.ListTeamMembers()
	if err != nil {
		return false, err
	}
	for _, member := range members {
		if member.ID != memberID && member.Role == string(RoleOwner) {
			return false, nil
		}
	}
	return true, nil
}

// MemberCan resolves a member and checks the role matrix. An empty team
// is a bootstrap state where everything is allowed, otherwise a first
// owner could never be added.
func (m *Manager) MemberCan(memberID string, action Action) (bool, error) {
	members, err := m.Db.ListTeamMembers()
	if err != nil {
		return false, err
	}
	if len(members) == 0 {
		return true, nil
	}

	member, err := m.Db.GetTeamMember(memberID)
	if err != nil {
		return false, err
	}
	return Can(Role(member.Role), action), nil
}

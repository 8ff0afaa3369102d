package db

import (
	"errors"
	"sort"
	"sync"

	"github.com/grantradar/grantradar-go/lib/models/db"
)

type MemoryDataStore struct {
	mu                sync.RWMutex
	grantStore        map[string]db.GrantDB
	applicationStore  map[string]db.ApplicationDB
	componentStore    map[string]db.ComponentDB
	versionStore      map[string]map[int]db.ComponentVersionDB
	teamStore         map[string]db.TeamMemberDB
	notificationStore map[string]db.NotificationDB
	accountStore      map[string]db.AccountDB
}

func NewMemoryDataStore() *MemoryDataStore {
	return &MemoryDataStore{
		grantStore:        make(map[string]db.GrantDB),
		applicationStore:  make(map[string]db.ApplicationDB),
		componentStore:    make(map[string]db.ComponentDB),
		versionStore:      make(map[string]map[int]db.ComponentVersionDB),
		teamStore:         make(map[string]db.TeamMemberDB),
		notificationStore: make(map[string]db.NotificationDB),
		accountStore:      make(map[string]db.AccountDB),
	}
}

// ============== GRANT METHODS ==============

func (m *MemoryDataStore) SaveGrant(grant db.GrantDB) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.grantStore[grant.ID] = grant
	return nil
}

func (m *MemoryDataStore) GetGrant(grantID string) (*db.GrantDB, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	grant, ok := m.grantStore[grantID]
	if !ok {
		return nil, errors.New(GrantDoesNotExistError)
	}
	return &grant, nil
}

func (m *MemoryDataStore) ListGrants() ([]db.GrantDB, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	grants := make([]db.GrantDB, 0, len(m.grantStore))
	for _, grant := range m.grantStore {
		grants = append(grants, grant)
	}
	sort.Slice(grants, func(i, j int) bool {
		return grants[i].CreatedAt.After(grants[j].CreatedAt)
	})
	return grants, nil
}

func (m *MemoryDataStore) RemoveGrant(grantID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.grantStore[grantID]; !ok {
		return errors.New(GrantDoesNotExistError)
	}
	delete(m.grantStore, grantID)
	return nil
}

// ============== APPLICATION METHODS ==============

func (m *MemoryDataStore) SaveApplication(application db.ApplicationDB) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.applicationStore[application.ID] = application
	return nil
}

func (m *MemoryDataStore) GetApplication(applicationID string) (*db.ApplicationDB, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	application, ok := m.applicationStore[applicationID]
	if !ok {
		return nil, errors.New(ApplicationDoesNotExistError)
	}
	return &application, nil
}

func (m *MemoryDataStore) ListApplications() ([]db.ApplicationDB, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	applications := make([]db.ApplicationDB, 0, len(m.applicationStore))
	for _, application := range m.applicationStore {
		applications = append(applications, application)
	}
	sort.Slice(applications, func(i, j int) bool {
		if applications[i].Stage != applications[j].Stage {
			return applications[i].Stage < applications[j].Stage
		}
		return applications[i].Position < applications[j].Position
	})
	return applications, nil
}

func (m *MemoryDataStore) RemoveApplication(applicationID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.applicationStore[applicationID]; !ok {
		return errors.New(ApplicationDoesNotExistError)
	}
	delete(m.applicationStore, applicationID)
	return nil
}

// ============== COMPONENT METHODS ==============

func (m *MemoryDataStore) SaveComponent(component db.ComponentDB) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.componentStore[component.ID] = component
	return nil
}

func (m *MemoryDataStore) GetComponent(componentID string) (*db.ComponentDB, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	component, ok := m.componentStore[componentID]
	if !ok {
		return nil, errors.New(ComponentDoesNotExistError)
	}
	return &component, nil
}

func (m *MemoryDataStore) ListComponents() ([]db.ComponentDB, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	components := make([]db.ComponentDB, 0, len(m.componentStore))
	for _, component := range m.componentStore {
		components = append(components, component)
	}
	sort.Slice(components, func(i, j int) bool {
		return components[i].Title < components[j].Title
	})
	return components, nil
}

func (m *MemoryDataStore) RemoveComponent(componentID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.componentStore[componentID]; !ok {
		return errors.New(ComponentDoesNotExistError)
	}
	delete(m.componentStore, componentID)
	delete(m.versionStore, componentID)
	return nil
}

func (m *MemoryDataStore) SaveComponentVersion(version db.ComponentVersionDB) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.componentStore[version.ComponentID]; !ok {
		return errors.New(ComponentDoesNotExistError)
	}
	versions, ok := m.versionStore[version.ComponentID]
	if !ok {
		versions = make(map[int]db.ComponentVersionDB)
		m.versionStore[version.ComponentID] = versions
	}
	versions[version.VersionNumber] = version
	return nil
}

func (m *MemoryDataStore) GetComponentVersion(componentID string, versionNumber int) (*db.ComponentVersionDB, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	versions, ok := m.versionStore[componentID]
	if !ok {
		return nil, errors.New(ComponentVersionNotFoundError)
	}
	version, ok := versions[versionNumber]
	if !ok {
		return nil, errors.New(ComponentVersionNotFoundError)
	}
	return &version, nil
}

func (m *MemoryDataStore) ListComponentVersions(componentID string) ([]db.ComponentVersionDB, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	stored := m.versionStore[componentID]
	versions := make([]db.ComponentVersionDB, 0, len(stored))
	for _, version := range stored {
		versions = append(versions, version)
	}
	sort.Slice(versions, func(i, j int) bool {
		return versions[i].VersionNumber > versions[j].VersionNumber
	})
	return versions, nil
}

func (m *MemoryDataStore) RemoveComponentVersion(componentID string, versionNumber int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	versions, ok := m.versionStore[componentID]
	if !ok {
		return errors.New(ComponentVersionNotFoundError)
	}
	if _, ok := versions[versionNumber]; !ok {
		return errors.New(ComponentVersionNotFoundError)
	}
	delete(versions, versionNumber)
	return nil
}

// ============== TEAM METHODS ==============

func (m *MemoryDataStore) SaveTeamMember(member db.TeamMemberDB) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.teamStore[member.ID] = member
	return nil
}

func (m *MemoryDataStore) GetTeamMember(memberID string) (*db.TeamMemberDB, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	member, ok := m.teamStore[memberID]
	if !ok {
		return nil, errors.New(TeamMemberNotFoundError)
	}
	return &member, nil
}

func (m *MemoryDataStore) ListTeamMembers() ([]db.TeamMemberDB, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	members := make([]db.TeamMemberDB, 0, len(m.teamStore))
	for _, member := range m.teamStore {
		members = append(members, member)
	}
	sort.Slice(members, func(i, j int) bool {
		return members[i].JoinedAt.Before(members[j].JoinedAt)
	})
	return members, nil
}

func (m *MemoryDataStore) RemoveTeamMember(memberID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.teamStore[memberID]; !ok {
		return errors.New(TeamMemberNotFoundError)
	}
	delete(m.teamStore, memberID)
	return nil
}

// ============== NOTIFICATION METHODS ==============

func (m *MemoryDataStore) SaveNotification(notification db.NotificationDB) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notificationStore[notification.ID] = notification
	return nil
}

func (m *MemoryDataStore) GetNotification(notificationID string) (*db.NotificationDB, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	notification, ok := m.notificationStore[notificationID]
	if !ok {
		return nil, errors.New(NotificationNotFoundError)
	}
	return &notification, nil
}

func (m *MemoryDataStore) ListNotifications(recipient string) ([]db.NotificationDB, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	notifications := make([]db.NotificationDB, 0)
	for _, notification := range m.notificationStore {
		if notification.Recipient == recipient {
			notifications = append(notifications, notification)
		}
	}
	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	return notifications, nil
}

func (m *MemoryDataStore) MarkNotificationRead(notificationID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	notification, ok := m.notificationStore[notificationID]
	if !ok {
		return errors.New(NotificationNotFoundError)
	}
	notification.Read = true
	m.notificationStore[notificationID] = notification
	return nil
}

func (m *MemoryDataStore) MarkAllNotificationsRead(recipient string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, notification := range m.notificationStore {
		if notification.Recipient == recipient && !notification.Read {
			notification.Read = true
			m.notificationStore[id] = notification
		}
	}
	return nil
}

func (m *MemoryDataStore) CountUnreadNotifications(recipient string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	count := 0
	for _, notification := range m.notificationStore {
		if notification.Recipient == recipient && !notification.Read {
			count++
		}
	}
	return count, nil
}

// ============== ACCOUNT METHODS ==============

func (m *MemoryDataStore) SaveAccount(account db.AccountDB) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accountStore[account.ID] = account
	return nil
}

func (m *MemoryDataStore) GetAccount(accountID string) (*db.AccountDB, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	account, ok := m.accountStore[accountID]
	if !ok {
		return nil, errors.New(AccountNotFoundError)
	}
	return &account, nil
}

// ============== LIFECYCLE ==============

func (m *MemoryDataStore) Ping() error {
	return nil
}

func (m *MemoryDataStore) Close() error {
	return nil
}

var _ DataStore = (*MemoryDataStore)(nil)

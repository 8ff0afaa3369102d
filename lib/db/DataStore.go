package db

import "github.com/grantradar/grantradar-go/lib/models/db"

type GrantMethods interface {
	SaveGrant(grant db.GrantDB) error
	GetGrant(grantID string) (*db.GrantDB, error)
	ListGrants() ([]db.GrantDB, error)
	RemoveGrant(grantID string) error
}

type ApplicationMethods interface {
	SaveApplication(application db.ApplicationDB) error
	GetApplication(applicationID string) (*db.ApplicationDB, error)
	ListApplications() ([]db.ApplicationDB, error)
	RemoveApplication(applicationID string) error
}

type ComponentMethods interface {
	SaveComponent(component db.ComponentDB) error
	GetComponent(componentID string) (*db.ComponentDB, error)
	ListComponents() ([]db.ComponentDB, error)
	RemoveComponent(componentID string) error

	SaveComponentVersion(version db.ComponentVersionDB) error
	GetComponentVersion(componentID string, versionNumber int) (*db.ComponentVersionDB, error)
	ListComponentVersions(componentID string) ([]db.ComponentVersionDB, error)
	RemoveComponentVersion(componentID string, versionNumber int) error
}

type TeamMethods interface {
	SaveTeamMember(member db.TeamMemberDB) error
	GetTeamMember(memberID string) (*db.TeamMemberDB, error)
	ListTeamMembers() ([]db.TeamMemberDB, error)
	RemoveTeamMember(memberID string) error
}

type NotificationMethods interface {
	SaveNotification(notification db.NotificationDB) error
	GetNotification(notificationID string) (*db.NotificationDB, error)
	ListNotifications(recipient string) ([]db.NotificationDB, error)
	MarkNotificationRead(notificationID string) error
	MarkAllNotificationsRead(recipient string) error
	CountUnreadNotifications(recipient string) (int, error)
}

type AccountMethods interface {
	SaveAccount(account db.AccountDB) error
	GetAccount(accountID string) (*db.AccountDB, error)
}

type DataStore interface {
	GrantMethods
	ApplicationMethods
	ComponentMethods
	TeamMethods
	NotificationMethods
	AccountMethods
	Ping() error
	Close() error
}

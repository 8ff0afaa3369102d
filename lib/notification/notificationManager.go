package notification

import (
	"time"

	"github.com/google/uuid"
	"github.com/grantradar/grantradar-go/lib/db"
	db2 "github.com/grantradar/grantradar-go/lib/models/db"
)

// Notification kinds emitted by the service.
const (
	KindApplicationMoved = "application_moved"
	KindVersionSaved     = "version_saved"
	KindMemberAdded      = "member_added"
	KindGrantDeadline    = "grant_deadline"
)

// Publisher pushes a freshly created notification to connected clients.
// The websocket hub implements it; tests use a recording fake.
type Publisher interface {
	PublishNotification(notification db2.NotificationDB)
}

type Manager struct {
	Db        db.DataStore
	publisher Publisher
}

func NewManager(db db.DataStore, publisher Publisher) *Manager {
	return &Manager{
		Db:        db,
		publisher: publisher,
	}
}

// Notify stores a notification and fans it out to the stream.
func (m *Manager) Notify(recipient, kind, payload string) (*db2.NotificationDB, error) {
	notification := db2.NotificationDB{
		ID:        uuid.NewString(),
		Recipient: recipient,
		Kind:      kind,
		Payload:   payload,
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}

	if err := m.Db.SaveNotification(notification); err != nil {
		return nil, err
	}

	if m.publisher != nil {
		m.publisher.PublishNotification(notification)
	}

	return &notification, nil
}

func (m *Manager) List(recipient string) ([]db2.NotificationDB, error) {
	return m.Db.ListNotifications(recipient)
}

func (m *Manager) MarkRead(notificationID string) error {
	return m.Db.MarkNotificationRead(notificationID)
}

func (m *Manager) MarkAllRead(recipient string) error {
	return m.Db.MarkAllNotificationsRead(recipient)
}

func (m *Manager) UnreadCount(recipient string) (int, error) {
	return m.Db.CountUnreadNotifications(recipient)
}

package component

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/grantradar/grantradar-go/lib/db"
	"github.com/grantradar/grantradar-go/lib/diff"
	db2 "github.com/grantradar/grantradar-go/lib/models/db"
)

// Manager owns the reusable document-component library and its version
// history.
type Manager struct {
	Db db.DataStore
}

func NewManager(db db.DataStore) *Manager {
	return &Manager{
		Db: db,
	}
}

func (m *Manager) CreateComponent(title, category, content, owner string, tags []string) (*db2.ComponentDB, error) {
	component := db2.ComponentDB{
		ID:        uuid.NewString(),
		Title:     title,
		Category:  category,
		Content:   content,
		Tags:      tags,
		Owner:     owner,
		Head:      0,
		CreatedAt: time.Now().UTC(),
	}

	if err := m.Db.SaveComponent(component); err != nil {
		return nil, err
	}
	return &component, nil
}

func (m *Manager) GetComponent(componentID string) (*db2.ComponentDB, error) {
	return m.Db.GetComponent(componentID)
}

func (m *Manager) ListComponents() ([]db2.ComponentDB, error) {
	return m.Db.ListComponents()
}

type ComponentUpdate struct {
	Title    *string
	Category *string
	Content  *string
	Tags     []string
}

func (m *Manager) UpdateComponent(componentID string, update ComponentUpdate) (*db2.ComponentDB, error) {
	component, err := m.Db.GetComponent(componentID)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		component.Title = *update.Title
	}
	if update.Category != nil {
		component.Category = *update.Category
	}
	if update.Content != nil {
		component.Content = *update.Content
	}
	if update.Tags != nil {
		component.Tags = update.Tags
	}

	if err := m.Db.SaveComponent(*component); err != nil {
		return nil, err
	}
	return component, nil
}

func (m *Manager) RemoveComponent(componentID string) error {
	return m.Db.RemoveComponent(componentID)
}

// SaveVersion snapshots the component's current content as the next
// version. Versions are immutable once written.
func (m *Manager) SaveVersion(componentID string, snapshotName *string, createdBy string) (*db2.ComponentVersionDB, error) {
	component, err := m.Db.GetComponent(componentID)
	if err != nil {
		return nil, err
	}

	version := db2.ComponentVersionDB{
		ComponentID:   componentID,
		VersionNumber: component.Head + 1,
		SnapshotName:  snapshotName,
		Content:       component.Content,
		CreatedBy:     createdBy,
		CreatedAt:     time.Now().UTC(),
	}

	if err := m.Db.SaveComponentVersion(version); err != nil {
		return nil, err
	}

	component.Head = version.VersionNumber
	if err := m.Db.SaveComponent(*component); err != nil {
		return nil, err
	}

	return &version, nil
}

func (m *Manager) GetVersion(componentID string, versionNumber int) (*db2.ComponentVersionDB, error) {
	return m.Db.GetComponentVersion(componentID, versionNumber)
}

func (m *Manager) ListVersions(componentID string) ([]db2.ComponentVersionDB, error) {
	if _, err := m.Db.GetComponent(componentID); err != nil {
		return nil, err
	}
	return m.Db.ListComponentVersions(componentID)
}

func (m *Manager) DeleteVersion(componentID string, versionNumber int) error {
	return m.Db.RemoveComponentVersion(componentID, versionNumber)
}

// RestoreVersion writes a past version's content back onto the component
// and records that restore as a new version, so history stays linear.
func (m *Manager) RestoreVersion(componentID string, versionNumber int, actor string) (*db2.ComponentVersionDB, error) {
	version, err := m.Db.GetComponentVersion(componentID, versionNumber)
	if err != nil {
		return nil, err
	}

	component, err := m.Db.GetComponent(componentID)
	if err != nil {
		return nil, err
	}

	component.Content = version.Content
	if err := m.Db.SaveComponent(*component); err != nil {
		return nil, err
	}

	snapshotName := fmt.Sprintf("Restored from v%d", versionNumber)
	return m.SaveVersion(componentID, &snapshotName, actor)
}

// VersionComparison is the server-computed diff between two versions of a
// component.
type VersionComparison struct {
	ComponentID string        `json:"component_id"`
	FromVersion int           `json:"from_version"`
	ToVersion   int           `json:"to_version"`
	Changes     []diff.Change `json:"changes"`
	Additions   int           `json:"additions"`
	Deletions   int           `json:"deletions"`
}

func (m *Manager) CompareVersions(componentID string, fromVersion, toVersion int) (*VersionComparison, error) {
	from, err := m.Db.GetComponentVersion(componentID, fromVersion)
	if err != nil {
		return nil, err
	}
	to, err := m.Db.GetComponentVersion(componentID, toVersion)
	if err != nil {
		return nil, err
	}

	changes := diff.Compute(from.Content, to.Content)
	added, removed := diff.Stats(changes)

	return &VersionComparison{
		ComponentID: componentID,
		FromVersion: fromVersion,
		ToVersion:   toVersion,
		Changes:     changes,
		Additions:   added,
		Deletions:   removed,
	}, nil
}

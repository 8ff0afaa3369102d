package db

import "time"

type ComponentDB struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Category  string     `json:"category"`
	Content   string     `json:"content"`
	Tags      []string   `json:"tags"`
	Owner     string     `json:"owner"`
	Head      int        `json:"head"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// ComponentVersionDB is an immutable snapshot of a component's content.
// Versions are only ever created or deleted, never updated.
type ComponentVersionDB struct {
	ComponentID   string    `json:"component_id"`
	VersionNumber int       `json:"version_number"`
	SnapshotName  *string   `json:"snapshot_name"`
	Content       string    `json:"content"`
	CreatedBy     string    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
}

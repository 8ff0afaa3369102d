package db

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/grantradar/grantradar-go/lib/models/db"
)

type Reader interface {
	Scan(dest ...any) error
}

func scanGrant(reader Reader) (*db.GrantDB, error) {
	var grant db.GrantDB
	var focusAreas sql.NullString
	var deadline, updatedAt sql.NullTime

	if err := reader.Scan(&grant.ID, &grant.Title, &grant.Funder, &grant.Description,
		&grant.AmountMin, &grant.AmountMax, &deadline, &focusAreas, &grant.Status,
		&grant.CreatedAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	if focusAreas.Valid && focusAreas.String != "" {
		if err := json.Unmarshal([]byte(focusAreas.String), &grant.FocusAreas); err != nil {
			return nil, fmt.Errorf("error unmarshaling focus areas: %w", err)
		}
	}
	if deadline.Valid {
		grant.Deadline = &deadline.Time
	}
	if updatedAt.Valid {
		grant.UpdatedAt = &updatedAt.Time
	}

	return &grant, nil
}

func scanApplication(reader Reader) (*db.ApplicationDB, error) {
	var application db.ApplicationDB
	var assignee sql.NullString
	var updatedAt sql.NullTime

	if err := reader.Scan(&application.ID, &application.GrantID, &application.Title,
		&application.Stage, &application.Position, &assignee, &application.Notes,
		&application.CreatedAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	if assignee.Valid {
		application.Assignee = &assignee.String
	}
	if updatedAt.Valid {
		application.UpdatedAt = &updatedAt.Time
	}

	return &application, nil
}

func scanComponent(reader Reader) (*db.ComponentDB, error) {
	var component db.ComponentDB
	var tags sql.NullString
	var updatedAt sql.NullTime

	if err := reader.Scan(&component.ID, &component.Title, &component.Category,
		&component.Content, &tags, &component.Owner, &component.Head,
		&component.CreatedAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	if tags.Valid && tags.String != "" {
		if err := json.Unmarshal([]byte(tags.String), &component.Tags); err != nil {
			return nil, fmt.Errorf("error unmarshaling tags: %w", err)
		}
	}
	if updatedAt.Valid {
		component.UpdatedAt = &updatedAt.Time
	}

	return &component, nil
}

func scanComponentVersion(reader Reader) (*db.ComponentVersionDB, error) {
	var version db.ComponentVersionDB
	var snapshotName sql.NullString

	if err := reader.Scan(&version.ComponentID, &version.VersionNumber, &snapshotName,
		&version.Content, &version.CreatedBy, &version.CreatedAt,
	); err != nil {
		return nil, err
	}

	if snapshotName.Valid {
		version.SnapshotName = &snapshotName.String
	}

	return &version, nil
}

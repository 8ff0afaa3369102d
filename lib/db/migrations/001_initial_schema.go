package migrations

import (
	"database/sql"
)

// GetMigrations returns all available migrations
func GetMigrations() []Migration {
	return []Migration{
		migration001InitialSchema(),
	}
}

// migration001InitialSchema creates the initial database schema
func migration001InitialSchema() Migration {
	return Migration{
		Version:     1,
		Description: "Initial schema - create all tables",
		Up: func(db *sql.DB, dialect Dialect) error {
			var queries []string

			switch dialect {
			case DialectPostgres:
				queries = getPostgresInitialSchema()
			default:
				queries = getSQLiteInitialSchema()
			}

			for _, query := range queries {
				if _, err := db.Exec(query); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func getSQLiteInitialSchema() []string {
	return []string{
		// GRANT
		`CREATE TABLE IF NOT EXISTS grant_record (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			funder TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			amount_min INTEGER NOT NULL DEFAULT 0,
			amount_max INTEGER NOT NULL DEFAULT 0,
			deadline TIMESTAMP,
			focus_areas TEXT DEFAULT NULL,
			status TEXT NOT NULL DEFAULT 'open',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP
		)`,

		// APPLICATION
		`CREATE TABLE IF NOT EXISTS application (
			id TEXT PRIMARY KEY,
			grant_id TEXT NOT NULL,
			title TEXT NOT NULL,
			stage TEXT NOT NULL DEFAULT 'discovered',
			position INTEGER NOT NULL DEFAULT 0,
			assignee TEXT,
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_application_stage
			ON application(stage, position)`,

		// COMPONENT
		`CREATE TABLE IF NOT EXISTS component (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL DEFAULT '',
			tags TEXT DEFAULT NULL,
			owner TEXT NOT NULL DEFAULT '',
			head INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP
		)`,

		// COMPONENT VERSION
		`CREATE TABLE IF NOT EXISTS component_version (
			component_id TEXT NOT NULL,
			version_number INTEGER NOT NULL,
			snapshot_name TEXT,
			content TEXT NOT NULL DEFAULT '',
			created_by TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (component_id, version_number),
			FOREIGN KEY (component_id) REFERENCES component(id) ON DELETE CASCADE
		)`,

		// TEAM MEMBER
		`CREATE TABLE IF NOT EXISTS team_member (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			role TEXT NOT NULL DEFAULT 'viewer',
			joined_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		// NOTIFICATION
		`CREATE TABLE IF NOT EXISTS notification (
			id TEXT PRIMARY KEY,
			recipient TEXT NOT NULL,
			kind TEXT NOT NULL,
			payload TEXT NOT NULL DEFAULT '',
			is_read INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_notification_recipient
			ON notification(recipient, is_read)`,

		// ACCOUNT
		`CREATE TABLE IF NOT EXISTS account (
			id TEXT PRIMARY KEY,
			org_name TEXT NOT NULL DEFAULT '',
			contact_email TEXT NOT NULL DEFAULT '',
			focus_areas TEXT DEFAULT NULL,
			annual_budget INTEGER NOT NULL DEFAULT 0,
			email_digest INTEGER NOT NULL DEFAULT 1,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP
		)`,
	}
}

func getPostgresInitialSchema() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS grant_record (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			funder TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			amount_min BIGINT NOT NULL DEFAULT 0,
			amount_max BIGINT NOT NULL DEFAULT 0,
			deadline TIMESTAMPTZ,
			focus_areas TEXT DEFAULT NULL,
			status TEXT NOT NULL DEFAULT 'open',
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS application (
			id TEXT PRIMARY KEY,
			grant_id TEXT NOT NULL,
			title TEXT NOT NULL,
			stage TEXT NOT NULL DEFAULT 'discovered',
			position INTEGER NOT NULL DEFAULT 0,
			assignee TEXT,
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMPTZ
		)`,
		`CREATE INDEX IF NOT EXISTS idx_application_stage
			ON application(stage, position)`,

		`CREATE TABLE IF NOT EXISTS component (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL DEFAULT '',
			tags TEXT DEFAULT NULL,
			owner TEXT NOT NULL DEFAULT '',
			head INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS component_version (
			component_id TEXT NOT NULL,
			version_number INTEGER NOT NULL,
			snapshot_name TEXT,
			content TEXT NOT NULL DEFAULT '',
			created_by TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (component_id, version_number),
			FOREIGN KEY (component_id) REFERENCES component(id) ON DELETE CASCADE
		)`,

		`CREATE TABLE IF NOT EXISTS team_member (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			role TEXT NOT NULL DEFAULT 'viewer',
			joined_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS notification (
			id TEXT PRIMARY KEY,
			recipient TEXT NOT NULL,
			kind TEXT NOT NULL,
			payload TEXT NOT NULL DEFAULT '',
			is_read BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_notification_recipient
			ON notification(recipient, is_read)`,

		`CREATE TABLE IF NOT EXISTS account (
			id TEXT PRIMARY KEY,
			org_name TEXT NOT NULL DEFAULT '',
			contact_email TEXT NOT NULL DEFAULT '',
			focus_areas TEXT DEFAULT NULL,
			annual_budget BIGINT NOT NULL DEFAULT 0,
			email_digest BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMPTZ
		)`,
	}
}

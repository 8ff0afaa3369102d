package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/grantradar/grantradar-go/lib/db/migrations"
	"github.com/grantradar/grantradar-go/lib/models/db"
	_ "github.com/lib/pq"
)

type PostgresDB struct {
	options PostgresOptions
	sqlDB   *sql.DB
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ============== GRANT METHODS ==============

func (d PostgresDB) SaveGrant(grant db.GrantDB) error {
	focusAreas, err := json.Marshal(grant.FocusAreas)
	if err != nil {
		return fmt.Errorf("error marshaling focus areas: %w", err)
	}

	resultedSQL, args, err := psql.
		Insert("grant_record").
		Columns("id", "title", "funder", "description", "amount_min", "amount_max",
			"deadline", "focus_areas", "status", "created_at").
		Values(grant.ID, grant.Title, grant.Funder, grant.Description, grant.AmountMin,
			grant.AmountMax, grant.Deadline, string(focusAreas), grant.Status, grant.CreatedAt).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			funder = excluded.funder,
			description = excluded.description,
			amount_min = excluded.amount_min,
			amount_max = excluded.amount_max,
			deadline = excluded.deadline,
			focus_areas = excluded.focus_areas,
			status = excluded.status,
			updated_at = CURRENT_TIMESTAMP`).
		ToSql()

	if err != nil {
		return err
	}

	_, err = d.sqlDB.Exec(resultedSQL, args...)
	return err
}

func (d PostgresDB) GetGrant(grantID string) (*db.GrantDB, error) {
	resultedSQL, args, err := psql.
		Select("id", "title", "funder", "description", "amount_min", "amount_max",
			"deadline", "focus_areas", "status", "created_at", "updated_at").
		From("grant_record").
		Where(sq.Eq{"id": grantID}).
		ToSql()

	if err != nil {
		return nil, err
	}

	row := d.sqlDB.QueryRow(resultedSQL, args...)
	grant, err := scanGrant(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.New(GrantDoesNotExistError)
	}
	return grant, err
}

func (d PostgresDB) ListGrants() ([]db.GrantDB, error) {
	resultedSQL, args, err := psql.
		Select("id", "title", "funder", "description", "amount_min", "amount_max",
			"deadline", "focus_areas", "status", "created_at", "updated_at").
		From("grant_record").
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, err
	}

	query, err := d.sqlDB.Query(resultedSQL, args...)
	if err != nil {
		return nil, err
	}
	defer query.Close()

	grants := make([]db.GrantDB, 0)
	for query.Next() {
		grant, err := scanGrant(query)
		if err != nil {
			return nil, err
		}
		grants = append(grants, *grant)
	}

	return grants, query.Err()
}

func (d PostgresDB) RemoveGrant(grantID string) error {
	resultedSQL, args, err := psql.
		Delete("grant_record").
		Where(sq.Eq{"id": grantID}).
		ToSql()

	if err != nil {
		return err
	}

	result, err := d.sqlDB.Exec(resultedSQL, args...)
	if err != nil {
		return err
	}
	return requireAffectedRow(result, GrantDoesNotExistError)
}

// ============== APPLICATION METHODS ==============

func (d PostgresDB) SaveApplication(application db.ApplicationDB) error {
	resultedSQL, args, err := psql.
		Insert("application").
		Columns("id", "grant_id", "title", "stage", "position", "assignee", "notes", "created_at").
		Values(application.ID, application.GrantID, application.Title, application.Stage,
			application.Position, application.Assignee, application.Notes, application.CreatedAt).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			grant_id = excluded.grant_id,
			title = excluded.title,
			stage = excluded.stage,
			position = excluded.position,
			assignee = excluded.assignee,
			notes = excluded.notes,
			updated_at = CURRENT_TIMESTAMP`).
		ToSql()

	if err != nil {
		return err
	}

	_, err = d.sqlDB.Exec(resultedSQL, args...)
	return err
}

func (d PostgresDB) GetApplication(applicationID string) (*db.ApplicationDB, error) {
	resultedSQL, args, err := psql.
		Select("id", "grant_id", "title", "stage", "position", "assignee", "notes",
			"created_at", "updated_at").
		From("application").
		Where(sq.Eq{"id": applicationID}).
		ToSql()

	if err != nil {
		return nil, err
	}

	row := d.sqlDB.QueryRow(resultedSQL, args...)
	application, err := scanApplication(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.New(ApplicationDoesNotExistError)
	}
	return application, err
}

func (d PostgresDB) ListApplications() ([]db.ApplicationDB, error) {
	resultedSQL, args, err := psql.
		Select("id", "grant_id", "title", "stage", "position", "assignee", "notes",
			"created_at", "updated_at").
		From("application").
		OrderBy("stage", "position").
		ToSql()

	if err != nil {
		return nil, err
	}

	query, err := d.sqlDB.Query(resultedSQL, args...)
	if err != nil {
		return nil, err
	}
	defer query.Close()

	applications := make([]db.ApplicationDB, 0)
	for query.Next() {
		application, err := scanApplication(query)
		if err != nil {
			return nil, err
		}
		applications = append(applications, *application)
	}

	return applications, query.Err()
}

func (d PostgresDB) RemoveApplication(applicationID string) error {
	resultedSQL, args, err := psql.
		Delete("application").
		Where(sq.Eq{"id": applicationID}).
		ToSql()

	if err != nil {
		return err
	}

	result, err := d.sqlDB.Exec(resultedSQL, args...)
	if err != nil {
		return err
	}
	return requireAffectedRow(result, ApplicationDoesNotExistError)
}

// ============== COMPONENT METHODS ==============

func (d PostgresDB) SaveComponent(component db.ComponentDB) error {
	tags, err := json.Marshal(component.Tags)
	if err != nil {
		return fmt.Errorf("error marshaling tags: %w", err)
	}

	resultedSQL, args, err := psql.
		Insert("component").
		Columns("id", "title", "category", "content", "tags", "owner", "head", "created_at").
		Values(component.ID, component.Title, component.Category, component.Content,
			string(tags), component.Owner, component.Head, component.CreatedAt).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			category = excluded.category,
			content = excluded.content,
			tags = excluded.tags,
			owner = excluded.owner,
			head = excluded.head,
			updated_at = CURRENT_TIMESTAMP`).
		ToSql()

	if err != nil {
		return err
	}

	_, err = d.sqlDB.Exec(resultedSQL, args...)
	return err
}

func (d PostgresDB) GetComponent(componentID string) (*db.ComponentDB, error) {
	resultedSQL, args, err := psql.
		Select("id", "title", "category", "content", "tags", "owner", "head",
			"created_at", "updated_at").
		From("component").
		Where(sq.Eq{"id": componentID}).
		ToSql()

	if err != nil {
		return nil, err
	}

	row := d.sqlDB.QueryRow(resultedSQL, args...)
	component, err := scanComponent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.New(ComponentDoesNotExistError)
	}
	return component, err
}

func (d PostgresDB) ListComponents() ([]db.ComponentDB, error) {
	resultedSQL, args, err := psql.
		Select("id", "title", "category", "content", "tags", "owner", "head",
			"created_at", "updated_at").
		From("component").
		OrderBy("title").
		ToSql()

	if err != nil {
		return nil, err
	}

	query, err := d.sqlDB.Query(resultedSQL, args...)
	if err != nil {
		return nil, err
	}
	defer query.Close()

	components := make([]db.ComponentDB, 0)
	for query.Next() {
		component, err := scanComponent(query)
		if err != nil {
			return nil, err
		}
		components = append(components, *component)
	}

	return components, query.Err()
}

func (d PostgresDB) RemoveComponent(componentID string) error {
	resultedSQL, args, err := psql.
		Delete("component").
		Where(sq.Eq{"id": componentID}).
		ToSql()

	if err != nil {
		return err
	}

	result, err := d.sqlDB.Exec(resultedSQL, args...)
	if err != nil {
		return err
	}
	return requireAffectedRow(result, ComponentDoesNotExistError)
}

func (d PostgresDB) SaveComponentVersion(version db.ComponentVersionDB) error {
	resultedSQL, args, err := psql.
		Insert("component_version").
		Columns("component_id", "version_number", "snapshot_name", "content",
			"created_by", "created_at").
		Values(version.ComponentID, version.VersionNumber, version.SnapshotName,
			version.Content, version.CreatedBy, version.CreatedAt).
		ToSql()

	if err != nil {
		return err
	}

	_, err = d.sqlDB.Exec(resultedSQL, args...)
	return err
}

func (d PostgresDB) GetComponentVersion(componentID string, versionNumber int) (*db.ComponentVersionDB, error) {
	resultedSQL, args, err := psql.
		Select("component_id", "version_number", "snapshot_name", "content",
			"created_by", "created_at").
		From("component_version").
		Where(sq.Eq{"component_id": componentID}).
		Where(sq.Eq{"version_number": versionNumber}).
		ToSql()

	if err != nil {
		return nil, err
	}

	row := d.sqlDB.QueryRow(resultedSQL, args...)
	version, err := scanComponentVersion(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.New(ComponentVersionNotFoundError)
	}
	return version, err
}

func (d PostgresDB) ListComponentVersions(componentID string) ([]db.ComponentVersionDB, error) {
	resultedSQL, args, err := psql.
		Select("component_id", "version_number", "snapshot_name", "content",
			"created_by", "created_at").
		From("component_version").
		Where(sq.Eq{"component_id": componentID}).
		OrderBy("version_number DESC").
		ToSql()

	if err != nil {
		return nil, err
	}

	query, err := d.sqlDB.Query(resultedSQL, args...)
	if err != nil {
		return nil, err
	}
	defer query.Close()

	versions := make([]db.ComponentVersionDB, 0)
	for query.Next() {
		version, err := scanComponentVersion(query)
		if err != nil {
			return nil, err
		}
		versions = append(versions, *version)
	}

	return versions, query.Err()
}

func (d PostgresDB) RemoveComponentVersion(componentID string, versionNumber int) error {
	resultedSQL, args, err := psql.
		Delete("component_version").
		Where(sq.Eq{"component_id": componentID}).
		Where(sq.Eq{"version_number": versionNumber}).
		ToSql()

	if err != nil {
		return err
	}

	result, err := d.sqlDB.Exec(resultedSQL, args...)
	if err != nil {
		return err
	}
	return requireAffectedRow(result, ComponentVersionNotFoundError)
}

// ============== TEAM METHODS ==============

func (d PostgresDB) SaveTeamMember(member db.TeamMemberDB) error {
	resultedSQL, args, err := psql.
		Insert("team_member").
		Columns("id", "name", "email", "role", "joined_at").
		Values(member.ID, member.Name, member.Email, member.Role, member.JoinedAt).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			email = excluded.email,
			role = excluded.role`).
		ToSql()

	if err != nil {
		return err
	}

	_, err = d.sqlDB.Exec(resultedSQL, args...)
	return err
}

func (d PostgresDB) GetTeamMember(memberID string) (*db.TeamMemberDB, error) {
	resultedSQL, args, err := psql.
		Select("id", "name", "email", "role", "joined_at").
		From("team_member").
		Where(sq.Eq{"id": memberID}).
		ToSql()

	if err != nil {
		return nil, err
	}

	row := d.sqlDB.QueryRow(resultedSQL, args...)

	var member db.TeamMemberDB
	err = row.Scan(&member.ID, &member.Name, &member.Email, &member.Role, &member.JoinedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.New(TeamMemberNotFoundError)
	}
	if err != nil {
		return nil, err
	}

	return &member, nil
}

func (d PostgresDB) ListTeamMembers() ([]db.TeamMemberDB, error) {
	resultedSQL, args, err := psql.
		Select("id", "name", "email", "role", "joined_at").
		From("team_member").
		OrderBy("joined_at").
		ToSql()

	if err != nil {
		return nil, err
	}

	query, err := d.sqlDB.Query(resultedSQL, args...)
	if err != nil {
		return nil, err
	}
	defer query.Close()

	members := make([]db.TeamMemberDB, 0)
	for query.Next() {
		var member db.TeamMemberDB
		if err := query.Scan(&member.ID, &member.Name, &member.Email, &member.Role, &member.JoinedAt); err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, query.Err()
}

func (d PostgresDB) RemoveTeamMember(memberID string) error {
	resultedSQL, args, err := psql.
		Delete("team_member").
		Where(sq.Eq{"id": memberID}).
		ToSql()

	if err != nil {
		return err
	}

	result, err := d.sqlDB.Exec(resultedSQL, args...)
	if err != nil {
		return err
	}
	return requireAffectedRow(result, TeamMemberNotFoundError)
}

// ============== NOTIFICATION METHODS ==============

func (d PostgresDB) SaveNotification(notification db.NotificationDB) error {
	resultedSQL, args, err := psql.
		Insert("notification").
		Columns("id", "recipient", "kind", "payload", "is_read", "created_at").
		Values(notification.ID, notification.Recipient, notification.Kind,
			notification.Payload, notification.Read, notification.CreatedAt).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			is_read = excluded.is_read`).
		ToSql()

	if err != nil {
		return err
	}

	_, err = d.sqlDB.Exec(resultedSQL, args...)
	return err
}

func (d PostgresDB) GetNotification(notificationID string) (*db.NotificationDB, error) {
	resultedSQL, args, err := psql.
		Select("id", "recipient", "kind", "payload", "is_read", "created_at").
		From("notification").
		Where(sq.Eq{"id": notificationID}).
		ToSql()

	if err != nil {
		return nil, err
	}

	row := d.sqlDB.QueryRow(resultedSQL, args...)

	var notification db.NotificationDB
	err = row.Scan(&notification.ID, &notification.Recipient, &notification.Kind,
		&notification.Payload, &notification.Read, &notification.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.New(NotificationNotFoundError)
	}
	if err != nil {
		return nil, err
	}

	return &notification, nil
}

func (d PostgresDB) ListNotifications(recipient string) ([]db.NotificationDB, error) {
	resultedSQL, args, err := psql.
		Select("id", "recipient", "kind", "payload", "is_read", "created_at").
		From("notification").
		Where(sq.Eq{"recipient": recipient}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, err
	}

	query, err := d.sqlDB.Query(resultedSQL, args...)
	if err != nil {
		return nil, err
	}
	defer query.Close()

	notifications := make([]db.NotificationDB, 0)
	for query.Next() {
		var notification db.NotificationDB
		if err := query.Scan(&notification.ID, &notification.Recipient, &notification.Kind,
			&notification.Payload, &notification.Read, &notification.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, notification)
	}

	return notifications, query.Err()
}

func (d PostgresDB) MarkNotificationRead(notificationID string) error {
	resultedSQL, args, err := psql.
		Update("notification").
		Set("is_read", true).
		Where(sq.Eq{"id": notificationID}).
		ToSql()

	if err != nil {
		return err
	}

	result, err := d.sqlDB.Exec(resultedSQL, args...)
	if err != nil {
		return err
	}
	return requireAffectedRow(result, NotificationNotFoundError)
}

func (d PostgresDB) MarkAllNotificationsRead(recipient string) error {
	resultedSQL, args, err := psql.
		Update("notification").
		Set("is_read", true).
		Where(sq.Eq{"recipient": recipient}).
		Where(sq.Eq{"is_read": false}).
		ToSql()

	if err != nil {
		return err
	}

	_, err = d.sqlDB.Exec(resultedSQL, args...)
	return err
}

func (d PostgresDB) CountUnreadNotifications(recipient string) (int, error) {
	resultedSQL, args, err := psql.
		Select("COUNT(1)").
		From("notification").
		Where(sq.Eq{"recipient": recipient}).
		Where(sq.Eq{"is_read": false}).
		ToSql()

	if err != nil {
		return 0, err
	}

	var count int
	row := d.sqlDB.QueryRow(resultedSQL, args...)
	if err := row.Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

// ============== ACCOUNT METHODS ==============

func (d PostgresDB) SaveAccount(account db.AccountDB) error {
	focusAreas, err := json.Marshal(account.FocusAreas)
	if err != nil {
		return fmt.Errorf("error marshaling focus areas: %w", err)
	}

	resultedSQL, args, err := psql.
		Insert("account").
		Columns("id", "org_name", "contact_email", "focus_areas", "annual_budget",
			"email_digest", "created_at").
		Values(account.ID, account.OrgName, account.ContactEmail, string(focusAreas),
			account.AnnualBudget, account.EmailDigest, account.CreatedAt).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			org_name = excluded.org_name,
			contact_email = excluded.contact_email,
			focus_areas = excluded.focus_areas,
			annual_budget = excluded.annual_budget,
			email_digest = excluded.email_digest,
			updated_at = CURRENT_TIMESTAMP`).
		ToSql()

	if err != nil {
		return err
	}

	_, err = d.sqlDB.Exec(resultedSQL, args...)
	return err
}

func (d PostgresDB) GetAccount(accountID string) (*db.AccountDB, error) {
	resultedSQL, args, err := psql.
		Select("id", "org_name", "contact_email", "focus_areas", "annual_budget",
			"email_digest", "created_at", "updated_at").
		From("account").
		Where(sq.Eq{"id": accountID}).
		ToSql()

	if err != nil {
		return nil, err
	}

	row := d.sqlDB.QueryRow(resultedSQL, args...)

	var account db.AccountDB
	var focusAreas sql.NullString
	var updatedAt sql.NullTime

	err = row.Scan(&account.ID, &account.OrgName, &account.ContactEmail, &focusAreas,
		&account.AnnualBudget, &account.EmailDigest, &account.CreatedAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.New(AccountNotFoundError)
	}
	if err != nil {
		return nil, err
	}

	if focusAreas.Valid && focusAreas.String != "" {
		if err := json.Unmarshal([]byte(focusAreas.String), &account.FocusAreas); err != nil {
			return nil, fmt.Errorf("error unmarshaling focus areas: %w", err)
		}
	}
	if updatedAt.Valid {
		account.UpdatedAt = &updatedAt.Time
	}

	return &account, nil
}

// ============== LIFECYCLE ==============

func (d PostgresDB) Ping() error {
	return d.sqlDB.Ping()
}

func (d PostgresDB) Close() error {
	return d.sqlDB.Close()
}

type PostgresOptions struct {
	Username string
	Password string
	Port     int
	Host     string
	Database string
}

// NewPostgresDB This function creates a new PostgresDB and returns a pointer to it.
func NewPostgresDB(options PostgresOptions) (*PostgresDB, error) {
	dbUrl := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		options.Username, options.Password, options.Host, options.Port, options.Database)
	sqlDb, err := sql.Open("postgres", dbUrl)
	if err != nil {
		return nil, err
	}

	migrationManager := migrations.NewMigrationManager(sqlDb, migrations.DialectPostgres)
	if err := migrationManager.Run(); err != nil {
		sqlDb.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &PostgresDB{
		options: options,
		sqlDB:   sqlDb,
	}, nil
}

var _ DataStore = (*PostgresDB)(nil)

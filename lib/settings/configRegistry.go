package settings

import "strings"

// Viper keys for every supported setting.
const (
	Title = "title"
	IP    = "ip"
	Port  = "port"

	DBType             = "dbType"
	DBSettingsHost     = "dbSettings.host"
	DBSettingsPort     = "dbSettings.port"
	DBSettingsDatabase = "dbSettings.database"
	DBSettingsUser     = "dbSettings.user"
	DBSettingsPassword = "dbSettings.password"
	DBSettingsFilename = "dbSettings.filename"

	Loglevel = "logLevel"

	MatchingDeadlineWindowDays = "matching.deadlineWindowDays"
	MatchingMaxResults         = "matching.maxResults"

	NotificationsStreamBufferSize = "notifications.streamBufferSize"

	DefaultAccountID = "defaultAccountId"

	ExposeVersion = "exposeVersion"
	DevMode       = "devMode"
)

type ConfigKey struct {
	Key         string
	Default     any
	Description string
}

const envPrefix = "GRANTRADAR"

func EnvVar(key string) string {
	return envPrefix + "_" + strings.ToUpper(
		strings.ReplaceAll(key, ".", "_"),
	)
}

var Registry = []ConfigKey{
	// Core
	{Key: Title, Default: "GrantRadar", Description: "Application title"},
	{Key: IP, Default: "0.0.0.0", Description: "Bind address"},
	{Key: Port, Default: "9002", Description: "HTTP server port"},

	// Database
	{Key: DBType, Default: SQLITE, Description: "Database type"},
	{Key: DBSettingsHost, Default: nil, Description: "Database host"},
	{Key: DBSettingsPort, Default: nil, Description: "Database port"},
	{Key: DBSettingsDatabase, Default: nil, Description: "Database name"},
	{Key: DBSettingsUser, Default: nil, Description: "Database user"},
	{Key: DBSettingsPassword, Default: nil, Description: "Database password"},
	{Key: DBSettingsFilename, Default: "var/grantradar.db", Description: "SQLite database filename"},

	// Logging
	{Key: Loglevel, Default: "INFO", Description: "Log level"},

	// Grant matching
	{Key: MatchingDeadlineWindowDays, Default: 90, Description: "Days ahead a deadline still counts toward the match score"},
	{Key: MatchingMaxResults, Default: 50, Description: "Maximum matches returned by the matcher"},

	// Notifications
	{Key: NotificationsStreamBufferSize, Default: 256, Description: "Per-client buffer for the notification stream"},

	// Account
	{Key: DefaultAccountID, Default: "default", Description: "Account record backing the settings page"},

	// Misc
	{Key: ExposeVersion, Default: false, Description: "Expose server version over HTTP"},
	{Key: DevMode, Default: false, Description: "Development mode"},
}

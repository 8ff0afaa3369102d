package settings

type DBSettings struct {
	Filename string
	Host     string
	Port     string
	Database string
	User     string
	Password string
}

// MatchingSettings tunes the grant matcher.
type MatchingSettings struct {
	DeadlineWindowDays int
	MaxResults         int
}

type NotificationSettings struct {
	StreamBufferSize int
}

type Settings struct {
	Title string
	IP    string
	Port  string

	DBType     IDBType
	DBSettings *DBSettings

	LogLevel string

	Matching      MatchingSettings
	Notifications NotificationSettings

	DefaultAccountID string

	ExposeVersion bool
	DevMode       bool
}

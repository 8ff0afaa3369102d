package settings

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// ReadConfig loads settings.json from the working directory (or the given
// JSON string when non-empty), applies registry defaults and lets
// GRANTRADAR_* environment variables override individual keys.
func ReadConfig(jsonStr string) (*Settings, error) {
	viper.SetConfigName("settings")
	viper.SetConfigType("json")

	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if jsonStr != "" {
		if err := viper.ReadConfig(strings.NewReader(jsonStr)); err != nil {
			return nil, err
		}
	} else {
		if err := viper.ReadInConfig(); err != nil {
			var configFileNotFoundError viper.ConfigFileNotFoundError
			if !errors.As(err, &configFileNotFoundError) {
				return nil, err
			}
			// missing file is fine, defaults apply
		}
	}

	for _, key := range Registry {
		viper.SetDefault(key.Key, key.Default)
	}

	dbTypeToUse, err := ParseDBType(viper.GetString(DBType))
	if err != nil {
		return nil, err
	}

	s := &Settings{
		Title: viper.GetString(Title),
		IP:    viper.GetString(IP),
		Port:  viper.GetString(Port),

		DBType: dbTypeToUse,
		DBSettings: &DBSettings{
			Filename: viper.GetString(DBSettingsFilename),
			Host:     viper.GetString(DBSettingsHost),
			Port:     viper.GetString(DBSettingsPort),
			Database: viper.GetString(DBSettingsDatabase),
			User:     viper.GetString(DBSettingsUser),
			Password: viper.GetString(DBSettingsPassword),
		},

		LogLevel: viper.GetString(Loglevel),

		Matching: MatchingSettings{
			DeadlineWindowDays: viper.GetInt(MatchingDeadlineWindowDays),
			MaxResults:         viper.GetInt(MatchingMaxResults),
		},

		Notifications: NotificationSettings{
			StreamBufferSize: viper.GetInt(NotificationsStreamBufferSize),
		},

		DefaultAccountID: viper.GetString(DefaultAccountID),

		ExposeVersion: viper.GetBool(ExposeVersion),
		DevMode:       viper.GetBool(DevMode),
	}

	return s, nil
}

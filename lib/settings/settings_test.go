package settings

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultsAreApplied(t *testing.T) {

	cfg, err := ReadConfig("{}")
	require.NoError(t, err)

	require.Equal(t, "GrantRadar", cfg.Title)
	require.Equal(t, "9002", cfg.Port)
	require.Equal(t, SQLITE, cfg.DBType)
	require.Equal(t, 90, cfg.Matching.DeadlineWindowDays)
	require.Equal(t, "default", cfg.DefaultAccountID)
	require.False(t, cfg.ExposeVersion)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("GRANTRADAR_PORT", "9999")

	cfg, err := ReadConfig("{}")
	require.NoError(t, err)
	require.Equal(t, "9999", cfg.Port)
}

func TestConfigJSONOverridesDefaults(t *testing.T) {
	cfg, err := ReadConfig(`{"title": "Staging", "dbType": "memory"}`)
	require.NoError(t, err)
	require.Equal(t, "Staging", cfg.Title)
	require.Equal(t, MEMORY, cfg.DBType)
}

func TestParseDBTypeRejectsUnknown(t *testing.T) {
	_, err := ParseDBType("oracle")
	require.Error(t, err)
}

package account

import (
	"testing"

	"github.com/grantradar/grantradar-go/lib/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAccountCreatesOnFirstAccess(t *testing.T) {
	manager := NewManager(db.NewMemoryDataStore())

	created, err := manager.GetAccount("default")
	require.NoError(t, err)
	assert.Equal(t, "default", created.ID)
	assert.True(t, created.EmailDigest)

	// Second access returns the stored record, not a fresh one.
	reloaded, err := manager.GetAccount("default")
	require.NoError(t, err)
	assert.Equal(t, created.CreatedAt, reloaded.CreatedAt)
}

func TestUpdateAccount(t *testing.T) {
	manager := NewManager(db.NewMemoryDataStore())

	orgName := "River Valley Schools"
	budget := int64(250_000)
	updated, err := manager.UpdateAccount("default", AccountUpdate{
		OrgName:      &orgName,
		FocusAreas:   []string{"education"},
		AnnualBudget: &budget,
	})
	require.NoError(t, err)
	assert.Equal(t, orgName, updated.OrgName)
	assert.Equal(t, []string{"education"}, updated.FocusAreas)
	assert.Equal(t, budget, updated.AnnualBudget)
}

func TestUpdateAccountRejectsNegativeBudget(t *testing.T) {
	manager := NewManager(db.NewMemoryDataStore())

	negative := int64(-1)
	_, err := manager.UpdateAccount("default", AccountUpdate{AnnualBudget: &negative})
	require.Error(t, err)
}

func TestMatchProfileFromStoredAccount(t *testing.T) {
	manager := NewManager(db.NewMemoryDataStore())

	budget := int64(100_000)
	_, err := manager.UpdateAccount("default", AccountUpdate{
		FocusAreas:   []string{"education", "stem"},
		AnnualBudget: &budget,
	})
	require.NoError(t, err)

	profile, err := manager.MatchProfile("default")
	require.NoError(t, err)
	assert.Equal(t, []string{"education", "stem"}, profile.FocusAreas)
	assert.Equal(t, budget, profile.AnnualBudget)
}

package grant

import (
	"testing"
	"time"

	"github.com/grantradar/grantradar-go/lib/db"
	db2 "github.com/grantradar/grantradar-go/lib/models/db"
	"github.com/grantradar/grantradar-go/lib/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewManager(db.NewMemoryDataStore(), settings.MatchingSettings{
		DeadlineWindowDays: 90,
		MaxResults:         50,
	})
}

func futureDeadline(days int) *time.Time {
	deadline := time.Now().UTC().Add(time.Duration(days) * 24 * time.Hour)
	return &deadline
}

func TestCreateGrantStartsOpen(t *testing.T) {
	manager := newTestManager()

	created, err := manager.CreateGrant(CreateGrant{Title: "STEM Outreach", Funder: "Acme Foundation"})
	require.NoError(t, err)
	assert.Equal(t, StatusOpen, created.Status)
	assert.NotEmpty(t, created.ID)
}

func TestMatchScoresFocusAreaOverlap(t *testing.T) {
	manager := newTestManager()

	strong, err := manager.CreateGrant(CreateGrant{
		Title: "Strong", Funder: "A", FocusAreas: []string{"education", "stem"}, Deadline: futureDeadline(200),
	})
	require.NoError(t, err)
	weak, err := manager.CreateGrant(CreateGrant{
		Title: "Weak", Funder: "B", FocusAreas: []string{"education"}, Deadline: futureDeadline(200),
	})
	require.NoError(t, err)

	matches, err := manager.Match(MatchProfile{FocusAreas: []string{"education", "stem"}})
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, strong.ID, matches[0].Grant.ID)
	assert.Equal(t, weak.ID, matches[1].Grant.ID)
	assert.Greater(t, matches[0].Score, matches[1].Score)
}

func TestMatchBoostsCloseDeadlines(t *testing.T) {
	manager := newTestManager()

	soon, err := manager.CreateGrant(CreateGrant{
		Title: "Soon", Funder: "A", FocusAreas: []string{"education"}, Deadline: futureDeadline(10),
	})
	require.NoError(t, err)
	_, err = manager.CreateGrant(CreateGrant{
		Title: "Far", Funder: "B", FocusAreas: []string{"education"}, Deadline: futureDeadline(400),
	})
	require.NoError(t, err)

	matches, err := manager.Match(MatchProfile{FocusAreas: []string{"education"}})
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, soon.ID, matches[0].Grant.ID)
}

func TestMatchSkipsClosedAndExpired(t *testing.T) {
	manager := newTestManager()

	closed, err := manager.CreateGrant(CreateGrant{Title: "Closed", Funder: "A", FocusAreas: []string{"education"}})
	require.NoError(t, err)
	closedGrant, err := manager.GetGrant(closed.ID)
	require.NoError(t, err)
	closedGrant.Status = StatusClosed
	require.NoError(t, manager.Db.SaveGrant(*closedGrant))

	past := time.Now().UTC().Add(-time.Hour)
	expired := db2.GrantDB{
		ID: "expired", Title: "Expired", Status: StatusOpen,
		FocusAreas: []string{"education"}, Deadline: &past, CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, manager.Db.SaveGrant(expired))

	matches, err := manager.Match(MatchProfile{FocusAreas: []string{"education"}})
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestMatchExcludesZeroScores(t *testing.T) {
	manager := newTestManager()

	_, err := manager.CreateGrant(CreateGrant{Title: "Unrelated", Funder: "A", FocusAreas: []string{"wildlife"}})
	require.NoError(t, err)

	matches, err := manager.Match(MatchProfile{FocusAreas: []string{"education"}})
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestMatchAmountFit(t *testing.T) {
	manager := newTestManager()

	affordable, err := manager.CreateGrant(CreateGrant{
		Title: "Affordable", Funder: "A", FocusAreas: []string{"education"}, AmountMin: 10_000,
	})
	require.NoError(t, err)
	_, err = manager.CreateGrant(CreateGrant{
		Title: "Too big", Funder: "B", FocusAreas: []string{"education"}, AmountMin: 900_000,
	})
	require.NoError(t, err)

	matches, err := manager.Match(MatchProfile{FocusAreas: []string{"education"}, AnnualBudget: 100_000})
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, affordable.ID, matches[0].Grant.ID)
}

func TestMatchCapsResults(t *testing.T) {
	manager := NewManager(db.NewMemoryDataStore(), settings.MatchingSettings{
		DeadlineWindowDays: 90,
		MaxResults:         3,
	})

	for i := 0; i < 5; i++ {
		_, err := manager.CreateGrant(CreateGrant{Title: "Grant", Funder: "A", FocusAreas: []string{"education"}})
		require.NoError(t, err)
	}

	matches, err := manager.Match(MatchProfile{FocusAreas: []string{"education"}})
	require.NoError(t, err)
	assert.Len(t, matches, 3)
}

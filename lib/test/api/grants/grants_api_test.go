package grants

import (
	"testing"
	"time"

	"github.com/grantradar/grantradar-go/lib/grant"
	db2 "github.com/grantradar/grantradar-go/lib/models/db"
	"github.com/grantradar/grantradar-go/lib/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGrantSuccess(t *testing.T) {
	ts := testutils.NewTestDataStore(t)

	resp := ts.Request(t, "POST", "/grants", map[string]any{
		"title":       "Community Science Fund",
		"funder":      "Acme Foundation",
		"amount_min":  10000,
		"amount_max":  50000,
		"focus_areas": []string{"stem", "education"},
	}, "")

	require.Equal(t, 201, resp.Code)

	var created db2.GrantDB
	testutils.Decode(t, resp, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Community Science Fund", created.Title)
	assert.Equal(t, grant.StatusOpen, created.Status)
}

func TestCreateGrantMissingTitle(t *testing.T) {
	ts := testutils.NewTestDataStore(t)

	resp := ts.Request(t, "POST", "/grants", map[string]any{
		"funder": "Acme Foundation",
	}, "")

	assert.Equal(t, 422, resp.Code)
}

func TestGetGrantNotFound(t *testing.T) {
	ts := testutils.NewTestDataStore(t)

	resp := ts.Request(t, "GET", "/grants/missing", nil, "")
	assert.Equal(t, 404, resp.Code)
}

func TestListGrants(t *testing.T) {
	ts := testutils.NewTestDataStore(t)

	require.NoError(t, ts.DS.SaveGrant(testutils.GenerateDBGrant()))
	require.NoError(t, ts.DS.SaveGrant(testutils.GenerateDBGrant()))

	resp := ts.Request(t, "GET", "/grants", nil, "")
	require.Equal(t, 200, resp.Code)

	var grants []db2.GrantDB
	testutils.Decode(t, resp, &grants)
	assert.Len(t, grants, 2)
}

func TestDeleteGrant(t *testing.T) {
	ts := testutils.NewTestDataStore(t)

	seeded := testutils.GenerateDBGrant()
	require.NoError(t, ts.DS.SaveGrant(seeded))

	resp := ts.Request(t, "DELETE", "/grants/"+seeded.ID, nil, "")
	require.Equal(t, 204, resp.Code)

	resp = ts.Request(t, "GET", "/grants/"+seeded.ID, nil, "")
	assert.Equal(t, 404, resp.Code)
}

func TestMatchWithExplicitProfile(t *testing.T) {
	ts := testutils.NewTestDataStore(t)

	matching := testutils.GenerateDBGrant()
	matching.FocusAreas = []string{"education"}
	require.NoError(t, ts.DS.SaveGrant(matching))

	unrelated := testutils.GenerateDBGrant()
	unrelated.FocusAreas = []string{"wildlife"}
	unrelated.Deadline = nil
	require.NoError(t, ts.DS.SaveGrant(unrelated))

	resp := ts.Request(t, "POST", "/grants/match", map[string]any{
		"focus_areas":   []string{"education"},
		"annual_budget": 100000,
	}, "")
	require.Equal(t, 200, resp.Code)

	var matches []struct {
		Grant db2.GrantDB `json:"grant"`
		Score int         `json:"score"`
	}
	testutils.Decode(t, resp, &matches)
	require.Len(t, matches, 1)
	assert.Equal(t, matching.ID, matches[0].Grant.ID)
	assert.Greater(t, matches[0].Score, 0)
}

func TestMatchSkipsExpiredGrants(t *testing.T) {
	ts := testutils.NewTestDataStore(t)

	expired := testutils.GenerateDBGrant()
	past := time.Now().UTC().Add(-24 * time.Hour)
	expired.Deadline = &past
	require.NoError(t, ts.DS.SaveGrant(expired))

	resp := ts.Request(t, "POST", "/grants/match", map[string]any{
		"focus_areas": []string{"education", "stem"},
	}, "")
	require.Equal(t, 200, resp.Code)

	var matches []any
	testutils.Decode(t, resp, &matches)
	assert.Empty(t, matches)
}

func TestViewerCannotCreateGrant(t *testing.T) {
	ts := testutils.NewTestDataStore(t)

	viewer := testutils.GenerateDBTeamMember("viewer")
	require.NoError(t, ts.DS.SaveTeamMember(viewer))

	resp := ts.Request(t, "POST", "/grants", map[string]any{
		"title":  "Community Science Fund",
		"funder": "Acme Foundation",
	}, viewer.ID)

	assert.Equal(t, 403, resp.Code)
}

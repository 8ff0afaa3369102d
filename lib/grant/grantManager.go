package grant

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/grantradar/grantradar-go/lib/db"
	db2 "github.com/grantradar/grantradar-go/lib/models/db"
	"github.com/grantradar/grantradar-go/lib/settings"
)

const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

type Manager struct {
	Db       db.DataStore
	Matching settings.MatchingSettings
}

func NewManager(db db.DataStore, matching settings.MatchingSettings) *Manager {
	return &Manager{
		Db:       db,
		Matching: matching,
	}
}

type CreateGrant struct {
	Title       string
	Funder      string
	Description string
	AmountMin   int64
	AmountMax   int64
	Deadline    *time.Time
	FocusAreas  []string
}

func (m *Manager) CreateGrant(create CreateGrant) (*db2.GrantDB, error) {
	grant := db2.GrantDB{
		ID:          uuid.NewString(),
		Title:       create.Title,
		Funder:      create.Funder,
		Description: create.Description,
		AmountMin:   create.AmountMin,
		AmountMax:   create.AmountMax,
		Deadline:    create.Deadline,
		FocusAreas:  create.FocusAreas,
		Status:      StatusOpen,
		CreatedAt:   time.Now().UTC(),
	}

	if err := m.Db.SaveGrant(grant); err != nil {
		return nil, err
	}
	return &grant, nil
}

func (m *Manager) GetGrant(grantID string) (*db2.GrantDB, error) {
	return m.Db.GetGrant(grantID)
}

func (m *Manager) ListGrants() ([]db2.GrantDB, error) {
	return m.Db.ListGrants()
}

func (m *Manager) RemoveGrant(grantID string) error {
	return m.Db.RemoveGrant(grantID)
}

// MatchProfile describes the organization the matcher scores grants
// against.
type MatchProfile struct {
	FocusAreas   []string
	AnnualBudget int64
}

type Match struct {
	Grant db2.GrantDB `json:"grant"`
	Score int         `json:"score"`
}

// Scoring weights. Focus-area overlap dominates, deadline proximity and
// amount fit break ties.
const (
	focusAreaWeight = 10
	deadlineWeight  = 5
	amountFitWeight = 3
)

// Match scores all open grants against the profile and returns the
// matches sorted by score, best first. Grants whose deadline already
// passed and grants with no scoring signal at all are left out.
func (m *Manager) Match(profile MatchProfile) ([]Match, error) {
	grants, err := m.Db.ListGrants()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	window := time.Duration(m.Matching.DeadlineWindowDays) * 24 * time.Hour

	matches := make([]Match, 0)
	for _, candidate := range grants {
		if candidate.Status != StatusOpen {
			continue
		}
		if candidate.Deadline != nil && candidate.Deadline.Before(now) {
			continue
		}

		score := overlap(candidate.FocusAreas, profile.FocusAreas) * focusAreaWeight

		if candidate.Deadline != nil && candidate.Deadline.Sub(now) <= window {
			score += deadlineWeight
		}
		if profile.AnnualBudget > 0 && candidate.AmountMin <= profile.AnnualBudget {
			score += amountFitWeight
		}

		if score == 0 {
			continue
		}
		matches = append(matches, Match{Grant: candidate, Score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return earlierDeadline(matches[i].Grant.Deadline, matches[j].Grant.Deadline)
	})

	if m.Matching.MaxResults > 0 && len(matches) > m.Matching.MaxResults {
		matches = matches[:m.Matching.MaxResults]
	}

	return matches, nil
}

func overlap(a, b []string) int {
	set := make(map[string]struct{}, len(a))
	for _, item := range a {
		set[item] = struct{}{}
	}
	count := 0
	for _, item := range b {
		if _, ok := set[item]; ok {
			count++
		}
	}
	return count
}

// earlierDeadline sorts grants with a deadline before grants without one.
func earlierDeadline(a, b *time.Time) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return a.Before(*b)
}

package account

import (
	"errors"
	"time"

	"github.com/grantradar/grantradar-go/lib/db"
	"github.com/grantradar/grantradar-go/lib/grant"
	db2 "github.com/grantradar/grantradar-go/lib/models/db"
)

type Manager struct {
	Db db.DataStore
}

func NewManager(db db.DataStore) *Manager {
	return &Manager{
		Db: db,
	}
}

// GetAccount loads the account, creating an empty record on first
// access so the settings page always has something to render.
func (m *Manager) GetAccount(accountID string) (*db2.AccountDB, error) {
	account, err := m.Db.GetAccount(accountID)
	if err == nil {
		return account, nil
	}
	if err.Error() != db.AccountNotFoundError {
		return nil, err
	}

	created := db2.AccountDB{
		ID:          accountID,
		EmailDigest: true,
		CreatedAt:   time.Now().UTC(),
	}
	if err := m.Db.SaveAccount(created); err != nil {
		return nil, err
	}
	return &created, nil
}

type AccountUpdate struct {
	OrgName      *string
	ContactEmail *string
	FocusAreas   []string
	AnnualBudget *int64
	EmailDigest  *bool
}

func (m *Manager) UpdateAccount(accountID string, update AccountUpdate) (*db2.AccountDB, error) {
	account, err := m.GetAccount(accountID)
	if err != nil {
		return nil, err
	}

	if update.OrgName != nil {
		account.OrgName = *update.OrgName
	}
	if update.ContactEmail != nil {
		account.ContactEmail = *update.ContactEmail
	}
	if update.FocusAreas != nil {
		account.FocusAreas = update.FocusAreas
	}
	if update.AnnualBudget != nil {
		if *update.AnnualBudget < 0 {
			return nil, errors.New("annual budget cannot be negative")
		}
		account.AnnualBudget = *update.AnnualBudget
	}
	if update.EmailDigest != nil {
		account.EmailDigest = *update.EmailDigest
	}

	if err := m.Db.SaveAccount(*account); err != nil {
		return nil, err
	}
	return account, nil
}

// MatchProfile derives the grant-matcher input from the stored org
// profile.
func (m *Manager) MatchProfile(accountID string) (*grant.MatchProfile, error) {
	account, err := m.GetAccount(accountID)
	if err != nil {
		return nil, err
	}
	return &grant.MatchProfile{
		FocusAreas:   account.FocusAreas,
		AnnualBudget: account.AnnualBudget,
	}, nil
}

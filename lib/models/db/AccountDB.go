package db

import "time"

type AccountDB struct {
	ID           string     `json:"id"`
	OrgName      string     `json:"org_name"`
	ContactEmail string     `json:"contact_email"`
	FocusAreas   []string   `json:"focus_areas"`
	AnnualBudget int64      `json:"annual_budget"`
	EmailDigest  bool       `json:"email_digest"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

package db

import "time"

type GrantDB struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Funder      string     `json:"funder"`
	Description string     `json:"description"`
	AmountMin   int64      `json:"amount_min"`
	AmountMax   int64      `json:"amount_max"`
	Deadline    *time.Time `json:"deadline"`
	FocusAreas  []string   `json:"focus_areas"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

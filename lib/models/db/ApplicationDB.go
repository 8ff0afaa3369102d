package db

import "time"

type ApplicationDB struct {
	ID        string     `json:"id"`
	GrantID   string     `json:"grant_id"`
	Title     string     `json:"title"`
	Stage     string     `json:"stage"`
	Position  int        `json:"position"`
	Assignee  *string    `json:"assignee"`
	Notes     string     `json:"notes"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

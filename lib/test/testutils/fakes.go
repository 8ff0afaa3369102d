package testutils

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"
	db2 "github.com/grantradar/grantradar-go/lib/models/db"
)

func GenerateDBGrant() db2.GrantDB {
	deadline := time.Now().UTC().Add(30 * 24 * time.Hour)

	return db2.GrantDB{
		ID:          gofakeit.UUID(),
		Title:       gofakeit.Sentence(4),
		Funder:      gofakeit.Company(),
		Description: gofakeit.Paragraph(1, 2, 8, " "),
		AmountMin:   int64(gofakeit.Number(1_000, 50_000)),
		AmountMax:   int64(gofakeit.Number(50_000, 500_000)),
		Deadline:    &deadline,
		FocusAreas:  []string{"education", "stem"},
		Status:      "open",
		CreatedAt:   time.Now().UTC(),
	}
}

func GenerateDBComponent() db2.ComponentDB {
	return db2.ComponentDB{
		ID:        gofakeit.UUID(),
		Title:     gofakeit.Sentence(3),
		Category:  "boilerplate",
		Content:   gofakeit.Paragraph(2, 3, 10, "\n"),
		Tags:      []string{"mission", "general"},
		Owner:     gofakeit.UUID(),
		Head:      0,
		CreatedAt: time.Now().UTC(),
	}
}

func GenerateDBTeamMember(role string) db2.TeamMemberDB {
	return db2.TeamMemberDB{
		ID:       gofakeit.UUID(),
		Name:     gofakeit.Name(),
		Email:    gofakeit.Email(),
		Role:     role,
		JoinedAt: time.Now().UTC(),
	}
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// SeedQuestion describes one question to insert during setup.
type SeedQuestion struct {
	Text         string
	DisplayOrder int
}

// DefaultQuestions is the question set used when no custom setup has
// been done. Questions are immutable once a session is running, so
// seeding only ever happens into an empty table.
var DefaultQuestions = []SeedQuestion{
	{Text: "How much did you enjoy the talk?", DisplayOrder: 1},
	{Text: "Should new SaaS products start as a monolith?", DisplayOrder: 2},
	{Text: "Will you vibe-code more often now?", DisplayOrder: 3},
}

// SeedQuestions inserts the given questions if the question table is
// empty. An already-populated table is left untouched.
func SeedQuestions(db *sql.DB, questions []SeedQuestion) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM question`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count questions: %w", err)
	}
	if count > 0 {
		slog.Info("Question table already populated, skipping seed", "count", count)
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	for _, q := range questions {
		_, err := tx.Exec(`
			INSERT INTO question (id, text, display_order, created_at)
			VALUES ($1, $2, $3, $4)
		`, uuid.NewString(), q.Text, q.DisplayOrder, now)
		if err != nil {
			return fmt.Errorf("failed to insert question %q: %w", q.Text, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	slog.Info("Seeded questions", "count", len(questions))
	return nil
}

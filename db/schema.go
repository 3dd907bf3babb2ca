// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The SQL is restricted to the portable subset that both sqlite and
// postgres accept, so timestamps are always written by the application.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Questions (immutable for the lifetime of a polling session)
CREATE TABLE IF NOT EXISTS question (
    id TEXT PRIMARY KEY,
    text TEXT NOT NULL,
    display_order INTEGER NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_question_display_order ON question(display_order);

-- Votes (one per participant per question, written only by admission)
CREATE TABLE IF NOT EXISTS vote (
    id TEXT PRIMARY KEY,
    question_id TEXT NOT NULL REFERENCES question(id) ON DELETE CASCADE,
    rating REAL NOT NULL CHECK (rating >= 0 AND rating <= 10),
    fingerprint TEXT NOT NULL,
    network_hash TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_vote_question_id ON vote(question_id);
CREATE INDEX IF NOT EXISTS idx_vote_fingerprint ON vote(fingerprint);

-- Vote sessions ("this fingerprint has completed voting")
-- The UNIQUE fingerprint constraint is the primary dedup invariant.
CREATE TABLE IF NOT EXISTS vote_session (
    id TEXT PRIMARY KEY,
    fingerprint TEXT NOT NULL UNIQUE,
    network_hash TEXT NOT NULL,
    voted_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_vote_session_network_hash ON vote_session(network_hash);
`

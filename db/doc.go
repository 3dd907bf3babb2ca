// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and question seeding.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and
indexes. The SQL sticks to the subset both sqlite and postgres accept;
the application writes all timestamps itself.

# Tables

  - question: Poll questions, ordered by display_order
  - vote: One rating per (participant, question) pair
  - vote_session: Marks a fingerprint as having completed voting

# Constraints

  - vote_session.fingerprint is UNIQUE: the primary duplicate-vote
    invariant, enforced by the engine even if application checks race
  - vote.rating is CHECKed to [0, 10]

# Seeding

SeedQuestions inserts a question set into an empty table:

	err := db.SeedQuestions(conn, db.DefaultQuestions)

A populated table is never modified; questions are immutable for the
lifetime of a polling session.
*/
package db

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Live Pulse API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - QuestionHandler: Question listing
  - VoteHandler: Vote admission and vote-status lookups
  - StatsHandler: Aggregated statistics (pull view)
  - StreamHandler: Live statistics over server-sent events (push view)
  - AdminHandler: Administrative reset

Handlers are created via constructor functions that accept *sql.DB and Config:

	voteHandler := handlers.NewVoteHandler(db, cfg)

# Vote Admission

POST /votes runs a fixed sequence of terminal checks:

 1. payload shape (fingerprint present, one rating per question) → 400
 2. every rating within [0, 10] → 400
 3. no existing session for the fingerprint → 403
 4. fewer than 3 sessions for the network hash → 429

The check-then-write sequence holds a per-network-hash lock and runs
inside a single transaction, so the network quota holds under
concurrent submission and a vote set is recorded all-or-nothing. The
fingerprint UNIQUE constraint backstops duplicate races the lock
cannot see.

# Aggregation

Both GET /stats and the event stream share one computation:

	stats, err := ComputeQuestionStats(db)

One QuestionStats per question, ordered by display_order: vote count,
mean rounded to one decimal, and an 11-bucket histogram. Bucket
assignment rounds half-away-from-zero.

# Live Updates

GET /stats/stream keeps the connection open and polls the total vote
count once per second, pushing a fresh snapshot only when the count
increased since that connection's last push. Errors inside the push
loop are logged and retried on the next tick. Clients that cannot hold
an event stream poll GET /stats instead.
*/
package handlers

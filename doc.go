// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Live Pulse API server.

Live Pulse is an audience-polling service for live presentations:
attendees rate a small fixed set of questions (0-10) from their phone,
and a presenter dashboard shows averages and histograms updating in
near-real time over a server-sent event stream.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=file:pulse.db IP_HASH_SALT=... ADMIN_SECRET=... go run main.go

Or with flags:

	go run main.go -p 3318 -d "postgres://..." -t postgres

# Configuration

Required settings:

  - DATABASE_URL (-d): Database connection string
  - IP_HASH_SALT (--ip-salt): Secret salt for network hashing
  - ADMIN_SECRET (--admin-secret): Shared secret for the reset endpoint

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - SEED_QUESTIONS (--seed): Insert the default question set on startup

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (questions, votes, stats, stream, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Network hashing and admin secret validation
  - keylock: Per-key mutual exclusion for the admission path
  - db: Schema creation and question seeding
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Live Pulse API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Public:

	GET  /questions    - Ordered question list
	POST /votes        - Submit one full vote set
	GET  /votes/status - Has this fingerprint voted?
	GET  /stats        - Aggregated statistics (poll fallback)
	GET  /stats/stream - Live statistics via server-sent events

Administration (requires X-Admin-Secret):

	POST /admin/reset - Delete all votes and sessions, keep questions

# Handler Initialization

The router creates handler instances with dependency injection:

	questionHandler := handlers.NewQuestionHandler(db, cfg)
	voteHandler := handlers.NewVoteHandler(db, cfg)
	statsHandler := handlers.NewStatsHandler(db, cfg)
	streamHandler := handlers.NewStreamHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db, cfg)

All handlers receive the database connection and configuration. The
event stream route is registered without the logging wrapper; a
subscriber connection stays open for the whole presentation and would
only log on disconnect.
*/
package router

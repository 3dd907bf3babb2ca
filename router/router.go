// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/live-pulse/cliparse"
	"github.com/danielhkuo/live-pulse/handlers"
	"github.com/danielhkuo/live-pulse/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	questionHandler := handlers.NewQuestionHandler(db, cfg)
	voteHandler := handlers.NewVoteHandler(db, cfg)
	statsHandler := handlers.NewStatsHandler(db, cfg)
	streamHandler := handlers.NewStreamHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Questions (public)
	mux.HandleFunc("GET /questions", middleware.WithLogging(questionHandler.List))

	// Voting (public)
	mux.HandleFunc("POST /votes", middleware.WithLogging(voteHandler.Submit))
	mux.HandleFunc("GET /votes/status", middleware.WithLogging(voteHandler.Status))

	// Statistics: pull and push views over the same aggregation
	mux.HandleFunc("GET /stats", middleware.WithLogging(statsHandler.GetStats))
	mux.HandleFunc("GET /stats/stream", streamHandler.Stream)

	// Administration
	mux.HandleFunc("POST /admin/reset", middleware.WithLogging(adminHandler.Reset))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("live-pulse API v1"))
	})

	return mux
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/live-pulse/auth"
	"github.com/danielhkuo/live-pulse/cliparse"
	"github.com/danielhkuo/live-pulse/middleware"
	"github.com/danielhkuo/live-pulse/models"
)

type AdminHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAdminHandler(db *sql.DB, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{db: db, cfg: cfg}
}

// Reset handles POST /admin/reset
// Deletes all votes and vote sessions but preserves questions. Guarded
// by the shared admin secret, compared in constant time.
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	secret := r.Header.Get("X-Admin-Secret")
	if err := auth.ValidateAdminSecret(secret, h.cfg.AdminSecret); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin secret")
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin reset transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	votesResult, err := tx.Exec(`DELETE FROM vote`)
	if err != nil {
		slog.Error("failed to delete votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reset votes")
		return
	}

	if _, err := tx.Exec(`DELETE FROM vote_session`); err != nil {
		slog.Error("failed to delete vote sessions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reset votes")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit reset", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reset votes")
		return
	}

	deleted, _ := votesResult.RowsAffected()
	slog.Info("votes reset", "deleted_votes", deleted)

	middleware.JSONResponse(w, http.StatusOK, models.ResetResponse{
		Success: true,
		Message: "All votes reset",
	})
}

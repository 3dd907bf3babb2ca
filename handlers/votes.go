// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/live-pulse/auth"
	"github.com/danielhkuo/live-pulse/cliparse"
	"github.com/danielhkuo/live-pulse/keylock"
	"github.com/danielhkuo/live-pulse/middleware"
	"github.com/danielhkuo/live-pulse/models"
)

type VoteHandler struct {
	db    *sql.DB
	cfg   cliparse.Config
	locks *keylock.KeyLock
}

func NewVoteHandler(db *sql.DB, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{db: db, cfg: cfg, locks: keylock.New()}
}

// Submit handles POST /votes
// Admission order: payload shape, rating domain, duplicate fingerprint,
// network quota. Each check is a terminal rejection; nothing is written
// unless all pass, and then the session plus all votes commit in one
// transaction.
func (h *VoteHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitVotesRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Fingerprint == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "fingerprint is required")
		return
	}

	// One rating per question, no more, no less
	questionIDs, err := h.questionIDs()
	if err != nil {
		slog.Error("failed to query questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if len(questionIDs) == 0 {
		middleware.ErrorResponse(w, http.StatusConflict, "No questions configured")
		return
	}
	if len(req.Ratings) != len(questionIDs) {
		middleware.ErrorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("expected %d ratings, got %d", len(questionIDs), len(req.Ratings)))
		return
	}

	// Rating domain check before any identity lookups
	for _, rating := range req.Ratings {
		if rating.Rating < 0 || rating.Rating > 10 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "rating must be between 0 and 10")
			return
		}
	}

	// Every submitted question must exist and appear exactly once
	seen := make(map[string]bool, len(req.Ratings))
	for _, rating := range req.Ratings {
		if !questionIDs[rating.QuestionID] {
			middleware.ErrorResponse(w, http.StatusBadRequest, "unknown question_id: "+rating.QuestionID)
			return
		}
		if seen[rating.QuestionID] {
			middleware.ErrorResponse(w, http.StatusBadRequest, "duplicate rating for question "+rating.QuestionID)
			return
		}
		seen[rating.QuestionID] = true
	}

	networkHash := auth.HashNetwork(middleware.GetClientIP(r), h.cfg.IPHashSalt)

	// Serialize the check-then-write sequence per network so two
	// concurrent submissions cannot both pass the quota check before
	// either commits.
	unlock := h.locks.Lock(networkHash)
	defer unlock()

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	// Duplicate fingerprint check
	var hasVoted bool
	err = tx.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM vote_session WHERE fingerprint = $1
		)
	`, req.Fingerprint).Scan(&hasVoted)
	if err != nil {
		slog.Error("failed to check vote session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if hasVoted {
		middleware.ErrorResponse(w, http.StatusForbidden, "You have already voted")
		return
	}

	// Network quota check
	var networkCount int
	err = tx.QueryRow(`
		SELECT COUNT(*) FROM vote_session WHERE network_hash = $1
	`, networkHash).Scan(&networkCount)
	if err != nil {
		slog.Error("failed to count network sessions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if networkCount >= models.MaxVotesPerNetwork {
		middleware.ErrorResponse(w, http.StatusTooManyRequests, "Too many votes from this network")
		return
	}

	// All checks passed: one session plus one vote per rating,
	// all-or-nothing
	now := time.Now()
	_, err = tx.Exec(`
		INSERT INTO vote_session (id, fingerprint, network_hash, voted_at)
		VALUES ($1, $2, $3, $4)
	`, uuid.NewString(), req.Fingerprint, networkHash, now)
	if err != nil {
		// The UNIQUE constraint backstops duplicate races the
		// per-network lock cannot see (same fingerprint, different
		// network)
		if isUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusForbidden, "You have already voted")
			return
		}
		slog.Error("failed to insert vote session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit votes")
		return
	}

	for _, rating := range req.Ratings {
		_, err = tx.Exec(`
			INSERT INTO vote (id, question_id, rating, fingerprint, network_hash, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, uuid.NewString(), rating.QuestionID, rating.Rating, req.Fingerprint, networkHash, now)
		if err != nil {
			slog.Error("failed to insert vote", "error", err, "question_id", rating.QuestionID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit votes")
			return
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit vote submission", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit votes")
		return
	}

	slog.Info("votes submitted", "ratings", len(req.Ratings), "network_hash", networkHash)

	middleware.JSONResponse(w, http.StatusOK, models.SubmitVotesResponse{Success: true})
}

// Status handles GET /votes/status?fingerprint=F
// A missing fingerprint reports has_voted false rather than an error,
// so first-time visitors get a clean answer.
func (h *VoteHandler) Status(w http.ResponseWriter, r *http.Request) {
	fingerprint := r.URL.Query().Get("fingerprint")
	if fingerprint == "" {
		middleware.JSONResponse(w, http.StatusOK, models.VoteStatusResponse{HasVoted: false})
		return
	}

	var hasVoted bool
	err := h.db.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM vote_session WHERE fingerprint = $1
		)
	`, fingerprint).Scan(&hasVoted)
	if err != nil {
		slog.Error("failed to check vote status", "error", err)
		middleware.JSONResponse(w, http.StatusOK, models.VoteStatusResponse{HasVoted: false})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoteStatusResponse{HasVoted: hasVoted})
}

func (h *VoteHandler) questionIDs() (map[string]bool, error) {
	rows, err := h.db.Query(`SELECT id FROM question`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = true
	}
	return ids, rows.Err()
}

// isUniqueViolation matches the uniqueness errors of both supported
// engines (sqlite and postgres)
func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "duplicate key value violates unique constraint")
}

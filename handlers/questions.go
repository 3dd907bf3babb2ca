// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/live-pulse/cliparse"
	"github.com/danielhkuo/live-pulse/middleware"
	"github.com/danielhkuo/live-pulse/models"
)

type QuestionHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewQuestionHandler(db *sql.DB, cfg cliparse.Config) *QuestionHandler {
	return &QuestionHandler{db: db, cfg: cfg}
}

// List handles GET /questions
// Returns all questions ordered by display_order
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, text, display_order, created_at
		FROM question
		ORDER BY display_order ASC
	`)
	if err != nil {
		slog.Error("failed to query questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.Text, &q.DisplayOrder, &q.CreatedAt); err != nil {
			slog.Error("failed to scan question", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		questions = append(questions, q)
	}

	middleware.JSONResponse(w, http.StatusOK, questions)
}

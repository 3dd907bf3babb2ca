// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"math"
	"net/http"

	"github.com/danielhkuo/live-pulse/cliparse"
	"github.com/danielhkuo/live-pulse/middleware"
	"github.com/danielhkuo/live-pulse/models"
)

type StatsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewStatsHandler(db *sql.DB, cfg cliparse.Config) *StatsHandler {
	return &StatsHandler{db: db, cfg: cfg}
}

// GetStats handles GET /stats
// The pull view over the aggregation; dashboards without a working
// event stream call this on their own interval.
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := ComputeQuestionStats(h.db)
	if err != nil {
		slog.Error("failed to compute stats", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to compute statistics")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, stats)
}

// ComputeQuestionStats calculates per-question totals, mean, and the
// 11-bucket histogram from the currently stored votes. It is a pure
// read recomputed on every call; nothing is cached.
//
// Histogram buckets use half-away-from-zero rounding (math.Round), so
// a 5.5 rating lands in bucket 6.
func ComputeQuestionStats(db *sql.DB) ([]models.QuestionStats, error) {
	questions, err := listQuestions(db)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	ratingsByQuestion, err := listRatings(db)
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}

	stats := make([]models.QuestionStats, 0, len(questions))
	for _, q := range questions {
		ratings := ratingsByQuestion[q.ID]

		stat := models.QuestionStats{
			QuestionID:   q.ID,
			QuestionText: q.Text,
			TotalVotes:   len(ratings),
			Distribution: make([]models.VoteDistribution, models.HistogramBuckets),
		}
		for i := range stat.Distribution {
			stat.Distribution[i].Value = i
		}

		var sum float64
		for _, rating := range ratings {
			sum += rating
			bucket := int(math.Round(rating))
			// Ratings are domain-checked on write; clamp anyway so a
			// bad row cannot panic the aggregation
			if bucket < 0 {
				bucket = 0
			} else if bucket > 10 {
				bucket = 10
			}
			stat.Distribution[bucket].Count++
		}

		if len(ratings) > 0 {
			mean := sum / float64(len(ratings))
			stat.Average = math.Round(mean*10) / 10
		}

		stats = append(stats, stat)
	}

	return stats, nil
}

func listQuestions(db *sql.DB) ([]models.Question, error) {
	rows, err := db.Query(`
		SELECT id, text, display_order, created_at
		FROM question
		ORDER BY display_order ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []models.Question
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.Text, &q.DisplayOrder, &q.CreatedAt); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func listRatings(db *sql.DB) (map[string][]float64, error) {
	rows, err := db.Query(`SELECT question_id, rating FROM vote`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings := make(map[string][]float64)
	for rows.Next() {
		var questionID string
		var rating float64
		if err := rows.Scan(&questionID, &rating); err != nil {
			return nil, err
		}
		ratings[questionID] = append(ratings[questionID], rating)
	}
	return ratings, rows.Err()
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/live-pulse/cliparse"
	"github.com/danielhkuo/live-pulse/middleware"
)

type StreamHandler struct {
	db  *sql.DB
	cfg cliparse.Config

	// interval between vote-count polls; shortened in tests
	interval time.Duration
}

func NewStreamHandler(db *sql.DB, cfg cliparse.Config) *StreamHandler {
	return &StreamHandler{db: db, cfg: cfg, interval: time.Second}
}

// Stream handles GET /stats/stream
// Server-sent events: one initial snapshot, then a full QuestionStats
// list whenever the total vote count has increased since this
// connection's last push. All state is per connection; subscribers do
// not interfere with each other.
func (h *StreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	lastCount, err := h.totalVoteCount()
	if err != nil {
		slog.Error("stream: failed to count votes", "error", err)
		return
	}

	if err := h.pushSnapshot(w, flusher); err != nil {
		slog.Error("stream: failed to push initial snapshot", "error", err)
		return
	}

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			// Client disconnect or server shutdown; ticker stops via
			// the deferred call
			return
		case <-ticker.C:
			count, err := h.totalVoteCount()
			if err != nil {
				// Log and retry on the next tick rather than
				// terminating the subscriber
				slog.Error("stream: failed to count votes", "error", err)
				continue
			}
			if count <= lastCount {
				continue
			}

			if err := h.pushSnapshot(w, flusher); err != nil {
				slog.Error("stream: failed to push snapshot", "error", err)
				continue
			}
			lastCount = count
		}
	}
}

// pushSnapshot writes one SSE frame containing the full stats list
func (h *StreamHandler) pushSnapshot(w http.ResponseWriter, flusher http.Flusher) error {
	stats, err := ComputeQuestionStats(h.db)
	if err != nil {
		return fmt.Errorf("failed to compute stats: %w", err)
	}

	payload, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}
	flusher.Flush()

	return nil
}

func (h *StreamHandler) totalVoteCount() (int, error) {
	var count int
	err := h.db.QueryRow(`SELECT COUNT(*) FROM vote`).Scan(&count)
	return count, err
}

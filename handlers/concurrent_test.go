// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/live-pulse/models"
	"github.com/danielhkuo/live-pulse/testutil"
)

// TestConcurrentNetworkQuota verifies that the per-network cap of 3
// holds under concurrent submission: no interleaving lets a fourth
// session from the same network slip through.
func TestConcurrentNetworkQuota(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewVoteHandler(conn, cfg)

	q1 := testutil.CreateTestQuestion(t, conn, "Only question", 1)
	sharedIP := "198.51.100.77"

	const attempts = 8
	var successCount, rateLimitedCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/votes", models.SubmitVotesRequest{
				Fingerprint: fmt.Sprintf("fp-concurrent-%d", idx),
				Ratings:     []models.RatingSubmission{{QuestionID: q1, Rating: 7}},
			}, map[string]string{"X-Forwarded-For": sharedIP})
			w := httptest.NewRecorder()

			handler.Submit(w, req)

			switch w.Code {
			case http.StatusOK:
				successCount.Add(1)
			case http.StatusTooManyRequests:
				rateLimitedCount.Add(1)
			default:
				t.Errorf("Unexpected status %d: %s", w.Code, w.Body.String())
			}
		}(i)
	}

	wg.Wait()

	if successCount.Load() != models.MaxVotesPerNetwork {
		t.Errorf("Expected exactly %d successful submissions, got %d",
			models.MaxVotesPerNetwork, successCount.Load())
	}
	if rateLimitedCount.Load() != attempts-models.MaxVotesPerNetwork {
		t.Errorf("Expected %d rate-limited submissions, got %d",
			attempts-models.MaxVotesPerNetwork, rateLimitedCount.Load())
	}

	// The invariant: never more than 3 sessions per network hash
	var sessions int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM vote_session`).Scan(&sessions); err != nil {
		t.Fatalf("Failed to count sessions: %v", err)
	}
	if sessions != models.MaxVotesPerNetwork {
		t.Errorf("Expected %d sessions in database, got %d", models.MaxVotesPerNetwork, sessions)
	}
}

// TestConcurrentDuplicateFingerprint verifies that when the same
// fingerprint submits from several goroutines, exactly one submission
// is admitted and the vote count equals the question count.
func TestConcurrentDuplicateFingerprint(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewVoteHandler(conn, cfg)

	q1 := testutil.CreateTestQuestion(t, conn, "Q1", 1)
	q2 := testutil.CreateTestQuestion(t, conn, "Q2", 2)

	const attempts = 5
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/votes", models.SubmitVotesRequest{
				Fingerprint: "fp-contested",
				Ratings: []models.RatingSubmission{
					{QuestionID: q1, Rating: 6},
					{QuestionID: q2, Rating: 8},
				},
			}, map[string]string{"X-Forwarded-For": "198.51.100.42"})
			w := httptest.NewRecorder()

			handler.Submit(w, req)

			if w.Code == http.StatusOK {
				successCount.Add(1)
			}
		}()
	}

	wg.Wait()

	if successCount.Load() != 1 {
		t.Errorf("Expected exactly 1 successful submission, got %d", successCount.Load())
	}

	var votes int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM vote WHERE fingerprint = $1`, "fp-contested").Scan(&votes); err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	if votes != 2 {
		t.Errorf("Expected 2 votes (one per question), got %d", votes)
	}
}

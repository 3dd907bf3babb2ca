// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/live-pulse/cliparse"
	"github.com/danielhkuo/live-pulse/db"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full
// schema. Each call gets its own database, so tests are isolated and
// need no external services.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// A unique name per test keeps shared-cache databases separate;
	// the single pooled connection keeps the in-memory DB alive.
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseType: "sqlite",
		IPHashSalt:   "test-ip-salt",
		AdminSecret:  "test-admin-secret",
	}
}

// CreateTestQuestion inserts a question and returns its ID
func CreateTestQuestion(t *testing.T, conn *sql.DB, text string, displayOrder int) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO question (id, text, display_order, created_at)
		VALUES ($1, $2, $3, $4)
	`, id, text, displayOrder, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}

	return id
}

// InsertTestVoteSet writes a vote session plus one vote per rating
// directly, bypassing the admission path. Used to arrange aggregation
// and broadcaster test fixtures.
func InsertTestVoteSet(t *testing.T, conn *sql.DB, fingerprint, networkHash string, ratings map[string]float64) {
	t.Helper()

	now := time.Now()
	_, err := conn.Exec(`
		INSERT INTO vote_session (id, fingerprint, network_hash, voted_at)
		VALUES ($1, $2, $3, $4)
	`, uuid.NewString(), fingerprint, networkHash, now)
	if err != nil {
		t.Fatalf("Failed to create test vote session: %v", err)
	}

	for questionID, rating := range ratings {
		_, err := conn.Exec(`
			INSERT INTO vote (id, question_id, rating, fingerprint, network_hash, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, uuid.NewString(), questionID, rating, fingerprint, networkHash, now)
		if err != nil {
			t.Fatalf("Failed to create test vote: %v", err)
		}
	}
}

// CountRows returns the row count of a table
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&count); err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}
	return count
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

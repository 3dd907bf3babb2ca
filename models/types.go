// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// MaxVotesPerNetwork is the hard cap on completed vote sessions per
// network hash. It is not a backoff window: once a network reaches the
// cap, further submissions are rejected for the rest of the session.
const MaxVotesPerNetwork = 3

// HistogramBuckets is the number of integer rating buckets (0..10).
const HistogramBuckets = 11

// Request types

type RatingSubmission struct {
	QuestionID string  `json:"question_id"`
	Rating     float64 `json:"rating"`
}

type SubmitVotesRequest struct {
	Fingerprint string             `json:"fingerprint"`
	Ratings     []RatingSubmission `json:"ratings"`
}

// Response types

type SubmitVotesResponse struct {
	Success bool `json:"success"`
}

type VoteStatusResponse struct {
	HasVoted bool `json:"has_voted"`
}

type ResetResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Domain types

type Question struct {
	ID           string    `json:"id"`
	Text         string    `json:"text"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

type Vote struct {
	ID          string    `json:"id"`
	QuestionID  string    `json:"question_id"`
	Rating      float64   `json:"rating"`
	Fingerprint string    `json:"-"` // Never expose in JSON
	NetworkHash string    `json:"-"` // Never expose in JSON
	CreatedAt   time.Time `json:"created_at"`
}

type VoteSession struct {
	ID          string    `json:"id"`
	Fingerprint string    `json:"-"` // Never expose in JSON
	NetworkHash string    `json:"-"` // Never expose in JSON
	VotedAt     time.Time `json:"voted_at"`
}

// Aggregation types (derived, never persisted)

type VoteDistribution struct {
	Value int `json:"value"`
	Count int `json:"count"`
}

type QuestionStats struct {
	QuestionID   string             `json:"question_id"`
	QuestionText string             `json:"question_text"`
	TotalVotes   int                `json:"total_votes"`
	Average      float64            `json:"average"`
	Distribution []VoteDistribution `json:"distribution"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

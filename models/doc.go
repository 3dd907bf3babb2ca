// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SubmitVotesRequest: fingerprint, ratings ([]RatingSubmission)
  - RatingSubmission: question_id, rating (0-10)

# Response Types

Types for JSON responses:

  - SubmitVotesResponse: success
  - VoteStatusResponse: has_voted
  - ResetResponse: success, message
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Question: question text and display order
  - Vote: one rating for one question; fingerprint and network hash
    are never serialized
  - VoteSession: the durable record marking a fingerprint as having
    completed voting

# Aggregation Types

Derived per request, never persisted:

  - QuestionStats: total_votes, average (1 decimal), distribution
  - VoteDistribution: one histogram bucket (value 0-10, count)

# Constants

	MaxVotesPerNetwork = 3
	HistogramBuckets   = 11
*/
package models

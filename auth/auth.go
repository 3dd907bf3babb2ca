// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

var ErrInvalidAdminSecret = errors.New("invalid admin secret")

// HashNetwork creates a one-way hash of a network address for privacy.
// The salt prevents rainbow-table lookups and address enumeration, so
// raw addresses never need to be stored.
func HashNetwork(address, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(address))
	sum := h.Sum(nil)
	// Return first 16 hex chars (64 bits) - enough for rate limiting
	return hex.EncodeToString(sum[:8])
}

// ValidateAdminSecret compares the provided secret against the
// configured one in constant time.
func ValidateAdminSecret(got, want string) error {
	if want == "" || !hmac.Equal([]byte(got), []byte(want)) {
		return ErrInvalidAdminSecret
	}
	return nil
}

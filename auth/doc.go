// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides identity-resolution and admin-secret utilities.

# Network Hashing

For privacy-preserving per-network rate limiting:

	hash := auth.HashNetwork(clientIP, salt)

Returns the first 8 bytes (16 hex chars) of HMAC-SHA256. The raw
address is never stored; the salted hash is stable for a given salt,
so vote sessions from the same network share a hash.

The participant fingerprint is the other half of identity resolution.
It is client-supplied, opaque, and passed through unmodified - the
server treats it as an untrusted but content-addressed key.

# Admin Secret

The reset endpoint is guarded by a shared secret compared in constant
time:

	if err := auth.ValidateAdminSecret(got, cfg.AdminSecret); err != nil {
		// 401
	}

An empty configured secret never validates.
*/
package auth

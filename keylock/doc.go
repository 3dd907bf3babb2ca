// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package keylock provides per-key mutual exclusion.

The admission path must serialize its check-then-write sequence per
network hash so that two concurrent submissions from a new network
cannot both pass the quota check before either commits:

	unlock := locks.Lock(networkHash)
	defer unlock()
	// read quota, insert session + votes, commit

Unrelated keys do not contend; there is no global lock across
networks.
*/
package keylock

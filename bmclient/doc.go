// Package bmclient verifies the proof chains returned by a [blockmerkle.Tree].
//
// [Verify] only checks that a proof chain is internally consistent:
// each level's recomputed hash must appear in the level above it.
// It never compares the chain's root against a root obtained elsewhere,
// so a storage layer that fabricates a complete, self-consistent chain
// will still be reported [Valid].
// Use [VerifyTrusted] or [*Client.ReadTrusted] when an independently
// published root hash is available.
package bmclient

// Package bmhash defines the hashing contract shared by
// the block Merkle tree and its verifying clients.
//
// Concrete hashers live in subpackages:
// [github.com/gordian-engine/blockmerkle/bmhash/bmsha256] is the recommended default.
// [github.com/gordian-engine/blockmerkle/bmhash/bmfnv] is fast but not collision resistant,
// and it is only suitable for tests and diagnostics.
package bmhash

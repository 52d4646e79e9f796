// Package bmfnv provides a 64-bit FNV-1a [bmhash.Hasher].
//
// FNV is not collision resistant.
// It exists for tests, benchmarks, and diagnostics
// where readable, cheap hashes matter more than authentication.
package bmfnv

import (
	"hash/fnv"

	"github.com/gordian-engine/blockmerkle/bmhash"
)

const HashSize = 8

// NewHasher returns a hasher where a node hash is FNV-1a(left ++ right).
func NewHasher() bmhash.Func {
	return bmhash.Func{Sum: sum, Width: HashSize}
}

func sum(dst, in []byte) []byte {
	h := fnv.New64a()
	_, _ = h.Write(in)
	return h.Sum(dst)
}

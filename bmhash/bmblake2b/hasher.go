package bmblake2b

import (
	"fmt"
	"hash"

	"github.com/gordian-engine/blockmerkle/bmhash"
	"golang.org/x/crypto/blake2b"
)

const HashSize = blake2b.Size256

// Hasher is a [bmhash.Hasher] backed by unkeyed BLAKE2b-256.
type Hasher struct{}

var _ bmhash.Hasher = Hasher{}

func (Hasher) Leaf(in, dst []byte) []byte {
	h := newHash()
	_, _ = h.Write([]byte{0})
	_, _ = h.Write(in)
	return h.Sum(dst)
}

func (Hasher) Node(left, right, dst []byte) []byte {
	h := newHash()
	_, _ = h.Write([]byte{1})
	_, _ = h.Write(left)
	_, _ = h.Write(right)
	return h.Sum(dst)
}

func (Hasher) Size() int { return HashSize }

func newHash() hash.Hash {
	h, err := blake2b.New256(nil)
	if err != nil {
		// Only possible with an oversized key.
		panic(fmt.Errorf("BUG: failed to create blake2b hash: %w", err))
	}
	return h
}

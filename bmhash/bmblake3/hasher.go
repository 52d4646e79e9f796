package bmblake3

import (
	"github.com/gordian-engine/blockmerkle/bmhash"
	"github.com/zeebo/blake3"
)

const HashSize = 32

// Hasher is a [bmhash.Hasher] backed by BLAKE3 with a 32-byte output.
type Hasher struct{}

var _ bmhash.Hasher = Hasher{}

func (Hasher) Leaf(in, dst []byte) []byte {
	h := blake3.New()
	_, _ = h.Write([]byte{0})
	_, _ = h.Write(in)
	return h.Sum(dst)
}

func (Hasher) Node(left, right, dst []byte) []byte {
	h := blake3.New()
	_, _ = h.Write([]byte{1})
	_, _ = h.Write(left)
	_, _ = h.Write(right)
	return h.Sum(dst)
}

func (Hasher) Size() int { return HashSize }

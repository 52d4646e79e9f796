package bmsha256

import (
	"crypto/sha256"

	"github.com/gordian-engine/blockmerkle/bmhash"
)

const HashSize = sha256.Size

// Hasher is a [bmhash.Hasher] backed by SHA256 hashes.
// Leaf and node inputs are domain separated
// so that a node hash can never be presented as a leaf hash.
type Hasher struct{}

var _ bmhash.Hasher = Hasher{}

func (Hasher) Leaf(in, dst []byte) []byte {
	h := sha256.New()
	_, _ = h.Write([]byte("L."))
	_, _ = h.Write(in)
	return h.Sum(dst)
}

func (Hasher) Node(left, right, dst []byte) []byte {
	h := sha256.New()
	_, _ = h.Write([]byte("Hl."))
	_, _ = h.Write(left)
	_, _ = h.Write([]byte("Hr."))
	_, _ = h.Write(right)
	return h.Sum(dst)
}

func (Hasher) Size() int { return HashSize }

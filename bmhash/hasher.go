package bmhash

// Hasher is the user-defined interface for hashing leaves and inner nodes.
// The tree passes raw block data to the Leaf method,
// and it passes the hashes produced by earlier Leaf or Node calls
// to the Node method, left child first.
//
// To be allocation-efficient, the Hasher implementation
// must append exactly Size bytes of hash output to dst
// and return the extended slice, in the manner of [hash.Hash.Sum].
// Hasher must not retain references to any of its arguments.
//
// Furthermore, Hasher methods must be safe to call concurrently.
type Hasher interface {
	Leaf(in, dst []byte) []byte
	Node(left, right, dst []byte) []byte

	// Size is the fixed width of every hash, in bytes.
	Size() int
}

// Func adapts a single hash function into a [Hasher].
// Leaves hash as Sum(data) and inner nodes hash as Sum(left ++ right),
// with no domain separation between the two.
type Func struct {
	// Sum appends the hash of in to dst.
	Sum func(dst, in []byte) []byte

	// Width is the output width of Sum, in bytes.
	Width int
}

func (f Func) Leaf(in, dst []byte) []byte {
	return f.Sum(dst, in)
}

func (f Func) Node(left, right, dst []byte) []byte {
	buf := make([]byte, 0, len(left)+len(right))
	buf = append(buf, left...)
	buf = append(buf, right...)
	return f.Sum(dst, buf)
}

func (f Func) Size() int { return f.Width }

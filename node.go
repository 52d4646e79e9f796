package blockmerkle

type nodeKind uint8

const (
	leafNode nodeKind = iota
	innerNode
)

// node is one entry in the tree's arena.
// Leaves use data; inner nodes use left and right.
type node struct {
	kind nodeKind

	data []byte

	// Arena indices of the children.
	left, right int

	// View into the tree's backing hash memory,
	// with capacity capped to the hash size.
	hash []byte
}

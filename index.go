package blockmerkle

// ArrayIndex returns the position of block blockID
// in the flat node array of a tree with leafCount leaves.
// Leaves fill the last leafCount slots in reverse block order,
// so block 0 is the final element.
func ArrayIndex(blockID, leafCount int) int {
	nNodes := 2*leafCount - 1
	return nNodes - 1 - blockID
}

// IsLeftChild reports whether the node at array index n
// is the left child of its parent.
// Left children have odd indices. The root (index 0) is neither.
func IsLeftChild(n int) bool {
	return n&1 == 1
}

// ParentIndex returns the array index of the parent of non-root index n.
func ParentIndex(n int) int {
	if n <= 0 {
		panic("BUG: root has no parent")
	}
	if IsLeftChild(n) {
		return (n - 1) / 2
	}
	return (n - 2) / 2
}

// SiblingIndex returns the array index of the other child
// of n's parent, for non-root n.
func SiblingIndex(n int) int {
	if n <= 0 {
		panic("BUG: root has no sibling")
	}
	if IsLeftChild(n) {
		return n + 1
	}
	return n - 1
}

package blockmerkle

// OverwriteBlockForTest replaces a block's data
// without recomputing any hash,
// simulating a storage layer that was tampered with.
func (t *Tree) OverwriteBlockForTest(blockID int, data []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nodes[ArrayIndex(blockID, t.leafCount)].data = data
}

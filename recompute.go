package blockmerkle

import "fmt"

// recompute rehashes the subtree rooted at idx, children first,
// and returns the fresh hash of idx.
// The caller must hold the write lock (or own t exclusively, as in [New]).
func (t *Tree) recompute(idx int) []byte {
	n := &t.nodes[idx]
	if n.kind == leafNode {
		return t.hashLeaf(n)
	}

	l := t.recompute(n.left)
	r := t.recompute(n.right)
	return t.store(n, t.h.Node(l, r, n.hash[:0]))
}

// rehash recomputes idx from its children's cached hashes.
func (t *Tree) rehash(idx int) {
	n := &t.nodes[idx]
	if n.kind == leafNode {
		t.hashLeaf(n)
		return
	}

	t.store(n, t.h.Node(t.nodes[n.left].hash, t.nodes[n.right].hash, n.hash[:0]))
}

func (t *Tree) hashLeaf(n *node) []byte {
	return t.store(n, t.h.Leaf(n.data, n.hash[:0]))
}

// store ensures out ends up in n's slot of the backing memory.
// A well-behaved hasher has already written it there.
func (t *Tree) store(n *node, out []byte) []byte {
	if len(out) != t.hashSize {
		panic(fmt.Errorf(
			"BUG: hasher produced %d bytes, expected %d",
			len(out), t.hashSize,
		))
	}
	copy(n.hash, out)
	return n.hash
}

// markDirty records idx and all of its ancestors for the next settle.
// It is a no-op in FullRecompute mode.
func (t *Tree) markDirty(idx int) {
	if t.dirty == nil {
		return
	}

	for {
		if t.dirty.Test(uint(idx)) {
			// Ancestors were already marked by an earlier leaf.
			return
		}
		t.dirty.Set(uint(idx))
		if idx == 0 {
			return
		}
		idx = ParentIndex(idx)
	}
}

// settle brings every hash up to date after one or more setLeaf calls.
func (t *Tree) settle() {
	if t.mode != PathRecompute {
		t.recompute(0)
		return
	}

	// Children always have higher indices than their parents,
	// so rehashing in descending index order
	// sees every child before its parent.
	marked := make([]int, 0, t.dirty.Count())
	for i, ok := t.dirty.NextSet(0); ok; i, ok = t.dirty.NextSet(i + 1) {
		marked = append(marked, int(i))
	}
	for j := len(marked) - 1; j >= 0; j-- {
		t.rehash(marked[j])
	}

	t.dirty.ClearAll()
}

package blockmerkle

// ProofStep is one level of a [ProofChain].
//
// For every level below the root, Left and Right are the two sibling hashes
// whose combination is the hash of their parent, in tree order.
// For the root step, Left is the root hash and Right is empty.
type ProofStep struct {
	// Tree level of this step: the root is 0
	// and the leaves are at the tree's level count.
	Level uint32

	Left, Right []byte
}

// ProofChain is the ordered list of steps from a leaf up to the root,
// as returned by [*Tree.Read].
// It always has LevelCount+1 steps.
type ProofChain []ProofStep

// Root returns the root hash claimed by the chain,
// or nil if the chain is empty.
func (p ProofChain) Root() []byte {
	if len(p) == 0 {
		return nil
	}
	return p[len(p)-1].Left
}

// traversal walks from arena index idx to the root,
// copying the hashes at each step.
// The caller must hold at least a read lock.
func (t *Tree) traversal(idx int) ProofChain {
	// The returned hashes must not alias the tree,
	// and the chain's size is known up front,
	// so copy every hash into one allocation.
	mem := make([]byte, 0, (2*t.levelCount+1)*t.hashSize)
	cp := func(h []byte) []byte {
		start := len(mem)
		mem = append(mem, h...)
		return mem[start:len(mem):len(mem)]
	}

	proof := make(ProofChain, 0, t.levelCount+1)
	level := uint32(t.levelCount)
	for idx != 0 {
		parent := ParentIndex(idx)
		p := &t.nodes[parent]

		step := ProofStep{Level: level}
		if IsLeftChild(idx) {
			step.Left = cp(t.nodes[idx].hash)
			step.Right = cp(t.nodes[p.right].hash)
		} else {
			step.Left = cp(t.nodes[p.left].hash)
			step.Right = cp(t.nodes[idx].hash)
		}
		proof = append(proof, step)

		idx = parent
		level--
	}

	return append(proof, ProofStep{
		Level: level,
		Left:  cp(t.nodes[0].hash),
	})
}

package blockmerkle

import (
	"bytes"
	"fmt"
	"log/slog"
	"math/bits"
	"sync"

	"github.com/bits-and-blooms/bitset"
	"github.com/gordian-engine/blockmerkle/bmhash"
)

// Tree is a binary Merkle tree over a fixed number of data blocks.
//
// Create a tree with [New], then use [*Tree.Write] and [*Tree.Read].
// All methods are safe for concurrent use;
// a write excludes readers until the affected hashes are recomputed.
type Tree struct {
	log *slog.Logger

	h    bmhash.Hasher
	mode RecomputeMode

	mu sync.RWMutex

	// Root first, leaves in the final leafCount slots.
	nodes []node

	leafCount  int
	levelCount int
	hashSize   int

	// Arena indices awaiting a rehash.
	// Only populated in PathRecompute mode.
	dirty *bitset.BitSet
}

// BlockWrite is one element of a [*Tree.WriteBatch] call.
type BlockWrite struct {
	BlockID int
	Data    []byte
}

// New returns a tree with room for at least requested blocks,
// rounded up to the next power of two.
// Every block starts with empty data,
// and the tree is fully hashed before New returns.
func New(log *slog.Logger, requested int, cfg TreeConfig) (*Tree, error) {
	if cfg.Hasher == nil {
		panic(fmt.Errorf("BUG: TreeConfig.Hasher must not be nil"))
	}
	hashSize := cfg.Hasher.Size()
	if hashSize <= 0 {
		panic(fmt.Errorf(
			"BUG: hash size must be positive (got %d)", hashSize,
		))
	}

	if requested <= 0 || requested > MaxLeaves {
		return nil, InvalidCapacityError{Requested: requested}
	}

	leafCount := 1 << bits.Len(uint(requested-1))

	// Any tree where every non-leaf node has exactly two children
	// has this many nodes.
	nNodes := 2*leafCount - 1

	// The hash width is fixed,
	// so back every node's hash with a single allocation.
	// Each view has its capacity capped so that
	// a hasher appending to it can never spill into a neighbor.
	mem := make([]byte, nNodes*hashSize)

	nodes := make([]node, nNodes)
	for i := range nodes {
		start := i * hashSize
		end := start + hashSize

		nodes[i].hash = mem[start:end:end]
	}

	// The leaves occupy the tail of the arena.
	for i := nNodes - leafCount; i < nNodes; i++ {
		nodes[i].kind = leafNode
	}

	// Build each inner level from the level below it,
	// pairing from the back of the level toward the front.
	// A level of width w starts at index w-1,
	// so every left child lands on an odd index
	// and every right child on the even index after it.
	for width := leafCount; width > 1; width >>= 1 {
		start := width - 1
		for i := start + width - 2; i >= start; i -= 2 {
			p := &nodes[ParentIndex(i)]
			p.kind = innerNode
			p.left = i
			p.right = i + 1
		}
	}

	t := &Tree{
		log: log,

		h:    cfg.Hasher,
		mode: cfg.Recompute,

		nodes: nodes,

		leafCount:  leafCount,
		levelCount: bits.Len(uint(leafCount)) - 1,
		hashSize:   hashSize,
	}
	if t.mode == PathRecompute {
		t.dirty = bitset.New(uint(nNodes))
	}

	t.recompute(0)

	t.log.Info(
		"Created block tree",
		"requested", requested,
		"leaves", leafCount,
		"levels", t.levelCount,
		"recompute", t.mode,
	)

	return t, nil
}

// LeafCount returns the number of blocks in the tree.
// It is always a power of two.
func (t *Tree) LeafCount() int { return t.leafCount }

// LevelCount returns log2 of the leaf count.
// The root is level 0 and the leaves are at level LevelCount.
func (t *Tree) LevelCount() int { return t.levelCount }

// NodeCount returns the total number of leaves and inner nodes.
func (t *Tree) NodeCount() int { return len(t.nodes) }

// HashSize returns the width, in bytes, of every hash in the tree.
func (t *Tree) HashSize() int { return t.hashSize }

// Hasher returns the hasher the tree was configured with.
func (t *Tree) Hasher() bmhash.Hasher { return t.h }

// Root returns a copy of the current root hash.
func (t *Tree) Root() []byte {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return bytes.Clone(t.nodes[0].hash)
}

// Read returns a copy of the data stored in block blockID,
// and the proof chain from that block's leaf to the root.
//
// Read never rehashes;
// the proof reflects the hashes as of the most recent recompute.
func (t *Tree) Read(blockID int) ([]byte, ProofChain, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if err := t.checkBlockID(blockID); err != nil {
		return nil, nil, err
	}

	idx := ArrayIndex(blockID, t.leafCount)
	return bytes.Clone(t.nodes[idx].data), t.traversal(idx), nil
}

// Write replaces the data in block blockID with a copy of data,
// and then recomputes the tree hashes according to the configured mode.
func (t *Tree) Write(blockID int, data []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.checkBlockID(blockID); err != nil {
		return err
	}

	t.setLeaf(blockID, data)
	t.settle()

	t.log.Debug("Wrote block", "block", blockID, "size", len(data))
	return nil
}

// WriteBatch applies all writes and then recomputes once.
// If any block ID is out of range, WriteBatch returns an error
// without modifying any block.
// When the same block appears more than once, the last write wins.
func (t *Tree) WriteBatch(writes []BlockWrite) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, w := range writes {
		if err := t.checkBlockID(w.BlockID); err != nil {
			return fmt.Errorf("invalid batch: %w", err)
		}
	}

	for _, w := range writes {
		t.setLeaf(w.BlockID, w.Data)
	}
	t.settle()

	t.log.Debug("Wrote block batch", "n", len(writes))
	return nil
}

// Recompute rehashes the entire tree regardless of the configured mode.
func (t *Tree) Recompute() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.recompute(0)
	if t.dirty != nil {
		t.dirty.ClearAll()
	}
}

func (t *Tree) checkBlockID(blockID int) error {
	if blockID < 0 || blockID >= t.leafCount {
		return IndexOutOfRangeError{
			BlockID:   blockID,
			LeafCount: t.leafCount,
		}
	}
	return nil
}

// setLeaf stores data without rehashing.
// The caller must hold the write lock.
func (t *Tree) setLeaf(blockID int, data []byte) {
	idx := ArrayIndex(blockID, t.leafCount)
	t.nodes[idx].data = bytes.Clone(data)
	t.markDirty(idx)
}

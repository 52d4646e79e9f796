package blockmerkle

import "github.com/gordian-engine/blockmerkle/bmhash"

// MaxLeaves is the largest block count accepted by [New].
const MaxLeaves = 1 << 24

// RecomputeMode controls how much of the tree is rehashed after a write.
type RecomputeMode uint8

const (
	// FullRecompute rehashes every leaf and inner node after each write.
	// It costs O(leaf count) hash operations regardless of the change.
	FullRecompute RecomputeMode = iota

	// PathRecompute rehashes only the written leaves and their ancestors,
	// costing O(log leaf count) hash operations per written block.
	// It produces the same root as FullRecompute.
	PathRecompute
)

func (m RecomputeMode) String() string {
	switch m {
	case FullRecompute:
		return "full"
	case PathRecompute:
		return "path"
	default:
		return "unknown"
	}
}

// TreeConfig is the configuration passed to [New].
type TreeConfig struct {
	// Hasher produces every leaf and inner node hash.
	// Required.
	Hasher bmhash.Hasher

	// Recompute defaults to FullRecompute.
	Recompute RecomputeMode
}

package bmclient

import (
	"bytes"

	"github.com/gordian-engine/blockmerkle"
	"github.com/gordian-engine/blockmerkle/bmhash"
)

// Verdict is the outcome of verifying a proof chain.
// An Invalid verdict is ordinary data, not an error.
type Verdict uint8

const (
	Invalid Verdict = iota
	Valid
)

func (v Verdict) String() string {
	switch v {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Deep enough for any tree that [blockmerkle.New] can build.
const maxLevelCount = 30

// Verify walks proof from the leaf level to the root.
// At every step above the leaf level,
// the hash recomputed from the previous step
// must equal either the Left or the Right hash of the current step.
//
// Verify inspects every step even after a mismatch,
// and reports Invalid if any step failed.
// An empty proof is Invalid.
func Verify(h bmhash.Hasher, proof blockmerkle.ProofChain, levelCount uint32) Verdict {
	if len(proof) == 0 {
		return Invalid
	}

	var hashBelow []byte
	valid := true
	for _, step := range proof {
		if step.Level < levelCount {
			if !bytes.Equal(hashBelow, step.Left) && !bytes.Equal(hashBelow, step.Right) {
				valid = false
			}
		}

		hashBelow = h.Node(step.Left, step.Right, hashBelow[:0])
	}

	if !valid {
		return Invalid
	}
	return Valid
}

// VerifyTrusted is a stricter form of [Verify].
// In addition to the internal consistency that Verify checks,
// the proof must have exactly one step per level in descending order,
// the leaf hash of data must sit on the side of the first step
// dictated by blockID's position,
// each recomputed hash must sit on the correct side of the step above it,
// and the root step must carry trustedRoot.
func VerifyTrusted(
	h bmhash.Hasher,
	blockID int,
	data []byte,
	proof blockmerkle.ProofChain,
	levelCount uint32,
	trustedRoot []byte,
) Verdict {
	if Verify(h, proof, levelCount) != Valid {
		return Invalid
	}

	if uint64(len(proof)) != uint64(levelCount)+1 {
		return Invalid
	}

	if levelCount > maxLevelCount {
		return Invalid
	}
	leafCount := 1 << levelCount
	if blockID < 0 || blockID >= leafCount {
		return Invalid
	}

	idx := blockmerkle.ArrayIndex(blockID, leafCount)
	cur := h.Leaf(data, nil)
	for i, step := range proof[:len(proof)-1] {
		if step.Level != levelCount-uint32(i) {
			return Invalid
		}

		side := step.Right
		if blockmerkle.IsLeftChild(idx) {
			side = step.Left
		}
		if !bytes.Equal(cur, side) {
			return Invalid
		}

		cur = h.Node(step.Left, step.Right, cur[:0])
		idx = blockmerkle.ParentIndex(idx)
	}

	root := proof[len(proof)-1]
	if root.Level != 0 || len(root.Right) != 0 {
		return Invalid
	}
	if !bytes.Equal(cur, root.Left) || !bytes.Equal(root.Left, trustedRoot) {
		return Invalid
	}

	return Valid
}

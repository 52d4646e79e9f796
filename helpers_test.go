package blockmerkle_test

import (
	"hash/fnv"
	"testing"

	"github.com/gordian-engine/blockmerkle"
	"github.com/gordian-engine/blockmerkle/bmhash/bmfnv"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/require"
)

// fnvHash is the independent reference for the bmfnv hasher:
// FNV-1a over the concatenation of its arguments.
func fnvHash(parts ...[]byte) []byte {
	h := fnv.New64a()
	for _, p := range parts {
		_, _ = h.Write(p)
	}
	return h.Sum(nil)
}

func newFNVTree(t *testing.T, requested int, mode blockmerkle.RecomputeMode) *blockmerkle.Tree {
	t.Helper()

	tree, err := blockmerkle.New(slogt.New(t), requested, blockmerkle.TreeConfig{
		Hasher:    bmfnv.NewHasher(),
		Recompute: mode,
	})
	require.NoError(t, err)
	return tree
}

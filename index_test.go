package blockmerkle_test

import (
	"testing"

	"github.com/gordian-engine/blockmerkle"
	"github.com/stretchr/testify/require"
)

func TestArrayIndex(t *testing.T) {
	t.Parallel()

	// Four leaves: seven nodes, block 0 at the end.
	require.Equal(t, 6, blockmerkle.ArrayIndex(0, 4))
	require.Equal(t, 5, blockmerkle.ArrayIndex(1, 4))
	require.Equal(t, 4, blockmerkle.ArrayIndex(2, 4))
	require.Equal(t, 3, blockmerkle.ArrayIndex(3, 4))

	require.Zero(t, blockmerkle.ArrayIndex(0, 1))
}

func TestParentIndex(t *testing.T) {
	t.Parallel()

	for n, want := range map[int]int{
		1: 0, 2: 0,
		3: 1, 4: 1,
		5: 2, 6: 2,
		13: 6, 14: 6,
	} {
		require.Equal(t, want, blockmerkle.ParentIndex(n), "parent of %d", n)
	}

	require.Panics(t, func() { blockmerkle.ParentIndex(0) })
}

func TestSiblingIndex(t *testing.T) {
	t.Parallel()

	for n := 1; n < 31; n++ {
		s := blockmerkle.SiblingIndex(n)
		require.Equal(t, n, blockmerkle.SiblingIndex(s))
		require.Equal(t, blockmerkle.ParentIndex(n), blockmerkle.ParentIndex(s))
		require.NotEqual(t, blockmerkle.IsLeftChild(n), blockmerkle.IsLeftChild(s))
	}

	require.Panics(t, func() { blockmerkle.SiblingIndex(0) })
}

func TestIsLeftChild(t *testing.T) {
	t.Parallel()

	require.True(t, blockmerkle.IsLeftChild(1))
	require.False(t, blockmerkle.IsLeftChild(2))
	require.True(t, blockmerkle.IsLeftChild(5))
	require.False(t, blockmerkle.IsLeftChild(6))
}

package bmhashtest

import (
	"testing"

	"github.com/gordian-engine/blockmerkle/bmhash"
	"github.com/stretchr/testify/require"
)

type HasherFactory func() bmhash.Hasher

// TestHasherCompliance runs the behavioral checks
// that every [bmhash.Hasher] must satisfy to back a tree.
func TestHasherCompliance(t *testing.T, f HasherFactory) {
	t.Run("size is positive", func(t *testing.T) {
		t.Parallel()

		require.Positive(t, f().Size())
	})

	t.Run("leaf is deterministic", func(t *testing.T) {
		t.Parallel()

		h := f()

		a := h.Leaf([]byte("deterministic_data"), nil)
		b := h.Leaf([]byte("deterministic_data"), nil)

		require.Equal(t, a, b)
		require.Len(t, a, h.Size())
	})

	t.Run("leaf respects data", func(t *testing.T) {
		t.Parallel()

		h := f()

		a := h.Leaf([]byte("hello"), nil)
		b := h.Leaf([]byte("world"), nil)

		require.NotEqual(t, a, b)
	})

	t.Run("leaf accepts empty data", func(t *testing.T) {
		t.Parallel()

		h := f()

		require.Len(t, h.Leaf(nil, nil), h.Size())
		require.Equal(t, h.Leaf(nil, nil), h.Leaf([]byte{}, nil))
	})

	t.Run("node is deterministic", func(t *testing.T) {
		t.Parallel()

		h := f()
		l := h.Leaf([]byte("left"), nil)
		r := h.Leaf([]byte("right"), nil)

		a := h.Node(l, r, nil)
		b := h.Node(l, r, nil)

		require.Equal(t, a, b)
		require.Len(t, a, h.Size())
	})

	t.Run("node respects order", func(t *testing.T) {
		t.Parallel()

		h := f()
		l := h.Leaf([]byte("left"), nil)
		r := h.Leaf([]byte("right"), nil)

		require.NotEqual(t, h.Node(l, r, nil), h.Node(r, l, nil))
	})

	t.Run("appends to dst", func(t *testing.T) {
		t.Parallel()

		h := f()
		sz := h.Size()

		prefix := []byte("prefix")
		dst := make([]byte, len(prefix), len(prefix)+sz)
		copy(dst, prefix)

		out := h.Leaf([]byte("data"), dst)
		require.Equal(t, prefix, out[:len(prefix)])
		require.Equal(t, h.Leaf([]byte("data"), nil), out[len(prefix):])

		l := h.Leaf([]byte("l"), nil)
		r := h.Leaf([]byte("r"), nil)
		out = h.Node(l, r, dst[:len(prefix)])
		require.Equal(t, prefix, out[:len(prefix)])
		require.Equal(t, h.Node(l, r, nil), out[len(prefix):])
	})

	t.Run("writes in place when capacity allows", func(t *testing.T) {
		t.Parallel()

		h := f()
		sz := h.Size()

		dst := make([]byte, 0, sz)
		out := h.Leaf([]byte("in place"), dst)

		require.Len(t, out, sz)
		require.Same(t, &dst[:1][0], &out[0])
	})
}

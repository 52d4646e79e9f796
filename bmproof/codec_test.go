package bmproof_test

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/gordian-engine/blockmerkle"
	"github.com/gordian-engine/blockmerkle/bmclient"
	"github.com/gordian-engine/blockmerkle/bmhash/bmblake2b"
	"github.com/gordian-engine/blockmerkle/bmproof"
	"github.com/gordian-engine/blockmerkle/internal/bmtest"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/require"
)

func TestCodec_decodedProofVerifies(t *testing.T) {
	t.Parallel()

	h := bmblake2b.Hasher{}
	tree, err := blockmerkle.New(slogt.New(t), 16, blockmerkle.TreeConfig{Hasher: h})
	require.NoError(t, err)

	data := bmtest.RandomDataForTest(t, 100)
	require.NoError(t, tree.Write(9, data))

	_, proof, err := tree.Read(9)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, bmproof.Encode(&buf, proof))

	got, err := bmproof.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, proof, got)
	require.Zero(t, buf.Len())

	levels := uint32(tree.LevelCount())
	require.Equal(t, bmclient.Valid, bmclient.VerifyTrusted(h, 9, data, got, levels, tree.Root()))
}

func TestCodec_layout(t *testing.T) {
	t.Parallel()

	proof := blockmerkle.ProofChain{
		{Level: 1, Left: []byte{1, 2}, Right: []byte{3, 4}},
		{Level: 0, Left: []byte{5, 6}},
	}

	enc, err := bmproof.AppendEncoded(nil, proof)
	require.NoError(t, err)

	want := []byte{
		0xB7, 1,
		0, 0, 0, 2,
		0, 0, 0, 2,

		0, 0, 0, 1, 1, 2, 1, 3, 4,
		0, 0, 0, 0, 5, 6, 0,
	}
	require.Equal(t, want, enc)
}

func TestEncode_rejects(t *testing.T) {
	t.Parallel()

	for name, proof := range map[string]blockmerkle.ProofChain{
		"empty":        nil,
		"empty hash":   {{Level: 0}},
		"ragged left":  {{Level: 1, Left: []byte{1, 2}, Right: []byte{3, 4}}, {Level: 0, Left: []byte{5}}},
		"ragged right": {{Level: 1, Left: []byte{1, 2}, Right: []byte{3}}, {Level: 0, Left: []byte{5, 6}}},
		"too long":     make(blockmerkle.ProofChain, bmproof.MaxSteps+1),
	} {
		var fe bmproof.FormatError
		err := bmproof.Encode(io.Discard, proof)
		require.ErrorAs(t, err, &fe, name)
	}
}

func TestDecode_rejects(t *testing.T) {
	t.Parallel()

	valid, err := bmproof.AppendEncoded(nil, blockmerkle.ProofChain{
		{Level: 1, Left: []byte{1, 2}, Right: []byte{3, 4}},
		{Level: 0, Left: []byte{5, 6}},
	})
	require.NoError(t, err)

	mutate := func(f func(b []byte)) []byte {
		b := bytes.Clone(valid)
		f(b)
		return b
	}

	t.Run("format errors", func(t *testing.T) {
		t.Parallel()

		for name, in := range map[string][]byte{
			"magic":      mutate(func(b []byte) { b[0] = 0 }),
			"version":    mutate(func(b []byte) { b[1] = 9 }),
			"zero hash":  mutate(func(b []byte) { binary.BigEndian.PutUint32(b[2:], 0) }),
			"huge hash":  mutate(func(b []byte) { binary.BigEndian.PutUint32(b[2:], bmproof.MaxHashSize+1) }),
			"zero steps": mutate(func(b []byte) { binary.BigEndian.PutUint32(b[6:], 0) }),
			"many steps": mutate(func(b []byte) { binary.BigEndian.PutUint32(b[6:], bmproof.MaxSteps+1) }),
			"right flag": mutate(func(b []byte) { b[16] = 2 }),
		} {
			var fe bmproof.FormatError
			_, err := bmproof.Decode(bytes.NewReader(in))
			require.ErrorAs(t, err, &fe, name)
		}
	})

	t.Run("truncated", func(t *testing.T) {
		t.Parallel()

		for n := range len(valid) {
			_, err := bmproof.Decode(bytes.NewReader(valid[:n]))
			require.Error(t, err, "length %d", n)

			var fe bmproof.FormatError
			require.NotErrorAs(t, err, &fe, "length %d", n)
		}
	})
}

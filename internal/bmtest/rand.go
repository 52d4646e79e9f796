package bmtest

import (
	"crypto/sha256"
	"math/rand/v2"
	"testing"
)

// RandomDataForTest returns a byte slice of size sz
// containing pseudorandom data, derived from a seed based on the test name.
func RandomDataForTest(t *testing.T, sz int) []byte {
	out := make([]byte, sz)
	if _, err := chachaForTest(t, "").Read(out); err != nil {
		panic(err)
	}
	return out
}

// RandomBlocksForTest returns n blocks of pseudorandom data,
// each between 0 and maxSize bytes long.
// The output is stable for a given test name.
func RandomBlocksForTest(t *testing.T, n, maxSize int) [][]byte {
	chacha := chachaForTest(t, "blocks")
	r := rand.New(chacha)

	out := make([][]byte, n)
	for i := range out {
		b := make([]byte, r.IntN(maxSize+1))
		if _, err := chacha.Read(b); err != nil {
			panic(err)
		}
		out[i] = b
	}
	return out
}

func chachaForTest(t *testing.T, salt string) *rand.ChaCha8 {
	// Sha256 happens to be the right size for the chacha8 seed,
	// and this fits well anyway since that means
	// we are not limited by the length of any particular test name.
	seed := sha256.Sum256([]byte(t.Name() + salt))
	return rand.NewChaCha8(seed)
}

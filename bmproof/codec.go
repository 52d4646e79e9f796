// Package bmproof encodes [blockmerkle.ProofChain] values
// for handing to a verifier in another process.
//
// The encoding is big endian throughout:
//
//	magic (1 byte) | version (1 byte) | hash size (uint32) | step count (uint32)
//
// followed by each step:
//
//	level (uint32) | left hash | has-right flag (1 byte) | right hash, if flagged
package bmproof

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/gordian-engine/blockmerkle"
)

const (
	magic   byte = 0xB7
	version byte = 1

	headerSize = 1 + 1 + 4 + 4
)

const (
	// MaxSteps bounds the step count accepted by [Decode].
	MaxSteps = 64

	// MaxHashSize bounds the hash width accepted by [Decode].
	MaxHashSize = 512
)

// FormatError indicates a proof that cannot be encoded,
// or an encoded proof that is malformed.
type FormatError struct {
	Reason string
}

func (e FormatError) Error() string {
	return "malformed proof: " + e.Reason
}

// AppendEncoded appends the encoding of proof to dst.
//
// Every Left hash, and every non-empty Right hash,
// must have the same length.
func AppendEncoded(dst []byte, proof blockmerkle.ProofChain) ([]byte, error) {
	if len(proof) == 0 {
		return dst, FormatError{Reason: "empty proof"}
	}
	if len(proof) > MaxSteps {
		return dst, FormatError{Reason: fmt.Sprintf("%d steps exceeds maximum %d", len(proof), MaxSteps)}
	}

	hashSize := len(proof[0].Left)
	if hashSize == 0 || hashSize > MaxHashSize {
		return dst, FormatError{Reason: fmt.Sprintf("unsupported hash size %d", hashSize)}
	}

	dst = append(dst, magic, version)
	dst = binary.BigEndian.AppendUint32(dst, uint32(hashSize))
	dst = binary.BigEndian.AppendUint32(dst, uint32(len(proof)))

	for i, step := range proof {
		if len(step.Left) != hashSize {
			return dst, FormatError{Reason: fmt.Sprintf(
				"step %d: left hash has %d bytes, expected %d", i, len(step.Left), hashSize,
			)}
		}

		dst = binary.BigEndian.AppendUint32(dst, step.Level)
		dst = append(dst, step.Left...)

		switch len(step.Right) {
		case 0:
			dst = append(dst, 0)
		case hashSize:
			dst = append(dst, 1)
			dst = append(dst, step.Right...)
		default:
			return dst, FormatError{Reason: fmt.Sprintf(
				"step %d: right hash has %d bytes, expected %d", i, len(step.Right), hashSize,
			)}
		}
	}

	return dst, nil
}

// Encode writes the encoding of proof to w.
func Encode(w io.Writer, proof blockmerkle.ProofChain) error {
	buf, err := AppendEncoded(nil, proof)
	if err != nil {
		return err
	}

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("failed to write proof: %w", err)
	}
	return nil
}

// Decode reads one encoded proof from r.
// All hashes in the returned proof share a single backing allocation.
func Decode(r io.Reader) (blockmerkle.ProofChain, error) {
	var hdr [headerSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("failed to read proof header: %w", err)
	}

	if hdr[0] != magic {
		return nil, FormatError{Reason: fmt.Sprintf("bad magic byte 0x%02x", hdr[0])}
	}
	if hdr[1] != version {
		return nil, FormatError{Reason: fmt.Sprintf("unsupported version %d", hdr[1])}
	}

	hashSize := binary.BigEndian.Uint32(hdr[2:6])
	if hashSize == 0 || hashSize > MaxHashSize {
		return nil, FormatError{Reason: fmt.Sprintf("unsupported hash size %d", hashSize)}
	}
	nSteps := binary.BigEndian.Uint32(hdr[6:10])
	if nSteps == 0 || nSteps > MaxSteps {
		return nil, FormatError{Reason: fmt.Sprintf("invalid step count %d", nSteps)}
	}

	hs := int(hashSize)
	mem := make([]byte, 2*int(nSteps)*hs)
	proof := make(blockmerkle.ProofChain, nSteps)

	var levelBuf [4]byte
	var flag [1]byte
	for i := range proof {
		if _, err := io.ReadFull(r, levelBuf[:]); err != nil {
			return nil, fmt.Errorf("failed to read level of step %d: %w", i, err)
		}
		proof[i].Level = binary.BigEndian.Uint32(levelBuf[:])

		left := mem[:hs:hs]
		mem = mem[hs:]
		if _, err := io.ReadFull(r, left); err != nil {
			return nil, fmt.Errorf("failed to read left hash of step %d: %w", i, err)
		}
		proof[i].Left = left

		if _, err := io.ReadFull(r, flag[:]); err != nil {
			return nil, fmt.Errorf("failed to read right flag of step %d: %w", i, err)
		}
		switch flag[0] {
		case 0:
			// Root step; no right hash.
		case 1:
			right := mem[:hs:hs]
			if _, err := io.ReadFull(r, right); err != nil {
				return nil, fmt.Errorf("failed to read right hash of step %d: %w", i, err)
			}
			proof[i].Right = right
		default:
			return nil, FormatError{Reason: fmt.Sprintf("step %d: bad right flag %d", i, flag[0])}
		}
		mem = mem[hs:]
	}

	return proof, nil
}

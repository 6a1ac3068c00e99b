// Package stream implements the deterministic keystream cipher used by the
// curvelab envelope.
//
// The keystream comes from a linear congruential generator over uint32
// state, one byte per step. An LCG is completely predictable from a few
// output bytes; it is used here precisely because it is simple enough to
// trace on paper. It is NOT a cryptographically secure keystream and no
// amount of seeding changes that.
package stream

import (
	"github.com/pzverkov/curvelab/internal/constants"
	qerrors "github.com/pzverkov/curvelab/internal/errors"
)

// Keystream produces n pseudorandom bytes from the given seed.
//
// State starts at the seed; each step advances
// state = state·1664525 + 1013904223 (mod 2³²) and emits the low 8 bits of
// the new state. Identical (seed, n) always yields identical output, which
// is what lets the receiver regenerate the sender's keystream.
func Keystream(seed uint32, n int) []byte {
	out := make([]byte, n)
	state := seed
	for i := range out {
		state = state*constants.KeystreamMultiplier + constants.KeystreamIncrement
		out[i] = byte(state)
	}
	return out
}

// XORBytes returns the byte-wise exclusive-or of a and b, which must have
// equal length. XOR is an involution: applying the same keystream twice
// returns the original input, so encryption and decryption are the same
// operation.
func XORBytes(a, b []byte) ([]byte, error) {
	if len(a) != len(b) {
		return nil, qerrors.NewOpError("stream.XORBytes", qerrors.ErrLengthMismatch)
	}
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out, nil
}

// Package curvelab demonstrates the arithmetic behind Elliptic-Curve
// Diffie-Hellman key agreement and an ECIES-style encrypt/decrypt flow,
// over a curve small enough to enumerate by hand: y² = x³ + 2x + 3 over
// F_97, base point G = (0, 10), claimed order 50.
//
// # Quick Start
//
// Key agreement and an encrypted round trip:
//
//	import (
//	    "github.com/pzverkov/curvelab/pkg/curve"
//	    "github.com/pzverkov/curvelab/pkg/ecies"
//	)
//
//	scheme := ecies.New(curve.MustDefault())
//	alice, _ := scheme.GenerateKeyPair()
//
//	msg, _ := scheme.Encrypt("hi", 5, alice.Q)     // anyone, using Alice's public point
//	plain, _ := scheme.Decrypt(msg.Ciphertext, msg.C1, alice.D)
//
// Listing every point on the curve (for plotting):
//
//	points := curve.MustDefault().Points()
//
// # Package Structure
//
//   - pkg/field: modular arithmetic over a small prime
//   - pkg/curve: the point group, scalar multiplication, enumeration
//   - pkg/ecies: key pairs, shared secrets, encrypt/decrypt envelope
//   - pkg/stream: the LCG keystream and XOR layer
//   - pkg/codec: text/bytes/hex conversions
//   - pkg/exchange: two-party simulation with logging and tracing
//   - pkg/realdh: X25519, for contrast with the classroom curve
//   - internal/constants: the fixed curve and cipher parameters
//   - internal/errors: sentinel error values
//
// # This Is Not a Cryptographic Library
//
// Everything here is sized and built for teaching. Private scalars come
// from math/rand, scalar multiplication leaks timing, the keystream is a
// linear congruential generator, and the field has 97 elements. The code
// reproduces these properties faithfully instead of hardening them; do not
// reuse any of it where security matters.
package curvelab

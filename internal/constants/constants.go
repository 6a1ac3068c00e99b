// Package constants defines the fixed classroom curve parameters and cipher
// constants for the curvelab ECDH/ECIES demonstration engine.
//
// Security Level: none. Every value in this file is sized for blackboard
// arithmetic, not for protecting data. The parameters are deliberately tiny
// so that the whole group can be enumerated and inspected by hand.
package constants

// Classroom curve parameters.
//
// The curve is y² = x³ + 2x + 3 over F_97 with base point G = (0, 10).
// These are fixed configuration constants: the engine accepts alternate
// parameters (for tests and experiments) as an explicit curve.Params value,
// but nothing in this system makes them user-configurable at runtime.
const (
	// CurveP is the prime modulus of the classroom field.
	CurveP uint64 = 97

	// CurveA is the coefficient a of the short Weierstrass equation.
	CurveA uint64 = 2

	// CurveB is the coefficient b of the short Weierstrass equation.
	CurveB uint64 = 3

	// CurveGx is the x-coordinate of the base point G.
	CurveGx uint64 = 0

	// CurveGy is the y-coordinate of the base point G.
	CurveGy uint64 = 10

	// CurveN is the claimed order of G. It is asserted, not derived; the
	// engine trusts it for scalar range checks and key generation. Tests
	// exercise curve.VerifyGeneratorOrder to confirm n·G is the identity.
	CurveN uint64 = 50
)

// Field limits.
const (
	// MaxFieldModulus is the exclusive upper bound on moduli the field
	// package accepts. Keeping p below 2³² lets products of two reduced
	// elements fit in a uint64 without resorting to math/big.
	MaxFieldModulus uint64 = 1 << 32
)

// Keystream generator parameters.
//
// The stream cipher is a plain linear congruential generator. The multiplier
// and increment are the classic Numerical Recipes constants; the modulus is
// implicit in the uint32 state. An LCG keystream is trivially predictable
// and must never be mistaken for a secure cipher.
const (
	// KeystreamMultiplier is the LCG multiplier.
	KeystreamMultiplier uint32 = 1664525

	// KeystreamIncrement is the LCG increment.
	KeystreamIncrement uint32 = 1013904223
)

// SharedSecretSeedBits is the width of the keystream seed derived from a
// shared point's x-coordinate (x mod 2³²).
const SharedSecretSeedBits = 32

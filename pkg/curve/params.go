// Package curve implements the group of points on a short Weierstrass
// elliptic curve y² = x³ + ax + b over a small prime field.
//
// Mathematical Foundation:
//
// The points satisfying the curve equation, together with a point at
// infinity acting as the neutral element, form an abelian group under the
// chord-tangent law: three collinear points sum to the identity. The group
// law has exact special cases (identity operands, mutual negatives,
// tangent doubling) which this package implements exhaustively.
//
// Security Properties: none. Scalar multiplication is a plain double-and-add
// loop whose timing leaks the bit pattern of the scalar, and the fields are
// sized for enumeration on a blackboard. Nothing here may be reused where
// actual security is expected.
package curve

import (
	"github.com/pzverkov/curvelab/internal/constants"
	qerrors "github.com/pzverkov/curvelab/internal/errors"
	"github.com/pzverkov/curvelab/pkg/field"
)

// Params holds the immutable configuration of a curve: the prime modulus,
// the equation coefficients, the base point and the claimed order of the
// base point.
//
// N is asserted, not verified: Validate does not check that N·G is the
// identity, preserving the lightweight reference behavior. Callers that
// want the assertion checked can call Curve.VerifyGeneratorOrder, which
// tests do for the classroom parameters.
type Params struct {
	// P is the prime modulus of the underlying field.
	P uint64

	// A and B are the coefficients of y² = x³ + Ax + B.
	A uint64
	B uint64

	// Gx, Gy are the affine coordinates of the base point G.
	Gx uint64
	Gy uint64

	// N is the claimed order of G.
	N uint64
}

// Default returns the fixed classroom parameters:
// p=97, a=2, b=3, G=(0,10), n=50.
func Default() Params {
	return Params{
		P:  constants.CurveP,
		A:  constants.CurveA,
		B:  constants.CurveB,
		Gx: constants.CurveGx,
		Gy: constants.CurveGy,
		N:  constants.CurveN,
	}
}

// G returns the base point.
func (p Params) G() Point {
	return XY(p.Gx, p.Gy)
}

// Validate checks that the parameters can form a curve group: the modulus
// is an odd prime within the field limit, N is at least 2, and the base
// point satisfies the curve equation. Primality is checked by trial
// division, which is fine at classroom sizes.
func (p Params) Validate() error {
	if p.P >= constants.MaxFieldModulus || !isPrime(p.P) {
		return qerrors.NewOpError("Params.Validate", qerrors.ErrInvalidCurveParams)
	}
	if p.N < 2 {
		return qerrors.NewOpError("Params.Validate", qerrors.ErrInvalidCurveParams)
	}
	f, err := field.New(p.P)
	if err != nil {
		return err
	}
	if !onCurve(f, p.A, p.B, p.Gx, p.Gy) {
		return qerrors.NewOpError("Params.Validate", qerrors.ErrInvalidCurveParams)
	}
	return nil
}

// isPrime reports whether n is prime, by trial division up to √n.
func isPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := uint64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// onCurve reports whether (x, y) satisfies y² ≡ x³ + ax + b over f.
func onCurve(f field.Field, a, b, x, y uint64) bool {
	lhs := f.Mul(y, y)
	rhs := f.Add(f.Mul(f.Mul(x, x), x), f.Add(f.Mul(a, x), b))
	return lhs == rhs
}

// Package field implements arithmetic in the prime field F_p for small p.
//
// Mathematical Foundation:
//
// F_p is the set of integers {0, 1, ..., p-1} with addition and
// multiplication reduced modulo p. When p is prime every non-zero element
// has a multiplicative inverse, which this package computes via Fermat's
// little theorem: x^(p-1) ≡ 1 (mod p), hence x^(p-2) ≡ x⁻¹ (mod p).
//
// The package is built for classroom-sized moduli: p must be below 2³² so
// that the product of two reduced elements fits in a uint64. It performs
// exact integer arithmetic with no constant-time guarantees.
package field

import (
	"github.com/pzverkov/curvelab/internal/constants"
	qerrors "github.com/pzverkov/curvelab/internal/errors"
)

// Field performs modular arithmetic over a fixed modulus P.
//
// All methods expect operands already reduced into [0, P) unless noted
// otherwise, and every result is normalized back into that range.
type Field struct {
	// P is the modulus. Correctness of Inv requires P to be prime; the
	// field itself does not verify primality (curve.Params.Validate does).
	P uint64
}

// New creates a field with the given modulus. It returns an error if the
// modulus is too small to form a field or too large for uint64 products.
func New(p uint64) (Field, error) {
	if p < 2 || p >= constants.MaxFieldModulus {
		return Field{}, qerrors.NewOpError("field.New", qerrors.ErrInvalidCurveParams)
	}
	return Field{P: p}, nil
}

// Reduce returns x mod P normalized to the non-negative range [0, P).
// It accepts negative inputs, which arise naturally from subtraction in
// the group-law formulas.
func (f Field) Reduce(x int64) uint64 {
	p := int64(f.P)
	r := x % p
	if r < 0 {
		r += p
	}
	return uint64(r)
}

// Add returns (x + y) mod P.
func (f Field) Add(x, y uint64) uint64 {
	return (x + y) % f.P
}

// Sub returns (x - y) mod P, normalized to [0, P).
func (f Field) Sub(x, y uint64) uint64 {
	return (x%f.P + f.P - y%f.P) % f.P
}

// Mul returns (x · y) mod P.
func (f Field) Mul(x, y uint64) uint64 {
	return (x % f.P) * (y % f.P) % f.P
}

// Pow returns base^exp mod P by square-and-multiply. The exponent is
// unsigned, so negative exponents cannot be expressed; use Inv for
// multiplicative inverses.
func (f Field) Pow(base, exp uint64) uint64 {
	result := uint64(1)
	b := base % f.P
	for exp > 0 {
		if exp&1 == 1 {
			result = result * b % f.P
		}
		b = b * b % f.P
		exp >>= 1
	}
	return result
}

// Inv returns the multiplicative inverse of x mod P via Fermat's little
// theorem, i.e. x^(P-2) mod P.
//
// Preconditions: P is prime and x ≢ 0 (mod P). There is deliberately no
// zero check: for x ≡ 0 the result is garbage (0), matching the reference
// behavior. Callers own the precondition.
func (f Field) Inv(x uint64) uint64 {
	return f.Pow(x, f.P-2)
}

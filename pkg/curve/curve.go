package curve

import (
	qerrors "github.com/pzverkov/curvelab/internal/errors"
	"github.com/pzverkov/curvelab/pkg/field"
)

// Curve is a short Weierstrass curve over a prime field, carrying the
// validated parameters and the field it operates in. A Curve is immutable
// after construction and safe for concurrent use.
type Curve struct {
	params Params
	f      field.Field
}

// New creates a curve from the given parameters after validating them.
func New(params Params) (*Curve, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	f, err := field.New(params.P)
	if err != nil {
		return nil, err
	}
	return &Curve{params: params, f: f}, nil
}

// MustDefault returns a curve with the classroom parameters. The defaults
// are known-valid, so a validation failure is a programming error.
func MustDefault() *Curve {
	c, err := New(Default())
	if err != nil {
		panic("curve: default parameters failed validation: " + err.Error())
	}
	return c
}

// Params returns the curve's configuration.
func (c *Curve) Params() Params {
	return c.params
}

// Field returns the underlying prime field.
func (c *Curve) Field() field.Field {
	return c.f
}

// G returns the base point.
func (c *Curve) G() Point {
	return c.params.G()
}

// IsOnCurve reports whether p lies on the curve. The point at infinity is
// on every curve by convention.
func (c *Curve) IsOnCurve(p Point) bool {
	if p.IsInfinity() {
		return true
	}
	return onCurve(c.f, c.params.A, c.params.B, p.X, p.Y)
}

// CheckPoint returns ErrPointNotOnCurve if p does not lie on the curve.
// Externally supplied points must pass through this before being used in
// group arithmetic.
func (c *Curve) CheckPoint(p Point) error {
	if !c.IsOnCurve(p) {
		return qerrors.NewOpError("Curve.CheckPoint", qerrors.ErrPointNotOnCurve)
	}
	return nil
}

// Negate returns -p: the infinity point maps to itself, an affine point
// (x, y) maps to (x, p-y mod p).
func (c *Curve) Negate(p Point) Point {
	if p.IsInfinity() {
		return p
	}
	return XY(p.X, c.f.Sub(0, p.Y))
}

// Add computes p + q under the chord-tangent group law.
//
// Cases, in order:
//   - ∞ + q = q and p + ∞ = p
//   - p + (-p) = ∞, which covers doubling a point with y = 0
//     (a vertical tangent)
//   - p ≠ q: secant slope m = (qy - py) / (qx - px)
//   - p = q: tangent slope m = (3·px² + a) / (2·py)
//
// then x₃ = m² - px - qx and y₃ = m·(px - x₃) - py, reduced mod p.
func (c *Curve) Add(p, q Point) Point {
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}

	if p.X == q.X && c.f.Add(p.Y, q.Y) == 0 {
		return Infinity()
	}

	var m uint64
	if p.X == q.X && p.Y == q.Y {
		// Tangent: m = (3x² + a) / 2y. y ≠ 0 here, the vertical
		// tangent was handled above.
		num := c.f.Add(c.f.Mul(3, c.f.Mul(p.X, p.X)), c.params.A)
		m = c.f.Mul(num, c.f.Inv(c.f.Mul(2, p.Y)))
	} else {
		// Secant: m = (qy - py) / (qx - px). px ≠ qx here.
		m = c.f.Mul(c.f.Sub(q.Y, p.Y), c.f.Inv(c.f.Sub(q.X, p.X)))
	}

	x3 := c.f.Sub(c.f.Sub(c.f.Mul(m, m), p.X), q.X)
	y3 := c.f.Sub(c.f.Mul(m, c.f.Sub(p.X, x3)), p.Y)
	return XY(x3, y3)
}

// Double computes p + p.
func (c *Curve) Double(p Point) Point {
	return c.Add(p, p)
}

// ScalarMult computes k·p by double-and-add: test the low bit of k,
// conditionally accumulate, double, shift. k may be any non-negative
// integer; k = 0 yields the point at infinity.
//
// This is NOT constant time — its running time depends on the bit pattern
// of k. Acceptable for a teaching tool, disqualifying anywhere else.
func (c *Curve) ScalarMult(k uint64, p Point) Point {
	acc := Infinity()
	addend := p
	for k > 0 {
		if k&1 == 1 {
			acc = c.Add(acc, addend)
		}
		addend = c.Add(addend, addend)
		k >>= 1
	}
	return acc
}

// VerifyGeneratorOrder reports whether N·G is the point at infinity, i.e.
// whether the claimed order actually annihilates the base point. The check
// is optional by design: nothing calls it on the key-generation path.
func (c *Curve) VerifyGeneratorOrder() bool {
	return c.ScalarMult(c.params.N, c.G()).IsInfinity()
}

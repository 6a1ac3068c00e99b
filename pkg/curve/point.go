package curve

import "fmt"

// Point is a point on a curve: either an affine pair (X, Y) or the point
// at infinity, the group's neutral element.
//
// The two variants are modeled explicitly (an internal infinity flag with
// constructors for each case) rather than as a nullable pointer, so that
// every special case of the group law is spelled out and tested.
type Point struct {
	// X, Y are the affine coordinates. They are meaningless when the
	// point is the point at infinity.
	X uint64
	Y uint64

	inf bool
}

// XY returns the affine point (x, y). It performs no curve membership
// check; use Curve.IsOnCurve to validate externally supplied points.
func XY(x, y uint64) Point {
	return Point{X: x, Y: y}
}

// Infinity returns the point at infinity.
func Infinity() Point {
	return Point{inf: true}
}

// IsInfinity reports whether the point is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.inf
}

// Equal reports whether two points are equal: both at infinity, or both
// affine with identical coordinates.
func (p Point) Equal(q Point) bool {
	if p.inf || q.inf {
		return p.inf == q.inf
	}
	return p.X == q.X && p.Y == q.Y
}

// String renders the point for logs and the demo CLI.
func (p Point) String() string {
	if p.inf {
		return "∞"
	}
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

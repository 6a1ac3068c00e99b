package curve

// Points enumerates every affine point on the curve by brute force: for
// each x in [0, p) it computes the right-hand side x³ + ax + b and tests
// every y in [0, p) against it. Points are returned in increasing (x, y)
// order; the point at infinity is never included, since it has no
// coordinates.
//
// The result is a pure, restartable snapshot: repeated calls return equal
// sequences. Complexity is O(p²), which is only acceptable because p is
// classroom-sized; never point this at a production field.
func (c *Curve) Points() []Point {
	pts := make([]Point, 0)
	for x := uint64(0); x < c.params.P; x++ {
		rhs := c.f.Add(c.f.Mul(c.f.Mul(x, x), x), c.f.Add(c.f.Mul(c.params.A, x), c.params.B))
		for y := uint64(0); y < c.params.P; y++ {
			if c.f.Mul(y, y) == rhs {
				pts = append(pts, XY(x, y))
			}
		}
	}
	return pts
}

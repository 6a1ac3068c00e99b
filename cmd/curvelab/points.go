package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pzverkov/curvelab/pkg/curve"
)

func pointsCommand() {
	fs := flag.NewFlagSet("points", flag.ExitOnError)
	p := fs.Uint64("p", 97, "Prime modulus")
	a := fs.Uint64("a", 2, "Coefficient a")
	b := fs.Uint64("b", 3, "Coefficient b")
	perLine := fs.Int("columns", 6, "Points per output line")

	fs.Usage = func() {
		fmt.Println(`USAGE: curvelab points [options]

Enumerate every affine point of y² = x³ + ax + b over F_p in increasing
(x, y) order. Brute force, O(p²): keep p blackboard-sized.

OPTIONS:`)
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[2:])

	if *p < 2 {
		fatalf("modulus must be at least 2")
	}

	// The enumerator only needs the equation; reuse the classroom base
	// point and order when the caller asks for the default curve, and
	// search for any curve point otherwise.
	params := curve.Params{P: *p, A: *a % *p, B: *b % *p, Gx: 0, Gy: 0, N: 2}
	if def := curve.Default(); *p == def.P && *a == def.A && *b == def.B {
		params = def
	} else if !pickBasePoint(&params) {
		fatalf("no points on y² = x³ + %dx + %d over F_%d", *a, *b, *p)
	}

	crv, err := curve.New(params)
	if err != nil {
		fatalf("invalid parameters: %v", err)
	}

	pts := crv.Points()
	fmt.Printf("y² = x³ + %dx + %d over F_%d: %d affine points (+ ∞)\n\n", *a, *b, *p, len(pts))
	for i, pt := range pts {
		fmt.Printf("%-12s", pt.String())
		if (i+1)%*perLine == 0 {
			fmt.Println()
		}
	}
	if len(pts)%*perLine != 0 {
		fmt.Println()
	}
}

// pickBasePoint finds the first curve point by brute force so that
// arbitrary -p/-a/-b combinations pass parameter validation. The claimed
// order stays at the placeholder minimum; enumeration never uses it.
func pickBasePoint(params *curve.Params) bool {
	for x := uint64(0); x < params.P; x++ {
		rhs := (x*x%params.P*x + params.A*x + params.B) % params.P
		for y := uint64(0); y < params.P; y++ {
			if y*y%params.P == rhs {
				params.Gx, params.Gy = x, y
				return true
			}
		}
	}
	return false
}

package constants_test

import (
	"testing"

	"github.com/pzverkov/curvelab/internal/constants"
)

func TestClassroomCurveConstants(t *testing.T) {
	if constants.CurveP != 97 {
		t.Errorf("CurveP = %d, want 97", constants.CurveP)
	}
	if constants.CurveA != 2 || constants.CurveB != 3 {
		t.Errorf("coefficients = (%d, %d), want (2, 3)", constants.CurveA, constants.CurveB)
	}
	if constants.CurveGx != 0 || constants.CurveGy != 10 {
		t.Errorf("G = (%d, %d), want (0, 10)", constants.CurveGx, constants.CurveGy)
	}
	if constants.CurveN != 50 {
		t.Errorf("CurveN = %d, want 50", constants.CurveN)
	}
}

func TestBasePointSatisfiesEquation(t *testing.T) {
	// y² ≡ x³ + ax + b (mod p) for G.
	lhs := constants.CurveGy * constants.CurveGy % constants.CurveP
	rhs := (constants.CurveGx*constants.CurveGx*constants.CurveGx +
		constants.CurveA*constants.CurveGx + constants.CurveB) % constants.CurveP
	if lhs != rhs {
		t.Errorf("G fails the curve equation: %d != %d", lhs, rhs)
	}
}

func TestKeystreamConstants(t *testing.T) {
	// The classic Numerical Recipes LCG pair.
	if constants.KeystreamMultiplier != 1664525 {
		t.Errorf("KeystreamMultiplier = %d", constants.KeystreamMultiplier)
	}
	if constants.KeystreamIncrement != 1013904223 {
		t.Errorf("KeystreamIncrement = %d", constants.KeystreamIncrement)
	}
}

func TestFieldLimit(t *testing.T) {
	if constants.MaxFieldModulus != 1<<32 {
		t.Errorf("MaxFieldModulus = %d, want 2^32", constants.MaxFieldModulus)
	}
	if constants.CurveP >= constants.MaxFieldModulus {
		t.Error("classroom modulus must fit the field limit")
	}
}

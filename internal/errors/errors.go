// Package errors defines custom error types for the curvelab engine.
// All failure modes in the core are local, deterministic and recoverable:
// they describe bad inputs, never I/O, so there are no retry semantics.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for curve group operations
var (
	// ErrPointNotOnCurve indicates an externally supplied point fails the
	// curve equation check. Points are validated before being used in
	// arithmetic; points produced by the group law are on-curve by
	// construction.
	ErrPointNotOnCurve = errors.New("curve: point is not on the curve")

	// ErrInvalidCurveParams indicates curve parameters failed validation
	// (composite or oversized modulus, or a base point off the curve).
	ErrInvalidCurveParams = errors.New("curve: invalid curve parameters")
)

// Sentinel errors for key agreement and envelope operations
var (
	// ErrScalarOutOfRange indicates a private or ephemeral scalar outside
	// [1, n-1]. Out-of-range scalars are rejected, never clamped.
	ErrScalarOutOfRange = errors.New("ecies: scalar outside [1, n-1]")
)

// Sentinel errors for codec operations
var (
	// ErrMalformedHex indicates hex input that, after stripping non-hex
	// characters, contains an odd number of digits. Decoding rejects such
	// input rather than silently truncating the final nibble.
	ErrMalformedHex = errors.New("codec: malformed hex input")
)

// Sentinel errors for stream cipher operations
var (
	// ErrLengthMismatch indicates the two inputs to a byte-wise XOR have
	// different lengths.
	ErrLengthMismatch = errors.New("stream: input lengths differ")
)

// OpError wraps an error with the name of the operation that produced it.
type OpError struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// NewOpError creates a new OpError.
func NewOpError(op string, err error) *OpError {
	return &OpError{Op: op, Err: err}
}

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around errors.As.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Package codec converts between text, raw bytes and hexadecimal strings
// for the curvelab envelope format.
//
// Text conversion uses Go's native string⇄[]byte semantics: a string's
// UTF-8 bytes are passed through verbatim in both directions, so decoding
// bytes that are not valid UTF-8 yields a string containing those bytes
// unchanged (the host environment's behavior).
//
// Hex decoding is forgiving about junk but strict about completeness: any
// character that is not a hex digit is stripped before decoding, and an odd
// number of remaining digits is rejected with ErrMalformedHex rather than
// silently dropping the trailing nibble.
package codec

import (
	"strings"

	qerrors "github.com/pzverkov/curvelab/internal/errors"
)

const hexDigits = "0123456789abcdef"

// TextToBytes returns the UTF-8 encoding of s.
func TextToBytes(s string) []byte {
	return []byte(s)
}

// BytesToText interprets b as UTF-8 text. Malformed sequences are carried
// through byte-for-byte, per Go's string conversion semantics.
func BytesToText(b []byte) string {
	return string(b)
}

// EncodeHex encodes b as lowercase hex, two characters per byte, with no
// separators.
func EncodeHex(b []byte) string {
	var sb strings.Builder
	sb.Grow(2 * len(b))
	for _, v := range b {
		sb.WriteByte(hexDigits[v>>4])
		sb.WriteByte(hexDigits[v&0x0f])
	}
	return sb.String()
}

// DecodeHex decodes a hex string into bytes. Non-hex characters (spaces,
// colons, prefixes, anything else) are stripped first; both upper and
// lower case digits are accepted. If an odd number of digits remains after
// stripping, decoding fails with ErrMalformedHex: a lone trailing nibble
// means the input was damaged, and truncating it would lose data silently.
func DecodeHex(s string) ([]byte, error) {
	nibbles := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if v, ok := hexNibble(s[i]); ok {
			nibbles = append(nibbles, v)
		}
	}

	if len(nibbles)%2 != 0 {
		return nil, qerrors.NewOpError("codec.DecodeHex", qerrors.ErrMalformedHex)
	}

	out := make([]byte, len(nibbles)/2)
	for i := range out {
		out[i] = nibbles[2*i]<<4 | nibbles[2*i+1]
	}
	return out, nil
}

// hexNibble returns the value of a hex digit and whether c is one.
func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

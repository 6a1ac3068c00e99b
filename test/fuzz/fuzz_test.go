// Package fuzz provides fuzz tests for the input-handling surfaces of the
// curvelab engine.
//
// Run fuzz tests with:
//
//	go test -fuzz=FuzzDecodeHex -fuzztime=30s ./test/fuzz/
//	go test -fuzz=FuzzDecryptHex -fuzztime=30s ./test/fuzz/
//	go test -fuzz=FuzzTextRoundTrip -fuzztime=30s ./test/fuzz/
package fuzz

import (
	"bytes"
	"testing"

	"github.com/pzverkov/curvelab/pkg/codec"
	"github.com/pzverkov/curvelab/pkg/curve"
	"github.com/pzverkov/curvelab/pkg/ecies"
)

// FuzzDecodeHex fuzzes the forgiving hex decoder. Decoding must never
// panic, and whatever it accepts must re-encode to a decodable string.
func FuzzDecodeHex(f *testing.F) {
	f.Add("")
	f.Add("7846")
	f.Add("de:ad:be:ef")
	f.Add("abc")
	f.Add("zz not hex at all")
	f.Add("0xDEADBEEF")

	f.Fuzz(func(t *testing.T, s string) {
		out, err := codec.DecodeHex(s)
		if err != nil {
			return
		}

		// Accepted input round-trips through the strict encoder.
		again, err := codec.DecodeHex(codec.EncodeHex(out))
		if err != nil {
			t.Fatalf("re-decode of %x failed: %v", out, err)
		}
		if !bytes.Equal(again, out) {
			t.Errorf("round trip changed bytes: %x vs %x", again, out)
		}
	})
}

// FuzzDecryptHex feeds arbitrary ciphertext strings to Decrypt. Malformed
// input must produce an error, never a panic; well-formed input must
// decrypt deterministically.
func FuzzDecryptHex(f *testing.F) {
	f.Add("7846")
	f.Add("")
	f.Add("abc")
	f.Add("not hex")

	scheme := ecies.New(curve.MustDefault())
	c1 := curve.XY(88, 56) // 5·G

	f.Fuzz(func(t *testing.T, ciphertext string) {
		first, err := scheme.Decrypt(ciphertext, c1, 7)
		if err != nil {
			return
		}
		second, err := scheme.Decrypt(ciphertext, c1, 7)
		if err != nil {
			t.Fatalf("second decrypt of accepted input failed: %v", err)
		}
		if first != second {
			t.Errorf("decrypt not deterministic: %q vs %q", first, second)
		}
	})
}

// FuzzTextRoundTrip checks that arbitrary byte sequences survive the
// bytes → text → bytes conversion unchanged.
func FuzzTextRoundTrip(f *testing.F) {
	f.Add([]byte("hi"))
	f.Add([]byte{})
	f.Add([]byte{0xff, 0xfe, 0x00})

	f.Fuzz(func(t *testing.T, data []byte) {
		out := codec.TextToBytes(codec.BytesToText(data))
		if !bytes.Equal(out, data) {
			t.Errorf("round trip changed bytes: %x vs %x", out, data)
		}
	})
}

// FuzzEncryptDecrypt round-trips arbitrary plaintext through the full
// envelope with in-range scalars derived from the fuzz input.
func FuzzEncryptDecrypt(f *testing.F) {
	f.Add("hi", uint64(7), uint64(5))
	f.Add("", uint64(1), uint64(49))
	f.Add("longer message \x00 with control bytes", uint64(25), uint64(13))

	scheme := ecies.New(curve.MustDefault())

	f.Fuzz(func(t *testing.T, plaintext string, dRaw, kRaw uint64) {
		d := 1 + dRaw%49
		k := 1 + kRaw%49

		q, err := scheme.DerivePublicKey(d)
		if err != nil {
			t.Fatalf("DerivePublicKey(%d) failed: %v", d, err)
		}
		msg, err := scheme.Encrypt(plaintext, k, q)
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}
		got, err := scheme.Decrypt(msg.Ciphertext, msg.C1, d)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}
		if got != plaintext {
			t.Errorf("d=%d k=%d: round trip of %q = %q", d, k, plaintext, got)
		}
	})
}

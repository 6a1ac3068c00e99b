package stream_test

import (
	"bytes"
	"testing"

	qerrors "github.com/pzverkov/curvelab/internal/errors"
	"github.com/pzverkov/curvelab/pkg/stream"
)

func TestKeystreamKnownValues(t *testing.T) {
	// First bytes for seed 53 (the shared-point seed of the classroom
	// scenario): state₁ = 53·1664525 + 1013904223, low byte 0x10.
	got := stream.Keystream(53, 2)
	want := []byte{0x10, 0x2f}
	if !bytes.Equal(got, want) {
		t.Errorf("Keystream(53, 2) = %x, want %x", got, want)
	}
}

func TestKeystreamDeterministic(t *testing.T) {
	seeds := []uint32{0, 1, 53, 0xffffffff}
	for _, seed := range seeds {
		a := stream.Keystream(seed, 64)
		b := stream.Keystream(seed, 64)
		if !bytes.Equal(a, b) {
			t.Errorf("seed %d: repeated calls differ", seed)
		}
	}
}

func TestKeystreamRestartable(t *testing.T) {
	// A longer stream starts with the shorter one: the generator has no
	// hidden state between calls.
	short := stream.Keystream(7, 8)
	long := stream.Keystream(7, 32)
	if !bytes.Equal(long[:8], short) {
		t.Errorf("prefix mismatch: %x vs %x", long[:8], short)
	}
}

func TestKeystreamLength(t *testing.T) {
	for _, n := range []int{0, 1, 16, 1000} {
		if got := len(stream.Keystream(1, n)); got != n {
			t.Errorf("Keystream(1, %d) returned %d bytes", n, got)
		}
	}
}

func TestKeystreamSeedsDiverge(t *testing.T) {
	if bytes.Equal(stream.Keystream(1, 16), stream.Keystream(2, 16)) {
		t.Error("different seeds produced identical keystreams")
	}
}

func TestXORBytes(t *testing.T) {
	a := []byte{0x00, 0xff, 0xaa, 0x55}
	b := []byte{0xff, 0xff, 0x0f, 0xf0}
	want := []byte{0xff, 0x00, 0xa5, 0xa5}

	got, err := stream.XORBytes(a, b)
	if err != nil {
		t.Fatalf("XORBytes failed: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("XORBytes = %x, want %x", got, want)
	}
}

func TestXORBytesLengthMismatch(t *testing.T) {
	if _, err := stream.XORBytes([]byte{1, 2}, []byte{1}); !qerrors.Is(err, qerrors.ErrLengthMismatch) {
		t.Errorf("got %v, want ErrLengthMismatch", err)
	}
}

func TestXORInvolution(t *testing.T) {
	msg := []byte("attack at dawn")
	ks := stream.Keystream(1234, len(msg))

	ct, err := stream.XORBytes(msg, ks)
	if err != nil {
		t.Fatalf("XORBytes failed: %v", err)
	}
	pt, err := stream.XORBytes(ct, ks)
	if err != nil {
		t.Fatalf("XORBytes failed: %v", err)
	}
	if !bytes.Equal(pt, msg) {
		t.Errorf("xor(xor(m, ks), ks) = %x, want %x", pt, msg)
	}
}

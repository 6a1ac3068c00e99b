package realdh_test

import (
	"bytes"
	"testing"

	"github.com/pzverkov/curvelab/pkg/realdh"
)

func TestKeyExchange(t *testing.T) {
	alice, err := realdh.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair failed: %v", err)
	}
	bob, err := realdh.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair failed: %v", err)
	}

	fromAlice, err := alice.SharedSecret(bob.PublicKey())
	if err != nil {
		t.Fatalf("SharedSecret failed for alice: %v", err)
	}
	fromBob, err := bob.SharedSecret(alice.PublicKey())
	if err != nil {
		t.Fatalf("SharedSecret failed for bob: %v", err)
	}

	if !bytes.Equal(fromAlice, fromBob) {
		t.Error("X25519 shared secrets do not match")
	}
	if len(fromAlice) != realdh.KeySize {
		t.Errorf("shared secret size = %d, want %d", len(fromAlice), realdh.KeySize)
	}
}

func TestKeyPairFromSecretDeterministic(t *testing.T) {
	secret := bytes.Repeat([]byte{0x42}, realdh.KeySize)

	a, err := realdh.KeyPairFromSecret(secret)
	if err != nil {
		t.Fatalf("KeyPairFromSecret failed: %v", err)
	}
	b, err := realdh.KeyPairFromSecret(secret)
	if err != nil {
		t.Fatalf("KeyPairFromSecret failed: %v", err)
	}
	if !bytes.Equal(a.PublicKey(), b.PublicKey()) {
		t.Error("same secret produced different public keys")
	}
}

func TestKeyPairFromSecretBadSize(t *testing.T) {
	if _, err := realdh.KeyPairFromSecret([]byte{1, 2, 3}); err == nil {
		t.Error("short secret should be rejected")
	}
}

func TestSharedSecretBadPeer(t *testing.T) {
	kp, err := realdh.GenerateKeyPair()
	if err != nil {
		t.Fatal(err)
	}

	if _, err := kp.SharedSecret([]byte{1, 2, 3}); err == nil {
		t.Error("short peer key should be rejected")
	}
	// The all-zero key is a low-order point; Shared must refuse it.
	if _, err := kp.SharedSecret(make([]byte, realdh.KeySize)); err == nil {
		t.Error("low-order peer key should be rejected")
	}
}

// Package integration provides end-to-end tests for the curvelab engine:
// two parties agreeing on a secret and exchanging encrypted messages
// using only public values.
package integration

import (
	"bytes"
	"context"
	"testing"

	"github.com/pzverkov/curvelab/pkg/curve"
	"github.com/pzverkov/curvelab/pkg/ecies"
	"github.com/pzverkov/curvelab/pkg/exchange"
	"github.com/pzverkov/curvelab/pkg/metrics"
)

// TestTwoPartyConversation runs a full conversation in both directions
// with observability wired the way the demo CLI wires it.
func TestTwoPartyConversation(t *testing.T) {
	var logBuf bytes.Buffer
	tracer := metrics.NewSimpleTracer()
	collector := metrics.NewCollector()
	scheme := ecies.New(curve.MustDefault())

	opts := []exchange.Option{
		exchange.WithLogger(metrics.TestLogger(&logBuf)),
		exchange.WithTracer(tracer),
		exchange.WithCollector(collector),
	}

	alice, err := exchange.NewParty("alice", scheme, opts...)
	if err != nil {
		t.Fatalf("creating alice: %v", err)
	}
	bob, err := exchange.NewParty("bob", scheme, opts...)
	if err != nil {
		t.Fatalf("creating bob: %v", err)
	}

	ctx := context.Background()
	conversation := []struct {
		from, to *exchange.Party
		text     string
	}{
		{alice, bob, "hello bob"},
		{bob, alice, "hello alice"},
		{alice, bob, "second message, fresh ephemeral"},
	}

	for _, m := range conversation {
		msg, err := m.from.EncryptTo(ctx, m.to.PublicKey(), m.text)
		if err != nil {
			t.Fatalf("%s → %s: encrypt failed: %v", m.from.Name(), m.to.Name(), err)
		}
		got, err := m.to.Decrypt(ctx, msg)
		if err != nil {
			t.Fatalf("%s → %s: decrypt failed: %v", m.from.Name(), m.to.Name(), err)
		}
		if got != m.text {
			t.Errorf("%s → %s: got %q, want %q", m.from.Name(), m.to.Name(), got, m.text)
		}
	}

	snap := collector.Snapshot()
	if snap.Encryptions != 3 || snap.Decryptions != 3 {
		t.Errorf("unexpected counters: %+v", snap)
	}
	if spans := tracer.Spans(); len(spans) != 6 {
		t.Errorf("recorded %d spans, want 6", len(spans))
	}
	if logBuf.Len() == 0 {
		t.Error("no log output produced")
	}
}

// TestKnownScenarioEndToEnd pins the whole stack to the blackboard
// numbers: d=7, k=5, plaintext "hi".
func TestKnownScenarioEndToEnd(t *testing.T) {
	crv := curve.MustDefault()
	scheme := ecies.New(crv)

	if !crv.VerifyGeneratorOrder() {
		t.Fatal("claimed order does not annihilate G")
	}

	recipient, err := scheme.KeyPairFromScalar(7)
	if err != nil {
		t.Fatal(err)
	}
	msg, err := scheme.Encrypt("hi", 5, recipient.Q)
	if err != nil {
		t.Fatal(err)
	}

	if !msg.C1.Equal(curve.XY(88, 56)) || msg.Ciphertext != "7846" {
		t.Errorf("envelope = (%v, %q), want ((88, 56), %q)", msg.C1, msg.Ciphertext, "7846")
	}

	plain, err := scheme.Decrypt(msg.Ciphertext, msg.C1, recipient.D)
	if err != nil {
		t.Fatal(err)
	}
	if plain != "hi" {
		t.Errorf("decrypt = %q", plain)
	}
}

// TestEavesdropperSeesOnlyPublicValues decrypts with a wrong scalar and
// confirms the plaintext does not fall out, then breaks the toy curve the
// way an eavesdropper actually would: by brute force over all 49 scalars.
func TestEavesdropperSeesOnlyPublicValues(t *testing.T) {
	scheme := ecies.New(curve.MustDefault())

	recipient, err := scheme.KeyPairFromScalar(7)
	if err != nil {
		t.Fatal(err)
	}
	msg, err := scheme.Encrypt("hi", 5, recipient.Q)
	if err != nil {
		t.Fatal(err)
	}

	// A wrong private scalar yields garbage, not an error: XOR has no
	// integrity. That asymmetry is part of the lesson.
	wrong, err := scheme.Decrypt(msg.Ciphertext, msg.C1, 9)
	if err != nil {
		t.Fatalf("decrypt with wrong scalar should still run: %v", err)
	}
	if wrong == "hi" {
		t.Error("wrong scalar should not recover the plaintext")
	}

	// Brute force over the scalar space recovers it, demonstrating why
	// a 50-element group protects nothing.
	found := false
	for d := uint64(1); d < 50; d++ {
		if got, err := scheme.Decrypt(msg.Ciphertext, msg.C1, d); err == nil && got == "hi" {
			found = true
			break
		}
	}
	if !found {
		t.Error("brute force over 49 scalars should always succeed")
	}
}

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pzverkov/curvelab/pkg/codec"
	"github.com/pzverkov/curvelab/pkg/curve"
	"github.com/pzverkov/curvelab/pkg/ecies"
	"github.com/pzverkov/curvelab/pkg/exchange"
	"github.com/pzverkov/curvelab/pkg/realdh"
)

func contrastCommand() {
	fs := flag.NewFlagSet("contrast", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Println(`USAGE: curvelab contrast

Run the same Diffie-Hellman dance twice: once on the 100-point classroom
curve, once on Curve25519. The algebra is identical; the security is not.`)
	}
	_ = fs.Parse(os.Args[2:])

	fmt.Println("── Classroom curve (p = 97) ───────────────────────────────")
	crv := curve.MustDefault()
	scheme := ecies.New(crv)

	alice, err := scheme.GenerateKeyPair()
	if err != nil {
		fatalf("toy keygen: %v", err)
	}
	bob, err := scheme.GenerateKeyPair()
	if err != nil {
		fatalf("toy keygen: %v", err)
	}
	sharedToy, err := scheme.SharedPoint(alice.D, bob.Q)
	if err != nil {
		fatalf("toy shared point: %v", err)
	}

	fmt.Printf("Group size:       %d points (fully enumerable)\n", len(crv.Points())+1)
	fmt.Printf("Private scalar:   %d  (one of 49 possibilities)\n", alice.D)
	fmt.Printf("Public point:     %v\n", alice.Q)
	fmt.Printf("Shared point:     %v, keystream seed %d\n", sharedToy, ecies.SeedFromPoint(sharedToy))
	fmt.Printf("Key fingerprint:  %s\n", exchange.TranscriptFingerprint(alice.Q, bob.Q))
	fmt.Println()

	fmt.Println("── Curve25519 (p = 2²⁵⁵ - 19) ─────────────────────────────")
	realAlice, err := realdh.GenerateKeyPair()
	if err != nil {
		fatalf("x25519 keygen: %v", err)
	}
	realBob, err := realdh.GenerateKeyPair()
	if err != nil {
		fatalf("x25519 keygen: %v", err)
	}
	sharedReal, err := realAlice.SharedSecret(realBob.PublicKey())
	if err != nil {
		fatalf("x25519 shared secret: %v", err)
	}

	fmt.Printf("Group size:       ~2²⁵² (not enumerable before heat death)\n")
	fmt.Printf("Public key:       %s (%d bytes)\n", codec.EncodeHex(realAlice.PublicKey()), realdh.KeySize)
	fmt.Printf("Shared secret:    %s\n", codec.EncodeHex(sharedReal))
	fmt.Println()

	fmt.Println("Same Diffie-Hellman identity k·(d·G) = d·(k·G) in both rows.")
	fmt.Println("Only the group size separates a toy from a tool.")
}

// Package realdh wraps X25519 (RFC 7748) Diffie-Hellman so the demo CLI
// can place the classroom curve next to a production group.
//
// The contrast is the lesson: the classroom curve has 100 points and its
// discrete logarithm falls to a table lookup, while Curve25519 has a group
// of order ~2²⁵² and a constant-time x-coordinate ladder. Same algebra,
// incomparable security.
//
// Unlike the rest of this module, key material here comes from crypto/rand:
// a "real ECDH" comparison with toy randomness would contrast nothing.
package realdh

import (
	"crypto/rand"
	"io"

	"github.com/cloudflare/circl/dh/x25519"

	qerrors "github.com/pzverkov/curvelab/internal/errors"
)

// KeySize is the size of X25519 public keys, private keys and shared
// secrets, in bytes.
const KeySize = x25519.Size

// KeyPair is an X25519 key pair.
type KeyPair struct {
	public x25519.Key
	secret x25519.Key
}

// GenerateKeyPair generates an X25519 key pair from the system CSPRNG.
func GenerateKeyPair() (*KeyPair, error) {
	var kp KeyPair
	if _, err := io.ReadFull(rand.Reader, kp.secret[:]); err != nil {
		return nil, qerrors.NewOpError("realdh.GenerateKeyPair", err)
	}
	x25519.KeyGen(&kp.public, &kp.secret)
	return &kp, nil
}

// KeyPairFromSecret builds a key pair from 32 secret bytes. Deterministic:
// the same bytes always yield the same pair.
func KeyPairFromSecret(secret []byte) (*KeyPair, error) {
	if len(secret) != KeySize {
		return nil, qerrors.NewOpError("realdh.KeyPairFromSecret", qerrors.ErrScalarOutOfRange)
	}
	var kp KeyPair
	copy(kp.secret[:], secret)
	x25519.KeyGen(&kp.public, &kp.secret)
	return &kp, nil
}

// PublicKey returns the 32-byte public key.
func (kp *KeyPair) PublicKey() []byte {
	out := make([]byte, KeySize)
	copy(out, kp.public[:])
	return out
}

// SharedSecret computes the X25519 shared secret with a peer public key.
// It fails on a malformed peer key or a low-order point.
func (kp *KeyPair) SharedSecret(peerPublic []byte) ([]byte, error) {
	if len(peerPublic) != KeySize {
		return nil, qerrors.NewOpError("realdh.SharedSecret", qerrors.ErrPointNotOnCurve)
	}
	var peer, shared x25519.Key
	copy(peer[:], peerPublic)
	if ok := x25519.Shared(&shared, &kp.secret, &peer); !ok {
		return nil, qerrors.NewOpError("realdh.SharedSecret", qerrors.ErrPointNotOnCurve)
	}
	return shared[:], nil
}

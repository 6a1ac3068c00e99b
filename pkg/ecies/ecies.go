// Package ecies implements Diffie-Hellman key agreement and an ECIES-style
// encrypt/decrypt flow over the classroom curve.
//
// Mathematical Construction:
//
// Key generation:
//
//	d ← uniform [1, n-1]
//	Q = d·G
//
// Encryption of message m under recipient public key Q with ephemeral k:
//
//	C1 = k·G
//	S  = k·Q            (shared point)
//	seed = S.x mod 2³²
//	ct = m XOR Keystream(seed, len(m))
//
// Decryption with private scalar d:
//
//	S = d·C1            (= d·k·G = k·d·G = k·Q)
//	m = ct XOR Keystream(S.x mod 2³², len(ct))
//
// Correctness rests entirely on the commutativity of scalar multiplication;
// only C1 and the ciphertext cross the boundary, never k.
//
// Security Properties: none worth the name. Scalars come from math/rand,
// scalar multiplication is not constant time, and the keystream is an LCG.
// Faithful to the reference teaching tool, including its weaknesses.
package ecies

import (
	"math/rand/v2"

	qerrors "github.com/pzverkov/curvelab/internal/errors"
	"github.com/pzverkov/curvelab/pkg/codec"
	"github.com/pzverkov/curvelab/pkg/curve"
	"github.com/pzverkov/curvelab/pkg/stream"
)

// KeyPair is a private scalar with its public point Q = d·G. Q is always
// recomputed from D, never stored independently of it.
type KeyPair struct {
	// D is the private scalar in [1, n-1].
	D uint64

	// Q is the public point d·G.
	Q curve.Point
}

// EncryptedMessage is the transmissible artifact of one encryption call:
// the ephemeral public point C1 = k·G and the hex-encoded ciphertext. The
// ephemeral scalar k itself never leaves the sender.
type EncryptedMessage struct {
	// C1 is the ephemeral public point.
	C1 curve.Point

	// Ciphertext is the XOR-encrypted message, hex encoded.
	Ciphertext string
}

// Scheme binds the key-agreement operations to an explicit curve. The
// curve is plain configuration passed in at construction, never hidden
// process-wide state, so tests can substitute adversarial parameters.
type Scheme struct {
	crv *curve.Curve
}

// New creates a scheme over the given curve.
func New(crv *curve.Curve) *Scheme {
	return &Scheme{crv: crv}
}

// Curve returns the curve the scheme operates on.
func (s *Scheme) Curve() *curve.Curve {
	return s.crv
}

// checkScalar rejects scalars outside [1, n-1].
func (s *Scheme) checkScalar(op string, d uint64) error {
	if d < 1 || d >= s.crv.Params().N {
		return qerrors.NewOpError(op, qerrors.ErrScalarOutOfRange)
	}
	return nil
}

// GeneratePrivateScalar draws a scalar uniformly from [1, n-1].
//
// The source is math/rand, an ordinary non-cryptographic generator. That
// is the point of the exercise: real key generation needs a CSPRNG, and
// this function must never be presented as suitable for one.
func (s *Scheme) GeneratePrivateScalar() uint64 {
	return 1 + rand.Uint64N(s.crv.Params().N-1)
}

// DerivePublicKey returns d·G for a scalar in [1, n-1].
func (s *Scheme) DerivePublicKey(d uint64) (curve.Point, error) {
	if err := s.checkScalar("Scheme.DerivePublicKey", d); err != nil {
		return curve.Point{}, err
	}
	return s.crv.ScalarMult(d, s.crv.G()), nil
}

// GenerateKeyPair generates a fresh key pair. The caller may replace it at
// any time; each logical party must hold its own.
func (s *Scheme) GenerateKeyPair() (*KeyPair, error) {
	return s.KeyPairFromScalar(s.GeneratePrivateScalar())
}

// KeyPairFromScalar builds a key pair from a caller-supplied scalar,
// rejecting values outside [1, n-1].
func (s *Scheme) KeyPairFromScalar(d uint64) (*KeyPair, error) {
	q, err := s.DerivePublicKey(d)
	if err != nil {
		return nil, err
	}
	return &KeyPair{D: d, Q: q}, nil
}

// SharedPoint computes scalar·peer, the ECDH shared point. It is used
// symmetrically: the sender computes k·Q, the receiver d·C1, and the two
// agree because k·(d·G) = d·(k·G).
//
// The peer point is externally supplied and is therefore checked against
// the curve equation before any arithmetic.
func (s *Scheme) SharedPoint(scalar uint64, peer curve.Point) (curve.Point, error) {
	if err := s.checkScalar("Scheme.SharedPoint", scalar); err != nil {
		return curve.Point{}, err
	}
	if err := s.crv.CheckPoint(peer); err != nil {
		return curve.Point{}, err
	}
	return s.crv.ScalarMult(scalar, peer), nil
}

// SeedFromPoint derives the 32-bit keystream seed from a point's
// x-coordinate (x mod 2³²).
//
// The point at infinity yields seed 0. This is a silent degenerate case:
// a caller that lets scalars collapse the shared point to infinity gets a
// fixed, worthless seed without any error. Kept as-is from the reference.
func SeedFromPoint(p curve.Point) uint32 {
	if p.IsInfinity() {
		return 0
	}
	return uint32(p.X)
}

// SharedSecretSeed computes the shared point and reduces it to a keystream
// seed in one step.
func (s *Scheme) SharedSecretSeed(scalar uint64, peer curve.Point) (uint32, error) {
	shared, err := s.SharedPoint(scalar, peer)
	if err != nil {
		return 0, err
	}
	return SeedFromPoint(shared), nil
}

// Encrypt encrypts plaintext for the holder of recipient's private scalar,
// using the supplied ephemeral scalar k. It fails if k is outside
// [1, n-1] or the recipient point is off the curve.
func (s *Scheme) Encrypt(plaintext string, k uint64, recipient curve.Point) (*EncryptedMessage, error) {
	seed, err := s.SharedSecretSeed(k, recipient)
	if err != nil {
		return nil, err
	}

	msg := codec.TextToBytes(plaintext)
	ct, err := stream.XORBytes(msg, stream.Keystream(seed, len(msg)))
	if err != nil {
		return nil, qerrors.NewOpError("Scheme.Encrypt", err)
	}

	return &EncryptedMessage{
		C1:         s.crv.ScalarMult(k, s.crv.G()),
		Ciphertext: codec.EncodeHex(ct),
	}, nil
}

// Decrypt recovers the plaintext from a ciphertext hex string and the
// sender's ephemeral point C1, using the recipient's private scalar d.
// It fails with a descriptive error on malformed hex, an off-curve C1 or
// an out-of-range scalar; repeated calls with identical inputs yield
// identical results.
func (s *Scheme) Decrypt(ciphertextHex string, c1 curve.Point, d uint64) (string, error) {
	ct, err := codec.DecodeHex(ciphertextHex)
	if err != nil {
		return "", err
	}

	seed, err := s.SharedSecretSeed(d, c1)
	if err != nil {
		return "", err
	}

	pt, err := stream.XORBytes(ct, stream.Keystream(seed, len(ct)))
	if err != nil {
		return "", qerrors.NewOpError("Scheme.Decrypt", err)
	}
	return codec.BytesToText(pt), nil
}

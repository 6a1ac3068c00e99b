// Package exchange simulates both ends of an encrypted channel inside one
// process: each Party owns an independent key pair over the classroom
// curve and talks to its peer purely through public values (a public
// point, then C1 + ciphertext).
//
// The package is the seam between the pure core (field, curve, ecies) and
// the outside world: it is where logging, tracing and operation counting
// live, so the core itself stays free of side effects.
package exchange

import (
	"context"

	qerrors "github.com/pzverkov/curvelab/internal/errors"
	"github.com/pzverkov/curvelab/pkg/curve"
	"github.com/pzverkov/curvelab/pkg/ecies"
	"github.com/pzverkov/curvelab/pkg/metrics"
)

// Party is one end of the simulated channel. A Party's private scalar is
// never shared; the only things crossing to the peer are public points and
// ciphertext. Parties are not safe for concurrent use; each goroutine
// should own its own.
type Party struct {
	name      string
	scheme    *ecies.Scheme
	kp        *ecies.KeyPair
	logger    *metrics.Logger
	tracer    metrics.Tracer
	collector *metrics.Collector
}

// Option configures a Party.
type Option func(*Party)

// WithLogger sets the party's logger.
func WithLogger(l *metrics.Logger) Option {
	return func(p *Party) { p.logger = l }
}

// WithTracer sets the party's tracer.
func WithTracer(t metrics.Tracer) Option {
	return func(p *Party) { p.tracer = t }
}

// WithCollector sets the party's operation counter. Parties may share one.
func WithCollector(c *metrics.Collector) Option {
	return func(p *Party) { p.collector = c }
}

// NewParty creates a named party with a freshly generated key pair.
func NewParty(name string, scheme *ecies.Scheme, opts ...Option) (*Party, error) {
	p := &Party{
		name:      name,
		scheme:    scheme,
		logger:    metrics.NullLogger(),
		tracer:    metrics.NoOpTracer{},
		collector: metrics.NewCollector(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.Named(name)

	kp, err := scheme.GenerateKeyPair()
	if err != nil {
		return nil, err
	}
	p.kp = kp
	p.collector.KeyPairGenerated()
	p.logger.Debug("key pair generated", metrics.Fields{
		"public": kp.Q.String(),
	})
	return p, nil
}

// Name returns the party's name.
func (p *Party) Name() string {
	return p.name
}

// PublicKey returns the party's public point.
func (p *Party) PublicKey() curve.Point {
	return p.kp.Q
}

// PrivateScalar exposes the private scalar. The demo CLI prints it — this
// is a teaching tool, the "secret" is part of the lesson.
func (p *Party) PrivateScalar() uint64 {
	return p.kp.D
}

// Rekey replaces the party's private scalar with a fresh one and
// recomputes the public point.
func (p *Party) Rekey() error {
	kp, err := p.scheme.GenerateKeyPair()
	if err != nil {
		return err
	}
	p.kp = kp
	p.collector.Rekeyed()
	p.logger.Debug("rekeyed", metrics.Fields{"public": kp.Q.String()})
	return nil
}

// SetKeyPair replaces the party's key pair with a caller-built one. The
// demo CLI uses this to pin a chosen scalar so a run is reproducible on
// paper; the pair must come from the same scheme's validation path.
func (p *Party) SetKeyPair(kp *ecies.KeyPair) error {
	if kp == nil {
		return qerrors.NewOpError("Party.SetKeyPair", qerrors.ErrScalarOutOfRange)
	}
	p.kp = kp
	p.logger.Debug("key pair replaced", metrics.Fields{"public": kp.Q.String()})
	return nil
}

// EncryptTo encrypts plaintext for the holder of the peer public point,
// drawing a fresh ephemeral scalar for this one message.
func (p *Party) EncryptTo(ctx context.Context, peer curve.Point, plaintext string) (msg *ecies.EncryptedMessage, err error) {
	_, end := p.tracer.StartSpan(ctx, "exchange.encrypt")
	defer func() { end(err) }()

	k := p.scheme.GeneratePrivateScalar()
	msg, err = p.scheme.Encrypt(plaintext, k, peer)
	if err != nil {
		p.collector.EncryptFailed()
		p.logger.Error("encrypt failed", metrics.Fields{"err": err})
		return nil, err
	}

	p.collector.Encrypted()
	p.logger.Info("encrypted", metrics.Fields{
		"peer":       peer.String(),
		"c1":         msg.C1.String(),
		"ciphertext": msg.Ciphertext,
	})
	return msg, nil
}

// Decrypt recovers the plaintext of a message addressed to this party.
func (p *Party) Decrypt(ctx context.Context, msg *ecies.EncryptedMessage) (plaintext string, err error) {
	_, end := p.tracer.StartSpan(ctx, "exchange.decrypt")
	defer func() { end(err) }()

	plaintext, err = p.scheme.Decrypt(msg.Ciphertext, msg.C1, p.kp.D)
	if err != nil {
		p.collector.DecryptFailed()
		p.logger.Error("decrypt failed", metrics.Fields{"err": err})
		return "", err
	}

	p.collector.Decrypted()
	p.logger.Info("decrypted", metrics.Fields{
		"c1":            msg.C1.String(),
		"plaintext_len": len(plaintext),
	})
	return plaintext, nil
}

// SharedPointWith computes this party's view of the ECDH shared point with
// the given peer public point. Exposed for the demo CLI, which shows both
// parties arriving at the same point.
func (p *Party) SharedPointWith(peer curve.Point) (curve.Point, error) {
	return p.scheme.SharedPoint(p.kp.D, peer)
}

// Metrics returns the party's collector.
func (p *Party) Metrics() *metrics.Collector {
	return p.collector
}

package metrics

import (
	"sync/atomic"
	"time"
)

// Collector aggregates operation counts from the exchange simulation. All
// counters are atomic; a single Collector may be shared by every party in
// the process.
type Collector struct {
	keyPairsGenerated atomic.Uint64
	rekeys            atomic.Uint64

	encryptions   atomic.Uint64
	decryptions   atomic.Uint64
	encryptErrors atomic.Uint64
	decryptErrors atomic.Uint64

	createdAt time.Time
}

// NewCollector creates a new collector.
func NewCollector() *Collector {
	return &Collector{createdAt: time.Now()}
}

// KeyPairGenerated records a key-pair generation.
func (c *Collector) KeyPairGenerated() { c.keyPairsGenerated.Add(1) }

// Rekeyed records a private-scalar replacement.
func (c *Collector) Rekeyed() { c.rekeys.Add(1) }

// Encrypted records a successful encryption.
func (c *Collector) Encrypted() { c.encryptions.Add(1) }

// Decrypted records a successful decryption.
func (c *Collector) Decrypted() { c.decryptions.Add(1) }

// EncryptFailed records an encryption error.
func (c *Collector) EncryptFailed() { c.encryptErrors.Add(1) }

// DecryptFailed records a decryption error.
func (c *Collector) DecryptFailed() { c.decryptErrors.Add(1) }

// Snapshot is a point-in-time copy of the collector's counters.
type Snapshot struct {
	KeyPairsGenerated uint64
	Rekeys            uint64
	Encryptions       uint64
	Decryptions       uint64
	EncryptErrors     uint64
	DecryptErrors     uint64
	Uptime            time.Duration
}

// Snapshot returns the current counter values.
func (c *Collector) Snapshot() Snapshot {
	return Snapshot{
		KeyPairsGenerated: c.keyPairsGenerated.Load(),
		Rekeys:            c.rekeys.Load(),
		Encryptions:       c.encryptions.Load(),
		Decryptions:       c.decryptions.Load(),
		EncryptErrors:     c.encryptErrors.Load(),
		DecryptErrors:     c.decryptErrors.Load(),
		Uptime:            time.Since(c.createdAt),
	}
}

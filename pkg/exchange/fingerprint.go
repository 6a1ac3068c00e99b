package exchange

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/pzverkov/curvelab/pkg/codec"
	"github.com/pzverkov/curvelab/pkg/curve"
)

// TranscriptFingerprint returns a short hex fingerprint of an ordered
// sequence of points, for logs and display. It hashes a length-prefixed
// encoding with SHA3-256 so that distinct transcripts cannot collide by
// concatenation tricks.
//
// This is purely a labeling aid. The toy protocol derives no key material
// from it: the 97-point curve is the weak link, and no hash fixes that.
func TranscriptFingerprint(points ...curve.Point) string {
	h := sha3.New256()
	buf := make([]byte, 8)

	binary.BigEndian.PutUint64(buf, uint64(len(points)))
	h.Write(buf)

	for _, p := range points {
		if p.IsInfinity() {
			h.Write([]byte{0})
			continue
		}
		h.Write([]byte{1})
		binary.BigEndian.PutUint64(buf, p.X)
		h.Write(buf)
		binary.BigEndian.PutUint64(buf, p.Y)
		h.Write(buf)
	}

	sum := h.Sum(nil)
	return codec.EncodeHex(sum[:8])
}

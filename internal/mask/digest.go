// internal/mask/digest.go
package mask

import (
	"encoding/hex"
	"hash"

	"golang.org/x/crypto/blake2b"
)

// digest incrementally hashes the raw base bytes of one sequence.
// Masking is case-encoded in FASTA, so the original case is part of the
// hashed content. Streaming one byte at a time and hashing the whole buffer
// at once yield the same value.
type digest struct {
	h   hash.Hash
	one [1]byte
}

func newDigest() *digest {
	h, err := blake2b.New256(nil)
	if err != nil {
		// blake2b.New256 only fails for a bad key; we pass none.
		panic(err)
	}
	return &digest{h: h}
}

func (d *digest) update(b byte) {
	d.one[0] = b
	_, _ = d.h.Write(d.one[:])
}

func (d *digest) updateBytes(p []byte) {
	_, _ = d.h.Write(p)
}

// finalize returns the hex-encoded BLAKE2b-256 digest. Call once.
func (d *digest) finalize() string {
	return hex.EncodeToString(d.h.Sum(nil))
}

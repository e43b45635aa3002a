package diag

import (
	"encoding/binary"
	"encoding/hex"

	"lukechampine.com/blake3"
)

// Checksum hashes a tick's worth of simulation state into a short hex
// digest two peers can compare to prove bit-identical execution, per
// spec.md §8. Grounded on the pack's only blake3 user (a peer-to-peer
// content-addressed hash), adapted from byte-slice hashing to a
// little-endian-packed stream of arbitrary uint32 state words so callers
// never need to build an intermediate buffer themselves.
type Checksum struct {
	h *blake3.Hasher
}

// NewChecksum starts a fresh running checksum.
func NewChecksum() *Checksum {
	return &Checksum{h: blake3.New(32, nil)}
}

// WriteUint32 folds one state word (a cell coordinate, an id, a health
// value, ...) into the running hash in a fixed, platform-independent byte
// order.
func (c *Checksum) WriteUint32(v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	c.h.Write(buf[:])
}

// WriteBytes folds raw bytes (e.g. a serialized Input) into the hash.
func (c *Checksum) WriteBytes(b []byte) {
	c.h.Write(b)
}

// Sum returns the running digest as a hex string, matching the pack's
// hex.EncodeToString(hash) convention.
func (c *Checksum) Sum() string {
	return hex.EncodeToString(c.h.Sum(nil))
}

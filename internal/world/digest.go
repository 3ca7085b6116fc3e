package world

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Digest hashes the chunk's blocks. A chunk that has not been generated
// hashes to 0.
func (c *Chunk) Digest() uint64 {
	if c.State() < StateGenerated {
		return 0
	}
	buf := make([]byte, len(c.blocks))
	for i, b := range c.blocks {
		buf[i] = byte(b)
	}
	return xxhash.Sum64(buf)
}

// Digest hashes every chunk digest in linear index order. Two worlds with the
// same dimensions generated from the same height function hash equal.
func (w *World) Digest() uint64 {
	h := xxhash.New()
	var tmp [8]byte
	for _, c := range w.chunks {
		binary.LittleEndian.PutUint64(tmp[:], c.Digest())
		_, _ = h.Write(tmp[:])
	}
	return h.Sum64()
}

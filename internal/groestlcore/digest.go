package groestlcore

import (
	"encoding/binary"
	"fmt"
)

// Hasher is the push-style core handle: it owns a chaining state, a
// block-sized partial-block buffer, and a count of blocks compressed so
// far (including the padding blocks Sum compresses). It has no streaming-hash trait, no Reset, and no
// registration with any hash-family registry — those are the job of the
// groestl256/groestl512 packages that wrap it.
//
// A Hasher is only safe for use from one goroutine at a time, and must not
// be used again after Sum is called.
type Hasher struct {
	variant     Variant
	outputBytes int

	state [128]byte // first variant.BlockLen bytes are meaningful
	buf   [128]byte // partial-block buffer, same storage convention
	fill  int       // 0 <= fill < variant.BlockLen between calls

	numBlocks uint64
	done      bool
}

// New constructs a Hasher for the given variant and digest length in
// bytes. It rejects variants whose block length is not 64 or 128 (the other
// Variant fields are not checked) and digest lengths incompatible with the
// variant, so a caller learns about a bad
// size/variant pairing at construction time rather than after hashing.
func New(variant Variant, outputBytes int) (*Hasher, error) {
	if variant.BlockLen != 64 && variant.BlockLen != 128 {
		return nil, fmt.Errorf("groestl: unsupported block length %d", variant.BlockLen)
	}
	if outputBytes <= 0 {
		return nil, fmt.Errorf("groestl: digest length must be positive, got %d", outputBytes)
	}
	outputBits := outputBytes * 8
	switch outputBits {
	case 224, 256, 384, 512:
	default:
		return nil, fmt.Errorf("groestl: unsupported digest length %d bits", outputBits)
	}
	if variant.BlockLen == 64 && outputBytes > 32 {
		return nil, fmt.Errorf("groestl: short variant cannot produce a %d-byte digest", outputBytes)
	}
	if variant.BlockLen == 128 && outputBytes < 32 {
		return nil, fmt.Errorf("groestl: wide variant cannot produce a %d-byte digest", outputBytes)
	}

	h := &Hasher{variant: variant, outputBytes: outputBytes}
	binary.BigEndian.PutUint64(h.state[variant.BlockLen-8:variant.BlockLen], uint64(outputBits))
	return h, nil
}

// Write buffers bytes and compresses every full block formed, never
// carrying a full buffer across calls.
func (h *Hasher) Write(p []byte) (int, error) {
	if h.done {
		panic("groestl: Write called after Sum")
	}
	n := len(p)
	blockLen := h.variant.BlockLen

	for len(p) > 0 {
		free := blockLen - h.fill
		take := len(p)
		if take > free {
			take = free
		}
		copy(h.buf[h.fill:h.fill+take], p[:take])
		h.fill += take
		p = p[take:]

		if h.fill == blockLen {
			h.compressBuffer()
			h.fill = 0
		}
	}
	return n, nil
}

func (h *Hasher) compressBuffer() {
	blockLen := h.variant.BlockLen
	next := compress(h.variant, h.state[:blockLen], h.buf[:blockLen])
	copy(h.state[:blockLen], next)
	h.numBlocks++
}

// Sum finalizes the hash: standard padding (0x80, zeros, an 8-byte
// big-endian block counter) is applied, a last compression runs, then Ω
// truncates to the digest. The Hasher is consumed by this call and must
// not be used again afterward.
func (h *Hasher) Sum() []byte {
	if h.done {
		panic("groestl: Sum called more than once")
	}
	blockLen := h.variant.BlockLen

	h.buf[h.fill] = 0x80
	h.fill++

	if blockLen-h.fill < 8 {
		for i := h.fill; i < blockLen; i++ {
			h.buf[i] = 0
		}
		h.compressBuffer()
		h.fill = 0
		for i := 0; i < blockLen; i++ {
			h.buf[i] = 0
		}
	} else {
		for i := h.fill; i < blockLen-8; i++ {
			h.buf[i] = 0
		}
	}

	binary.BigEndian.PutUint64(h.buf[blockLen-8:blockLen], h.numBlocks+1)
	h.compressBuffer()

	h.done = true
	return omega(h.variant, h.state[:blockLen], h.outputBytes)
}

// Clone returns an independent copy of h. Hasher holds only value types,
// so the copy shares no state with the original; it exists so a
// non-destructive Sum (as hash.Hash requires) can be built on top of the
// core's consuming one without duplicating the compression logic.
func (h *Hasher) Clone() *Hasher {
	cp := *h
	return &cp
}

// Package groestl512 implements the Grøstl-384 and Grøstl-512 hash
// functions, the ℓ=128 ("wide" state) members of the Grøstl family.
package groestl512

import (
	"hash"

	"github.com/gtank/groestl/internal/groestlcore"
)

const (
	// BlockSize is the block size, in bytes, of the wide Grøstl state.
	BlockSize = 128
	// Size384 is the size, in bytes, of a Grøstl-384 digest.
	Size384 = 48
	// Size512 is the size, in bytes, of a Grøstl-512 digest.
	Size512 = 64
)

// Digest implements hash.Hash on top of the groestlcore push-style
// Hasher, mirroring groestl256.Digest for the wide variant.
type Digest struct {
	core *groestlcore.Hasher
	size int
}

var _ hash.Hash = (*Digest)(nil)

func newDigest(size int) *Digest {
	h, err := groestlcore.New(groestlcore.Wide, size)
	if err != nil {
		panic(err)
	}
	return &Digest{core: h, size: size}
}

// New384 returns a new hash.Hash computing the Grøstl-384 checksum.
func New384() *Digest { return newDigest(Size384) }

// New512 returns a new hash.Hash computing the Grøstl-512 checksum.
func New512() *Digest { return newDigest(Size512) }

// Write adds more data to the running hash. It never returns an error.
func (d *Digest) Write(p []byte) (int, error) {
	return d.core.Write(p)
}

// Sum appends the current hash to b and returns the resulting slice,
// without mutating the receiver (see groestl256.Digest.Sum).
func (d *Digest) Sum(b []byte) []byte {
	digest := d.core.Clone().Sum()
	return append(b, digest...)
}

// Reset reinitializes the Digest to its initial state.
func (d *Digest) Reset() {
	d.core, _ = groestlcore.New(groestlcore.Wide, d.size)
}

// Size returns the number of bytes Sum will return.
func (d *Digest) Size() int { return d.size }

// BlockSize returns the hash's underlying block size.
func (d *Digest) BlockSize() int { return BlockSize }

// Sum384 returns the Grøstl-384 checksum of data.
func Sum384(data []byte) [Size384]byte {
	d := New384()
	d.Write(data)
	var out [Size384]byte
	copy(out[:], d.Sum(nil))
	return out
}

// Sum512 returns the Grøstl-512 checksum of data.
func Sum512(data []byte) [Size512]byte {
	d := New512()
	d.Write(data)
	var out [Size512]byte
	copy(out[:], d.Sum(nil))
	return out
}

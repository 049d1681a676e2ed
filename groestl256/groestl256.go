// Package groestl256 implements the Grøstl-224 and Grøstl-256 hash
// functions, the ℓ=64 ("short" state) members of the Grøstl family.
package groestl256

import (
	"hash"

	"github.com/gtank/groestl/internal/groestlcore"
)

const (
	// BlockSize is the block size, in bytes, of the short Grøstl state.
	BlockSize = 64
	// Size224 is the size, in bytes, of a Grøstl-224 digest.
	Size224 = 28
	// Size256 is the size, in bytes, of a Grøstl-256 digest.
	Size256 = 32
)

// Digest implements hash.Hash on top of the groestlcore push-style
// Hasher. It and groestl512.Digest are the only types in this module that
// implement hash.Hash; the core itself stays free of that interface so it
// can be shared between the 256 and 512 packages without dragging that
// dependency in.
type Digest struct {
	core *groestlcore.Hasher
	size int
}

var _ hash.Hash = (*Digest)(nil)

func newDigest(size int) *Digest {
	h, err := groestlcore.New(groestlcore.Short, size)
	if err != nil {
		// size is one of the package's own constants, so this can only
		// fire if the core's validation and this package disagree.
		panic(err)
	}
	return &Digest{core: h, size: size}
}

// New224 returns a new hash.Hash computing the Grøstl-224 checksum.
func New224() *Digest { return newDigest(Size224) }

// New256 returns a new hash.Hash computing the Grøstl-256 checksum.
func New256() *Digest { return newDigest(Size256) }

// Write adds more data to the running hash. It never returns an error.
func (d *Digest) Write(p []byte) (int, error) {
	return d.core.Write(p)
}

// Sum appends the current hash to b and returns the resulting slice. It
// does not change the underlying hash state: finalization runs against a
// clone of the core Hasher, since groestlcore.Hasher.Sum consumes its
// receiver but hash.Hash.Sum must not.
func (d *Digest) Sum(b []byte) []byte {
	digest := d.core.Clone().Sum()
	return append(b, digest...)
}

// Reset reinitializes the Digest to its initial state, discarding any
// data written so far.
func (d *Digest) Reset() {
	d.core, _ = groestlcore.New(groestlcore.Short, d.size)
}

// Size returns the number of bytes Sum will return.
func (d *Digest) Size() int { return d.size }

// BlockSize returns the hash's underlying block size.
func (d *Digest) BlockSize() int { return BlockSize }

// Sum224 returns the Grøstl-224 checksum of data.
func Sum224(data []byte) [Size224]byte {
	d := New224()
	d.Write(data)
	var out [Size224]byte
	copy(out[:], d.Sum(nil))
	return out
}

// Sum256 returns the Grøstl-256 checksum of data.
func Sum256(data []byte) [Size256]byte {
	d := New256()
	d.Write(data)
	var out [Size256]byte
	copy(out[:], d.Sum(nil))
	return out
}

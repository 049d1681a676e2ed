package groestlcore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// paddingBlock is the standard padding of the empty message for ℓ=64:
// a single 0x80 marker byte followed by zeros, with the 8-byte
// big-endian block counter (1) in the final 8 bytes.
func paddingBlock() []byte {
	b := make([]byte, 64)
	b[0] = 0x80
	b[63] = 1
	return b
}

func TestAddRoundConstantRoundZero(t *testing.T) {
	m := blockToMatrix(paddingBlock(), 8)
	addRoundConstant(&m, cP, kindP, 0)
	out := make([]byte, 64)
	m.matrixToBlock(out)
	expected := []byte{
		128, 0, 0, 0, 0, 0, 0, 0,
		16, 0, 0, 0, 0, 0, 0, 0,
		32, 0, 0, 0, 0, 0, 0, 0,
		48, 0, 0, 0, 0, 0, 0, 0,
		64, 0, 0, 0, 0, 0, 0, 0,
		80, 0, 0, 0, 0, 0, 0, 0,
		96, 0, 0, 0, 0, 0, 0, 0,
		112, 0, 0, 0, 0, 0, 0, 1,
	}
	require.Equal(t, expected, out)

	m = blockToMatrix(paddingBlock(), 8)
	addRoundConstant(&m, cQ, kindQ, 0)
	out = make([]byte, 64)
	m.matrixToBlock(out)
	expected = []byte{
		0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xef,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xdf,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xcf,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xbf,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xaf,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x9f,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x8e,
	}
	require.Equal(t, expected, out)
}

func TestPermuteP(t *testing.T) {
	short, err := New(Short, 32)
	require.NoError(t, err)

	block := make([]byte, 64)
	xorBytes(block, short.state[:64], paddingBlock())

	out := permute(Short, kindP, block)
	expected := []byte{
		247, 236, 141, 217, 73, 225, 112, 216,
		1, 155, 85, 192, 152, 168, 174, 72,
		112, 253, 159, 53, 7, 6, 8, 115,
		58, 242, 7, 115, 148, 150, 157, 25,
		18, 220, 11, 5, 178, 10, 110, 94,
		44, 56, 110, 67, 107, 234, 102, 163,
		243, 212, 49, 25, 46, 17, 170, 84,
		5, 76, 239, 51, 4, 107, 94, 20,
	}
	require.Equal(t, expected, out)
}

func TestPermuteQ(t *testing.T) {
	out := permute(Short, kindQ, paddingBlock())
	expected := []byte{
		189, 183, 105, 133, 208, 106, 34, 36,
		82, 37, 180, 250, 229, 59, 230, 223,
		215, 245, 53, 117, 167, 139, 150, 186,
		210, 17, 220, 57, 116, 134, 209, 51,
		124, 108, 84, 91, 79, 103, 148, 27,
		135, 183, 144, 226, 59, 242, 87, 81,
		109, 211, 84, 185, 192, 172, 88, 210,
		8, 121, 31, 242, 158, 227, 207, 13,
	}
	require.Equal(t, expected, out)
}

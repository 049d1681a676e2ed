package groestlcore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitialChainingState(t *testing.T) {
	h, err := New(Short, 32)
	require.NoError(t, err)

	expected := make([]byte, 64)
	expected[56] = 0
	expected[57] = 0
	expected[58] = 0
	expected[59] = 0
	expected[60] = 0
	expected[61] = 0
	expected[62] = 1
	expected[63] = 0
	require.Equal(t, expected, h.state[:64])
}

func TestNewRejectsBadVariant(t *testing.T) {
	_, err := New(Variant{BlockLen: 96, Cols: 12, Rounds: 10}, 32)
	require.Error(t, err)
}

func TestNewRejectsIncompatibleDigestSize(t *testing.T) {
	_, err := New(Short, 48) // 48 bytes only valid for the wide variant
	require.Error(t, err)

	_, err = New(Wide, 28) // 28 bytes only valid for the short variant
	require.Error(t, err)

	_, err = New(Short, 17) // 17*8 = 136 bits, not a canonical size
	require.Error(t, err)
}

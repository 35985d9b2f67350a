package linmem

import (
	"testing"

	"github.com/golinmem/linmem/internal/testing/require"
)

func TestFindNullBasic(t *testing.T) {
	m := New(1)
	m.WriteBytes(64, []byte{1, 2, 3, 4, 5, 6, 7, 0})

	require.Equal(t, int32(71), m.FindNull(64))
}

func TestFindNullNoneFound(t *testing.T) {
	m := New(1)
	// fill the whole first page with non-zero bytes.
	m.Fill(0, PageSize, 1)

	require.Equal(t, int32(-1), m.FindNull(0))
}

func TestFindNullWithinFirstStride(t *testing.T) {
	m := New(1)
	m.Fill(0, 32, 1)
	m.WriteByte(10, 0)

	require.Equal(t, int32(10), m.FindNull(0))
}

func TestFindNullCrossesLaneBoundary(t *testing.T) {
	m := New(1)
	m.Fill(0, 40, 9)
	m.WriteByte(33, 0) // falls in the first 8-byte lane of the second 16-byte stride

	require.Equal(t, int32(33), m.FindNull(16))
}

func TestHasZeroByteAndFirstZeroByteIndex(t *testing.T) {
	var w uint64
	require.False(t, hasZeroByte(w|0x0101010101010101))

	w = 0x0102030400060708
	require.True(t, hasZeroByte(w))
	require.Equal(t, 3, firstZeroByteIndex(w))
}

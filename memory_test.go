package linmem

import (
	"testing"

	"github.com/golinmem/linmem/internal/testing/require"
)

func TestNewZeroed(t *testing.T) {
	m := New(2)
	require.Equal(t, uint32(2*PageSize), m.Size())

	buf := m.slice()
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d not zero: %d", i, b)
		}
	}
}

func TestGrowPreservesContents(t *testing.T) {
	m := New(2)
	m.WriteByte(0, 42)
	m.WriteByte(PageSize*2-1, 99)

	ok := m.Grow(3)
	require.True(t, ok)

	require.Equal(t, uint32(PageSize*5), m.Size())
	require.Equal(t, byte(42), m.ReadByte(0))
	require.Equal(t, byte(99), m.ReadByte(PageSize*2-1))
	require.Equal(t, byte(0), m.ReadByte(PageSize*2))
	require.Equal(t, byte(0), m.ReadByte(PageSize*5-1))
}

func TestGrowByZeroIsNoop(t *testing.T) {
	m := New(1)
	ok := m.Grow(0)
	require.True(t, ok)
	require.Equal(t, uint32(PageSize), m.Size())
}

func TestCopyWithinSameMemoryOverlap(t *testing.T) {
	m := New(1)
	for i := int32(0); i < 10; i++ {
		m.WriteByte(uint32(i), byte(i))
	}

	// shift [0,8) right by 2, into [2,10) -- overlapping ranges.
	m.Copy(0, m, 2, 8)

	want := []byte{0, 1, 0, 1, 2, 3, 4, 5, 6, 7}
	for i, w := range want {
		require.Equal(t, w, m.ReadByte(uint32(i)))
	}
}

func TestCopyAcrossMemories(t *testing.T) {
	src := New(1)
	dst := New(1)
	for i := int32(0); i < 4; i++ {
		src.WriteByte(uint32(10+i), byte(i+1))
	}

	src.Copy(10, dst, 20, 4)

	for i := int32(0); i < 4; i++ {
		require.Equal(t, byte(i+1), dst.ReadByte(uint32(20+i)))
	}
}

func TestFill(t *testing.T) {
	m := New(1)
	m.Fill(5, 3, 0xAB)

	require.Equal(t, byte(0), m.ReadByte(4))
	require.Equal(t, byte(0xAB), m.ReadByte(5))
	require.Equal(t, byte(0xAB), m.ReadByte(6))
	require.Equal(t, byte(0xAB), m.ReadByte(7))
	require.Equal(t, byte(0), m.ReadByte(8))
}

func TestReadWriteBytes(t *testing.T) {
	m := New(1)
	m.WriteBytes(100, []byte{1, 2, 3, 4})

	got := m.ReadBytes(100, 4)
	require.Equal(t, []byte{1, 2, 3, 4}, got)
}

func TestReadWriteRoundTrip(t *testing.T) {
	m := New(1)
	m.Write(0, []byte{1, 2, 3})
	require.Equal(t, []byte{1, 2, 3}, m.Read(0, 3))
}

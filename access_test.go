package linmem

import (
	"math"
	"testing"

	"github.com/golinmem/linmem/internal/testing/require"
)

func TestScalarRoundTrip(t *testing.T) {
	m := New(1)

	m.WriteI32(0, -123456)
	require.Equal(t, int32(-123456), m.ReadI32(0))

	m.WriteI64(8, -9223372036854775000)
	require.Equal(t, int64(-9223372036854775000), m.ReadI64(8))

	m.WriteF32(16, 3.5)
	require.Equal(t, float32(3.5), m.ReadF32(16))

	m.WriteF64(24, -2.25)
	require.Equal(t, float64(-2.25), m.ReadF64(24))
}

func TestFloatRoundTripNaNAndInf(t *testing.T) {
	m := New(1)

	m.WriteF32(0, float32(math.NaN()))
	require.True(t, math.IsNaN(float64(m.ReadF32(0))))

	m.WriteF64(8, math.Inf(-1))
	require.Equal(t, math.Inf(-1), m.ReadF64(8))

	m.WriteF64(16, math.Inf(1))
	require.Equal(t, math.Inf(1), m.ReadF64(16))
}

func TestNarrowingStoreWideningLoad(t *testing.T) {
	m := New(1)

	m.WriteI32ToI8(0, -128)
	require.Equal(t, int32(-128), m.ReadI32FromI8(0))
	require.Equal(t, int32(128), m.ReadI32FromU8(0))

	m.WriteI32ToI16(4, -1)
	require.Equal(t, int32(-1), m.ReadI32FromI16(4))
	require.Equal(t, int32(65535), m.ReadI32FromU16(4))

	m.WriteI64ToI32(8, -1)
	require.Equal(t, int64(-1), m.ReadI64FromI32(8))
	require.Equal(t, int64(0xFFFFFFFF), m.ReadI64FromU32(8))
}

func TestNarrowingTruncatesWithWrap(t *testing.T) {
	m := New(1)

	m.WriteI32ToI8(0, 300) // 300 mod 256 == 44
	require.Equal(t, int32(44), m.ReadI32FromU8(0))
}

func TestReadBytesAliasesRead(t *testing.T) {
	m := New(1)
	m.Write(0, []byte{9, 8, 7})
	require.Equal(t, []byte{9, 8, 7}, m.ReadBytes(0, 3))
}

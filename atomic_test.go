package linmem

import (
	"sync"
	"testing"

	"github.com/golinmem/linmem/internal/testing/require"
)

func TestAtomicReadWriteI32(t *testing.T) {
	m := New(1)
	m.AtomicWriteI32(0, 7)
	require.Equal(t, int32(7), m.AtomicReadI32(0))
}

func TestAtomicReadWriteI64(t *testing.T) {
	m := New(1)
	m.AtomicWriteI64(0, -99)
	require.Equal(t, int64(-99), m.AtomicReadI64(0))
}

func TestAtomicNarrowReadWrite(t *testing.T) {
	m := New(1)

	m.AtomicWriteI32ToI8(0, -5)
	require.Equal(t, int32(-5), m.AtomicReadI32FromI8(0))
	require.Equal(t, int32(251), m.AtomicReadI32FromU8(0))

	m.AtomicWriteI64ToI16(4, -1)
	require.Equal(t, int64(-1), m.AtomicReadI64FromI16(4))
	require.Equal(t, int64(65535), m.AtomicReadI64FromU16(4))
}

func TestAtomicRMWAdd(t *testing.T) {
	m := New(1)
	m.AtomicWriteI32(0, 42)

	old := m.AtomicRMWAddI32(0, 58)
	require.Equal(t, int32(42), old)
	require.Equal(t, int32(100), m.AtomicReadI32(0))
}

func TestAtomicRMWExchangeI64(t *testing.T) {
	m := New(1)
	m.AtomicWriteI64(0, 5)

	old := m.AtomicRMWExchangeI64(0, 500)
	require.Equal(t, int64(5), old)
	require.Equal(t, int64(500), m.AtomicReadI64(0))
}

func TestAtomicRMWNarrowWidthsOnlyTouchTheirField(t *testing.T) {
	m := New(1)
	m.WriteI32(0, 0)
	m.AtomicWriteI32ToI8(1, 10)

	m.AtomicRMWAddI32ToI8(1, 5)

	require.Equal(t, int32(15), m.AtomicReadI32FromI8(1))
	// sibling bytes in the same containing word are untouched.
	require.Equal(t, byte(0), m.ReadByte(0))
	require.Equal(t, byte(0), m.ReadByte(2))
	require.Equal(t, byte(0), m.ReadByte(3))
}

func TestAtomicCompareExchangeSuccess(t *testing.T) {
	m := New(1)
	m.AtomicWriteI32(0, 100)

	prior := m.AtomicCompareExchangeI32(0, 100, 200)
	require.Equal(t, int32(100), prior)
	require.Equal(t, int32(200), m.AtomicReadI32(0))
}

func TestAtomicCompareExchangeFailureReturnsObserved(t *testing.T) {
	m := New(1)
	m.AtomicWriteI32(0, 100)

	prior := m.AtomicCompareExchangeI32(0, 999, 200)
	require.Equal(t, int32(100), prior)
	// cell is unchanged on a mismatch.
	require.Equal(t, int32(100), m.AtomicReadI32(0))
}

func TestAtomicCompareExchangeI64Narrow(t *testing.T) {
	m := New(1)
	m.AtomicWriteI64ToI16(0, 10)

	prior := m.AtomicCompareExchangeI64ToI16(0, 10, 20)
	require.Equal(t, int64(10), prior)
	require.Equal(t, int64(20), m.AtomicReadI64FromI16(0))
}

func TestAtomicRMWConcurrentAddsSumCorrectly(t *testing.T) {
	m := New(1)
	m.AtomicWriteI32(0, 0)

	const goroutines = 50
	const perGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				m.AtomicRMWAddI32(0, 1)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int32(goroutines*perGoroutine), m.AtomicReadI32(0))
}

func TestAtomicFenceDoesNotPanic(t *testing.T) {
	m := New(1)
	m.AtomicFence()
}

package linmem

import (
	"testing"
	"time"

	"github.com/golinmem/linmem/internal/testing/require"
)

func TestWaitI32ReturnsNotEqualOnMismatch(t *testing.T) {
	m := New(1)
	m.AtomicWriteI32(0, 42)

	code := m.WaitI32(0, 41, -1)
	require.Equal(t, WaitNotEqual, code)
}

func TestWaitI32TimesOut(t *testing.T) {
	m := New(1)
	m.AtomicWriteI32(0, 42)

	code := m.WaitI32(0, 42, int64(20*time.Millisecond))
	require.Equal(t, WaitTimedOut, code)
}

func TestWaitNotifyRendezvousI32(t *testing.T) {
	m := New(1)
	m.AtomicWriteI32(117, 42)

	done := make(chan int32, 1)
	started := make(chan struct{})
	go func() {
		close(started)
		done <- m.WaitI32(117, 42, int64(5*time.Second))
	}()
	<-started

	var woken int32
	for woken == 0 {
		woken = m.Notify(117, 1)
	}

	require.Equal(t, int32(1), woken)
	require.Equal(t, WaitOK, <-done)
}

func TestWaitNotifyRendezvousI64(t *testing.T) {
	m := New(1)
	m.AtomicWriteI64(200, 7)

	done := make(chan int32, 1)
	started := make(chan struct{})
	go func() {
		close(started)
		done <- m.WaitI64(200, 7, int64(5*time.Second))
	}()
	<-started

	var woken int32
	for woken == 0 {
		woken = m.Notify(200, 1)
	}

	require.Equal(t, int32(1), woken)
	require.Equal(t, WaitOK, <-done)
}

func TestNotifyWithNoQueueReturnsZero(t *testing.T) {
	m := New(1)
	require.Equal(t, int32(0), m.Notify(999, 5))
}

func TestNotifyStopsWhenQueueEmpties(t *testing.T) {
	m := New(1)
	m.AtomicWriteI32(0, 1)

	done := make(chan int32, 1)
	started := make(chan struct{})
	go func() {
		close(started)
		done <- m.WaitI32(0, 1, int64(5*time.Second))
	}()
	<-started

	var woken int32
	for woken == 0 {
		woken = m.Notify(0, 10) // request more than are enrolled
	}

	require.Equal(t, int32(1), woken)
	require.Equal(t, WaitOK, <-done)
}

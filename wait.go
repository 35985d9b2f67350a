package linmem

import (
	"container/list"
	"sync"
	"time"
)

// Wait return codes, per the external ABI contract.
const (
	WaitOK         int32 = 0 // woken by notify
	WaitNotEqual   int32 = 1 // value mismatch at entry, no waiter enrolled
	WaitTimedOut   int32 = 2 // deadline elapsed before a notify arrived
)

// waitEntry is the rendezvous object a single wait call owns while
// enrolled in a queue: the waiter blocks on cond while holding mu, and a
// notifier acquires mu, sets signaled, and wakes cond.
type waitEntry struct {
	mu       sync.Mutex
	cond     *sync.Cond
	signaled bool
}

func newWaitEntry() *waitEntry {
	e := &waitEntry{}
	e.cond = sync.NewCond(&e.mu)
	return e
}

// waitRegistry maps byte addresses to FIFO queues of enrolled waiters.
// Queues are created lazily on first wait and never purged; a single
// mutex guards the map and all queue contents (see DESIGN.md), since contention here is bounded by how many distinct addresses are
// actively contended, not by the size of the memory.
type waitRegistry struct {
	mu     sync.Mutex
	queues map[int32]*list.List
}

func (r *waitRegistry) init() {
	r.queues = make(map[int32]*list.List)
}

// enroll pushes a fresh waitEntry onto addr's queue (creating it if
// necessary) and returns the entry along with its position in that
// queue, for later removal on timeout.
func (r *waitRegistry) enroll(addr int32) (*waitEntry, *list.Element) {
	entry := newWaitEntry()
	r.mu.Lock()
	q, ok := r.queues[addr]
	if !ok {
		q = list.New()
		r.queues[addr] = q
	}
	el := q.PushBack(entry)
	r.mu.Unlock()
	return entry, el
}

// remove drops el from addr's queue if it is still present. Used when a
// wait times out before being popped by a notifier.
func (r *waitRegistry) remove(addr int32, el *list.Element) {
	r.mu.Lock()
	if q, ok := r.queues[addr]; ok {
		q.Remove(el)
	}
	r.mu.Unlock()
}

// notify pops up to count waiters from addr's queue, wakes each one, and
// returns how many were actually signaled.
func (r *waitRegistry) notify(addr int32, count int32) int32 {
	r.mu.Lock()
	q, ok := r.queues[addr]
	if !ok {
		r.mu.Unlock()
		return 0
	}
	var woken []*waitEntry
	for int32(len(woken)) < count {
		front := q.Front()
		if front == nil {
			break
		}
		q.Remove(front)
		woken = append(woken, front.Value.(*waitEntry))
	}
	r.mu.Unlock()

	for _, entry := range woken {
		entry.mu.Lock()
		entry.signaled = true
		entry.cond.Signal()
		entry.mu.Unlock()
	}
	return int32(len(woken))
}

// wait blocks the calling goroutine on addr's queue until notified or
// timeoutNanos elapses. A negative timeoutNanos blocks indefinitely.
// Returns WaitOK or WaitTimedOut.
func (r *waitRegistry) wait(addr int32, timeoutNanos int64) int32 {
	entry, el := r.enroll(addr)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if timeoutNanos < 0 {
		for !entry.signaled {
			entry.cond.Wait()
		}
		return WaitOK
	}

	deadline := time.Now().Add(time.Duration(timeoutNanos))
	for !entry.signaled {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			r.remove(addr, el)
			return WaitTimedOut
		}
		timer := time.AfterFunc(remaining, func() {
			entry.mu.Lock()
			entry.cond.Broadcast()
			entry.mu.Unlock()
		})
		entry.cond.Wait()
		timer.Stop()
	}
	return WaitOK
}

// WaitI32 implements the §4.3 wait protocol for a 32-bit cell: compare
// the current value against expected, and only enroll a waiter on a
// match.
func (m *Memory) WaitI32(addr int32, expected int32, timeoutNanos int64) int32 {
	if m.AtomicReadI32(addr) != expected {
		return WaitNotEqual
	}
	return m.waiters.wait(addr, timeoutNanos)
}

// WaitI64 is the 64-bit-cell analog of WaitI32.
func (m *Memory) WaitI64(addr int32, expected int64, timeoutNanos int64) int32 {
	if m.AtomicReadI64(addr) != expected {
		return WaitNotEqual
	}
	return m.waiters.wait(addr, timeoutNanos)
}

// Notify wakes up to count waiters enrolled at addr and returns how many
// were actually signaled.
func (m *Memory) Notify(addr int32, count int32) int32 {
	return m.waiters.notify(addr, count)
}

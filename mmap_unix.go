//go:build unix

package linmem

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// mmapAnon reserves size bytes of zero-initialized anonymous memory.
func mmapAnon(size int) []byte {
	if size == 0 {
		// unix.Mmap rejects a zero length; a memory with zero pages still
		// needs a valid, distinguishable (if unused) backing slice.
		size = 1
	}
	b, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		panic(fmt.Sprintf("linmem: anonymous mmap of %d bytes failed: %v", size, err))
	}
	return b
}

// munmapQuiet releases a mapping obtained from mmapAnon. Failure here is
// not actionable by the caller (the region is simply leaked) so it is
// swallowed, matching the spec's silence on grow's internal bookkeeping.
func munmapQuiet(b []byte) {
	_ = unix.Munmap(b)
}

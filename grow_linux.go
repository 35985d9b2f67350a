//go:build linux

package linmem

import "golang.org/x/sys/unix"

// growInPlace asks the kernel to remap buf to newSize bytes, permitting
// relocation. On success the returned slice may share no address with buf;
// any raw pointer a caller held into the old mapping is invalidated, per
// the spec's grow-invalidation note.
func growInPlace(buf []byte, newSize int) ([]byte, bool) {
	grown, err := unix.Mremap(buf, newSize, unix.MREMAP_MAYMOVE)
	if err != nil {
		return nil, false
	}
	return grown, true
}

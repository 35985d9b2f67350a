package linmem

import (
	"encoding/binary"
	"math/bits"
)

// laneWidth is the stride (in bytes) scanned per iteration. The spec calls
// for a 16-byte vector compare; Go has no portable SIMD intrinsic without
// hand-written assembly (see DESIGN.md), so each 16-byte stride is covered
// by two 8-byte SWAR (SIMD-within-a-register) zero-byte tests instead,
// which is the same technique the Go runtime's own generic (non-assembly)
// byte-search fallback uses.
const laneWidth = 16

// hasZeroByte reports, via the classic bit trick, whether any of the 8
// bytes packed into w is zero, without branching on each byte.
func hasZeroByte(w uint64) bool {
	const lo = 0x0101010101010101
	const hi = 0x8080808080808080
	return (w-lo)&^w&hi != 0
}

// firstZeroByteIndex returns the index (0-7) of the first zero byte in the
// little-endian word w. hasZeroByte(w) must be true.
func firstZeroByteIndex(w uint64) int {
	const lo = 0x0101010101010101
	const hi = 0x8080808080808080
	mask := (w - lo) &^ w & hi
	return bits.TrailingZeros64(mask) / 8
}

// FindNullIn returns the offset of the first zero byte in buf at or after
// startAddr, or -1 if none exists in [startAddr, len(buf)).
func FindNullIn(buf []byte, startAddr int32) int32 {
	offset := int(startAddr)
	n := len(buf)

	for offset+laneWidth <= n {
		lo := binary.LittleEndian.Uint64(buf[offset : offset+8])
		if hasZeroByte(lo) {
			return int32(offset + firstZeroByteIndex(lo))
		}
		hi := binary.LittleEndian.Uint64(buf[offset+8 : offset+16])
		if hasZeroByte(hi) {
			return int32(offset + 8 + firstZeroByteIndex(hi))
		}
		offset += laneWidth
	}

	for offset < n {
		if buf[offset] == 0 {
			return int32(offset)
		}
		offset++
	}

	return -1
}

// FindNull returns the offset of the first zero byte at or after
// startAddr in m, or -1 if none exists.
func (m *Memory) FindNull(startAddr int32) int32 {
	return FindNullIn(m.slice(), startAddr)
}

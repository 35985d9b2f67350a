// Command cabi exposes the linmem operation surface through a flat C
// ABI, for embedding this module into a host written in a language other
// than Go. It is built with `go build -buildmode=c-shared` (or
// c-archive); see cmd/linmemheader for the matching C header generator.
//
// Go values can't be handed to C callers as raw pointers — the garbage
// collector is free to move or reclaim anything it doesn't know C is
// holding — so every *linmem.Memory is kept alive behind an integer
// handle in a table owned by this package, mirroring the fuzz harness's
// own handle-by-uintptr convention for crossing the cgo boundary.
package main

//go:generate go run ../internal/codegen/cabi -out cabi_gen.go

import "C"

import (
	"sync"
	"unsafe"

	"github.com/golinmem/linmem"
)

var (
	handlesMu  sync.Mutex
	handles    = map[uintptr]*linmem.Memory{}
	nextHandle uintptr = 1
)

func registerHandle(m *linmem.Memory) uintptr {
	handlesMu.Lock()
	defer handlesMu.Unlock()
	h := nextHandle
	nextHandle++
	handles[h] = m
	return h
}

// lookupHandle panics on an unknown or null handle. The spec treats a
// null handle as a precondition violation everywhere except dealloc
// (§7); a panic across the cgo boundary crashes the process, which is
// the Go equivalent of the spec's "undefined behavior in release".
func lookupHandle(h uintptr) *linmem.Memory {
	handlesMu.Lock()
	defer handlesMu.Unlock()
	m, ok := handles[h]
	if !ok {
		panic("linmem/cabi: unknown handle")
	}
	return m
}

func main() {}

//export alloc
func alloc(pages uint32) uintptr {
	return registerHandle(linmem.New(pages))
}

//export dealloc
func dealloc(handle uintptr) {
	if handle == 0 {
		return
	}
	handlesMu.Lock()
	delete(handles, handle)
	handlesMu.Unlock()
}

//export grow
func grow(handle uintptr, pages uint32) bool {
	return lookupHandle(handle).Grow(pages)
}

//export copy
func memCopy(srcHandle, dstHandle uintptr, srcOff, dstOff, byteCount int32) {
	src := lookupHandle(srcHandle)
	dst := lookupHandle(dstHandle)
	src.Copy(srcOff, dst, dstOff, byteCount)
}

//export fill
func fill(handle uintptr, off, byteCount int32, value byte) {
	lookupHandle(handle).Fill(off, byteCount, value)
}

//export find_null
func findNull(handle uintptr, startAddr int32) int32 {
	return lookupHandle(handle).FindNull(startAddr)
}

// read_bytes copies byteCount bytes starting at addr into the
// caller-owned buffer pointed to by outPtr.
//
//export read_bytes
func readBytes(handle uintptr, addr int32, outPtr *byte, byteCount int32) {
	m := lookupHandle(handle)
	data := m.ReadBytes(addr, byteCount)
	dst := unsafe.Slice(outPtr, byteCount)
	copy(dst, data)
}

// write_bytes copies byteCount bytes from the caller-owned buffer
// pointed to by inPtr into the memory starting at addr.
//
//export write_bytes
func writeBytes(handle uintptr, addr int32, inPtr *byte, byteCount int32) {
	m := lookupHandle(handle)
	src := unsafe.Slice(inPtr, byteCount)
	m.WriteBytes(addr, src)
}

//export atomic_fence
func atomicFence(handle uintptr) {
	lookupHandle(handle).AtomicFence()
}

//export wait_i32
func waitI32(handle uintptr, addr int32, expected int32, timeoutNs int64) int32 {
	return lookupHandle(handle).WaitI32(addr, expected, timeoutNs)
}

//export wait_i64
func waitI64(handle uintptr, addr int32, expected int64, timeoutNs int64) int32 {
	return lookupHandle(handle).WaitI64(addr, expected, timeoutNs)
}

//export notify
func notify(handle uintptr, addr int32, count int32) int32 {
	return lookupHandle(handle).Notify(addr, count)
}

package linmem

//go:generate go run ./internal/codegen/access -out access_gen.go

import (
	"encoding/binary"
	"math"
)

// ReadI32 reads a little-endian i32 at addr. Unaligned reads are permitted.
func (m *Memory) ReadI32(addr int32) int32 {
	buf := m.slice()
	return int32(binary.LittleEndian.Uint32(buf[addr : addr+4]))
}

// WriteI32 writes value as a little-endian i32 at addr.
func (m *Memory) WriteI32(addr int32, value int32) {
	buf := m.slice()
	binary.LittleEndian.PutUint32(buf[addr:addr+4], uint32(value))
}

// ReadI64 reads a little-endian i64 at addr.
func (m *Memory) ReadI64(addr int32) int64 {
	buf := m.slice()
	return int64(binary.LittleEndian.Uint64(buf[addr : addr+8]))
}

// WriteI64 writes value as a little-endian i64 at addr.
func (m *Memory) WriteI64(addr int32, value int64) {
	buf := m.slice()
	binary.LittleEndian.PutUint64(buf[addr:addr+8], uint64(value))
}

// ReadF32 reads an IEEE 754 little-endian float32 at addr. NaNs and
// infinities round-trip exactly, including payload bits and sign.
func (m *Memory) ReadF32(addr int32) float32 {
	buf := m.slice()
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[addr : addr+4]))
}

// WriteF32 writes value as an IEEE 754 little-endian float32 at addr.
func (m *Memory) WriteF32(addr int32, value float32) {
	buf := m.slice()
	binary.LittleEndian.PutUint32(buf[addr:addr+4], math.Float32bits(value))
}

// ReadF64 reads an IEEE 754 little-endian float64 at addr.
func (m *Memory) ReadF64(addr int32) float64 {
	buf := m.slice()
	return math.Float64frombits(binary.LittleEndian.Uint64(buf[addr : addr+8]))
}

// WriteF64 writes value as an IEEE 754 little-endian float64 at addr.
func (m *Memory) WriteF64(addr int32, value float64) {
	buf := m.slice()
	binary.LittleEndian.PutUint64(buf[addr:addr+8], math.Float64bits(value))
}

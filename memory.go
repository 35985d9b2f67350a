package linmem

// Grow increases capacity by additionalPages*PageSize bytes. It tries an
// in-place (possibly relocating) remap first; where that is unsupported or
// fails, it falls back to allocating a fresh mapping and copying the old
// contents across. Bytes in [0, oldSize) are preserved bit-exactly; bytes
// in [oldSize, newSize) are zero. Grow does not return false: if the
// fallback mapping cannot be created it panics, as New does.
func (m *Memory) Grow(additionalPages uint32) bool {
	if additionalPages == 0 {
		return true
	}

	m.bufMu.Lock()
	defer m.bufMu.Unlock()

	oldSize := len(m.buf)
	newSize := oldSize + int(additionalPages)*PageSize

	if grown, ok := growInPlace(m.buf, newSize); ok {
		// The kernel zero-fills newly mapped pages for us.
		m.buf = grown
		return true
	}

	newBuf := mmapAnon(newSize)
	copy(newBuf, m.buf)
	old := m.buf
	m.buf = newBuf
	munmapQuiet(old)
	return true
}

// Copy performs a byte copy from m into dest (which may be m itself).
// Overlapping ranges within a single memory are handled correctly.
func (m *Memory) Copy(srcOffset int32, dest *Memory, destOffset int32, byteCount int32) {
	src := m.slice()
	if dest == m {
		copy(src[destOffset:destOffset+byteCount], src[srcOffset:srcOffset+byteCount])
		return
	}
	dst := dest.slice()
	copy(dst[destOffset:destOffset+byteCount], src[srcOffset:srcOffset+byteCount])
}

// Fill sets byteCount bytes starting at offset to value.
func (m *Memory) Fill(offset int32, byteCount int32, value byte) {
	buf := m.slice()
	region := buf[offset : offset+byteCount]
	for i := range region {
		region[i] = value
	}
}

// ReadByte reads a single byte at offset.
func (m *Memory) ReadByte(offset uint32) byte {
	return m.slice()[offset]
}

// WriteByte writes a single byte at offset.
func (m *Memory) WriteByte(offset uint32, v byte) {
	m.slice()[offset] = v
}

// Read returns a write-through view of byteCount bytes starting at offset.
// The slice aliases the backing region: writes to it are visible to
// subsequent reads, and it must be re-acquired after any Grow.
func (m *Memory) Read(offset, byteCount uint32) []byte {
	return m.slice()[offset : offset+byteCount]
}

// Write copies v into the buffer at offset.
func (m *Memory) Write(offset uint32, v []byte) {
	copy(m.slice()[offset:], v)
}

// ReadBytes reads byteCount bytes at addr. Equivalent to Read, using the
// spec's i32 address type.
func (m *Memory) ReadBytes(addr int32, byteCount int32) []byte {
	return m.Read(uint32(addr), uint32(byteCount))
}

// WriteBytes writes bytearray at addr. Equivalent to Write, using the
// spec's i32 address type.
func (m *Memory) WriteBytes(addr int32, bytearray []byte) {
	m.Write(uint32(addr), bytearray)
}

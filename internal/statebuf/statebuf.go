// Package statebuf maps raw device state buffers into typed, unit-correct
// fields. It performs no I/O: a Buffer is filled by a codec's receive path
// and read through static field tables. A too-short buffer or out-of-range
// field is a programming error and panics; device-level failures never
// originate here.
package statebuf

import "fmt"

// Buffer is a fixed-size state snapshot segmented into fields at fixed
// offsets. It is owned by exactly one device session and overwritten in
// place on each refresh; partial writes touch only their subrange and
// never resize the buffer.
type Buffer struct {
	data []byte
}

// NewBuffer allocates a zeroed state buffer of the given fixed size.
func NewBuffer(size int) *Buffer {
	return &Buffer{data: make([]byte, size)}
}

// Len returns the declared buffer length.
func (b *Buffer) Len() int { return len(b.data) }

// Write overwrites the subrange starting at offset with p. Writes outside
// the declared length panic: offsets and widths are fixed at compile time,
// so a mismatch is a defect in the caller, not a runtime condition.
func (b *Buffer) Write(offset int, p []byte) {
	if offset < 0 || offset+len(p) > len(b.data) {
		panic(fmt.Sprintf("statebuf: write [%d:%d) outside buffer of %d bytes",
			offset, offset+len(p), len(b.data)))
	}
	copy(b.data[offset:], p)
}

// Bytes returns the live backing slice. Callers must not retain it across
// a refresh; use Snapshot for a stable copy.
func (b *Buffer) Bytes() []byte { return b.data }

// Snapshot returns a copy of the current contents, safe to read after the
// buffer has been overwritten.
func (b *Buffer) Snapshot() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

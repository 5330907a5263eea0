package tfmt

import "io"

// FixedBuffer is a Sink over a pre-allocated byte slice. It never grows:
// once full, the bytes that do not fit are reported as unwritten.
type FixedBuffer struct {
	B []byte // destination slice
	N int    // current write position
}

var (
	_ Sink      = (*FixedBuffer)(nil)
	_ io.Writer = (*FixedBuffer)(nil)
)

// NewFixedBuffer creates a FixedBuffer that uses the full capacity of p.
func NewFixedBuffer(p []byte) *FixedBuffer {
	return &FixedBuffer{B: p[:cap(p)]}
}

// Put implements Sink.
func (b *FixedBuffer) Put(p []byte) int {
	n := copy(b.B[b.N:], p)
	b.N += n
	return len(p) - n
}

// Write implements the io.Writer interface. If p does not fit, it writes as
// much as it can and returns io.ErrShortWrite.
func (b *FixedBuffer) Write(p []byte) (int, error) {
	n := len(p) - b.Put(p)
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// WriteString implements the io.StringWriter interface.
func (b *FixedBuffer) WriteString(s string) (int, error) {
	n := copy(b.B[b.N:], s)
	b.N += n
	if n < len(s) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// WriteByte implements the io.ByteWriter interface.
func (b *FixedBuffer) WriteByte(c byte) error {
	if b.N >= len(b.B) {
		return io.ErrShortWrite
	}
	b.B[b.N] = c
	b.N++
	return nil
}

// Reset allows the underlying byte slice to be reused.
func (b *FixedBuffer) Reset() { b.N = 0 }

// Len returns the number of bytes written.
func (b *FixedBuffer) Len() int { return b.N }

// Size returns the capacity of the underlying byte slice.
func (b *FixedBuffer) Size() int { return len(b.B) }

// Available returns the number of bytes available for writing.
func (b *FixedBuffer) Available() int { return len(b.B) - b.N }

// Bytes returns a slice view of the written data.
func (b *FixedBuffer) Bytes() []byte { return b.B[:b.N] }

func (b *FixedBuffer) String() string { return string(b.B[:b.N]) }

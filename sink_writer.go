package tfmt

import (
	"bufio"
	"io"
)

// Writer is a buffered Sink over an io.Writer such as a file or the console.
// It wraps bufio.Writer and latches the first error; after it, every Put is
// reported as fully unwritten.
type Writer struct {
	w       *bufio.Writer
	dst     io.Writer
	count   int64 // bytes accepted
	dropped int64 // bytes reported unwritten
	err     error // latched; every later Put is dropped
	depth   int   // >0 when sharing a buffer owned by another Writer
}

var (
	_ Sink      = (*Writer)(nil)
	_ io.Writer = (*Writer)(nil)
)

// NewWriterSize returns a Writer over w with a buffer of at least size bytes.
// An existing *Writer or *bufio.Writer with a large enough buffer is shared
// instead of wrapped; a smaller one is rejected with ErrAlreadyBuffered.
// A nil w returns ErrNilIO.
func NewWriterSize(w io.Writer, size int) (*Writer, error) {
	if w == nil {
		return nil, ErrNilIO
	}

	switch bw := w.(type) {
	case *Writer:
		if bw.w.Size() >= size {
			return &Writer{w: bw.w, dst: bw.dst, depth: bw.depth + 1}, nil
		}
		return nil, ErrAlreadyBuffered

	case *bufio.Writer:
		if bw.Size() >= size {
			return &Writer{w: bw, dst: bw, depth: 1}, nil
		}
		return nil, ErrAlreadyBuffered
	}

	return &Writer{w: bufio.NewWriterSize(w, size), dst: w}, nil
}

// NewWriter is NewWriterSize with bufio's default size.
func NewWriter(w io.Writer) (*Writer, error) {
	return NewWriterSize(w, 0)
}

// Put implements Sink.
func (w *Writer) Put(p []byte) int {
	if w.err != nil {
		w.dropped += int64(len(p))
		return len(p)
	}
	n, err := w.w.Write(p)
	w.count += int64(n)
	w.setError(err)
	unwritten := len(p) - n
	w.dropped += int64(unwritten)
	return unwritten
}

// Write implements io.Writer on top of Put.
func (w *Writer) Write(p []byte) (int, error) {
	n := len(p) - w.Put(p)
	return n, w.err
}

func (w *Writer) Count() int64   { return w.count }
func (w *Writer) Dropped() int64 { return w.dropped }
func (w *Writer) Err() error     { return w.err }

// setError keeps the first error; later ones are usually its consequences.
func (w *Writer) setError(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

// Result flushes and returns the accepted byte count with the latched error.
func (w *Writer) Result() (int64, error) {
	w.Flush()
	return w.count, w.err
}

// Flush writes the buffered bytes to the destination. A Writer sharing
// another Writer's buffer leaves flushing to the owner.
func (w *Writer) Flush() error {
	if w.depth > 0 || w.err != nil {
		return w.err
	}
	err := w.w.Flush()
	w.setError(err)
	return err
}

// Close flushes the buffer and closes the underlying writer if it
// implements io.Closer.
func (w *Writer) Close() error {
	if err := w.Flush(); err != nil {
		return err
	}
	if w.depth > 0 {
		return nil
	}
	if c, ok := w.dst.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

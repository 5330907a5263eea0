package tfmt

import (
	"bufio"
	"bytes"
	"io"
)

// Sink is the output boundary of the engine.
//
// Put receives one chunk of rendered bytes and returns how many trailing
// bytes of p it could not accept: 0 means fully written, k > 0 means the
// last k bytes were dropped because the sink is full. Put must neither
// retain nor modify p; p may alias the template or a string argument.
type Sink interface {
	Put(p []byte) (unwritten int)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(p []byte) int

func (f SinkFunc) Put(p []byte) int { return f(p) }

// Discard is a Sink that accepts and drops every byte.
var Discard Sink = discard{}

type discard struct{}

func (discard) Put([]byte) int { return 0 }

type (
	bytesBufferSink struct{ *bytes.Buffer }
	bufioWriterSink struct{ *bufio.Writer }
	writerSink      struct{ w io.Writer }
)

// NewSink adapts an io.Writer to a Sink. Values that already implement Sink
// (FixedBuffer, Writer, CountingSink, ...) are returned unchanged.
// A *bytes.Buffer grows and never truncates; any other writer reports the
// bytes its Write did not take as unwritten. NewSink panics on a nil w.
func NewSink(w io.Writer) Sink {
	if w == nil {
		panic("tfmt: NewSink called with a nil io.Writer")
	}
	switch sw := w.(type) {
	case Sink:
		return sw
	case *bytes.Buffer:
		return bytesBufferSink{sw}
	case *bufio.Writer:
		return bufioWriterSink{sw}
	}
	return writerSink{w}
}

func (s bytesBufferSink) Put(p []byte) int {
	s.Write(p)
	return 0
}

func (s bufioWriterSink) Put(p []byte) int {
	n, _ := s.Write(p)
	return len(p) - n
}

func (s writerSink) Put(p []byte) int {
	n, _ := s.w.Write(p)
	if n < 0 || n > len(p) {
		// A writer that reports an impossible count accepted nothing we can trust.
		return len(p)
	}
	return len(p) - n
}

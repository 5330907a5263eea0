package tfmt

import (
	"sync"

	"github.com/puzpuzpuz/xsync/v4"
)

// CountingSink wraps a Sink and keeps totals of accepted and dropped bytes.
// The counters are safe to read from other goroutines while formatting runs;
// the wrapped sink is not made concurrent by this type (see Locked).
type CountingSink struct {
	sink    Sink
	puts    *xsync.Counter
	written *xsync.Counter
	dropped *xsync.Counter
}

// NewCountingSink wraps s.
func NewCountingSink(s Sink) *CountingSink {
	return &CountingSink{
		sink:    s,
		puts:    xsync.NewCounter(),
		written: xsync.NewCounter(),
		dropped: xsync.NewCounter(),
	}
}

// Put implements Sink.
func (c *CountingSink) Put(p []byte) int {
	unwritten := c.sink.Put(p)
	c.puts.Inc()
	c.written.Add(int64(len(p) - unwritten))
	if unwritten > 0 {
		c.dropped.Add(int64(unwritten))
	}
	return unwritten
}

// Puts returns the number of Put calls seen.
func (c *CountingSink) Puts() int64 { return c.puts.Value() }

// Written returns the number of bytes the wrapped sink accepted.
func (c *CountingSink) Written() int64 { return c.written.Value() }

// Dropped returns the number of bytes the wrapped sink reported unwritten.
func (c *CountingSink) Dropped() int64 { return c.dropped.Value() }

// Reset zeroes all counters.
func (c *CountingSink) Reset() {
	c.puts.Reset()
	c.written.Reset()
	c.dropped.Reset()
}

type lockedSink struct {
	mu   sync.Mutex
	sink Sink
}

// Locked serializes Put calls on s. The engine never locks; wrap a sink shared
// between goroutines (console, shared buffer) with Locked instead.
// Directives of concurrent calls may still interleave chunk by chunk.
func Locked(s Sink) Sink {
	return &lockedSink{sink: s}
}

func (l *lockedSink) Put(p []byte) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sink.Put(p)
}

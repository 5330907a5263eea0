package tfmt

import "sync"

const (
	// scratchSize covers the widest float render: 309 whole digits, 102 group
	// separators, a sign, '.', 12 fractional digits and a unit suffix.
	scratchSize = 640
	// scratchMid splits the backward (digits) and forward (fraction, suffix) regions.
	scratchMid = 448

	padChunk = 64
)

// scratch is the intermediate render buffer. Digits are pushed backward from
// the midpoint and fractional digits appended forward from it, so the
// rendered value is always buf[lo:hi].
type scratch struct {
	buf [scratchSize]byte
	lo  int
	hi  int
}

// scratchPool hands out render buffers so formatting calls stay off the heap.
var scratchPool = sync.Pool{
	New: func() any { return new(scratch) },
}

var (
	spaces [padChunk]byte
	zeros  [padChunk]byte

	minus      = []byte{'-'}
	lbrace     = []byte{'{'}
	groupOpen  = []byte("{ ")
	groupClose = []byte(" }")
	groupSep   = []byte(", ")
	groupEmpty = []byte("{ }")
)

func init() {
	for i := range spaces {
		spaces[i] = ' '
		zeros[i] = '0'
	}
}

func (s *scratch) reset() { s.lo, s.hi = scratchMid, scratchMid }

func (s *scratch) len() int { return s.hi - s.lo }

func (s *scratch) bytes() []byte { return s.buf[s.lo:s.hi] }

func (s *scratch) push(c byte) {
	s.lo--
	s.buf[s.lo] = c
}

func (s *scratch) pushString(p string) {
	if len(p) > s.lo {
		panic("tfmt: scratch overflow")
	}
	s.lo -= len(p)
	copy(s.buf[s.lo:], p)
}

func (s *scratch) pushFill(c byte, n int) {
	for ; n > 0; n-- {
		s.push(c)
	}
}

func (s *scratch) append(c byte) {
	s.buf[s.hi] = c
	s.hi++
}

func (s *scratch) appendString(p string) {
	if len(p) > len(s.buf)-s.hi {
		panic("tfmt: scratch overflow")
	}
	s.hi += copy(s.buf[s.hi:], p)
}

func (s *scratch) appendFill(c byte, n int) {
	for ; n > 0; n-- {
		s.append(c)
	}
}

// flush writes the rendered value to sink, padded to the width pad. A positive
// pad right-aligns, a negative one left-aligns. zero selects '0' fill, which
// goes between the sign and the digits. neg requests a leading '-' that the
// renderer has not pushed yet. The padding is built in place when it fits
// and written in chunks otherwise.
func (s *scratch) flush(sink Sink, pad int, zero, neg bool) int {
	leftAlign := pad < 0
	if leftAlign {
		pad = -pad
	}
	n := s.len()
	if neg {
		n++
	}
	fill := pad - n

	switch {
	case fill <= 0:
		if neg {
			s.push('-')
		}
		return sink.Put(s.bytes())

	case zero && !leftAlign:
		if fill < s.lo {
			s.pushFill('0', fill)
			if neg {
				s.push('-')
			}
			return sink.Put(s.bytes())
		}
		unwritten := 0
		if neg {
			unwritten += sink.Put(minus)
		}
		unwritten += putFill(sink, &zeros, fill)
		return unwritten + sink.Put(s.bytes())

	case leftAlign:
		if neg {
			s.push('-')
		}
		if fill <= len(s.buf)-s.hi {
			s.appendFill(' ', fill)
			return sink.Put(s.bytes())
		}
		unwritten := sink.Put(s.bytes())
		return unwritten + putFill(sink, &spaces, fill)

	default:
		if neg {
			s.push('-')
		}
		if fill <= s.lo {
			s.pushFill(' ', fill)
			return sink.Put(s.bytes())
		}
		unwritten := putFill(sink, &spaces, fill)
		return unwritten + sink.Put(s.bytes())
	}
}

// putFill writes n copies of the table's byte in padChunk-sized pieces.
func putFill(sink Sink, table *[padChunk]byte, n int) int {
	unwritten := 0
	for n > 0 {
		k := min(n, padChunk)
		unwritten += sink.Put(table[:k])
		n -= k
	}
	return unwritten
}

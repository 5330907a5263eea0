package tfmt

// appendSink is the growable buffer behind Append and Sprint.
type appendSink struct {
	buf []byte
}

func (s *appendSink) Put(p []byte) int {
	s.buf = append(s.buf, p...)
	return 0
}

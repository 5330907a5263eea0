package tfmt

import "unsafe"

func putBool(sink Sink, s *scratch, v bool, m *Modifiers) int {
	s.reset()
	if v {
		s.pushString("true")
	} else {
		s.pushString("false")
	}
	return s.flush(sink, m.Padding, false, false)
}

func putChar(sink Sink, s *scratch, c byte, m *Modifiers) int {
	s.reset()
	s.push(toCase(c, m.Case))
	return s.flush(sink, m.Padding, false, false)
}

// putText writes str with padding. Without case conversion the string goes
// to the sink as is; otherwise it is converted through the scratch buffer
// one buffer-full at a time.
func putText(sink Sink, s *scratch, str string, m *Modifiers) int {
	pad, leftAlign := m.Padding, m.Padding < 0
	if leftAlign {
		pad = -pad
	}
	fill := pad - len(str)

	unwritten := 0
	if fill > 0 && !leftAlign {
		unwritten += putFill(sink, &spaces, fill)
	}
	if m.Case == CaseNormal {
		unwritten += putLiteral(sink, str)
	} else {
		for str != "" {
			n := copy(s.buf[:], str)
			for i := range n {
				s.buf[i] = toCase(s.buf[i], m.Case)
			}
			unwritten += sink.Put(s.buf[:n])
			str = str[n:]
		}
	}
	if fill > 0 && leftAlign {
		unwritten += putFill(sink, &spaces, fill)
	}
	return unwritten
}

// putLiteral writes a template span without copying it.
func putLiteral(sink Sink, lit string) int {
	if lit == "" {
		return 0
	}
	return sink.Put(unsafe.Slice(unsafe.StringData(lit), len(lit)))
}

// cString cuts str at its first NUL byte.
func cString(str string) string {
	for i := 0; i < len(str); i++ {
		if str[i] == 0 {
			return str[:i]
		}
	}
	return str
}

func toCase(c byte, cs Case) byte {
	switch {
	case cs == CaseUpper && c >= 'a' && c <= 'z':
		return c - ('a' - 'A')
	case cs == CaseLower && c >= 'A' && c <= 'Z':
		return c + ('a' - 'A')
	}
	return c
}

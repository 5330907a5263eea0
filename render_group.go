package tfmt

import "math"

// putDirective renders the argument of one directive. It reports false when
// the argument cannot be rendered by id, which stops the scan.
func putDirective(sink Sink, s *scratch, id Ident, m *Modifiers, a Arg) (int, bool) {
	if !m.Repeat {
		return putElement(sink, s, id, m, a)
	}

	if !a.isSlice() || !accepts(id, a.elem) {
		return 0, false
	}
	count := m.Count
	if count == 0 {
		count = a.n
	}
	if a.n < count || (m.Base == BaseMemory && count > 1) {
		return 0, false
	}
	if count == 0 {
		return sink.Put(groupEmpty), true
	}

	unwritten := sink.Put(groupOpen)
	for i := range count {
		if i > 0 {
			unwritten += sink.Put(groupSep)
		}
		n, ok := putElement(sink, s, id, m, a.index(i))
		unwritten += n
		if !ok {
			return unwritten, false
		}
	}
	return unwritten + sink.Put(groupClose), true
}

// putElement renders one scalar or one vector.
func putElement(sink Sink, s *scratch, id Ident, m *Modifiers, a Arg) (int, bool) {
	comps := id.Components()
	if comps == 1 {
		return putScalar(sink, s, id, m, a)
	}

	v, ok := a.components(id)
	if !ok {
		return 0, false
	}
	comp := id.component()
	unwritten := sink.Put(groupOpen)
	for i := range comps {
		if i > 0 {
			unwritten += sink.Put(groupSep)
		}
		if comp == IdentF32 {
			unwritten += putFloat(sink, s, float64(math.Float32frombits(v[i])), m)
		} else {
			unwritten += putInt(sink, s, uint64(v[i]), comp, m)
		}
	}
	return unwritten + sink.Put(groupClose), true
}

func putScalar(sink Sink, s *scratch, id Ident, m *Modifiers, a Arg) (int, bool) {
	switch id.info().fam {
	case famBool:
		v, ok := a.integer()
		if !ok {
			return 0, false
		}
		return putBool(sink, s, v != 0, m), true

	case famChar:
		v, ok := a.integer()
		if !ok {
			return 0, false
		}
		return putChar(sink, s, byte(v), m), true

	case famText:
		str, ok := a.text()
		if !ok {
			return 0, false
		}
		if id == IdentCString {
			str = cString(str)
		}
		return putText(sink, s, str, m), true

	case famFloat:
		f, ok := a.float()
		if !ok {
			return 0, false
		}
		if id == IdentF32 {
			f = float64(float32(f))
		}
		return putFloat(sink, s, f, m), true

	case famInt:
		v, ok := a.integer()
		if !ok {
			return 0, false
		}
		return putInt(sink, s, v, id, m), true
	}
	return 0, false
}

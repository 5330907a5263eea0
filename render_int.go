package tfmt

const (
	digitsLower = "0123456789abcdef"
	digitsUpper = "0123456789ABCDEF"
)

// maxDecimalDigits is the digit count of the largest value of an integer type.
func maxDecimalDigits(bits int, signed bool) int {
	switch bits {
	case 8:
		return 3
	case 16:
		return 5
	case 32:
		return 10
	}
	if signed {
		return 19
	}
	return 20
}

// renderInt pushes the digits of v, the bit pattern of an integer of width
// bits, into s. It reports whether a '-' is still owed for a negative
// decimal value.
func renderInt(s *scratch, v uint64, bits int, signed bool, m *Modifiers) bool {
	v = truncateBits(v, bits)
	full := m.Width&WidthFull != 0
	grouped := m.Width&WidthGrouped != 0

	switch m.Base {
	case BaseBinary, BaseHexLower, BaseHexUpper:
		base, group, alphabet, prefix := uint64(16), 4, digitsLower, "0x"
		switch m.Base {
		case BaseBinary:
			base, group, alphabet, prefix = 2, 8, digitsLower, "0b"
		case BaseHexUpper:
			alphabet = digitsUpper
		}
		minDigits := 1
		if full {
			minDigits = bits
			if base == 16 {
				minDigits = bits / 4
			}
		}
		if !grouped {
			group = 0
		}
		pushDigits(s, v, base, alphabet, minDigits, group, '\'')
		s.pushString(prefix)
		return false
	}

	neg := false
	if signed {
		if sv := signExtend(v, bits); sv < 0 {
			neg = true
			v = uint64(^sv) + 1
		}
	}
	minDigits, group := 1, 0
	if full {
		minDigits = maxDecimalDigits(bits, signed)
	}
	if grouped {
		group = 3
	}
	pushDigits(s, v, 10, digitsLower, minDigits, group, ',')
	return neg
}

// pushDigits pushes v in the given base, least significant digit first, until
// v is exhausted and at least minDigits digits were pushed. With group > 0
// sep is pushed between every group digits; it is only ever pushed ahead of
// another digit, so the render never starts with a separator.
func pushDigits(s *scratch, v, base uint64, alphabet string, minDigits, group int, sep byte) {
	for n := 0; ; n++ {
		if group > 0 && n > 0 && n%group == 0 {
			s.push(sep)
		}
		s.push(alphabet[v%base])
		v /= base
		if v == 0 && n+1 >= minDigits {
			return
		}
	}
}

// putInt renders one integer scalar through the scratch buffer into sink.
func putInt(sink Sink, s *scratch, v uint64, id Ident, m *Modifiers) int {
	info := id.info()
	if m.Base == BaseMemory {
		return putMemory(sink, s, truncateBits(v, int(info.bits)), m)
	}
	s.reset()
	neg := renderInt(s, v, int(info.bits), info.signed, m)
	return s.flush(sink, m.Padding, m.ZeroPad, neg)
}

func truncateBits(v uint64, bits int) uint64 {
	if bits < 64 {
		return v & (1<<bits - 1)
	}
	return v
}

package tfmt

import "math"

var memoryUnits = [...]string{" B", " KB", " MB", " GB", " TB"}

// two64 is the first whole value that no longer fits the uint64 digit path.
const two64 = 1 << 64

// renderFloat pushes a finite f as fixed-point decimal. The fraction is
// produced by repeated multiplication and truncated at the last retained
// digit, never rounded. It reports whether a '-' is owed.
func renderFloat(s *scratch, f float64, m *Modifiers, integral bool) bool {
	neg := f < 0
	if neg {
		f = -f
	}

	precision := min(m.Precision, MaxPrecision)
	unit := 0
	if m.Base == BaseMemory {
		for f >= 1024 && unit < len(memoryUnits)-1 {
			f /= 1024
			unit++
		}
		if integral && unit == 0 {
			precision = 0
		}
	}

	group := 0
	if m.Width&WidthGrouped != 0 {
		group = 3
	}

	whole := math.Floor(f)
	frac := f - whole
	if whole < two64 {
		pushDigits(s, uint64(whole), 10, digitsLower, 1, group, ',')
	} else {
		pushWholeDigits(s, whole, group)
	}

	if precision > 0 {
		s.append('.')
		for range precision {
			frac *= 10
			d := int(frac)
			if d > 9 {
				d = 9
			}
			s.append('0' + byte(d))
			frac -= float64(d)
		}
	}
	if m.Base == BaseMemory {
		s.appendString(memoryUnits[unit])
	}
	return neg
}

// pushWholeDigits handles whole parts beyond uint64 by dividing in float64.
// The low digits of such values carry float64's own imprecision.
func pushWholeDigits(s *scratch, whole float64, group int) {
	for n := 0; whole >= 1; n++ {
		if group > 0 && n > 0 && n%group == 0 {
			s.push(',')
		}
		s.push('0' + byte(math.Mod(whole, 10)))
		whole = math.Floor(whole / 10)
	}
}

// putFloat renders one float scalar into sink. NaN and the infinities skip
// the digit logic and zero fill.
func putFloat(sink Sink, s *scratch, f float64, m *Modifiers) int {
	s.reset()
	switch {
	case math.IsNaN(f):
		s.pushString("NaN")
	case math.IsInf(f, 1):
		s.pushString("INF")
	case math.IsInf(f, -1):
		s.pushString("-INF")
	default:
		neg := renderFloat(s, f, m, false)
		return s.flush(sink, m.Padding, m.ZeroPad, neg)
	}
	return s.flush(sink, m.Padding, false, false)
}

// putMemory renders an unsigned byte count with memory units. Counts below
// 1024 keep their integral form ("999 B").
func putMemory(sink Sink, s *scratch, v uint64, m *Modifiers) int {
	s.reset()
	neg := renderFloat(s, float64(v), m, true)
	return s.flush(sink, m.Padding, m.ZeroPad, neg)
}

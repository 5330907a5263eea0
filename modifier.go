package tfmt

import "strings"

// Base selects the digit alphabet of a numeric render.
type Base uint8

const (
	BaseDecimal Base = iota
	BaseBinary
	BaseHexLower
	BaseHexUpper
	BaseMemory // byte-size units: B, KB, MB, GB, TB
)

// WidthMode is a set of flags controlling how many digits a numeric render
// produces and whether they are grouped. The zero value is the normal mode.
type WidthMode uint8

const (
	WidthNormal  WidthMode = 0
	WidthFull    WidthMode = 1 // every digit of the type's width, zero-filled
	WidthGrouped WidthMode = 2 // separator between digit groups
)

// Case selects ASCII case conversion for character and text renders.
type Case uint8

const (
	CaseNormal Case = iota
	CaseUpper
	CaseLower
)

const (
	// DefaultPrecision is the number of fractional digits of a float render.
	DefaultPrecision = 6
	// MemoryPrecision is the default precision under the 'm' modifier.
	MemoryPrecision = 2
	// MaxPrecision caps the requested precision.
	MaxPrecision = 12
)

// Modifiers is the parsed modifier list of one directive.
type Modifiers struct {
	Base      Base
	Width     WidthMode
	Case      Case
	Count     int  // explicit '*N' count, 0 when absent
	Repeat    bool // '*' seen: the argument is a slice
	Precision int
	Padding   int // >0 pads on the left, <0 pads on the right
	ZeroPad   bool
}

// parseModifiers reads the ",mod,mod}" tail of a directive. t[i] must be the
// ',' or '}' following the identifier. On success the returned position is
// just past the closing '}'.
func parseModifiers(t string, i int, id Ident) (Modifiers, int, error) {
	var m Modifiers
	precisionSet := false
	for {
		if i >= len(t) {
			return m, i, ErrUnterminated
		}
		if t[i] == '}' {
			break
		}
		i++
		start := i
		for i < len(t) && t[i] != ',' && t[i] != '}' {
			i++
		}
		if i >= len(t) {
			return m, i, ErrUnterminated
		}
		if err := m.apply(t[start:i], id, &precisionSet); err != nil {
			return m, i, err
		}
	}

	info := id.info()
	switch {
	case precisionSet && info.fam != famFloat && m.Base != BaseMemory:
		return m, i, ErrIllegalModifier
	case m.Base == BaseMemory && m.Count > 1:
		return m, i, ErrIllegalModifier
	}
	if !precisionSet {
		switch {
		case m.Base == BaseMemory:
			m.Precision = MemoryPrecision
		case info.fam == famFloat:
			m.Precision = DefaultPrecision
		}
	}
	if m.Base != BaseDecimal || m.Width != WidthNormal || m.Padding < 0 {
		m.ZeroPad = false
	}
	return m, i + 1, nil
}

// apply folds one modifier token into m.
func (m *Modifiers) apply(tok string, id Ident, precisionSet *bool) error {
	if tok == "" {
		return ErrIllegalModifier
	}
	info := id.info()
	c := tok[0]

	if c == '*' {
		return m.applyCount(tok[1:])
	}
	if c == '-' || c == '.' || (c >= '0' && c <= '9') {
		return m.applyNumber(tok, info, precisionSet)
	}
	if len(tok) != 1 {
		return ErrIllegalModifier
	}

	switch c {
	case 'b':
		if info.fam != famInt {
			return ErrIllegalModifier
		}
		return m.setBase(BaseBinary)
	case 'x':
		if info.fam != famInt {
			return ErrIllegalModifier
		}
		return m.setBase(BaseHexLower)
	case 'X':
		if info.fam != famInt {
			return ErrIllegalModifier
		}
		return m.setBase(BaseHexUpper)
	case 'm':
		if info.comps != 1 || !(info.fam == famFloat || (info.fam == famInt && !info.signed)) {
			return ErrIllegalModifier
		}
		return m.setBase(BaseMemory)
	case 'f':
		if info.fam != famInt {
			return ErrIllegalModifier
		}
		m.Width |= WidthFull
	case 's':
		if info.fam != famInt && info.fam != famFloat {
			return ErrIllegalModifier
		}
		m.Width |= WidthGrouped
	case 'u', 'l':
		if info.fam != famChar && info.fam != famText {
			return ErrIllegalModifier
		}
		if c == 'u' {
			m.Case = CaseUpper
		} else {
			m.Case = CaseLower
		}
	default:
		return ErrIllegalModifier
	}
	return nil
}

func (m *Modifiers) setBase(b Base) error {
	if m.Base != BaseDecimal && m.Base != b {
		return ErrIllegalModifier
	}
	m.Base = b
	return nil
}

func (m *Modifiers) applyCount(digits string) error {
	m.Repeat = true
	if digits == "" {
		return nil
	}
	if !isDigits(digits) {
		return ErrIllegalModifier
	}
	n, err := ParseUint[uint32](digits)
	if err != nil || n == 0 {
		return ErrIllegalModifier
	}
	m.Count = int(n)
	return nil
}

// applyNumber handles the "[-]width[.precision]" token.
func (m *Modifiers) applyNumber(tok string, info identInfo, precisionSet *bool) error {
	width, precision, hasDot := strings.Cut(tok, ".")

	if width != "" {
		digits := width
		neg := digits[0] == '-'
		if neg {
			digits = digits[1:]
		}
		if !isDigits(digits) {
			return ErrIllegalModifier
		}
		n, err := ParseInt[int](digits)
		if err != nil {
			return ErrPaddingRange
		}
		if neg {
			n = -n
		}
		m.Padding = n
		if digits[0] == '0' && info.fam != famText && info.fam != famChar {
			m.ZeroPad = true
		}
	}

	if hasDot {
		if !isDigits(precision) {
			return ErrIllegalModifier
		}
		p, err := ParseUint[uint32](precision)
		if err != nil {
			return ErrIllegalModifier
		}
		if p > MaxPrecision {
			p = MaxPrecision
		}
		m.Precision = int(p)
		*precisionSet = true
	}
	return nil
}

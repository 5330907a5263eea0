package tfmt

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// ParseUint parses s as an unsigned integer of type T.
//
// s may carry a 0x/0X (hexadecimal) or 0b/0B (binary) prefix; otherwise it is
// decimal and may start with '+'. Digit groups may be separated the way the
// renderer writes them: a comma for decimal, an apostrophe for hexadecimal
// and binary.
// A separator must sit between two digits.
func ParseUint[T constraints.Unsigned](s string) (T, error) {
	bits := int(unsafe.Sizeof(T(0))) * 8
	body := s
	if len(body) > 0 && body[0] == '+' {
		body = body[1:]
		if hasRadixPrefix(body) {
			return 0, &NumError{"ParseUint", s, ErrSyntax}
		}
	}
	v, _, err := parseMagnitude(body, bits)
	if err != nil {
		return 0, &NumError{"ParseUint", s, err}
	}
	return T(v), nil
}

// ParseInt parses s as a signed integer of type T.
//
// Decimal input may start with '-' or '+'. Hexadecimal and binary input is read
// as the two's-complement bit pattern of T, so "0xff" parses as -1 for int8.
func ParseInt[T constraints.Signed](s string) (T, error) {
	bits := int(unsafe.Sizeof(T(0))) * 8
	body := s
	neg := false
	if len(body) > 0 && (body[0] == '-' || body[0] == '+') {
		neg = body[0] == '-'
		body = body[1:]
		if hasRadixPrefix(body) {
			return 0, &NumError{"ParseInt", s, ErrSyntax}
		}
	}

	if hasRadixPrefix(body) {
		v, _, err := parseMagnitude(body, bits)
		if err != nil {
			return 0, &NumError{"ParseInt", s, err}
		}
		return T(signExtend(v, bits)), nil
	}

	v, _, err := parseMagnitude(body, 64)
	if err != nil {
		return 0, &NumError{"ParseInt", s, err}
	}
	limit := uint64(1) << (bits - 1)
	if neg {
		if v > limit {
			return 0, &NumError{"ParseInt", s, ErrRange}
		}
		return T(-int64(v-1) - 1), nil
	}
	if v >= limit {
		return 0, &NumError{"ParseInt", s, ErrRange}
	}
	return T(v), nil
}

func hasRadixPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X' || s[1] == 'b' || s[1] == 'B')
}

// parseMagnitude reads an unsigned number that must fit in bits bits.
// It returns the value and the radix it detected.
func parseMagnitude(s string, bits int) (uint64, int, error) {
	base, sep := uint64(10), byte(',')
	if hasRadixPrefix(s) {
		if s[1] == 'x' || s[1] == 'X' {
			base = 16
		} else {
			base = 2
		}
		sep = '\''
		s = s[2:]
	}
	if s == "" {
		return 0, int(base), ErrSyntax
	}

	max := uint64(math.MaxUint64)
	if bits < 64 {
		max = 1<<bits - 1
	}

	var v uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == sep {
			if i == 0 || i == len(s)-1 || s[i-1] == sep {
				return 0, int(base), ErrSyntax
			}
			continue
		}
		d, ok := digitValue(c)
		if !ok || d >= base {
			return 0, int(base), ErrSyntax
		}
		if v > (max-d)/base {
			return 0, int(base), ErrRange
		}
		v = v*base + d
	}
	return v, int(base), nil
}

func digitValue(c byte) (uint64, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint64(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint64(c-'A') + 10, true
	}
	return 0, false
}

// signExtend interprets the low bits bits of v as a two's-complement number.
func signExtend(v uint64, bits int) int64 {
	shift := 64 - bits
	return int64(v<<shift) >> shift
}

// isDigits reports whether s is a non-empty run of ASCII decimal digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

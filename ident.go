package tfmt

import "strconv"

// Ident classifies the argument a directive expects.
type Ident uint8

const (
	IdentUnknown Ident = iota
	IdentBrace         // "{{": a literal '{', consumes no argument
	IdentBool
	IdentChar
	IdentCString
	IdentString
	IdentF32
	IdentF64
	IdentV2
	IdentV3
	IdentV4
	IdentI8
	IdentI16
	IdentI32
	IdentI64
	IdentIsize
	IdentU8
	IdentU16
	IdentU32
	IdentU64
	IdentUsize
	IdentIV2
	IdentIV3
	IdentIV4
	IdentUV2
	IdentUV3
	IdentUV4
)

type family uint8

const (
	famNone family = iota
	famBool
	famChar
	famText
	famFloat
	famInt
)

type identInfo struct {
	name   string
	fam    family
	bits   uint8
	signed bool
	comps  uint8 // 1 for scalars
}

var identTable = [...]identInfo{
	IdentUnknown: {"unknown", famNone, 0, false, 0},
	IdentBrace:   {"{", famNone, 0, false, 0},
	IdentBool:    {"b", famBool, 8, false, 1},
	IdentChar:    {"c", famChar, 8, false, 1},
	IdentCString: {"cc", famText, 0, false, 1},
	IdentString:  {"s", famText, 0, false, 1},
	IdentF32:     {"f32", famFloat, 32, true, 1},
	IdentF64:     {"f64", famFloat, 64, true, 1},
	IdentV2:      {"v2", famFloat, 32, true, 2},
	IdentV3:      {"v3", famFloat, 32, true, 3},
	IdentV4:      {"v4", famFloat, 32, true, 4},
	IdentI8:      {"i8", famInt, 8, true, 1},
	IdentI16:     {"i16", famInt, 16, true, 1},
	IdentI32:     {"i32", famInt, 32, true, 1},
	IdentI64:     {"i64", famInt, 64, true, 1},
	IdentIsize:   {"isize", famInt, strconv.IntSize, true, 1},
	IdentU8:      {"u8", famInt, 8, false, 1},
	IdentU16:     {"u16", famInt, 16, false, 1},
	IdentU32:     {"u32", famInt, 32, false, 1},
	IdentU64:     {"u64", famInt, 64, false, 1},
	IdentUsize:   {"usize", famInt, strconv.IntSize, false, 1},
	IdentIV2:     {"iv2", famInt, 32, true, 2},
	IdentIV3:     {"iv3", famInt, 32, true, 3},
	IdentIV4:     {"iv4", famInt, 32, true, 4},
	IdentUV2:     {"uv2", famInt, 32, false, 2},
	IdentUV3:     {"uv3", famInt, 32, false, 3},
	IdentUV4:     {"uv4", famInt, 32, false, 4},
}

func (id Ident) info() identInfo {
	if int(id) >= len(identTable) {
		return identTable[IdentUnknown]
	}
	return identTable[id]
}

// String returns the identifier as written in a template.
func (id Ident) String() string { return id.info().name }

// Bits returns the bit width of one component, 0 for text identifiers.
func (id Ident) Bits() int { return int(id.info().bits) }

// Signed reports whether the integer or float component is signed.
func (id Ident) Signed() bool { return id.info().signed }

// Components returns 2, 3 or 4 for vector identifiers and 1 for scalars.
func (id Ident) Components() int { return int(id.info().comps) }

func (id Ident) IsInteger() bool { return id.info().fam == famInt }
func (id Ident) IsFloat() bool   { return id.info().fam == famFloat }
func (id Ident) IsText() bool    { return id.info().fam == famText || id.info().fam == famChar }

// component returns the scalar identifier of one vector component.
func (id Ident) component() Ident {
	switch {
	case id >= IdentV2 && id <= IdentV4:
		return IdentF32
	case id >= IdentIV2 && id <= IdentIV4:
		return IdentI32
	case id >= IdentUV2 && id <= IdentUV4:
		return IdentU32
	}
	return id
}

// resolveIdent classifies the identifier starting at t[i], just after '{'.
// On success the returned position is at the ',' or '}' that follows it;
// for IdentBrace it is just past the second '{'.
func resolveIdent(t string, i int) (Ident, int) {
	if i >= len(t) {
		return IdentUnknown, i
	}

	id := IdentUnknown
	switch t[i] {
	case '{':
		return IdentBrace, i + 1
	case 'b':
		id, i = IdentBool, i+1
	case 'c':
		i++
		if i < len(t) && t[i] == 'c' {
			id, i = IdentCString, i+1
		} else {
			id = IdentChar
		}
	case 's':
		id, i = IdentString, i+1
	case 'f':
		i++
		switch {
		case hasPrefixAt(t, i, "32"):
			id, i = IdentF32, i+2
		case hasPrefixAt(t, i, "64"):
			id, i = IdentF64, i+2
		default:
			id = IdentF64
		}
	case 'v':
		id, i = vectorIdent(t, i+1, IdentV2)
	case 'i':
		id, i = integerIdent(t, i+1, IdentI8, IdentIV2)
	case 'u':
		id, i = integerIdent(t, i+1, IdentU8, IdentUV2)
	}

	if id == IdentUnknown || i >= len(t) || (t[i] != ',' && t[i] != '}') {
		return IdentUnknown, i
	}
	return id, i
}

// integerIdent resolves the width suffix of an 'i' or 'u' identifier.
// base is the 8-bit identifier of the family, vec its 2-component vector.
func integerIdent(t string, i int, base, vec Ident) (Ident, int) {
	switch {
	case hasPrefixAt(t, i, "8"):
		return base, i + 1
	case hasPrefixAt(t, i, "16"):
		return base + 1, i + 2
	case hasPrefixAt(t, i, "32"):
		return base + 2, i + 2
	case hasPrefixAt(t, i, "64"):
		return base + 3, i + 2
	case hasPrefixAt(t, i, "size"):
		return base + 4, i + 4
	case hasPrefixAt(t, i, "v"):
		return vectorIdent(t, i+1, vec)
	}
	return IdentUnknown, i
}

func vectorIdent(t string, i int, two Ident) (Ident, int) {
	if i < len(t) && t[i] >= '2' && t[i] <= '4' {
		return two + Ident(t[i]-'2'), i + 1
	}
	return IdentUnknown, i
}

func hasPrefixAt(t string, i int, prefix string) bool {
	return len(t)-i >= len(prefix) && t[i:i+len(prefix)] == prefix
}

package tfmt

import (
	"math"
	"reflect"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Kind is the type tag of an Arg.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindChar
	KindInt
	KindUint
	KindF32
	KindF64
	KindString
	KindBytes
	KindV2
	KindV3
	KindV4
	KindIV2
	KindIV3
	KindIV4
	KindUV2
	KindUV3
	KindUV4
	KindSlice
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindBool:    "bool",
	KindChar:    "char",
	KindInt:     "int",
	KindUint:    "uint",
	KindF32:     "float32",
	KindF64:     "float64",
	KindString:  "string",
	KindBytes:   "bytes",
	KindV2:      "Vec2",
	KindV3:      "Vec3",
	KindV4:      "Vec4",
	KindIV2:     "IVec2",
	KindIV3:     "IVec3",
	KindIV4:     "IVec4",
	KindUV2:     "UVec2",
	KindUV3:     "UVec3",
	KindUV4:     "UVec4",
	KindSlice:   "slice",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// Float and integer vectors rendered by the v*, iv* and uv* identifiers.
type (
	Vec2  [2]float32
	Vec3  [3]float32
	Vec4  [4]float32
	IVec2 [2]int32
	IVec3 [3]int32
	IVec4 [4]int32
	UVec2 [2]uint32
	UVec3 [3]uint32
	UVec4 [4]uint32
)

// Element lists the element types a slice argument may hold.
type Element interface {
	~bool |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string |
		~[2]float32 | ~[3]float32 | ~[4]float32 |
		~[2]int32 | ~[3]int32 | ~[4]int32 |
		~[2]uint32 | ~[3]uint32 | ~[4]uint32
}

// Arg is one formatting argument: a tagged value that carries its payload
// inline, or a borrowed view of the caller's slice for '*' directives.
// An Arg must not outlive the data it was built from.
type Arg struct {
	kind Kind
	elem Kind      // element kind of KindSlice and KindBytes
	u    uint64    // scalar bits; element size for slices
	v    [4]uint32 // vector components
	s    string
	p    unsafe.Pointer
	n    int
}

func Bool(v bool) Arg {
	a := Arg{kind: KindBool}
	if v {
		a.u = 1
	}
	return a
}

func Char(c byte) Arg { return Arg{kind: KindChar, u: uint64(c)} }

func Int[T constraints.Signed](v T) Arg { return Arg{kind: KindInt, u: uint64(int64(v))} }

func Uint[T constraints.Unsigned](v T) Arg { return Arg{kind: KindUint, u: uint64(v)} }

func F32(v float32) Arg { return Arg{kind: KindF32, u: uint64(math.Float32bits(v))} }

func F64(v float64) Arg { return Arg{kind: KindF64, u: math.Float64bits(v)} }

func String(s string) Arg { return Arg{kind: KindString, s: s} }

// Bytes renders b as text under s/cc and as a slice of uint8 under '*'.
func Bytes(b []byte) Arg {
	return Arg{
		kind: KindBytes,
		elem: KindUint,
		u:    1,
		s:    unsafe.String(unsafe.SliceData(b), len(b)),
		p:    unsafe.Pointer(unsafe.SliceData(b)),
		n:    len(b),
	}
}

func V2(v Vec2) Arg {
	return Arg{kind: KindV2, v: [4]uint32{math.Float32bits(v[0]), math.Float32bits(v[1])}}
}

func V3(v Vec3) Arg {
	return Arg{kind: KindV3, v: [4]uint32{math.Float32bits(v[0]), math.Float32bits(v[1]), math.Float32bits(v[2])}}
}

func V4(v Vec4) Arg {
	return Arg{kind: KindV4, v: [4]uint32{
		math.Float32bits(v[0]), math.Float32bits(v[1]), math.Float32bits(v[2]), math.Float32bits(v[3]),
	}}
}

func IV2(v IVec2) Arg { return Arg{kind: KindIV2, v: [4]uint32{uint32(v[0]), uint32(v[1])}} }

func IV3(v IVec3) Arg {
	return Arg{kind: KindIV3, v: [4]uint32{uint32(v[0]), uint32(v[1]), uint32(v[2])}}
}

func IV4(v IVec4) Arg {
	return Arg{kind: KindIV4, v: [4]uint32{uint32(v[0]), uint32(v[1]), uint32(v[2]), uint32(v[3])}}
}

func UV2(v UVec2) Arg { return Arg{kind: KindUV2, v: [4]uint32{v[0], v[1]}} }

func UV3(v UVec3) Arg { return Arg{kind: KindUV3, v: [4]uint32{v[0], v[1], v[2]}} }

func UV4(v UVec4) Arg { return Arg{kind: KindUV4, v: [4]uint32{v[0], v[1], v[2], v[3]}} }

// Slice wraps s for a '*' directive. The Arg borrows s; it is not copied.
func Slice[T Element](s []T) Arg {
	var zero T
	return Arg{
		kind: KindSlice,
		elem: kindOf(reflect.TypeFor[T]()),
		u:    uint64(unsafe.Sizeof(zero)),
		p:    unsafe.Pointer(unsafe.SliceData(s)),
		n:    len(s),
	}
}

// Kind returns the type tag of a.
func (a Arg) Kind() Kind { return a.kind }

// Len returns the element count of a slice argument, 0 otherwise.
func (a Arg) Len() int {
	if a.kind == KindSlice || a.kind == KindBytes {
		return a.n
	}
	return 0
}

func (a Arg) isSlice() bool { return a.kind == KindSlice || a.kind == KindBytes }

// index returns element i of a slice argument as a scalar Arg.
func (a Arg) index(i int) Arg {
	size := uintptr(a.u)
	ptr := unsafe.Add(a.p, uintptr(i)*size)
	switch a.elem {
	case KindBool:
		return Bool(*(*bool)(ptr))
	case KindInt:
		switch size {
		case 1:
			return Int(*(*int8)(ptr))
		case 2:
			return Int(*(*int16)(ptr))
		case 4:
			return Int(*(*int32)(ptr))
		}
		return Int(*(*int64)(ptr))
	case KindUint:
		switch size {
		case 1:
			return Uint(*(*uint8)(ptr))
		case 2:
			return Uint(*(*uint16)(ptr))
		case 4:
			return Uint(*(*uint32)(ptr))
		}
		return Uint(*(*uint64)(ptr))
	case KindF32:
		return F32(*(*float32)(ptr))
	case KindF64:
		return F64(*(*float64)(ptr))
	case KindString:
		return String(*(*string)(ptr))
	case KindV2:
		return V2(*(*Vec2)(ptr))
	case KindV3:
		return V3(*(*Vec3)(ptr))
	case KindV4:
		return V4(*(*Vec4)(ptr))
	case KindIV2:
		return IV2(*(*IVec2)(ptr))
	case KindIV3:
		return IV3(*(*IVec3)(ptr))
	case KindIV4:
		return IV4(*(*IVec4)(ptr))
	case KindUV2:
		return UV2(*(*UVec2)(ptr))
	case KindUV3:
		return UV3(*(*UVec3)(ptr))
	case KindUV4:
		return UV4(*(*UVec4)(ptr))
	}
	return Arg{}
}

// integer returns the bit pattern of an integer-like argument. Signed values
// are sign-extended to 64 bits.
func (a Arg) integer() (uint64, bool) {
	switch a.kind {
	case KindInt, KindUint, KindChar, KindBool:
		return a.u, true
	}
	return 0, false
}

func (a Arg) float() (float64, bool) {
	switch a.kind {
	case KindF32:
		return float64(math.Float32frombits(uint32(a.u))), true
	case KindF64:
		return math.Float64frombits(a.u), true
	case KindInt:
		return float64(int64(a.u)), true
	case KindUint:
		return float64(a.u), true
	}
	return 0, false
}

// byteStrings holds every byte value once, so a char renders as text
// without allocating.
var byteStrings = func() string {
	var b [256]byte
	for i := range b {
		b[i] = byte(i)
	}
	return string(b[:])
}()

// text returns the string payload of a. A char argument is a one-byte string.
func (a Arg) text() (string, bool) {
	switch a.kind {
	case KindString, KindBytes:
		return a.s, true
	case KindChar:
		return byteStrings[a.u : a.u+1], true
	}
	return "", false
}

// accepts reports whether an argument of kind k can be rendered by id.
func accepts(id Ident, k Kind) bool {
	a := Arg{kind: k}
	var ok bool
	switch {
	case id.Components() > 1:
		_, ok = a.components(id)
	case id.info().fam == famText:
		_, ok = a.text()
	case id.IsFloat():
		_, ok = a.float()
	default:
		_, ok = a.integer()
	}
	return ok
}

// components returns the vector payload of a when it matches the vector
// identifier id. Signed and unsigned integer vectors share a bit layout and
// are interchangeable.
func (a Arg) components(id Ident) ([4]uint32, bool) {
	n := Kind(id.Components() - 2)
	switch {
	case id >= IdentV2 && id <= IdentV4:
		return a.v, a.kind == KindV2+n
	case id >= IdentIV2 && id <= IdentUV4:
		return a.v, a.kind == KindIV2+n || a.kind == KindUV2+n
	}
	return a.v, false
}

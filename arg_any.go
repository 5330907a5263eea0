package tfmt

import (
	"math"
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

// kindCache avoids re-classifying named types through reflection on every
// call. Using a concurrent map keeps ArgOf safe from any goroutine.
var kindCache = xsync.NewMap[reflect.Type, Kind]()

// kindOf returns the Arg kind a value of type t converts to.
func kindOf(t reflect.Type) Kind {
	if k, ok := kindCache.Load(t); ok {
		return k
	}
	k := classify(t)
	kindCache.Store(t, k)
	return k
}

func classify(t reflect.Type) Kind {
	switch t.Kind() {
	case reflect.Bool:
		return KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return KindInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return KindUint
	case reflect.Float32:
		return KindF32
	case reflect.Float64:
		return KindF64
	case reflect.String:
		return KindString
	case reflect.Array:
		if t.Len() < 2 || t.Len() > 4 {
			return KindInvalid
		}
		n := Kind(t.Len() - 2)
		switch t.Elem().Kind() {
		case reflect.Float32:
			return KindV2 + n
		case reflect.Int32:
			return KindIV2 + n
		case reflect.Uint32:
			return KindUV2 + n
		}
	case reflect.Slice:
		switch t.Elem().Kind() {
		case reflect.Uint8:
			return KindBytes
		case reflect.Slice:
			// Nested slices have no Arg form; stopping here also keeps
			// self-referential types like "type R []R" from recursing.
			return KindInvalid
		}
		if kindOf(t.Elem()) == KindInvalid {
			return KindInvalid
		}
		return KindSlice
	}
	return KindInvalid
}

// ArgOf converts a plain Go value to an Arg. Builtin types and the vector
// types take a fast path; named types (type Meters float32, []Vec3 under a
// new name, ...) go through reflection. It reports false for values that
// have no Arg form.
func ArgOf(v any) (Arg, bool) {
	switch x := v.(type) {
	case nil:
		return Arg{}, false
	case Arg:
		return x, true
	case bool:
		return Bool(x), true
	case int:
		return Int(x), true
	case int8:
		return Int(x), true
	case int16:
		return Int(x), true
	case int32:
		return Int(x), true
	case int64:
		return Int(x), true
	case uint:
		return Uint(x), true
	case uint8:
		return Uint(x), true
	case uint16:
		return Uint(x), true
	case uint32:
		return Uint(x), true
	case uint64:
		return Uint(x), true
	case uintptr:
		return Uint(x), true
	case float32:
		return F32(x), true
	case float64:
		return F64(x), true
	case string:
		return String(x), true
	case []byte:
		return Bytes(x), true
	case Vec2:
		return V2(x), true
	case Vec3:
		return V3(x), true
	case Vec4:
		return V4(x), true
	case IVec2:
		return IV2(x), true
	case IVec3:
		return IV3(x), true
	case IVec4:
		return IV4(x), true
	case UVec2:
		return UV2(x), true
	case UVec3:
		return UV3(x), true
	case UVec4:
		return UV4(x), true
	}
	return reflectArg(reflect.ValueOf(v))
}

func reflectArg(rv reflect.Value) (Arg, bool) {
	k := kindOf(rv.Type())
	switch k {
	case KindBool:
		return Bool(rv.Bool()), true
	case KindInt:
		return Int(rv.Int()), true
	case KindUint:
		return Uint(rv.Uint()), true
	case KindF32:
		return F32(float32(rv.Float())), true
	case KindF64:
		return F64(rv.Float()), true
	case KindString:
		return String(rv.String()), true
	case KindBytes:
		return Bytes(rv.Bytes()), true
	case KindV2, KindV3, KindV4:
		a := Arg{kind: k}
		for i := range rv.Len() {
			a.v[i] = math.Float32bits(float32(rv.Index(i).Float()))
		}
		return a, true
	case KindIV2, KindIV3, KindIV4:
		a := Arg{kind: k}
		for i := range rv.Len() {
			a.v[i] = uint32(rv.Index(i).Int())
		}
		return a, true
	case KindUV2, KindUV3, KindUV4:
		a := Arg{kind: k}
		for i := range rv.Len() {
			a.v[i] = uint32(rv.Index(i).Uint())
		}
		return a, true
	case KindSlice:
		elem := rv.Type().Elem()
		return Arg{
			kind: KindSlice,
			elem: kindOf(elem),
			u:    uint64(elem.Size()),
			p:    rv.UnsafePointer(),
			n:    rv.Len(),
		}, true
	}
	return Arg{}, false
}

package main

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/oy3o/tfmt"
)

var (
	errArgCount   = errors.New("argument count does not match the template")
	errComponents = errors.New("wrong number of vector components")
	errChar       = errors.New("char argument must be one byte or a number")
)

// parseArgs converts command-line text to typed arguments, one per directive
// of template. Vectors are comma lists ("1,2,3"); arguments of '*'
// directives are ';' lists ("1;2;3", "1,2;3,4" for vectors).
func parseArgs(template string, texts []string) ([]tfmt.Arg, error) {
	ds, err := tfmt.Directives(template)
	if err != nil {
		return nil, err
	}
	if len(ds) != len(texts) {
		return nil, fmt.Errorf("%w: it takes %d, got %d", errArgCount, len(ds), len(texts))
	}

	args := make([]tfmt.Arg, len(ds))
	for i, d := range ds {
		a, err := parseArg(d, texts[i])
		if err != nil {
			return nil, fmt.Errorf("argument %d ({%s} at offset %d): %w", i+1, d.Ident, d.Offset, err)
		}
		args[i] = a
	}
	return args, nil
}

func parseArg(d tfmt.Directive, text string) (tfmt.Arg, error) {
	if d.Modifiers.Repeat {
		return parseSlice(d.Ident, text)
	}
	v, err := parseValue(d.Ident, text)
	if err != nil {
		return tfmt.Arg{}, err
	}
	a, _ := tfmt.ArgOf(v)
	return a, nil
}

// parseSlice builds a slice of the Go type parseValue yields for id.
func parseSlice(id tfmt.Ident, text string) (tfmt.Arg, error) {
	var items []string
	if text != "" {
		items = strings.Split(text, ";")
	}
	out := reflect.MakeSlice(reflect.SliceOf(valueType(id)), 0, len(items))
	for i, item := range items {
		v, err := parseValue(id, item)
		if err != nil {
			return tfmt.Arg{}, fmt.Errorf("element %d: %w", i+1, err)
		}
		out = reflect.Append(out, reflect.ValueOf(v))
	}
	a, _ := tfmt.ArgOf(out.Interface())
	return a, nil
}

func valueType(id tfmt.Ident) reflect.Type {
	switch {
	case id == tfmt.IdentBool:
		return reflect.TypeFor[bool]()
	case id == tfmt.IdentChar:
		return reflect.TypeFor[uint8]()
	case id.IsText():
		return reflect.TypeFor[string]()
	case id.Components() > 1:
		v, _ := zeroVector(id)
		return reflect.TypeOf(v)
	case id.IsFloat():
		return reflect.TypeFor[float64]()
	case id.Signed():
		return reflect.TypeFor[int64]()
	}
	return reflect.TypeFor[uint64]()
}

// parseValue parses one scalar or vector for id.
func parseValue(id tfmt.Ident, s string) (any, error) {
	switch {
	case id == tfmt.IdentBool:
		return strconv.ParseBool(strings.TrimSpace(s))
	case id == tfmt.IdentChar:
		return parseChar(s)
	case id.IsText():
		return s, nil
	case id.Components() > 1:
		return parseVector(id, s)
	case id.IsFloat():
		return strconv.ParseFloat(strings.TrimSpace(s), id.Bits())
	case id.Signed():
		return parseSigned(id.Bits(), strings.TrimSpace(s))
	}
	return parseUnsigned(id.Bits(), strings.TrimSpace(s))
}

func parseChar(s string) (uint8, error) {
	if len(s) == 1 {
		return s[0], nil
	}
	c, err := tfmt.ParseUint[uint8](strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errChar, s)
	}
	return c, nil
}

func parseSigned(bits int, s string) (int64, error) {
	switch bits {
	case 8:
		v, err := tfmt.ParseInt[int8](s)
		return int64(v), err
	case 16:
		v, err := tfmt.ParseInt[int16](s)
		return int64(v), err
	case 32:
		v, err := tfmt.ParseInt[int32](s)
		return int64(v), err
	}
	return tfmt.ParseInt[int64](s)
}

func parseUnsigned(bits int, s string) (uint64, error) {
	switch bits {
	case 8:
		v, err := tfmt.ParseUint[uint8](s)
		return uint64(v), err
	case 16:
		v, err := tfmt.ParseUint[uint16](s)
		return uint64(v), err
	case 32:
		v, err := tfmt.ParseUint[uint32](s)
		return uint64(v), err
	}
	return tfmt.ParseUint[uint64](s)
}

// parseVector reads a comma list of exactly id.Components() components.
func parseVector(id tfmt.Ident, s string) (any, error) {
	parts := strings.Split(s, ",")
	if len(parts) != id.Components() {
		return nil, fmt.Errorf("%w: {%s} takes %d, got %d", errComponents, id, id.Components(), len(parts))
	}

	var f [4]float32
	var n [4]int32
	var u [4]uint32
	for i, p := range parts {
		p = strings.TrimSpace(p)
		var err error
		switch {
		case id.IsFloat():
			var x float64
			x, err = strconv.ParseFloat(p, 32)
			f[i] = float32(x)
		case id.Signed():
			n[i], err = tfmt.ParseInt[int32](p)
		default:
			u[i], err = tfmt.ParseUint[uint32](p)
		}
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", i+1, err)
		}
	}

	switch id {
	case tfmt.IdentV2:
		return tfmt.Vec2{f[0], f[1]}, nil
	case tfmt.IdentV3:
		return tfmt.Vec3{f[0], f[1], f[2]}, nil
	case tfmt.IdentV4:
		return tfmt.Vec4(f), nil
	case tfmt.IdentIV2:
		return tfmt.IVec2{n[0], n[1]}, nil
	case tfmt.IdentIV3:
		return tfmt.IVec3{n[0], n[1], n[2]}, nil
	case tfmt.IdentIV4:
		return tfmt.IVec4(n), nil
	case tfmt.IdentUV2:
		return tfmt.UVec2{u[0], u[1]}, nil
	case tfmt.IdentUV3:
		return tfmt.UVec3{u[0], u[1], u[2]}, nil
	}
	return tfmt.UVec4(u), nil
}

// zeroVector returns the zero vector value for id.
func zeroVector(id tfmt.Ident) (any, error) {
	zero := strings.TrimSuffix(strings.Repeat("0,", id.Components()), ",")
	return parseVector(id, zero)
}

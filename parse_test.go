package tfmt

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
)

func TestParseUint(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		for in, want := range map[string]uint64{
			"0":                     0,
			"255":                   255,
			"+7":                    7,
			"1,234":                 1234,
			"0xff":                  255,
			"0XFF":                  255,
			"0xdead'beef":           0xdeadbeef,
			"0b1010":                10,
			"0b00000001'00000000":   256,
			"18446744073709551615":  math.MaxUint64,
			"0xffff'ffff'ffff'ffff": math.MaxUint64,
		} {
			got, err := ParseUint[uint64](in)
			require.NoError(t, err, in)
			assert.Equal(t, want, got, in)
		}
	})

	t.Run("Syntax", func(t *testing.T) {
		for _, in := range []string{"", "0x", "0b", ",12", "12,", "1,,2", "-1", "+0x1", "0b102", "12a", "0x'ff", "0xff'", "1'000"} {
			_, err := ParseUint[uint32](in)
			assert.ErrorIs(t, err, ErrSyntax, in)
		}
	})

	t.Run("Range", func(t *testing.T) {
		_, err := ParseUint[uint8]("256")
		assert.ErrorIs(t, err, ErrRange)
		_, err = ParseUint[uint8]("0x100")
		assert.ErrorIs(t, err, ErrRange)
		_, err = ParseUint[uint64]("18446744073709551616")
		assert.ErrorIs(t, err, ErrRange)
	})

	t.Run("ErrorCarriesInput", func(t *testing.T) {
		_, err := ParseUint[uint16]("70000")
		var numErr *NumError
		require.ErrorAs(t, err, &numErr)
		assert.Equal(t, "ParseUint", numErr.Func)
		assert.Equal(t, "70000", numErr.Input)
	})
}

func TestParseInt(t *testing.T) {
	t.Run("Bounds", func(t *testing.T) {
		v, err := ParseInt[int8]("-128")
		require.NoError(t, err)
		assert.Equal(t, int8(-128), v)

		v, err = ParseInt[int8]("127")
		require.NoError(t, err)
		assert.Equal(t, int8(127), v)

		_, err = ParseInt[int8]("-129")
		assert.ErrorIs(t, err, ErrRange)
		_, err = ParseInt[int8]("128")
		assert.ErrorIs(t, err, ErrRange)

		v64, err := ParseInt[int64]("-9,223,372,036,854,775,808")
		require.NoError(t, err)
		assert.Equal(t, int64(math.MinInt64), v64)
	})

	t.Run("BitPatterns", func(t *testing.T) {
		v, err := ParseInt[int8]("0xff")
		require.NoError(t, err)
		assert.Equal(t, int8(-1), v)

		v, err = ParseInt[int8]("0x80")
		require.NoError(t, err)
		assert.Equal(t, int8(-128), v)

		v, err = ParseInt[int8]("0b01111111")
		require.NoError(t, err)
		assert.Equal(t, int8(127), v)

		_, err = ParseInt[int8]("0x1ff")
		assert.ErrorIs(t, err, ErrRange)
	})

	t.Run("Syntax", func(t *testing.T) {
		for _, in := range []string{"", "-", "+", "-0x1", "--1", "1-", "0x", "1,2,"} {
			_, err := ParseInt[int32](in)
			assert.ErrorIs(t, err, ErrSyntax, in)
		}
	})
}

// The renderer and the parsers must agree on every base, width and mode.
var roundTripModes = []string{"", ",f", ",s", ",f,s", ",b", ",b,f", ",b,s", ",b,f,s", ",x", ",x,f,s", ",X", ",X,f", ",X,s"}

func roundTripUnsigned[T constraints.Unsigned](t *testing.T, id string, values []T) {
	t.Helper()
	for _, mode := range roundTripModes {
		template := "{" + id + mode + "}"
		for _, v := range values {
			out := Sprint(template, v)
			got, err := ParseUint[T](out)
			require.NoError(t, err, "%s %q", template, out)
			assert.Equal(t, v, got, "%s %q", template, out)
		}
	}
}

func roundTripSigned[T constraints.Signed](t *testing.T, id string, values []T) {
	t.Helper()
	for _, mode := range roundTripModes {
		template := "{" + id + mode + "}"
		for _, v := range values {
			out := Sprint(template, v)
			got, err := ParseInt[T](out)
			require.NoError(t, err, "%s %q", template, out)
			assert.Equal(t, v, got, "%s %q", template, out)
		}
	}
}

func TestParse_RoundTrip(t *testing.T) {
	t.Run("u8", func(t *testing.T) {
		roundTripUnsigned(t, "u8", []uint8{0, 1, 9, 10, 127, 128, 200, math.MaxUint8})
	})
	t.Run("u16", func(t *testing.T) {
		roundTripUnsigned(t, "u16", []uint16{0, 1, 999, 1000, 4096, 0xbeef, math.MaxUint16})
	})
	t.Run("u32", func(t *testing.T) {
		roundTripUnsigned(t, "u32", []uint32{0, 7, 1234567, 0xdeadbeef, math.MaxUint32})
	})
	t.Run("u64", func(t *testing.T) {
		roundTripUnsigned(t, "u64", []uint64{0, 1, 1 << 40, 0x0123456789abcdef, math.MaxUint64})
	})
	t.Run("i8", func(t *testing.T) {
		roundTripSigned(t, "i8", []int8{math.MinInt8, -100, -1, 0, 1, 99, math.MaxInt8})
	})
	t.Run("i16", func(t *testing.T) {
		roundTripSigned(t, "i16", []int16{math.MinInt16, -1000, -1, 0, 1000, math.MaxInt16})
	})
	t.Run("i32", func(t *testing.T) {
		roundTripSigned(t, "i32", []int32{math.MinInt32, -1234567, -1, 0, 42, math.MaxInt32})
	})
	t.Run("i64", func(t *testing.T) {
		roundTripSigned(t, "i64", []int64{math.MinInt64, -1 << 40, -1, 0, 1 << 50, math.MaxInt64})
	})
}

func TestRender_FullWidthDigitCounts(t *testing.T) {
	for _, tc := range []struct {
		template string
		digits   int
	}{
		{"{u8,x,f}", 2},
		{"{u16,x,f}", 4},
		{"{u32,x,f}", 8},
		{"{u64,x,f}", 16},
		{"{u8,b,f}", 8},
		{"{u32,b,f}", 32},
		{"{u8,f}", 3},
		{"{u16,f}", 5},
		{"{u32,f}", 10},
		{"{u64,f}", 20},
		{"{i64,f}", 19},
	} {
		out := Sprint(tc.template, uint8(1))
		body := strings.TrimPrefix(strings.TrimPrefix(out, "0x"), "0b")
		assert.Len(t, body, tc.digits, "%s -> %q", tc.template, out)
	}
}

func TestRender_GroupSeparatorCounts(t *testing.T) {
	// One separator between every pair of adjacent groups, none leading.
	for _, tc := range []struct {
		template string
		arg      any
		seps     int
	}{
		{"{u32,s}", uint32(1), 0},
		{"{u32,s}", uint32(1000), 1},
		{"{u32,s}", uint32(4294967295), 3},
		{"{u32,x,s}", uint32(0xffff), 0},
		{"{u32,x,s}", uint32(0x10000), 1},
		{"{u32,x,f,s}", uint32(0), 1},
		{"{u64,b,f,s}", uint64(0), 7},
	} {
		out := Sprint(tc.template, tc.arg)
		seps := strings.Count(out, ",") + strings.Count(out, "'")
		assert.Equal(t, tc.seps, seps, "%s -> %q", tc.template, out)
		body := strings.TrimPrefix(strings.TrimPrefix(out, "0x"), "0b")
		assert.NotContains(t, []byte{',', '\''}, body[0], "%s -> %q", tc.template, out)
	}
}

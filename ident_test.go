package tfmt

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveIdent(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Ident
	}{
		{"b}", IdentBool},
		{"c}", IdentChar},
		{"cc}", IdentCString},
		{"s}", IdentString},
		{"f}", IdentF64},
		{"f32}", IdentF32},
		{"f64,", IdentF64},
		{"v2}", IdentV2},
		{"v4}", IdentV4},
		{"i8}", IdentI8},
		{"i16}", IdentI16},
		{"i32,", IdentI32},
		{"i64}", IdentI64},
		{"isize}", IdentIsize},
		{"u8}", IdentU8},
		{"u64}", IdentU64},
		{"usize}", IdentUsize},
		{"iv3}", IdentIV3},
		{"uv2}", IdentUV2},
		{"uv4,", IdentUV4},
		{"{", IdentBrace},

		{"q}", IdentUnknown},
		{"i}", IdentUnknown},
		{"i7}", IdentUnknown},
		{"i128}", IdentUnknown},
		{"v5}", IdentUnknown},
		{"iv}", IdentUnknown},
		{"f16}", IdentUnknown},
		{"ccc}", IdentUnknown},
		{"u8 }", IdentUnknown},
		{"u8", IdentUnknown},
		{"}", IdentUnknown},
		{"", IdentUnknown},
	} {
		got, _ := resolveIdent(tc.in, 0)
		assert.Equal(t, tc.want, got, "%q", tc.in)
	}
}

func TestResolveIdent_Position(t *testing.T) {
	id, next := resolveIdent("{iv3,*}", 1)
	assert.Equal(t, IdentIV3, id)
	assert.Equal(t, 4, next)

	id, next = resolveIdent("{{", 1)
	assert.Equal(t, IdentBrace, id)
	assert.Equal(t, 2, next)
}

func TestIdent_Properties(t *testing.T) {
	assert.Equal(t, "usize", IdentUsize.String())
	assert.Equal(t, strconv.IntSize, IdentIsize.Bits())
	assert.Equal(t, 16, IdentU16.Bits())
	assert.Equal(t, 32, IdentV3.Bits())
	assert.True(t, IdentI8.Signed())
	assert.False(t, IdentUV2.Signed())
	assert.Equal(t, 3, IdentIV3.Components())
	assert.Equal(t, 1, IdentString.Components())
	assert.True(t, IdentUV4.IsInteger())
	assert.True(t, IdentV2.IsFloat())
	assert.True(t, IdentCString.IsText())
	assert.True(t, IdentChar.IsText())
	assert.Equal(t, IdentF32, IdentV4.component())
	assert.Equal(t, IdentI32, IdentIV2.component())
	assert.Equal(t, IdentU32, IdentUV3.component())
	assert.Equal(t, "unknown", Ident(200).String())
}

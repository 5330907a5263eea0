package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oy3o/tfmt"
)

func renderArgs(t *testing.T, template string, texts ...string) string {
	t.Helper()
	args, err := parseArgs(template, texts)
	require.NoError(t, err, template)
	return string(tfmt.Append(nil, template, args...))
}

func TestParseArgs_Scalars(t *testing.T) {
	for _, tc := range []struct {
		template string
		texts    []string
		want     string
	}{
		{"{b}", []string{"true"}, "true"},
		{"{c}", []string{"z"}, "z"},
		{"{c}", []string{"65"}, "A"},
		{"{s}", []string{" keep spaces "}, " keep spaces "},
		{"{cc}", []string{"hi"}, "hi"},
		{"{f,.2}", []string{"3.14159"}, "3.14"},
		{"{f32,.3}", []string{" 0.5 "}, "0.500"},
		{"{i8}", []string{"-128"}, "-128"},
		{"{i8}", []string{"0xff"}, "-1"},
		{"{u16,x}", []string{"65535"}, "0xffff"},
		{"{u32,s}", []string{"1,234,567"}, "1,234,567"},
		{"{u64,b}", []string{"0b101"}, "0b101"},
		{"{isize}", []string{"42"}, "42"},
		{"{f,m}", []string{"1536"}, "1.50 KB"},
		{"{u64,m}", []string{"999"}, "999 B"},
		{"{v3,.1}", []string{"1, 2.5, -3"}, "{ 1.0, 2.5, -3.0 }"},
		{"{iv2}", []string{"-1,2"}, "{ -1, 2 }"},
		{"{uv4,x}", []string{"1,2,3,0xff"}, "{ 0x1, 0x2, 0x3, 0xff }"},
		{"a {{ {u8} b", []string{"7"}, "a { 7 b"},
	} {
		assert.Equal(t, tc.want, renderArgs(t, tc.template, tc.texts...), tc.template)
	}
}

func TestParseArgs_Slices(t *testing.T) {
	for _, tc := range []struct {
		template string
		text     string
		want     string
	}{
		{"{u8,*}", "1;2;3", "{ 1, 2, 3 }"},
		{"{i32,*2}", "-1;2;3", "{ -1, 2 }"},
		{"{s,*}", "a;b", "{ a, b }"},
		{"{b,*}", "true;false", "{ true, false }"},
		{"{c,u,*}", "a;b", "{ A, B }"},
		{"{f,.1,*}", "0.5;1.5", "{ 0.5, 1.5 }"},
		{"{iv3,*}", "1,2,3;4,5,6", "{ { 1, 2, 3 }, { 4, 5, 6 } }"},
		{"{v2,.0,*}", "1,2", "{ { 1, 2 } }"},
		{"{u16,*}", "", "{ }"},
		{"{u64,m,*}", "2048", "{ 2.00 KB }"},
	} {
		assert.Equal(t, tc.want, renderArgs(t, tc.template, tc.text), tc.template)
	}
}

func TestParseArgs_Errors(t *testing.T) {
	for _, tc := range []struct {
		name     string
		template string
		texts    []string
		err      error
	}{
		{"TooFew", "{u8} {u8}", []string{"1"}, errArgCount},
		{"TooMany", "{u8}", []string{"1", "2"}, errArgCount},
		{"BadTemplate", "{u8,q}", []string{"1"}, tfmt.ErrIllegalModifier},
		{"Range", "{u8}", []string{"256"}, tfmt.ErrRange},
		{"Syntax", "{i32}", []string{"12x"}, tfmt.ErrSyntax},
		{"Components", "{v3}", []string{"1,2"}, errComponents},
		{"ComponentSyntax", "{uv2}", []string{"1,z"}, tfmt.ErrSyntax},
		{"Char", "{c}", []string{"ab"}, errChar},
		{"SliceElement", "{u8,*}", []string{"1;300"}, tfmt.ErrRange},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseArgs(tc.template, tc.texts)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	t.Run("NamesArgument", func(t *testing.T) {
		_, err := parseArgs("x {u8} {i16}", []string{"1", "nope"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "argument 2 ({i16} at offset 7)")
	})
}

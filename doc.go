// Package tfmt is a typed format-string engine that renders templates into
// bounded sinks without building intermediate strings.
//
// A template is literal text with directives:
//
//	directive  := '{' identifier (',' modifier)* '}' | '{{'
//	identifier := 'b' | 'c' | 'cc' | 's'
//	            | 'f' | 'f32' | 'f64'
//	            | 'v2' | 'v3' | 'v4'
//	            | ('i'|'u') ('8'|'16'|'32'|'64'|'size')
//	            | ('i'|'u') 'v' ('2'|'3'|'4')
//	modifier   := 'b' | 'x' | 'X' | 'f' | 's' | 'u' | 'l' | 'm'
//	            | '*' [digits]
//	            | ['-'] digits ['.' digits]
//
// # Identifiers
//
//   - b: bool, rendered as true/false
//   - c: one byte; cc: a C string, cut at its first NUL; s: a string or []byte
//   - f, f64: float64; f32: float32
//   - v2, v3, v4: float32 vectors ([Vec3] ...), rendered as "{ x, y, z }"
//   - i8 ... i64, isize: signed integers; u8 ... u64, usize: unsigned
//   - iv2 ... iv4, uv2 ... uv4: int32 and uint32 vectors
//   - {{: a literal '{'
//
// # Modifiers
//
//   - b, x, X: binary, lower and upper hexadecimal (integers; 0b/0x prefix)
//   - f: every digit of the type's width, zero-filled (integers)
//   - s: digit grouping: "1,234", "0xdead'beef", "0b00000001'00000000"
//   - u, l: ASCII upper and lower case (c, cc, s)
//   - m: byte-size units " B", " KB", " MB", " GB", " TB" (floats, unsigned integers)
//   - *N: the argument is a slice; render its first N elements as "{ a, b }".
//     A bare '*' renders the whole slice.
//   - [-]W[.P]: pad to width W, right-aligned, or left-aligned when negative.
//     A leading 0 in W pads numbers with zeros. P is the fraction digit count
//     of floats (default 6, 2 under m, at most 12).
//
// # Output
//
// Every entry point funnels into the same driver. Format takes pre-packed
// [Arg] values, Fprint and Sprint take plain Go values, FormatFrom pulls
// arguments from an [ArgSource]. Output goes to a [Sink], whose Put reports
// how many bytes it could not accept; the engine sums these into its result
// so callers can tell how much room was missing:
//
//	var buf [16]byte
//	fb := tfmt.NewFixedBuffer(buf[:0])
//	if n := tfmt.Format(fb, "{s} = {u32,x}", tfmt.String("mask"), tfmt.Uint(uint32(255))); n > 0 {
//		// n more bytes were needed
//	}
//
// A malformed directive stops rendering at that point; nothing is rolled
// back. [Validate] reports what is wrong with a template.
//
// Float fractions are truncated, not rounded, at the last retained digit.
package tfmt

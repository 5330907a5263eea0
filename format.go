package tfmt

import (
	"io"
	"strings"
)

// ArgSource yields the arguments of one formatting call in order.
type ArgSource interface {
	Next() (Arg, bool)
}

// SourceFunc adapts a function to ArgSource.
type SourceFunc func() (Arg, bool)

func (f SourceFunc) Next() (Arg, bool) { return f() }

type argList struct {
	args []Arg
	i    int
}

func (l *argList) Next() (Arg, bool) {
	if l.i >= len(l.args) {
		return Arg{}, false
	}
	a := l.args[l.i]
	l.i++
	return a, true
}

type valueList struct {
	vals []any
	i    int
}

func (l *valueList) Next() (Arg, bool) {
	if l.i >= len(l.vals) {
		return Arg{}, false
	}
	v := l.vals[l.i]
	l.i++
	return ArgOf(v)
}

// Format renders template with args into s and returns the number of bytes s
// could not accept; 0 means the output was written in full.
//
// Rendering stops silently at the first malformed directive, at a missing
// argument, or at an argument the directive cannot render. Output already
// written stays written. Use Validate to diagnose a template.
func Format(s Sink, template string, args ...Arg) int {
	src := argList{args: args}
	return FormatFrom(s, template, &src)
}

// Fprint is Format over plain Go values written to w. Values are converted
// with ArgOf.
func Fprint(w io.Writer, template string, args ...any) int {
	src := valueList{vals: args}
	return FormatFrom(NewSink(w), template, &src)
}

// Append renders template and appends the result to dst.
func Append(dst []byte, template string, args ...Arg) []byte {
	sink := appendSink{buf: dst}
	src := argList{args: args}
	FormatFrom(&sink, template, &src)
	return sink.buf
}

// Sprint renders template with plain Go values and returns the result.
func Sprint(template string, args ...any) string {
	var sink appendSink
	src := valueList{vals: args}
	FormatFrom(&sink, template, &src)
	return string(sink.buf)
}

// FormatFrom is the directive driver: it copies literal spans to s, and hands
// every directive to the resolver, the modifier parser and a renderer, taking
// its argument from src.
func FormatFrom(s Sink, template string, src ArgSource) int {
	sc := scratchPool.Get().(*scratch)
	defer scratchPool.Put(sc)

	unwritten := 0
	i := 0
	for i < len(template) {
		j := strings.IndexByte(template[i:], '{')
		if j < 0 {
			unwritten += putLiteral(s, template[i:])
			break
		}
		unwritten += putLiteral(s, template[i:i+j])
		i += j + 1

		d, next, err := parseDirective(template, i)
		if err != nil {
			break
		}
		i = next
		if d.Ident == IdentBrace {
			unwritten += s.Put(lbrace)
			continue
		}

		a, ok := src.Next()
		if !ok {
			break
		}
		n, ok := putDirective(s, sc, d.Ident, &d.Modifiers, a)
		unwritten += n
		if !ok {
			break
		}
	}
	return unwritten
}

// Directive is one parsed "{identifier,modifiers}" span.
type Directive struct {
	Offset    int // byte offset of the opening '{'
	Ident     Ident
	Modifiers Modifiers
}

// parseDirective parses the directive whose '{' sits at t[i-1]. It returns
// the position just past the directive.
func parseDirective(t string, i int) (Directive, int, error) {
	d := Directive{Offset: i - 1}
	id, i := resolveIdent(t, i)
	switch id {
	case IdentUnknown:
		if i >= len(t) {
			return d, i, ErrUnterminated
		}
		return d, i, ErrUnknownIdentifier
	case IdentBrace:
		d.Ident = id
		return d, i, nil
	}

	m, i, err := parseModifiers(t, i, id)
	if err != nil {
		return d, i, err
	}
	d.Ident, d.Modifiers = id, m
	return d, i, nil
}

package tfmt

import "strings"

// Validate parses every directive of template without rendering and returns
// a *DirectiveError for the first malformed one. A template that validates
// can still stop early at render time when an argument is missing or does
// not match its directive.
func Validate(template string) error {
	_, err := Directives(template)
	return err
}

// Directives returns the argument-consuming directives of template in order.
// Literal braces ("{{") are skipped.
func Directives(template string) ([]Directive, error) {
	var out []Directive
	i := 0
	for {
		j := strings.IndexByte(template[i:], '{')
		if j < 0 {
			return out, nil
		}
		start := i + j
		d, next, err := parseDirective(template, start+1)
		if err != nil {
			return out, &DirectiveError{Offset: start, Directive: excerpt(template, start), Err: err}
		}
		if d.Ident != IdentBrace {
			out = append(out, d)
		}
		i = next
	}
}

// excerpt returns the directive starting at start, through its '}' if any.
func excerpt(t string, start int) string {
	if k := strings.IndexByte(t[start+1:], '}'); k >= 0 {
		return t[start : start+k+2]
	}
	return t[start:]
}

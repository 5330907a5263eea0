package tfmt

import (
	"errors"
	"strconv"
)

var (
	// ErrNilIO indicates that NewWriter or NewWriterSize was called with a nil io.Writer.
	ErrNilIO = errors.New("tfmt: NewWriter called with a nil io.Writer")

	// ErrAlreadyBuffered indicates that NewWriterSize was called with an already-buffered
	// writer whose buffer is smaller than requested, which would lead to double-buffering.
	ErrAlreadyBuffered = errors.New("tfmt: writer is already buffered")

	// ErrUnknownIdentifier indicates a directive whose type identifier is not part of the
	// closed identifier set, or that is not followed by ',' or '}'.
	ErrUnknownIdentifier = errors.New("tfmt: unknown identifier")

	// ErrIllegalModifier indicates a modifier that is malformed or not allowed for the
	// directive's identifier.
	ErrIllegalModifier = errors.New("tfmt: modifier not allowed for identifier")

	// ErrUnterminated indicates a directive with no closing '}'.
	ErrUnterminated = errors.New("tfmt: unterminated directive")

	// ErrPaddingRange indicates a padding width that does not fit in an int.
	ErrPaddingRange = errors.New("tfmt: padding out of range")

	// ErrSyntax indicates that a value does not have the right syntax for the target type.
	ErrSyntax = errors.New("tfmt: invalid syntax")

	// ErrRange indicates that a value is out of range for the target type.
	ErrRange = errors.New("tfmt: value out of range")
)

// DirectiveError reports the first malformed directive found by Validate.
type DirectiveError struct {
	Offset    int    // byte offset of the opening '{'
	Directive string // directive text, up to and including '}' when present
	Err       error
}

func (e *DirectiveError) Error() string {
	return e.Err.Error() + " at offset " + strconv.Itoa(e.Offset) + ": " + strconv.Quote(e.Directive)
}

func (e *DirectiveError) Unwrap() error { return e.Err }

// NumError records a failed conversion by ParseInt or ParseUint.
type NumError struct {
	Func  string // the failing function (ParseInt, ParseUint)
	Input string // the input
	Err   error  // ErrSyntax or ErrRange
}

func (e *NumError) Error() string {
	return "tfmt: " + e.Func + " " + strconv.Quote(e.Input) + ": " + e.Err.Error()
}

func (e *NumError) Unwrap() error { return e.Err }

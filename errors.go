package pathdata

import (
	"errors"
	"fmt"

	"github.com/tdewolff/parse/v2"
)

// ErrEmptyInput is returned when the path data contains no commands.
var ErrEmptyInput error = &EmptyInputError{}

// EmptyInputError is returned when the path data contains no command letters.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string {
	return "bad path: no commands"
}

// Is makes every EmptyInputError match ErrEmptyInput.
func (e *EmptyInputError) Is(target error) bool {
	_, ok := target.(*EmptyInputError)
	return ok
}

// LexError is an invalid character or a malformed number or arc flag.
type LexError struct {
	Offset int    // byte offset into the path data
	Text   string // offending text
	Err    *parse.Error
}

func (e *LexError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("bad path: unexpected %q at position %d", e.Text, e.Offset)
	}
	return "bad path: " + e.Err.Error()
}

func (e *LexError) Unwrap() error {
	if e.Err == nil {
		return nil
	}
	return e.Err
}

// ArityError is returned when the number of parameters following a command letter is not a positive multiple of its arity.
type ArityError struct {
	Offset int  // byte offset of the command letter, or of the first parameter when Cmd is zero
	Cmd    byte // command letter, zero for parameters before the first command
	Kind   Kind
	Got    int
}

func (e *ArityError) Error() string {
	if e.Cmd == 0 {
		return fmt.Sprintf("bad path: path should start with command, got %d numbers at position %d", e.Got, e.Offset)
	}
	want := e.Kind.Arity()
	if want == 0 {
		return fmt.Sprintf("bad path: no numbers should follow command '%c' at position %d, got %d", e.Cmd, e.Offset, e.Got)
	}
	return fmt.Sprintf("bad path: a multiple of %d numbers should follow command '%c' at position %d, got %d", want, e.Cmd, e.Offset, e.Got)
}

// ParamError is a parameter that is not a finite number.
type ParamError struct {
	Kind  Kind
	Index int
	Value float64
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("bad path: parameter %d of %v must be finite, got %v", e.Index, e.Kind, e.Value)
}

// UnknownCommandError is an unrecognised command letter.
type UnknownCommandError struct {
	Offset int
	Cmd    byte
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("bad path: unknown command '%c' at position %d", e.Cmd, e.Offset)
}

// IsParseError returns true for any of the errors returned by Parse.
func IsParseError(err error) bool {
	var lexErr *LexError
	var arityErr *ArityError
	var unknownErr *UnknownCommandError
	return errors.As(err, &lexErr) || errors.As(err, &arityErr) || errors.As(err, &unknownErr) || errors.Is(err, ErrEmptyInput)
}

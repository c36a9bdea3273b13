package lexer

import (
	"github.com/pkg/errors"
)

// Analysis failures. Every error returned by Analyze matches exactly one of
// these under errors.Is.
var (
	ErrMalformedNumber     = errors.New("malformed number")
	ErrMalformedExpression = errors.New("malformed expression")
	ErrInvalidCharacter    = errors.New("invalid character")
)

// KindOf returns a stable name for the kind of analysis failure, or "" if err
// is not one.
func KindOf(err error) string {
	switch {
	case errors.Is(err, ErrMalformedNumber):
		return "malformed_number"
	case errors.Is(err, ErrMalformedExpression):
		return "malformed_expression"
	case errors.Is(err, ErrInvalidCharacter):
		return "invalid_character"
	}
	return ""
}

// Describe returns a user-facing message for an analysis failure.
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMalformedNumber):
		return "bad number: the expression contains an invalid numeric literal"
	case errors.Is(err, ErrMalformedExpression):
		return "bad expression structure: numbers and operators are out of order"
	case errors.Is(err, ErrInvalidCharacter):
		return "bad character: only digits, '.', + - * / and spaces are allowed (" + err.Error() + ")"
	}
	return err.Error()
}

package lexer

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownToken       = errors.New("unknown token")
	ErrUnterminatedString = errors.New("unterminated string")
	ErrInvalidBool        = errors.New("invalid boolean literal")
)

// Error is returned when the input can't be split into tokens. Err is one of
// the sentinel errors of this package.
type Error struct {
	Err error

	Char rune
	Text string
	Pos  int

	// EOF is set when the input ended in the middle of a token.
	EOF bool
}

func (e *Error) Error() string {
	if e.EOF {
		return fmt.Sprintf("%v: unexpected end of input at %d", e.Err, e.Pos)
	}
	return fmt.Sprintf("%v: %q at %d", e.Err, e.Text, e.Pos)
}

func (e *Error) Unwrap() error {
	return e.Err
}

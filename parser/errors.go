package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/risp/lexer"
)

var (
	ErrUnexpectedEOF     = errors.New("unexpected EOF")
	ErrUnexpectedToken   = errors.New("unexpected token")
	ErrUnterminatedQuote = errors.New("unterminated quote")
	ErrNotAtom           = errors.New("not an atom")
	ErrOverflow          = errors.New("integer overflow")
)

// Error is returned when the tokens don't form a valid expression. Tok is the
// offending token, TokenEOF if the input ended too early.
type Error struct {
	Err error
	Tok *lexer.Token
}

func newError(err error, tok *lexer.Token) *Error {
	t := *tok
	return &Error{Err: err, Tok: &t}
}

func (e *Error) Error() string {
	if e.Tok == nil || e.Tok.Is(lexer.TokenEOF) {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %v", e.Err, e.Tok)
}

func (e *Error) Unwrap() error {
	return e.Err
}

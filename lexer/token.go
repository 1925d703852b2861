package lexer

import (
	"fmt"
	"strings"
)

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt     TokenType
	lexeme string

	pos int
}

// NewToken creates a lexical unit
func NewToken(tt TokenType, lexeme string, pos int) *Token {
	return &Token{
		tt:     tt,
		lexeme: lexeme,
		pos:    pos,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Pos returns the offset, in runes, where the lexical unit starts
func (t Token) Pos() int {
	return t.pos
}

// Text returns the payload of the lexical unit. For strings this is the
// content between the delimiters.
func (t Token) Text() string {
	return t.lexeme
}

// Bool returns the value of a boolean token. It returns false for any other
// type of token.
func (t Token) Bool() bool {
	if t.tt != TokenBool {
		return false
	}
	return boolValues[strings.TrimPrefix(t.lexeme, string(hashRune))]
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q [%d])", t.tt, t.lexeme, t.pos)
}

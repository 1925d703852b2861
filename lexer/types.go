package lexer

import (
	"unicode"
)

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid    TokenType = iota
	TokenNumber               // ASCII digits: [0-9]+
	TokenQuote                // Quote: "'"
	TokenIdentifier           // Letters
	TokenWhitespace           // A single space: " "
	TokenDot                  // Dot: "."
	TokenBool                 // Boolean literals: "#t", "#true", "#f", "#false"
	TokenString               // Double quoted text, delimiters excluded
	TokenEOF                  // End of input
)

const (
	quoteRune       = '\''
	dotRune         = '.'
	spaceRune       = ' '
	hashRune        = '#'
	doubleQuoteRune = '"'
)

var boolValues = map[string]bool{
	"t":     true,
	"true":  true,
	"f":     false,
	"false": false,
}

var tokenNames = map[TokenType]string{
	TokenInvalid:    "invalid",
	TokenNumber:     "number",
	TokenQuote:      "quote",
	TokenIdentifier: "identifier",
	TokenWhitespace: "whitespace",
	TokenDot:        "dot",
	TokenBool:       "bool",
	TokenString:     "string",
	TokenEOF:        "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isRune(c rune) func(r rune) bool {
	return func(r rune) bool {
		return r == c
	}
}

var (
	isQuote       = isRune(quoteRune)
	isDot         = isRune(dotRune)
	isSpace       = isRune(spaceRune)
	isHash        = isRune(hashRune)
	isDoubleQuote = isRune(doubleQuoteRune)
)

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isLetter accepts letters and letter numbers such as roman numerals
func isLetter(r rune) bool {
	return unicode.IsLetter(r) || unicode.Is(unicode.Nl, r)
}

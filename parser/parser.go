package parser

import (
	"math"

	"github.com/xiam/risp/ast"
	"github.com/xiam/risp/lexer"
)

// TokenEOF is returned by the parser when reading past the last token
var TokenEOF = lexer.NewToken(lexer.TokenEOF, "", 0)

// Parser builds expressions out of a list of tokens
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// New creates a parser for the given tokens
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse reads expressions until all the tokens are consumed. Either all
// expressions are returned or none, along with an *Error.
func (p *Parser) Parse() ([]ast.Expr, error) {
	exprs := []ast.Expr{}

	for !p.eof() {
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}

	return exprs, nil
}

// Pos returns the index of the next token to be read
func (p *Parser) Pos() int {
	return p.pos
}

func (p *Parser) eof() bool {
	return p.pos >= len(p.tokens)
}

func (p *Parser) peek() *lexer.Token {
	if p.eof() {
		return TokenEOF
	}
	return &p.tokens[p.pos]
}

func (p *Parser) next() *lexer.Token {
	tok := p.peek()
	if !p.eof() {
		p.pos++
	}
	return tok
}

func (p *Parser) skipWhitespace() {
	for p.peek().Is(lexer.TokenWhitespace) {
		p.pos++
	}
}

func (p *Parser) parseExpr() (ast.Expr, error) {
	p.skipWhitespace()

	tok := p.peek()
	switch tok.Type() {
	case lexer.TokenEOF:
		return ast.Expr{}, newError(ErrUnexpectedEOF, tok)

	case lexer.TokenNumber:
		return p.parseNumber()

	case lexer.TokenQuote:
		return p.parseAtom()

	case lexer.TokenBool:
		p.next()
		return ast.NewBool(tok.Bool()), nil

	case lexer.TokenString:
		p.next()
		return ast.NewString(tok.Text()), nil
	}

	return ast.Expr{}, newError(ErrUnexpectedToken, tok)
}

func (p *Parser) parseNumber() (ast.Expr, error) {
	tok := p.peek()

	i64, ok := foldInteger(tok.Text())
	if !ok {
		return ast.Expr{}, newError(ErrOverflow, tok)
	}
	p.next()

	if !p.peek().Is(lexer.TokenDot) {
		// natural end for an integer
		return ast.NewInteger(i64), nil
	}

	// got a point, this means this is a floating point number
	p.next()

	if fraction := p.peek(); fraction.Is(lexer.TokenNumber) {
		p.next()
		return ast.NewFloat(float64(i64) + foldFraction(fraction.Text())), nil
	}

	return ast.NewFloat(float64(i64)), nil
}

// parseAtom leaves the cursor on the quote when it fails.
func (p *Parser) parseAtom() (ast.Expr, error) {
	start := p.pos
	quote := p.next()

	tok := p.peek()
	switch tok.Type() {
	case lexer.TokenEOF:
		p.pos = start
		return ast.Expr{}, newError(ErrUnterminatedQuote, quote)
	case lexer.TokenIdentifier:
		p.next()
		return ast.NewAtom(tok.Text()), nil
	}

	p.pos = start
	return ast.Expr{}, newError(ErrNotAtom, tok)
}

// foldInteger accumulates decimal digits, most significant first. It returns
// false if the value does not fit in an int64.
func foldInteger(digits string) (int64, bool) {
	var acc int64
	for _, c := range digits {
		d := int64(c - '0')
		if acc > (math.MaxInt64-d)/10 {
			return 0, false
		}
		acc = acc*10 + d
	}
	return acc, true
}

// foldFraction adds up digit_i * 10^-i for the digits after the point
func foldFraction(digits string) float64 {
	var f float64
	for i, c := range digits {
		f += float64(c-'0') * math.Pow(10, -float64(i+1))
	}
	return f
}

// ParseTokens builds the expressions represented by tokens
func ParseTokens(tokens []lexer.Token) ([]ast.Expr, error) {
	return New(tokens).Parse()
}

// Parse takes an array of bytes and returns the expressions within it, or
// the first error found while tokenizing or parsing.
func Parse(in []byte) ([]ast.Expr, error) {
	tokens, err := lexer.Tokenize(in)
	if err != nil {
		return nil, err
	}
	return ParseTokens(tokens)
}

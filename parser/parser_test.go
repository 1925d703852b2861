package parser

import (
	"errors"
	"math"
	"math/rand"
	"strconv"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/risp/ast"
	"github.com/xiam/risp/lexer"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		In  string
		Out []ast.Expr
	}{
		{
			In:  ``,
			Out: []ast.Expr{},
		},
		{
			In:  `123`,
			Out: []ast.Expr{ast.NewInteger(123)},
		},
		{
			In:  `123 456`,
			Out: []ast.Expr{ast.NewInteger(123), ast.NewInteger(456)},
		},
		{
			In:  `'atom`,
			Out: []ast.Expr{ast.NewAtom("atom")},
		},
		{
			In:  `123.456`,
			Out: []ast.Expr{ast.NewFloat(123.456)},
		},
		{
			In:  `123.`,
			Out: []ast.Expr{ast.NewFloat(123)},
		},
		{
			In:  `123. 3`,
			Out: []ast.Expr{ast.NewFloat(123), ast.NewInteger(3)},
		},
		{
			In:  `1.5'a`,
			Out: []ast.Expr{ast.NewFloat(1.5), ast.NewAtom("a")},
		},
		{
			In:  `1.'a`,
			Out: []ast.Expr{ast.NewFloat(1), ast.NewAtom("a")},
		},
		{
			In:  `007`,
			Out: []ast.Expr{ast.NewInteger(7)},
		},
		{
			In:  `0.0`,
			Out: []ast.Expr{ast.NewFloat(0)},
		},
		{
			In:  `#t #false`,
			Out: []ast.Expr{ast.NewBool(true), ast.NewBool(false)},
		},
		{
			In:  `"hello world" ""`,
			Out: []ast.Expr{ast.NewString("hello world"), ast.NewString("")},
		},
		{
			In:  `   1`,
			Out: []ast.Expr{ast.NewInteger(1)},
		},
		{
			In:  `9223372036854775807`,
			Out: []ast.Expr{ast.NewInteger(math.MaxInt64)},
		},
	}

	for _, tc := range testCases {
		exprs, err := Parse([]byte(tc.In))
		require.NoError(t, err, tc.In)
		if diff := cmp.Diff(tc.Out, exprs); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tc.In, diff)
		}
	}
}

func TestParserBuildTree(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{
			In:  `1`,
			Out: `1`,
		},
		{
			In:  `1 3 3.25 5.5`,
			Out: `1 3 3.250000 5.500000`,
		},
		{
			In:  `'a 'bc 'DEF`,
			Out: `a bc DEF`,
		},
		{
			In:  `#t 1 "x y" #f`,
			Out: `true 1 x y false`,
		},
		{
			In:  `12. 'x`,
			Out: `12.000000 x`,
		},
	}

	for _, tc := range testCases {
		exprs, err := Parse([]byte(tc.In))
		require.NoError(t, err)
		assert.NotNil(t, exprs)

		assert.Equal(t, tc.Out, string(ast.Encode(exprs)))
	}
}

func TestParseIntegers(t *testing.T) {
	values := []int64{0, 1, 9, 10, 99, 100, 1 << 32, math.MaxInt64 - 1, math.MaxInt64}

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		values = append(values, r.Int63())
	}

	for _, n := range values {
		s := strconv.FormatInt(n, 10)

		exprs, err := Parse([]byte(s))
		require.NoError(t, err, s)
		require.Len(t, exprs, 1)
		assert.True(t, ast.NewInteger(n).Equal(exprs[0]), s)
	}
}

func TestRoundTrip(t *testing.T) {
	testCases := []ast.Expr{
		ast.NewInteger(0),
		ast.NewInteger(42),
		ast.NewInteger(math.MaxInt64),
		ast.NewAtom("atom"),
		ast.NewAtom("ñandú"),
	}

	for _, expr := range testCases {
		in := expr.Encode()
		if expr.Type() == ast.ExprAtom {
			in = "'" + in
		}

		exprs, err := Parse([]byte(in))
		require.NoError(t, err, in)
		require.Len(t, exprs, 1)
		assert.True(t, expr.Equal(exprs[0]), in)
	}
}

func TestRoundTripFloat(t *testing.T) {
	testCases := []float64{0, 0.5, 1.25, 123.456, 3.141592, 99999.000001}

	for _, f := range testCases {
		in := ast.EncodeFloat(f, ast.DefaultFloatPrecision)

		exprs, err := Parse([]byte(in))
		require.NoError(t, err, in)
		require.Len(t, exprs, 1)
		require.Equal(t, ast.ExprFloat, exprs[0].Type())
		assert.InDelta(t, f, exprs[0].Float64(), 1e-6, in)
	}
}

func TestParserErrors(t *testing.T) {
	testCases := []struct {
		In  string
		Err error
		Tok lexer.TokenType
		Pos int
	}{
		{`'`, ErrUnterminatedQuote, lexer.TokenQuote, 0},
		{`1 '`, ErrUnterminatedQuote, lexer.TokenQuote, 2},
		{`'1`, ErrNotAtom, lexer.TokenNumber, 0},
		{`''a`, ErrNotAtom, lexer.TokenQuote, 0},
		{`' a`, ErrNotAtom, lexer.TokenWhitespace, 0},
		{`'#t`, ErrNotAtom, lexer.TokenBool, 0},
		{`.`, ErrUnexpectedToken, lexer.TokenDot, 0},
		{`1 . 2`, ErrUnexpectedToken, lexer.TokenDot, 2},
		{`1..2`, ErrUnexpectedToken, lexer.TokenDot, 2},
		{`abc`, ErrUnexpectedToken, lexer.TokenIdentifier, 0},
		{` `, ErrUnexpectedEOF, lexer.TokenEOF, 1},
		{`123 `, ErrUnexpectedEOF, lexer.TokenEOF, 2},
		{`9223372036854775808`, ErrOverflow, lexer.TokenNumber, 0},
		{`1 99999999999999999999.5`, ErrOverflow, lexer.TokenNumber, 2},
	}

	for _, tc := range testCases {
		tokens, err := lexer.Tokenize([]byte(tc.In))
		require.NoError(t, err, tc.In)

		p := New(tokens)
		exprs, err := p.Parse()
		assert.Nil(t, exprs, tc.In)
		require.Error(t, err, tc.In)
		assert.True(t, errors.Is(err, tc.Err), "%q: %v", tc.In, err)

		var parseErr *Error
		require.True(t, errors.As(err, &parseErr), tc.In)
		assert.Equal(t, tc.Tok, parseErr.Tok.Type(), tc.In)
		assert.Equal(t, tc.Pos, p.Pos(), tc.In)
		t.Log(err)
	}
}

func TestParserTokenizeErrors(t *testing.T) {
	testCases := []struct {
		In  string
		Err error
	}{
		{`1 + 2`, lexer.ErrUnknownToken},
		{`"abc`, lexer.ErrUnterminatedString},
		{`#maybe`, lexer.ErrInvalidBool},
	}

	for _, tc := range testCases {
		exprs, err := Parse([]byte(tc.In))
		assert.Nil(t, exprs)
		assert.True(t, errors.Is(err, tc.Err), "%q: %v", tc.In, err)

		var lexErr *lexer.Error
		assert.True(t, errors.As(err, &lexErr))
	}
}

func TestErrorMessage(t *testing.T) {
	_, err := Parse([]byte(`'`))
	assert.EqualError(t, err, `unterminated quote: (:quote "'" [0])`)

	_, err = Parse([]byte(`1 .`))
	assert.EqualError(t, err, `unexpected token: (:dot "." [2])`)

	_, err = Parse([]byte(`1 `))
	assert.EqualError(t, err, `unexpected EOF`)
}

func TestParseWhitespaceOnly(t *testing.T) {
	tokens := make([]lexer.Token, 0, 100000)
	for i := 0; i < cap(tokens); i++ {
		tokens = append(tokens, *lexer.NewToken(lexer.TokenWhitespace, " ", i))
	}

	exprs, err := ParseTokens(tokens)
	assert.Nil(t, exprs)
	assert.True(t, errors.Is(err, ErrUnexpectedEOF))
}

func TestParseConcurrent(t *testing.T) {
	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			in := strconv.Itoa(i) + " 'a " + strconv.Itoa(i) + ".5"
			exprs, err := Parse([]byte(in))
			if assert.NoError(t, err) {
				assert.Equal(t, []ast.Expr{
					ast.NewInteger(int64(i)),
					ast.NewAtom("a"),
					ast.NewFloat(float64(i) + 0.5),
				}, exprs)
			}
		}(i)
	}

	wg.Wait()
}

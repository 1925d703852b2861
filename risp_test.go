package risp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/risp/ast"
	"github.com/xiam/risp/lexer"
	"github.com/xiam/risp/parser"
)

func TestRead(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{
			In:  "",
			Out: "",
		},
		{
			In:  "123\n",
			Out: "123",
		},
		{
			In:  "  123 456  \r\n",
			Out: "123 456",
		},
		{
			In:  "\t'atom 1.5 #t \"str\"\n",
			Out: "atom 1.500000 true str",
		},
	}

	for _, tc := range testCases {
		exprs, err := Read(tc.In)
		require.NoError(t, err, tc.In)
		assert.Equal(t, tc.Out, string(ast.Encode(exprs)))
	}
}

func TestReadErrors(t *testing.T) {
	testCases := []struct {
		In  string
		Err error
	}{
		{"'\n", parser.ErrUnterminatedQuote},
		{"1 + 2", lexer.ErrUnknownToken},
		{"99999999999999999999", parser.ErrOverflow},
	}

	for _, tc := range testCases {
		exprs, err := Read(tc.In)
		assert.Nil(t, exprs)
		assert.True(t, errors.Is(err, tc.Err), "%q: %v", tc.In, err)
	}
}

func TestEval(t *testing.T) {
	exprs := []ast.Expr{
		ast.NewInteger(1),
		ast.NewFloat(2.5),
		ast.NewAtom("a"),
		ast.NewBool(false),
		ast.NewString("s"),
	}

	for _, expr := range exprs {
		out, err := Eval(expr)
		assert.NoError(t, err)
		assert.True(t, expr.Equal(out))
	}
}

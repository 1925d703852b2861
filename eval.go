package risp

import (
	"github.com/xiam/risp/ast"
)

// Eval evaluates an expression. Every expression is a literal, so it
// evaluates to itself.
func Eval(expr ast.Expr) (ast.Expr, error) {
	return expr, nil
}

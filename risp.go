// Package risp reads lines of text into literal expressions.
package risp

import (
	"strings"

	"github.com/xiam/risp/ast"
	"github.com/xiam/risp/parser"
)

// Read parses one line of input, leading and trailing whitespace is ignored.
// It returns every expression on the line or an error, never both.
func Read(line string) ([]ast.Expr, error) {
	return parser.Parse([]byte(strings.TrimSpace(line)))
}

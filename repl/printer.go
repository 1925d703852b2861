package repl

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/xiam/risp/ast"
)

// Printer writes the canonical text of expressions, one per line
type Printer struct {
	w         io.Writer
	precision int
}

// NewPrinter creates a printer that writes to w. Floats are written with
// precision fractional digits.
func NewPrinter(w io.Writer, precision int) *Printer {
	return &Printer{
		w:         w,
		precision: precision,
	}
}

// Print writes expr followed by a newline
func (p *Printer) Print(expr ast.Expr) error {
	s := expr.Encode()
	if expr.Type() == ast.ExprFloat {
		s = ast.EncodeFloat(expr.Float64(), p.precision)
	}

	_, err := fmt.Fprintln(p.w, s)
	return errors.Wrap(err, "print")
}

// Package repl implements the read-eval-print loop of risp.
package repl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"

	"github.com/xiam/risp"
	"github.com/xiam/risp/ast"
	"github.com/xiam/risp/lexer"
)

// DefaultPrompt is shown before each line in interactive sessions
const DefaultPrompt = "risp> "

// ErrEndOfInput is returned by Run when the input has no more lines
var ErrEndOfInput = errors.WithMessage(io.EOF, "end of input")

// Evaluator transforms an expression
type Evaluator interface {
	Eval(ast.Expr) (ast.Expr, error)
}

// EvalFunc adapts a function into an Evaluator
type EvalFunc func(ast.Expr) (ast.Expr, error)

func (fn EvalFunc) Eval(expr ast.Expr) (ast.Expr, error) {
	return fn(expr)
}

// Options configures a REPL
type Options struct {
	// Interactive enables the prompt. It is decided by the caller, usually
	// by checking whether stdin is a terminal.
	Interactive bool
	Prompt      string

	FloatPrecision int

	// Tokens and AST write a dump of the tokens and of the typed
	// expressions of each line before printing results.
	Tokens bool
	AST    bool

	Logger *slog.Logger
}

// REPL reads lines from an Input, evaluates every expression on them and
// prints the results.
type REPL struct {
	in      Input
	out     io.Writer
	eval    Evaluator
	printer *Printer

	opts   Options
	logger *slog.Logger

	lines int
}

// New creates a REPL. A nil eval uses risp.Eval.
func New(in Input, out io.Writer, eval Evaluator, opts Options) *REPL {
	if eval == nil {
		eval = EvalFunc(risp.Eval)
	}
	if opts.Prompt == "" {
		opts.Prompt = DefaultPrompt
	}
	if opts.FloatPrecision < 1 {
		opts.FloatPrecision = ast.DefaultFloatPrecision
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &REPL{
		in:      in,
		out:     out,
		eval:    eval,
		printer: NewPrinter(out, opts.FloatPrecision),
		opts:    opts,
		logger:  logger,
	}
}

// Run loops until the input is exhausted, a line can't be read or ctx is
// done. Errors found while handling a line are logged and the loop goes on.
// Reaching the end of the input is an error: ErrEndOfInput.
func (r *REPL) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := r.readLine()
		if err != nil {
			return err
		}

		if err := r.Exec(line); err != nil {
			r.logger.Error("line failed", "line", r.lines, "err", err)
		}
	}
}

func (r *REPL) readLine() (string, error) {
	prompt := ""
	if r.opts.Interactive {
		prompt = r.opts.Prompt
	}

	line, err := r.in.ReadLine(prompt)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", ErrEndOfInput
		}
		return "", errors.Wrap(err, "read line")
	}

	r.lines++
	return line, nil
}

// Exec reads, evaluates and prints all the expressions in a single line.
// Nothing is printed if any expression fails to read or evaluate.
func (r *REPL) Exec(line string) error {
	if r.opts.Tokens {
		if err := r.dumpTokens(line); err != nil {
			return err
		}
	}

	exprs, err := risp.Read(line)
	if err != nil {
		return errors.Wrap(err, "read")
	}
	r.logger.Debug("read", "line", r.lines, "exprs", len(exprs))

	if r.opts.AST {
		if err := ast.Print(r.out, exprs); err != nil {
			return errors.Wrap(err, "print ast")
		}
	}

	results := make([]ast.Expr, 0, len(exprs))
	for _, expr := range exprs {
		result, err := r.eval.Eval(expr)
		if err != nil {
			return errors.Wrapf(err, "eval %v", expr)
		}
		results = append(results, result)
	}

	for _, result := range results {
		if err := r.printer.Print(result); err != nil {
			return err
		}
	}
	return nil
}

func (r *REPL) dumpTokens(line string) error {
	tokens, err := lexer.Tokenize([]byte(strings.TrimSpace(line)))
	if err != nil {
		return errors.Wrap(err, "tokenize")
	}

	for i, tok := range tokens {
		if _, err := fmt.Fprintf(r.out, "token[%d] (type: %v, pos: %d)\n\t-> %q\n", i, tok.Type(), tok.Pos(), tok.Text()); err != nil {
			return errors.Wrap(err, "print tokens")
		}
	}
	return nil
}

// Lines returns how many lines have been read so far
func (r *REPL) Lines() int {
	return r.lines
}

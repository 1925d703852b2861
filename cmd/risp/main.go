package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/xiam/risp/ast"
	"github.com/xiam/risp/repl"
)

const (
	interactiveAuto   = "auto"
	interactiveAlways = "always"
	interactiveNever  = "never"
)

// rispFlags defines the commandline flags of risp.
type rispFlags struct {
	Prompt         string
	Interactive    string
	HistoryFile    string
	FloatPrecision int
	LogLevel       string
	LogFile        string
	Tokens         bool
	AST            bool
}

func (flags *rispFlags) AsCliFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Destination: &flags.Prompt,
			Name:        "prompt",
			Value:       repl.DefaultPrompt,
			Usage:       "Prompt shown before each line in interactive sessions.",
			EnvVars:     []string{"RISP_PROMPT"},
		},
		&cli.StringFlag{
			Destination: &flags.Interactive,
			Name:        "interactive",
			Value:       interactiveAuto,
			Usage:       "One of auto, always or never. auto is interactive when stdin is a terminal.",
			EnvVars:     []string{"RISP_INTERACTIVE"},
		},
		&cli.StringFlag{
			Destination: &flags.HistoryFile,
			Name:        "history_file",
			Value:       defaultHistoryFile(),
			Usage:       "File where the line history of interactive sessions is kept. Empty disables it.",
			EnvVars:     []string{"RISP_HISTORY_FILE"},
		},
		&cli.IntFlag{
			Destination: &flags.FloatPrecision,
			Name:        "float_precision",
			Value:       ast.DefaultFloatPrecision,
			Usage:       "Number of fractional digits used to print floats.",
			EnvVars:     []string{"RISP_FLOAT_PRECISION"},
		},
		&cli.StringFlag{
			Destination: &flags.LogLevel,
			Name:        "log_level",
			Value:       "info",
			Usage:       "One of debug, info, warn or error.",
			EnvVars:     []string{"RISP_LOG_LEVEL"},
		},
		&cli.StringFlag{
			Destination: &flags.LogFile,
			Name:        "log_file",
			Usage:       "Also write JSON logs to this file.",
			EnvVars:     []string{"RISP_LOG_FILE"},
		},
		&cli.BoolFlag{
			Destination: &flags.Tokens,
			Name:        "tokens",
			Usage:       "Print the tokens of each line.",
		},
		&cli.BoolFlag{
			Destination: &flags.AST,
			Name:        "ast",
			Usage:       "Print the typed expressions of each line.",
		},
	}
}

func defaultHistoryFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "risp", "history")
}

func isInteractive(mode string, stdinIsTerminal bool) (bool, error) {
	switch mode {
	case interactiveAuto:
		return stdinIsTerminal, nil
	case interactiveAlways:
		return true, nil
	case interactiveNever:
		return false, nil
	}
	return false, errors.Errorf("invalid interactive mode %q", mode)
}

func run(c *cli.Context, flags *rispFlags, stdin io.Reader, stdout, stderr io.Writer, stdinIsTerminal bool) error {
	logger, closeLog, err := newLogger(stderr, flags.LogLevel, flags.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	interactive, err := isInteractive(flags.Interactive, stdinIsTerminal)
	if err != nil {
		return err
	}

	var input repl.Input
	if interactive && stdinIsTerminal {
		if flags.HistoryFile != "" {
			if err := os.MkdirAll(filepath.Dir(flags.HistoryFile), 0755); err != nil {
				logger.Warn("create history dir", "err", err)
			}
		}
		li := repl.NewLinerInput(flags.HistoryFile)
		defer func() {
			if err := li.Close(); err != nil {
				logger.Warn("close line editor", "err", err)
			}
		}()
		input = li
	} else {
		input = repl.NewReaderInput(stdin, stdout, interactive)
	}

	logger.Debug("starting", "interactive", interactive, "terminal", stdinIsTerminal)

	r := repl.New(input, stdout, nil, repl.Options{
		Interactive:    interactive,
		Prompt:         flags.Prompt,
		FloatPrecision: flags.FloatPrecision,
		Tokens:         flags.Tokens,
		AST:            flags.AST,
		Logger:         logger,
	})

	err = r.Run(c.Context)
	if interactive {
		fmt.Fprintln(stdout)
	}
	logger.Debug("stopped", "lines", r.Lines(), "err", err)
	return err
}

func main() {
	var flags rispFlags

	cliApp := &cli.App{
		Name:  "risp",
		Usage: "Reads lines of literal expressions and prints their values.",
		Flags: (&flags).AsCliFlags(),
		Action: func(c *cli.Context) error {
			stdinIsTerminal := term.IsTerminal(int(os.Stdin.Fd()))
			return run(c, &flags, os.Stdin, os.Stdout, os.Stderr, stdinIsTerminal)
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

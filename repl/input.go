package repl

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/pkg/errors"
)

// Input supplies lines of text to the REPL. ReadLine returns io.EOF once
// there is nothing left to read.
type Input interface {
	ReadLine(prompt string) (string, error)
}

// ReaderInput reads lines of any length from an io.Reader
type ReaderInput struct {
	r *bufio.Reader
	w io.Writer

	interactive bool
}

// NewReaderInput creates an Input that reads lines from r. The prompt is
// written to w only when interactive is set.
func NewReaderInput(r io.Reader, w io.Writer, interactive bool) *ReaderInput {
	return &ReaderInput{
		r:           bufio.NewReader(r),
		w:           w,
		interactive: interactive,
	}
}

func (in *ReaderInput) ReadLine(prompt string) (string, error) {
	if in.interactive && prompt != "" {
		if _, err := io.WriteString(in.w, prompt); err != nil {
			return "", errors.Wrap(err, "write prompt")
		}
	}

	line, err := in.r.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return "", errors.Wrap(err, "read input")
		}
		if line == "" {
			return "", io.EOF
		}
		// last line without a newline
	}

	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// LinerInput reads lines from a terminal with line editing and history
type LinerInput struct {
	line        *liner.State
	historyFile string
}

// NewLinerInput takes over the terminal. History is loaded from historyFile,
// if given, and saved back on Close.
func NewLinerInput(historyFile string) *LinerInput {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	if historyFile != "" {
		if f, err := os.Open(historyFile); err == nil {
			_, _ = line.ReadHistory(f)
			f.Close()
		}
	}

	return &LinerInput{
		line:        line,
		historyFile: historyFile,
	}
}

func (in *LinerInput) ReadLine(prompt string) (string, error) {
	s, err := in.line.Prompt(prompt)
	if err != nil {
		switch err {
		case io.EOF:
			return "", io.EOF
		case liner.ErrPromptAborted:
			// ctrl-c drops the current line
			return "", nil
		}
		return "", errors.Wrap(err, "prompt")
	}

	if s != "" {
		in.line.AppendHistory(s)
	}
	return s, nil
}

// Close saves the history and gives the terminal back
func (in *LinerInput) Close() error {
	defer in.line.Close()

	if in.historyFile == "" {
		return nil
	}

	f, err := os.Create(in.historyFile)
	if err != nil {
		return errors.Wrap(err, "create history file")
	}
	defer f.Close()

	if _, err := in.line.WriteHistory(f); err != nil {
		return errors.Wrap(err, "write history")
	}
	return nil
}

var (
	_ = Input(&ReaderInput{})
	_ = Input(&LinerInput{})
)

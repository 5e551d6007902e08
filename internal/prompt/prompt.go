// Package prompt asks for values line by line on a terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	internalstrings "github.com/amonks/rtodo/internal/strings"
	"golang.org/x/term"
)

// MaxAttempts is how many answers Ask accepts before giving up.
const MaxAttempts = 3

var (
	// ErrNoInput indicates the input ended before an answer was given.
	ErrNoInput = errors.New("no input")
	// ErrTooManyAttempts indicates every attempt was rejected.
	ErrTooManyAttempts = errors.New("too many invalid answers")
	// ErrRequired indicates an empty answer where no default exists.
	ErrRequired = errors.New("a value is required")
)

// Prompter reads answers from in and writes questions to out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Prompter over in and out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// IsInteractive reports whether f is a terminal.
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Line asks one question and returns the trimmed answer. An empty answer
// yields def.
func (p *Prompter) Line(label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.out)
			return "", fmt.Errorf("%s: %w", label, ErrNoInput)
		}
		return "", fmt.Errorf("read %s: %w", label, err)
	}

	answer := strings.TrimSpace(internalstrings.TrimTrailingNewlines(line))
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// Ask asks until parse accepts an answer, up to MaxAttempts times. Rejected
// answers are reported on the prompter's output before asking again. An empty
// answer uses def, which is parsed like any other answer.
func Ask[T any](p *Prompter, label, def string, parse func(string) (T, error)) (T, error) {
	var zero T
	var lastErr error
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		answer, err := p.Line(label, def)
		if err != nil {
			return zero, err
		}
		if answer == "" {
			lastErr = ErrRequired
			fmt.Fprintf(p.out, "%s is required\n", label)
			continue
		}

		value, err := parse(answer)
		if err == nil {
			return value, nil
		}
		lastErr = err
		fmt.Fprintln(p.out, err)
	}
	return zero, fmt.Errorf("%s: %w: %w", strings.ToLower(label), ErrTooManyAttempts, lastErr)
}

package prompt

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"
)

func parsePositive(value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, errors.New("must be positive")
	}
	return n, nil
}

func TestLine(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		def     string
		want    string
		wantOut string
	}{
		{
			name:    "answer",
			input:   "  Buy milk \n",
			want:    "Buy milk",
			wantOut: "Title: ",
		},
		{
			name:    "default on empty",
			input:   "\n",
			def:     "once",
			want:    "once",
			wantOut: "Title [once]: ",
		},
		{
			name:    "crlf",
			input:   "daily\r\n",
			want:    "daily",
			wantOut: "Title: ",
		},
		{
			name:    "final line without newline",
			input:   "weekly",
			want:    "weekly",
			wantOut: "Title: ",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			p := New(strings.NewReader(tc.input), &out)

			got, err := p.Line("Title", tc.def)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
			if out.String() != tc.wantOut {
				t.Fatalf("expected prompt %q, got %q", tc.wantOut, out.String())
			}
		})
	}
}

func TestLine_EOF(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader(""), &out)

	_, err := p.Line("Title", "")
	if !errors.Is(err, ErrNoInput) {
		t.Fatalf("expected ErrNoInput, got %v", err)
	}
}

func TestAsk_RepromptsUntilValid(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("zero\n-1\n4\n"), &out)

	got, err := Ask(p, "Amount", "", parsePositive)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
	if n := strings.Count(out.String(), "Amount: "); n != 3 {
		t.Fatalf("expected 3 prompts, got %d in %q", n, out.String())
	}
	if !strings.Contains(out.String(), "must be positive\n") {
		t.Fatalf("expected rejection message, got %q", out.String())
	}
}

func TestAsk_GivesUpAfterMaxAttempts(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("a\nb\nc\n7\n"), &out)

	_, err := Ask(p, "Amount", "", parsePositive)
	if !errors.Is(err, ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
	if n := strings.Count(out.String(), "Amount: "); n != MaxAttempts {
		t.Fatalf("expected %d prompts, got %d", MaxAttempts, n)
	}
}

func TestAsk_WrapsLastParseError(t *testing.T) {
	sentinel := errors.New("nope")
	p := New(strings.NewReader("x\ny\nz\n"), &bytes.Buffer{})

	_, err := Ask(p, "Lifecycle", "", func(string) (string, error) {
		return "", sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected last parse error to be wrapped, got %v", err)
	}
}

func TestAsk_EmptyUsesDefault(t *testing.T) {
	p := New(strings.NewReader("\n"), &bytes.Buffer{})

	got, err := Ask(p, "Amount", "2", parsePositive)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2 {
		t.Fatalf("expected default 2, got %d", got)
	}
}

func TestAsk_EmptyWithoutDefaultIsRequired(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("\n\n\n"), &out)

	_, err := Ask(p, "Title", "", func(value string) (string, error) { return value, nil })
	if !errors.Is(err, ErrRequired) {
		t.Fatalf("expected ErrRequired, got %v", err)
	}
	if !strings.Contains(out.String(), "Title is required") {
		t.Fatalf("expected required message, got %q", out.String())
	}
}

func TestAsk_EOFStopsImmediately(t *testing.T) {
	p := New(strings.NewReader("bad\n"), &bytes.Buffer{})

	_, err := Ask(p, "Amount", "", parsePositive)
	if !errors.Is(err, ErrNoInput) {
		t.Fatalf("expected ErrNoInput, got %v", err)
	}
}

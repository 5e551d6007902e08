// Package logging builds the leveled logger shared by the CLI and the store.
package logging

import (
	"fmt"
	"io"
	"os"
	internalstrings "github.com/amonks/rtodo/internal/strings"
	"github.com/charmbracelet/log"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = log.WarnLevel

// Options holds configuration for the logger.
type Options struct {
	// Level is one of debug, info, warn, error. Empty means DefaultLevel.
	Level string
	// Format is one of text, json, logfmt. Empty means text.
	Format string
	// Verbose forces the debug level.
	Verbose bool
	// Writer defaults to stderr.
	Writer io.Writer
}

// New creates a logger from opts.
func New(opts Options) (*log.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		level = log.DebugLevel
	}

	formatter, err := ParseFormat(opts.Format)
	if err != nil {
		return nil, err
	}

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: formatter != log.TextFormatter,
		Prefix:          "rtodo",
	}), nil
}

// ParseLevel converts a level name into a log.Level.
func ParseLevel(value string) (log.Level, error) {
	name := internalstrings.NormalizeLowerTrimSpace(value)
	if name == "" {
		return DefaultLevel, nil
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		return 0, fmt.Errorf("invalid log level %q (valid: debug, info, warn, error)", value)
	}
	return level, nil
}

// ParseFormat converts a format name into a log.Formatter.
func ParseFormat(value string) (log.Formatter, error) {
	switch internalstrings.NormalizeLowerTrimSpace(value) {
	case "", "text":
		return log.TextFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	default:
		return 0, fmt.Errorf("invalid log format %q (valid: text, json, logfmt)", value)
	}
}

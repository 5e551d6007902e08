// Package main implements the rtodo CLI tool.
package main

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"slices"

	"github.com/amonks/rtodo/todo"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd.SetArgs(negativeIndexArgs(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "rtodo",
	Short: "rtodo - todos with lifespans and recurrence",
	Long: `rtodo keeps a list of todos in a local JSON file.

Each todo has a lifespan (how long it stays open before it is overdue) and a
lifecycle (whether completing it schedules a new occurrence).

Todos are addressed by their index in "rtodo list". Indices start at 0 and
shift down when an earlier todo is removed or completed, so list again before
acting on an index. A negative index is rejected as out of range.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootFile, "file", "f", "", "Todo file (default $RTODO_FILE, config store.path, or ~/.rtodo2/todo_file)")
	rootCmd.PersistentFlags().StringVar(&rootConfig, "config", "", "Config file (default $RTODO_CONFIG or ~/.config/rtodo/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Log debug output to stderr")
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	var exitErr interface{ ExitCode() int }
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	if todo.IsValidation(err) {
		return 2
	}
	return 1
}

// usageError reports bad command-line arguments.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func (e *usageError) ExitCode() int {
	return 2
}

// exactIndexArg requires a single index argument.
func exactIndexArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return &usageError{msg: fmt.Sprintf("%s requires exactly one index, got %d", cmd.CommandPath(), len(args))}
	}
	return nil
}

var negativeIndexPattern = regexp.MustCompile(`^-[0-9]+$`)

// negativeIndexArgs moves a negative index given to an index command behind
// "--", so it reaches exactIndexArg instead of failing as an unknown
// shorthand flag.
func negativeIndexArgs(args []string) []string {
	cmd, _, err := rootCmd.Find(args)
	if err != nil || !isIndexCommand(cmd) || slices.Contains(args, "--") {
		return args
	}

	var moved []string
	rest := make([]string, 0, len(args)+1)
	for i, arg := range args {
		if negativeIndexPattern.MatchString(arg) && (i == 0 || !takesValue(args[i-1])) {
			moved = append(moved, arg)
			continue
		}
		rest = append(rest, arg)
	}
	if len(moved) == 0 {
		return args
	}
	rest = append(rest, "--")
	return append(rest, moved...)
}

func isIndexCommand(cmd *cobra.Command) bool {
	switch cmd {
	case removeCmd, completeCmd, showCmd, editCmd:
		return true
	}
	return false
}

func takesValue(flag string) bool {
	switch flag {
	case "-f", "--file", "--config":
		return true
	}
	return false
}

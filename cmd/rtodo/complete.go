package main

import (
	"fmt"
	"time"

	"github.com/amonks/rtodo/internal/ui"
	"github.com/amonks/rtodo/todo"
	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:     "complete <index>",
	Aliases: []string{"done"},
	Short:   "Mark a todo as done",
	Long: `Mark a todo as done and move it to the completed list.

Recurring todos schedule their next occurrence, which is appended to the end
of the active list. Todos listed after the completed one move up by one index.`,
	Args: exactIndexArg,
	RunE: runComplete,
}

func init() {
	rootCmd.AddCommand(completeCmd)
}

func runComplete(cmd *cobra.Command, args []string) error {
	index, err := todo.ParseIndex(args[0])
	if err != nil {
		return err
	}

	a, err := loadApp()
	if err != nil {
		return err
	}

	var result todo.CompleteResult
	err = a.update(time.Now(), func(s *todo.Store) error {
		var completeErr error
		result, completeErr = s.Complete(index)
		return completeErr
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Completed todo %s: %s\n", ui.FormatIndex(index), result.Done.Title)
	if result.Successor != nil {
		fmt.Fprintf(out, "Next %s occurrence is todo %s, starting %s\n",
			result.Successor.Lifecycle,
			ui.FormatIndex(result.SuccessorIndex),
			ui.FormatTimestamp(result.Successor.CreatedAt))
	}
	return nil
}

package main

import (
	"fmt"
	"time"

	"github.com/amonks/rtodo/internal/ui"
	"github.com/amonks/rtodo/todo"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove <index>",
	Aliases: []string{"rm"},
	Short:   "Remove an active todo",
	Long: `Remove an active todo without completing it.

Todos listed after the removed one move up by one index.`,
	Args: exactIndexArg,
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	index, err := todo.ParseIndex(args[0])
	if err != nil {
		return err
	}

	a, err := loadApp()
	if err != nil {
		return err
	}

	var removed todo.Todo
	err = a.update(time.Now(), func(s *todo.Store) error {
		var removeErr error
		removed, removeErr = s.Remove(index)
		return removeErr
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed todo %s: %s\n", ui.FormatIndex(index), removed.Title)
	return nil
}

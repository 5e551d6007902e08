package main

import (
	"fmt"
	"time"

	"github.com/amonks/rtodo/todo"
	"github.com/spf13/cobra"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Mark todos whose lifespan has ended as overdue",
	Args:  cobra.NoArgs,
	RunE:  runRefresh,
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}

func runRefresh(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	var changed int
	err = todo.Update(a.storePath, a.storeOptions(), func(s *todo.Store) error {
		changed = a.refresh(s, time.Now())
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Marked %d %s overdue.\n", changed, pluralize(changed, "todo", "todos"))
	return nil
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

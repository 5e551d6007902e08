package main

import (
	"time"

	"github.com/amonks/rtodo/todo"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <index>",
	Short: "Edit a todo (not supported)",
	Long: `Edit is reserved. It checks the index and then fails without changing
anything. Remove the todo and create it again instead.`,
	Args: exactIndexArg,
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	index, err := todo.ParseIndex(args[0])
	if err != nil {
		return err
	}

	a, err := loadApp()
	if err != nil {
		return err
	}

	return a.view(time.Now(), func(s *todo.Store) error {
		return s.Edit(index)
	})
}

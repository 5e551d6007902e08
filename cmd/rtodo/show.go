package main

import (
	"time"

	"github.com/amonks/rtodo/internal/listflags"
	"github.com/amonks/rtodo/todo"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <index>",
	Short: "Show detailed information about a todo",
	Args:  exactIndexArg,
	RunE:  runShow,
}

var (
	showCompleted bool
	showJSON      bool
	showYAML      bool
)

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolVar(&showCompleted, "completed", false, "Index into the completed list")
	listflags.AddOutputFlags(showCmd, &showJSON, &showYAML)
}

func runShow(cmd *cobra.Command, args []string) error {
	format, err := resolveOutputFormat(showJSON, showYAML)
	if err != nil {
		return err
	}

	index, err := todo.ParseIndex(args[0])
	if err != nil {
		return err
	}

	a, err := loadApp()
	if err != nil {
		return err
	}

	now := time.Now()
	var item todo.Todo
	err = a.view(now, func(s *todo.Store) error {
		var getErr error
		if showCompleted {
			item, getErr = s.GetCompleted(index)
		} else {
			item, getErr = s.Get(index)
		}
		return getErr
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format != outputTable {
		return encodeStructured(out, format, listedTodo{Index: index, Completed: showCompleted, Todo: item})
	}

	printTodoDetail(out, index, item, now)
	return nil
}

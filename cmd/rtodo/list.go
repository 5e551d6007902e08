package main

import (
	"fmt"
	"time"

	"github.com/amonks/rtodo/internal/listflags"
	"github.com/amonks/rtodo/todo"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List todos",
	Long: `List active todos with their index.

Todos whose lifespan has ended are marked overdue and the change is saved.
Use --all to also list completed todos.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var (
	listAll  bool
	listJSON bool
	listYAML bool
)

func init() {
	rootCmd.AddCommand(listCmd)

	listflags.AddAllFlag(listCmd, &listAll)
	listflags.AddOutputFlags(listCmd, &listJSON, &listYAML)
}

func runList(cmd *cobra.Command, args []string) error {
	format, err := resolveOutputFormat(listJSON, listYAML)
	if err != nil {
		return err
	}

	a, err := loadApp()
	if err != nil {
		return err
	}

	now := time.Now()
	var active, completed []todo.Todo
	err = a.update(now, func(s *todo.Store) error {
		active = s.Active()
		completed = s.Completed()
		return nil
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format != outputTable {
		listed := listTodos(active, false)
		if listAll {
			listed = append(listed, listTodos(completed, true)...)
		}
		return encodeStructured(out, format, listed)
	}

	printTodoTable(out, active, now)
	if listAll {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Completed:")
		printCompletedTable(out, completed, now)
	}
	return nil
}

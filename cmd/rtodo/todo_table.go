package main

import (
	"fmt"
	"io"
	"time"

	"github.com/amonks/rtodo/internal/ui"
	"github.com/amonks/rtodo/todo"
)

// listedTodo is a todo together with the index used to address it.
type listedTodo struct {
	Index     int  `json:"index" yaml:"index"`
	Completed bool `json:"completed,omitempty" yaml:"completed,omitempty"`
	todo.Todo `yaml:",inline"`
}

func listTodos(items []todo.Todo, completed bool) []listedTodo {
	listed := make([]listedTodo, len(items))
	for i, item := range items {
		listed[i] = listedTodo{Index: i, Completed: completed, Todo: item}
	}
	return listed
}

// printTodoTable prints active todos in a table format.
func printTodoTable(w io.Writer, todos []todo.Todo, now time.Time) {
	if len(todos) == 0 {
		fmt.Fprintln(w, "No todos.")
		return
	}

	fmt.Fprint(w, formatTodoTable(todos, ui.FormatIndex, now))
}

func formatTodoTable(todos []todo.Todo, highlight func(int) string, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"#", "STATUS", "LIFESPAN", "LIFECYCLE", "DUE", "TITLE"}, len(todos))

	for i, t := range todos {
		builder.AddRow([]string{
			highlight(i),
			ui.FormatStatus(t.Status),
			t.Lifespan.String(),
			string(t.Lifecycle),
			formatTodoDue(t, now),
			ui.TruncateTableCell(t.Title),
		})
	}

	return builder.String()
}

// printCompletedTable prints completed todos in a table format.
func printCompletedTable(w io.Writer, todos []todo.Todo, now time.Time) {
	if len(todos) == 0 {
		fmt.Fprintln(w, "No completed todos.")
		return
	}

	fmt.Fprint(w, formatCompletedTable(todos, ui.FormatIndex, now))
}

func formatCompletedTable(todos []todo.Todo, highlight func(int) string, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"#", "LIFECYCLE", "CREATED", "TITLE"}, len(todos))

	for i, t := range todos {
		builder.AddRow([]string{
			highlight(i),
			string(t.Lifecycle),
			formatTodoAge(t, now),
			ui.TruncateTableCell(t.Title),
		})
	}

	return builder.String()
}

func formatTodoAge(item todo.Todo, now time.Time) string {
	return ui.FormatTimeAgo(item.CreatedAt, now)
}

func formatTodoDue(item todo.Todo, now time.Time) string {
	remaining, ok := todo.DueData(item, now)
	if !ok {
		return "-"
	}
	return ui.FormatCountdown(remaining)
}

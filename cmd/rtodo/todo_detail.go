package main

import (
	"fmt"
	"io"
	"time"

	"github.com/amonks/rtodo/internal/ui"
	"github.com/amonks/rtodo/todo"
)

const todoDetailIndent = 4

// printTodoDetail prints detailed information about a todo.
func printTodoDetail(w io.Writer, index int, t todo.Todo, now time.Time) {
	label := func(name string) string {
		return ui.FormatLabel(fmt.Sprintf("%-10s", name+":"))
	}

	fmt.Fprintf(w, "%s %s\n", label("Index"), ui.FormatIndex(index))
	fmt.Fprintf(w, "%s %s\n", label("Title"), t.Title)
	fmt.Fprintf(w, "%s %s\n", label("Status"), ui.FormatStatus(t.Status))
	fmt.Fprintf(w, "%s %s\n", label("Created"), ui.FormatTimestamp(t.CreatedAt))
	fmt.Fprintf(w, "%s %s\n", label("Lifespan"), t.Lifespan)
	if t.Status != todo.StatusDone {
		fmt.Fprintf(w, "%s %s (%s)\n", label("Due"), ui.FormatTimestamp(todo.Expiry(t)), formatTodoDue(t, now))
	}
	fmt.Fprintf(w, "%s %s\n", label("Lifecycle"), t.Lifecycle)
	if next, ok := todo.NextOccurrence(t); ok && t.Status != todo.StatusDone {
		fmt.Fprintf(w, "%s %s\n", label("Next"), ui.FormatTimestamp(next))
	}

	fmt.Fprintf(w, "\n%s\n%s\n", ui.FormatLabel("Description:"), formatTodoDescription(t.Description))
}

func formatTodoDescription(value string) string {
	return ui.RenderDescription(value, ui.ContentWidth(), todoDetailIndent)
}

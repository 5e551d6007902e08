package ui

import (
	"os"
	"strconv"

	"github.com/amonks/rtodo/todo"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	indexStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	statusOpenStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	statusOverdueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	statusDoneStyle    = lipgloss.NewStyle().Faint(true)
	labelStyle         = lipgloss.NewStyle().Bold(true)
)

// ansiEnabled reports whether stdout should receive escape codes.
var ansiEnabled = func() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// FormatIndex renders a todo index, highlighted when color is enabled.
func FormatIndex(index int) string {
	return render(indexStyle, strconv.Itoa(index))
}

// FormatStatus renders a status name, colored by state when color is enabled.
func FormatStatus(status todo.Status) string {
	switch status {
	case todo.StatusOpen:
		return render(statusOpenStyle, string(status))
	case todo.StatusOverdue:
		return render(statusOverdueStyle, string(status))
	case todo.StatusDone:
		return render(statusDoneStyle, string(status))
	default:
		return string(status)
	}
}

// FormatLabel renders a detail-view label.
func FormatLabel(label string) string {
	return render(labelStyle, label)
}

func render(style lipgloss.Style, value string) string {
	if value == "" || !ansiEnabled() {
		return value
	}
	return style.Render(value)
}

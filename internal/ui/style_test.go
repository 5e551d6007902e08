package ui

import (
	"testing"

	"github.com/amonks/rtodo/todo"
)

func withANSI(t *testing.T, enabled bool) {
	t.Helper()
	original := ansiEnabled
	ansiEnabled = func() bool { return enabled }
	t.Cleanup(func() {
		ansiEnabled = original
	})
}

func TestFormatStatusPlainWithoutANSI(t *testing.T) {
	withANSI(t, false)

	for _, status := range todo.ValidStatuses() {
		if got := FormatStatus(status); got != string(status) {
			t.Fatalf("expected %q, got %q", status, got)
		}
	}
	if got := FormatIndex(12); got != "12" {
		t.Fatalf("expected 12, got %q", got)
	}
}

func TestFormatStatusKeepsVisibleText(t *testing.T) {
	withANSI(t, true)

	for _, status := range todo.ValidStatuses() {
		if got := stripANSICodes(FormatStatus(status)); got != string(status) {
			t.Fatalf("expected visible text %q, got %q", status, got)
		}
	}
	if got := stripANSICodes(FormatLabel("Title:")); got != "Title:" {
		t.Fatalf("expected visible label, got %q", got)
	}
}

func TestNoColorDisablesANSI(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	if ansiEnabled() {
		t.Fatal("expected NO_COLOR to disable ANSI output")
	}
}

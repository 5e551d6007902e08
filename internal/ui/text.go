package ui

import (
	"strings"

	"github.com/amonks/rtodo/internal/markdown"
	internalstrings "github.com/amonks/rtodo/internal/strings"
	"github.com/muesli/reflow/wordwrap"
)

// LineWidth is the wrap width used when the terminal width is unknown.
const LineWidth = 80

// ContentWidth returns the terminal width, or LineWidth when stdout is not a
// terminal.
func ContentWidth() int {
	if width := tableViewportWidth(); width > 0 {
		return width
	}
	return LineWidth
}

// RenderDescription formats a todo description for display. Markdown is
// rendered when color is enabled; otherwise paragraphs are reflowed as plain
// text.
func RenderDescription(value string, width, indent int) string {
	if internalstrings.IsBlank(value) {
		return internalstrings.IndentBlock("-", indent)
	}
	if ansiEnabled() {
		if rendered := markdown.SafeRender(width, indent, []byte(value)); len(rendered) > 0 {
			return string(rendered)
		}
	}
	wrapWidth := width - indent
	if wrapWidth < 1 {
		wrapWidth = 1
	}
	return internalstrings.IndentBlock(ReflowParagraphs(value, wrapWidth), indent)
}

// ReflowParagraphs wraps and normalizes paragraph text.
func ReflowParagraphs(value string, width int) string {
	value = strings.TrimSpace(internalstrings.NormalizeNewlines(value))
	if value == "" {
		return ""
	}
	if width < 1 {
		width = 1
	}
	paragraphs := splitParagraphs(value)
	wrapped := make([]string, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		normalized := internalstrings.NormalizeWhitespace(paragraph)
		if normalized == "" {
			continue
		}
		wrapped = append(wrapped, wordwrap.String(normalized, width))
	}
	return strings.Join(wrapped, "\n\n")
}

func splitParagraphs(value string) []string {
	lines := strings.Split(value, "\n")
	var paragraphs []string
	var current []string
	flush := func() {
		if len(current) == 0 {
			return
		}
		paragraphs = append(paragraphs, strings.Join(current, " "))
		current = nil
	}
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return paragraphs
}

package cli

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"passbook/extract"
)

var (
	errCaretStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	errContextStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#808080", Dark: "#808080"})
)

// positioned is satisfied by pipeline errors that know where in the source
// document they were triggered.
type positioned interface {
	Position() extract.Position
	Error() string
}

// ErrorRenderer renders pipeline errors with terminal styling and, when the
// error carries a position, the offending source line for context.
type ErrorRenderer struct {
	pages []string
}

// NewErrorRenderer creates a renderer over the analyzed document's pages.
func NewErrorRenderer(pages []string) *ErrorRenderer {
	return &ErrorRenderer{pages: pages}
}

// Render formats a single error with styling and context.
func (r *ErrorRenderer) Render(err error) string {
	if e, ok := err.(positioned); ok {
		return r.renderWithSourceContext(e.Position(), e.Error())
	}
	return err.Error()
}

// renderWithSourceContext shows the error message followed by the source
// line it points at, with a marker underneath.
func (r *ErrorRenderer) renderWithSourceContext(pos extract.Position, message string) string {
	line, ok := r.sourceLine(pos)
	if !ok {
		return message
	}

	var buf bytes.Buffer
	buf.WriteString(message)
	buf.WriteString("\n\n")

	prefix := fmt.Sprintf("  %d | ", pos.Line)
	buf.WriteString(errContextStyle.Render(prefix))
	buf.WriteString(line)
	buf.WriteString("\n")
	buf.WriteString(strings.Repeat(" ", len(prefix)))
	buf.WriteString(errCaretStyle.Render(strings.Repeat("^", max(1, len([]rune(line))))))

	return buf.String()
}

func (r *ErrorRenderer) sourceLine(pos extract.Position) (string, bool) {
	if pos.Page < 1 || pos.Page > len(r.pages) {
		return "", false
	}
	lines := strings.Split(r.pages[pos.Page-1], "\n")
	if pos.Line < 1 || pos.Line > len(lines) {
		return "", false
	}
	return lines[pos.Line-1], true
}

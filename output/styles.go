// Package output provides styling helpers for terminal output.
package output

import (
	"io"

	"github.com/muesli/termenv"
)

// Styles provides styled output helpers for reports and telemetry.
type Styles struct {
	output *termenv.Output
}

// NewStyles creates a new Styles instance for the given writer.
func NewStyles(w io.Writer) *Styles {
	return &Styles{
		output: termenv.NewOutput(w),
	}
}

// Success returns a styled success string (green + bold).
func (s *Styles) Success(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("2")).
		Bold().
		String()
}

// Error returns a styled error string (red + bold).
func (s *Styles) Error(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("1")).
		Bold().
		String()
}

// Heading returns a styled table heading (bold).
func (s *Styles) Heading(text string) string {
	return s.output.String(text).
		Bold().
		String()
}

// Amount returns a styled monetary amount (magenta).
func (s *Styles) Amount(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("5")).
		String()
}

// Category returns a styled category label (yellow).
func (s *Styles) Category(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("3")).
		String()
}

// Keyword returns a styled keyword (bold).
func (s *Styles) Keyword(text string) string {
	return s.output.String(text).
		Bold().
		String()
}

// Dim returns dimmed text for secondary information.
func (s *Styles) Dim(text string) string {
	return s.output.String(text).
		Faint().
		String()
}

// Warning returns a styled warning (yellow + bold).
func (s *Styles) Warning(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("3")).
		Bold().
		String()
}

// Timing returns a styled timing string. Slow operations are rendered as
// warnings, everything else is dimmed.
func (s *Styles) Timing(text string, slow bool) string {
	if slow {
		return s.Warning(text)
	}
	return s.Dim(text)
}

// Package markdown renders markdown for terminal output.
package markdown

import (
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const (
	defaultWidth = 100
	minWidth     = 40
)

// Width returns the usable terminal width, falling back to a fixed wrap
// width when stdout is not a terminal.
func Width() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultWidth
	}

	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultWidth
	}
	if w < minWidth {
		return minWidth
	}
	return min(w-2, defaultWidth)
}

// Render styles md with the dracula theme wrapped at width. A non-positive
// width selects Width().
func Render(md string, width int) (string, error) {
	if width <= 0 {
		width = Width()
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(width),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

// Plain renders md without colors, for pipes and tests.
func Plain(md string, width int) (string, error) {
	if width <= 0 {
		width = defaultWidth
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(width),
		glamour.WithColorProfile(termenv.Ascii),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

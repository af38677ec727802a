// Package view formats notes and graph results for terminal output.
package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/focusnest/internal/note"
)

const dateLayout = "2006-01-02 15:04"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#25A065")).
			Padding(0, 1)
	idStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("36")).Width(6)
	nameStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EE6FF8"))
)

// Heading writes a section title.
func Heading(w io.Writer, text string) {
	fmt.Fprintln(w, titleStyle.Render(text))
}

// Empty writes a dimmed placeholder line.
func Empty(w io.Writer, text string) {
	fmt.Fprintln(w, dimStyle.Render(text))
}

// NoteLine formats a single note as "#id  title  updated".
func NoteLine(n note.Note) string {
	parts := []string{
		idStyle.Render(fmt.Sprintf("#%d", n.ID)),
		nameStyle.Render(n.Title),
	}
	if !n.UpdatedAt.IsZero() {
		parts = append(parts, dimStyle.Render("updated "+n.UpdatedAt.Local().Format(dateLayout)))
	}
	return strings.Join(parts, "  ")
}

// Notes writes one line per note, or empty when there are none.
func Notes(w io.Writer, notes []note.Note, empty string) {
	if len(notes) == 0 {
		Empty(w, empty)
		return
	}
	for _, n := range notes {
		fmt.Fprintln(w, NoteLine(n))
	}
}

// IDs writes the notes behind ids, in order. Unknown IDs are printed bare.
func IDs(w io.Writer, ids []int64, byID map[int64]note.Note, empty string) {
	if len(ids) == 0 {
		Empty(w, empty)
		return
	}
	for _, id := range ids {
		if n, ok := byID[id]; ok {
			fmt.Fprintln(w, NoteLine(n))
			continue
		}
		fmt.Fprintln(w, idStyle.Render(fmt.Sprintf("#%d", id)))
	}
}

// Scored writes a note with a trailing score.
func Scored(w io.Writer, n note.Note, score string) {
	fmt.Fprintf(w, "%s  %s\n", NoteLine(n), accentStyle.Render(score))
}

// Tags formats tag names as a comma separated list.
func Tags(tags []note.Tag) string {
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.Name
	}
	return accentStyle.Render(strings.Join(names, ", "))
}

package fzf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/Paintersrp/focusnest/internal/markdown"
	"github.com/Paintersrp/focusnest/internal/note"
	"github.com/Paintersrp/focusnest/internal/parser"
)

// ErrAbort is returned when the user closes the finder without a selection.
var ErrAbort = fuzzyfinder.ErrAbort

// FuzzyFinder picks a note by title with a rendered preview of its content.
type FuzzyFinder struct {
	Header string
	notes  []note.Note
	tags   map[int64][]string
	titles note.TitleIndex
	lines  []string
}

// NewFuzzyFinder builds a finder over notes. tags is optional and keyed by
// note ID.
func NewFuzzyFinder(notes []note.Note, tags map[int64][]string, header string) *FuzzyFinder {
	f := &FuzzyFinder{
		Header: header,
		notes:  notes,
		tags:   tags,
		titles: note.IndexTitles(notes),
	}

	f.lines = make([]string, len(notes))
	for i, n := range notes {
		f.lines[i] = DisplayLine(n, tags[n.ID])
	}
	return f
}

// DisplayLine formats a note for the finder list.
func DisplayLine(n note.Note, tags []string) string {
	if len(tags) == 0 {
		return fmt.Sprintf("%s [No tags] ", n.Title)
	}
	return fmt.Sprintf("%s [Tags: %s] ", n.Title, strings.Join(tags, ", "))
}

// Run opens the finder with an optional initial query.
func (f *FuzzyFinder) Run(query string) (note.Note, error) {
	if len(f.notes) == 0 {
		return note.Note{}, errors.New("no notes to select from")
	}

	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(f.renderPreview),
	}
	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}
	if f.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.Header))
	}

	idx, err := fuzzyfinder.Find(f.notes, func(i int) string {
		return f.lines[i]
	}, options...)
	if err != nil {
		return note.Note{}, err
	}
	return f.notes[idx], nil
}

func (f *FuzzyFinder) renderPreview(i, w, _ int) string {
	if i < 0 || i >= len(f.notes) {
		return ""
	}

	n := f.notes[i]
	body := "# " + n.Title + "\n\n" + parser.RenderTerminal(n.Content, f.titles)

	width := w - 4
	if width < 20 {
		width = 20
	}
	out, err := markdown.Render(body, width)
	if err != nil {
		return "Error rendering markdown"
	}
	return out
}

package fzf

import (
	"strings"
	"testing"

	"github.com/Paintersrp/focusnest/internal/note"
)

func TestDisplayLine(t *testing.T) {
	n := note.Note{ID: 1, Title: "Graph Theory"}

	if got := DisplayLine(n, nil); got != "Graph Theory [No tags] " {
		t.Fatalf("unexpected untagged line %q", got)
	}
	if got := DisplayLine(n, []string{"math", "cs"}); got != "Graph Theory [Tags: math, cs] " {
		t.Fatalf("unexpected tagged line %q", got)
	}
}

func TestPreviewResolvesLinks(t *testing.T) {
	notes := []note.Note{
		{ID: 1, Title: "Alpha", Content: "see [[Beta]] and [[Gamma]]"},
		{ID: 2, Title: "Beta"},
	}
	f := NewFuzzyFinder(notes, map[int64][]string{1: {"start"}}, "")

	if f.lines[0] != "Alpha [Tags: start] " {
		t.Fatalf("unexpected display line %q", f.lines[0])
	}

	out := f.renderPreview(0, 80, 20)
	if !strings.Contains(out, "Beta") || !strings.Contains(out, "Gamma") {
		t.Fatalf("expected preview to mark links, got %q", out)
	}
	if f.renderPreview(-1, 80, 20) != "" {
		t.Fatal("expected empty preview for no selection")
	}
}

func TestRunWithoutNotes(t *testing.T) {
	if _, err := NewFuzzyFinder(nil, nil, "").Run(""); err == nil {
		t.Fatal("expected error for empty finder")
	}
}

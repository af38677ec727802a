package search

import (
	"errors"
	"strings"
	"testing"

	searchpkg "github.com/Paintersrp/focusnest/internal/search"
	"github.com/Paintersrp/focusnest/pkg/cmd/cmdtest"
)

func TestSearchListsTitleMatchesFirst(t *testing.T) {
	s := cmdtest.NewState(t)
	cmdtest.Seed(t, s,
		"Cooking", "a note about graphs in the kitchen",
		"Graph Theory", "vertices and edges",
	)

	out, err := cmdtest.Run(NewCmdSearch(s), "graph")
	if err != nil {
		t.Fatalf("search returned error: %v", err)
	}

	title := strings.Index(out, "Graph Theory")
	content := strings.Index(out, "Cooking")
	if title < 0 || content < 0 || title > content {
		t.Fatalf("expected title match before content match, got %q", out)
	}
	if !strings.Contains(out, "graphs in the kitchen") {
		t.Fatalf("expected content snippet, got %q", out)
	}
}

func TestSearchLimitAndJSON(t *testing.T) {
	s := cmdtest.NewState(t)
	cmdtest.Seed(t, s, "Alpha one", "", "Alpha two", "", "Alpha three", "")

	out, err := cmdtest.Run(NewCmdSearch(s), "alpha", "--limit", "1", "--json")
	if err != nil {
		t.Fatalf("search returned error: %v", err)
	}
	if !strings.Contains(out, `"total": 3`) {
		t.Fatalf("expected total of 3, got %q", out)
	}
}

func TestSearchRejectsShortTerm(t *testing.T) {
	s := cmdtest.NewState(t)

	_, err := cmdtest.Run(NewCmdSearch(s), "a")
	if !errors.Is(err, searchpkg.ErrQueryTooShort) {
		t.Fatalf("expected ErrQueryTooShort, got %v", err)
	}
}

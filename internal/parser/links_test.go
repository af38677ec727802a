package parser

import (
	"reflect"
	"strings"
	"testing"

	"github.com/Paintersrp/focusnest/internal/note"
)

func TestExtractTitlesDeduplicates(t *testing.T) {
	t.Parallel()

	got := ExtractTitles("See [[Alpha]] and [[Beta]] and [[Alpha]]")
	want := []string{"Alpha", "Beta"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected titles: got %#v want %#v", got, want)
	}
}

func TestExtractTitlesEdgeCases(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "empty", content: "", want: []string{}},
		{name: "no links", content: "plain text only", want: []string{}},
		{name: "unterminated", content: "broken [[Alpha and more", want: []string{}},
		{name: "single close", content: "[[Alpha] still open", want: []string{}},
		{name: "empty brackets", content: "[[]]", want: []string{}},
		{name: "verbatim whitespace", content: "[[ Alpha ]]", want: []string{" Alpha "}},
		{name: "nested open", content: "[[Gamma]] then [[broken and [[Delta]]", want: []string{"Gamma", "broken and [[Delta"}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ExtractTitles(tc.content)
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ExtractTitles(%q) = %#v, want %#v", tc.content, got, tc.want)
			}
		})
	}
}

func TestResolveDropsMissingAndBlankTitles(t *testing.T) {
	t.Parallel()

	idx := note.TitleIndex{"Alpha": 5, "Beta": 2}
	got := Resolve([]string{" Alpha ", "Missing", "   ", "Beta", "alpha"}, idx)
	want := []int64{2, 5}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected resolution: got %v want %v", got, want)
	}
}

func TestResolveContentDeduplicatesTargets(t *testing.T) {
	t.Parallel()

	idx := note.TitleIndex{"Alpha": 7}
	got := ResolveContent("[[Alpha]] [[ Alpha]] [[Alpha ]]", idx)
	if !reflect.DeepEqual(got, []int64{7}) {
		t.Fatalf("expected a single resolved id, got %v", got)
	}
}

func TestRenderMarksResolvedAndBrokenLinks(t *testing.T) {
	t.Parallel()

	idx := note.TitleIndex{"Alpha": 5}
	got := Render("[[Alpha]] [[Beta]]", idx)

	if !strings.Contains(got, `data-note-id="5"`) {
		t.Fatalf("expected resolved marker for Alpha, got %q", got)
	}
	if !strings.Contains(got, `<span class="broken-link">Beta (not found)</span>`) {
		t.Fatalf("expected broken marker for Beta, got %q", got)
	}
	if strings.Index(got, "Alpha") > strings.Index(got, "Beta") {
		t.Fatalf("expected segment order to be preserved, got %q", got)
	}
}

func TestRenderPreservesSurroundingText(t *testing.T) {
	t.Parallel()

	idx := note.TitleIndex{"Alpha": 1}
	got := Render("before [[Alpha]] middle [[Nope after", idx)
	want := `before <a href="#" class="note-link" data-note-id="1">Alpha</a> middle [[Nope after`
	if got != want {
		t.Fatalf("unexpected render:\n got %q\nwant %q", got, want)
	}
}

func TestSegmentsReassembleContent(t *testing.T) {
	t.Parallel()

	content := "a [[One]] b [[Two]] c"
	var sb strings.Builder
	for _, seg := range Segments(content, note.TitleIndex{"One": 1}) {
		sb.WriteString(seg.Text)
	}
	if sb.String() != content {
		t.Fatalf("segments did not reassemble content: %q", sb.String())
	}
}

func TestRenderHTMLKeepsLinkMarkers(t *testing.T) {
	t.Parallel()

	out, err := RenderHTML("# Heading\n\nSee [[Alpha]]", note.TitleIndex{"Alpha": 3})
	if err != nil {
		t.Fatalf("RenderHTML returned error: %v", err)
	}
	if !strings.Contains(out, "<h1>Heading</h1>") {
		t.Fatalf("expected heading to render, got %q", out)
	}
	if !strings.Contains(out, `data-note-id="3"`) {
		t.Fatalf("expected link marker to survive markdown rendering, got %q", out)
	}
}

func TestRenderTerminal(t *testing.T) {
	t.Parallel()

	got := RenderTerminal("[[Alpha]] and [[Beta]]", note.TitleIndex{"Alpha": 9})
	want := "**Alpha** (#9) and ~~Beta~~ (not found)"
	if got != want {
		t.Fatalf("unexpected terminal render: got %q want %q", got, want)
	}
}

package parser

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/Paintersrp/focusnest/internal/note"
)

// SegmentKind classifies a piece of rendered content.
type SegmentKind int

const (
	// SegmentText is plain content outside of any wiki-link.
	SegmentText SegmentKind = iota
	// SegmentLink is a wiki-link that resolved to a note.
	SegmentLink
	// SegmentBroken is a wiki-link whose title matched no note.
	SegmentBroken
)

// Segment is a contiguous piece of note content. Link segments carry the
// trimmed title and, when resolved, the target note ID.
type Segment struct {
	Kind   SegmentKind
	Text   string
	Title  string
	NoteID int64
}

// Segments splits content into ordered text and link segments. Concatenating
// the Text of every segment reproduces the original content.
func Segments(content string, idx note.TitleIndex) []Segment {
	matches := linkPattern.FindAllStringSubmatchIndex(content, -1)
	segments := make([]Segment, 0, len(matches)*2+1)

	last := 0
	for _, loc := range matches {
		if loc[0] > last {
			segments = append(segments, Segment{Kind: SegmentText, Text: content[last:loc[0]]})
		}

		title := strings.TrimSpace(content[loc[2]:loc[3]])
		seg := Segment{Kind: SegmentBroken, Text: content[loc[0]:loc[1]], Title: title}
		if id, ok := idx.Lookup(title); ok {
			seg.Kind = SegmentLink
			seg.NoteID = id
		}
		segments = append(segments, seg)
		last = loc[1]
	}

	if last < len(content) {
		segments = append(segments, Segment{Kind: SegmentText, Text: content[last:]})
	}
	return segments
}

// Render converts wiki-links into clickable note references. Resolved links
// become anchors annotated with the target note ID; unresolved links become
// broken-link markers. Everything else is preserved verbatim.
func Render(content string, idx note.TitleIndex) string {
	var sb strings.Builder
	sb.Grow(len(content))

	for _, seg := range Segments(content, idx) {
		switch seg.Kind {
		case SegmentLink:
			fmt.Fprintf(
				&sb,
				`<a href="#" class="note-link" data-note-id="%d">%s</a>`,
				seg.NoteID,
				html.EscapeString(seg.Title),
			)
		case SegmentBroken:
			fmt.Fprintf(
				&sb,
				`<span class="broken-link">%s (not found)</span>`,
				html.EscapeString(seg.Title),
			)
		default:
			sb.WriteString(seg.Text)
		}
	}
	return sb.String()
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(goldhtml.WithUnsafe()),
)

// RenderHTML renders links like Render and then converts the Markdown body
// to HTML. Raw HTML is allowed through so the link markers survive.
func RenderHTML(content string, idx note.TitleIndex) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(Render(content, idx)), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

// RenderTerminal replaces wiki-links with Markdown emphasis suitable for a
// terminal renderer. Resolved links are bolded and suffixed with their note
// ID; broken links are struck through.
func RenderTerminal(content string, idx note.TitleIndex) string {
	var sb strings.Builder
	sb.Grow(len(content))

	for _, seg := range Segments(content, idx) {
		switch seg.Kind {
		case SegmentLink:
			fmt.Fprintf(&sb, "**%s** (#%d)", seg.Title, seg.NoteID)
		case SegmentBroken:
			fmt.Fprintf(&sb, "~~%s~~ (not found)", seg.Title)
		default:
			sb.WriteString(seg.Text)
		}
	}
	return sb.String()
}

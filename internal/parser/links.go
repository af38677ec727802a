// Package parser extracts, resolves, and renders [[Title]] wiki-links
// embedded in note content.
package parser

import (
	"regexp"
	"sort"

	"github.com/Paintersrp/focusnest/internal/note"
)

// linkPattern matches a double-bracketed title containing at least one
// non-closing-bracket character.
var linkPattern = regexp.MustCompile(`\[\[([^\]]+)\]\]`)

// ExtractTitles returns the distinct link titles referenced in content. The
// captured text is returned verbatim; trimming happens at resolution time.
func ExtractTitles(content string) []string {
	if content == "" {
		return []string{}
	}

	seen := make(map[string]struct{})
	for _, match := range linkPattern.FindAllStringSubmatch(content, -1) {
		if len(match) > 1 {
			seen[match[1]] = struct{}{}
		}
	}

	titles := make([]string, 0, len(seen))
	for title := range seen {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	return titles
}

// Resolve maps link titles to note IDs using exact, case-sensitive title
// matches. Titles without a matching note are dropped. The returned IDs are
// unique and ascending.
func Resolve(titles []string, idx note.TitleIndex) []int64 {
	seen := make(map[int64]struct{}, len(titles))
	ids := make([]int64, 0, len(titles))
	for _, title := range titles {
		id, ok := idx.Lookup(title)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return note.SortIDs(ids)
}

// ResolveContent extracts and resolves the links embedded in content.
func ResolveContent(content string, idx note.TitleIndex) []int64 {
	return Resolve(ExtractTitles(content), idx)
}

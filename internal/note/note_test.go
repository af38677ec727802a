package note

import (
	"reflect"
	"testing"
)

func TestTitleIndexLookupTrimsAndRejectsBlank(t *testing.T) {
	t.Parallel()

	idx := IndexTitles([]Note{{ID: 1, Title: "Alpha"}, {ID: 2, Title: "Beta"}})

	if id, ok := idx.Lookup("  Alpha "); !ok || id != 1 {
		t.Fatalf("expected Alpha to resolve to 1, got %d (ok=%v)", id, ok)
	}
	if _, ok := idx.Lookup("alpha"); ok {
		t.Fatalf("expected lookup to be case-sensitive")
	}
	if _, ok := idx.Lookup("   "); ok {
		t.Fatalf("expected whitespace-only title to resolve to nothing")
	}
}

func TestLinkCountsIncludesBothDirections(t *testing.T) {
	t.Parallel()

	counts := LinkCounts([]Link{
		{FromNoteID: 1, ToNoteID: 2},
		{FromNoteID: 3, ToNoteID: 1},
		{FromNoteID: 1, ToNoteID: 2},
		{FromNoteID: 4, ToNoteID: 4},
		{FromNoteID: 3, ToNoteID: 3},
	})

	want := map[int64]int{1: 3, 2: 2, 3: 1}
	if !reflect.DeepEqual(counts, want) {
		t.Fatalf("unexpected counts: got %v want %v", counts, want)
	}
}

func TestLinkSelfReferencing(t *testing.T) {
	t.Parallel()

	if !(Link{FromNoteID: 4, ToNoteID: 4}).SelfReferencing() {
		t.Fatalf("expected self link to be detected")
	}
	if (Link{FromNoteID: 4, ToNoteID: 5}).SelfReferencing() {
		t.Fatalf("expected regular link not to be self referencing")
	}
}

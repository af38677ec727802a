package tags

import (
	"strings"
	"testing"

	"github.com/Paintersrp/focusnest/pkg/cmd/cmdtest"
)

func TestTagsListAndAdd(t *testing.T) {
	s := cmdtest.NewState(t)
	cmdtest.Seed(t, s, "Alpha", "")

	out, err := cmdtest.Run(NewCmdTags(s), "Alpha")
	if err != nil || !strings.Contains(out, "Alpha has no tags.") {
		t.Fatalf("unexpected empty listing %q, %v", out, err)
	}

	out, err = cmdtest.Run(NewCmdTags(s), "1", "study, math")
	if err != nil {
		t.Fatalf("tags returned error: %v", err)
	}
	if !strings.Contains(out, "math, study") {
		t.Fatalf("expected sorted tags, got %q", out)
	}
}

func TestTagsRequiresNote(t *testing.T) {
	s := cmdtest.NewState(t)

	if _, err := cmdtest.Run(NewCmdTags(s)); err == nil {
		t.Fatal("expected an error when no note is given")
	}
	if _, err := cmdtest.Run(NewCmdTags(s), "Missing"); err == nil {
		t.Fatal("expected an error for an unknown note")
	}
	if _, err := cmdtest.Run(NewCmdTags(s), "Missing", "bad#tag"); err == nil {
		t.Fatal("expected an error for an invalid tag")
	}
}

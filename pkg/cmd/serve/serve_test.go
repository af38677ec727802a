package serve

import (
	"testing"

	"github.com/Paintersrp/focusnest/internal/server"
	"github.com/Paintersrp/focusnest/pkg/cmd/cmdtest"
)

func TestLimitsFollowConfig(t *testing.T) {
	s := cmdtest.NewState(t)
	s.Config.Graph.CentralLimit = 4
	s.Config.Resurface.DailyCount = 9
	s.Config.Search.Limit = 7

	got := Limits(s)
	if got.Central != 4 || got.Daily != 9 || got.Search != 7 {
		t.Fatalf("unexpected limits %+v", got)
	}
	if got.ListNotes != server.DefaultLimits().ListNotes || !got.ExcludeRecent {
		t.Fatalf("expected untouched defaults, got %+v", got)
	}
}

func TestLimitsWithoutConfig(t *testing.T) {
	if got := Limits(nil); got != server.DefaultLimits() {
		t.Fatalf("expected defaults, got %+v", got)
	}
}

func TestServeRejectsArgs(t *testing.T) {
	s := cmdtest.NewState(t)
	if _, err := cmdtest.Run(NewCmdServe(s), "extra"); err == nil {
		t.Fatal("expected an error for unexpected arguments")
	}
}

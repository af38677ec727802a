package graph

import (
	"encoding/json"
	"strings"
	"testing"

	graphpkg "github.com/Paintersrp/focusnest/internal/graph"
	"github.com/Paintersrp/focusnest/internal/state"
	"github.com/Paintersrp/focusnest/pkg/cmd/cmdtest"
)

func seeded(t *testing.T) *state.State {
	t.Helper()

	s := cmdtest.NewState(t)
	// Hub links to Left and Right; Lonely has no links.
	cmdtest.Seed(t, s,
		"Left", "",
		"Right", "",
		"Lonely", "",
		"Hub", "[[Left]] and [[Right]]",
	)
	return s
}

func TestGraphData(t *testing.T) {
	s := seeded(t)

	out, err := cmdtest.Run(NewCmdGraph(s), "data")
	if err != nil {
		t.Fatalf("graph data returned error: %v", err)
	}

	var data graphpkg.Data
	if err := json.Unmarshal([]byte(out), &data); err != nil {
		t.Fatalf("decode graph data: %v\n%s", err, out)
	}
	if len(data.Nodes) != 4 || len(data.Links) != 2 {
		t.Fatalf("unexpected graph data: %+v", data)
	}
}

func TestGraphNeighborsAndOrphans(t *testing.T) {
	s := seeded(t)

	out, err := cmdtest.Run(NewCmdGraph(s), "neighbors", "Hub")
	if err != nil {
		t.Fatalf("neighbors returned error: %v", err)
	}
	if !strings.Contains(out, "Left") || !strings.Contains(out, "Right") || strings.Contains(out, "Lonely") {
		t.Fatalf("unexpected neighbors output %q", out)
	}

	out, err = cmdtest.Run(NewCmdGraph(s), "orphans")
	if err != nil {
		t.Fatalf("orphans returned error: %v", err)
	}
	if !strings.Contains(out, "Lonely") || strings.Contains(out, "Left") {
		t.Fatalf("unexpected orphans output %q", out)
	}
}

func TestGraphCentralRanksHubFirst(t *testing.T) {
	s := seeded(t)

	out, err := cmdtest.Run(NewCmdGraph(s), "central", "--limit", "2")
	if err != nil {
		t.Fatalf("central returned error: %v", err)
	}

	hub := strings.Index(out, "Hub")
	left := strings.Index(out, "Left")
	if hub < 0 || left < 0 || hub > left {
		t.Fatalf("expected Hub ranked before Left, got %q", out)
	}
	if strings.Contains(out, "Right") {
		t.Fatalf("expected limit to cut Right, got %q", out)
	}
}

func TestGraphSuggest(t *testing.T) {
	s := seeded(t)

	out, err := cmdtest.Run(NewCmdGraph(s), "suggest", "Left")
	if err != nil {
		t.Fatalf("suggest returned error: %v", err)
	}
	if !strings.Contains(out, "Right") {
		t.Fatalf("expected Right suggested for Left, got %q", out)
	}

	if _, err := cmdtest.Run(NewCmdGraph(s), "suggest", "Nope"); err == nil {
		t.Fatal("expected error for unknown note")
	}
}

package review

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/Paintersrp/focusnest/internal/note"
	"github.com/Paintersrp/focusnest/internal/state"
	"github.com/Paintersrp/focusnest/pkg/cmd/cmdtest"
)

func seeded(t *testing.T) *state.State {
	t.Helper()

	s := cmdtest.NewState(t)
	cmdtest.Seed(t, s,
		"Left", "",
		"Right", "",
		"Lonely", "",
		"Hub", "[[Left]] and [[Right]]",
	)
	return s
}

func TestDailyHonorsNow(t *testing.T) {
	s := seeded(t)

	out, err := cmdtest.Run(NewCmdReview(s), "daily")
	if err != nil {
		t.Fatalf("daily returned error: %v", err)
	}
	if !strings.Contains(out, "Nothing is stale yet.") {
		t.Fatalf("expected nothing stale for fresh notes, got %q", out)
	}

	out, err = cmdtest.Run(NewCmdReview(s), "daily", "--now", "2100-01-01", "--count", "10")
	if err != nil {
		t.Fatalf("daily returned error: %v", err)
	}
	for _, title := range []string{"Left", "Right", "Lonely", "Hub"} {
		if !strings.Contains(out, title) {
			t.Fatalf("expected %s in daily picks, got %q", title, out)
		}
	}
	if !strings.Contains(out, "monthly") {
		t.Fatalf("expected staleness bucket, got %q", out)
	}
}

func TestDailySeedIsRepeatable(t *testing.T) {
	for _, seed := range []string{"11", "0"} {
		t.Run("seed "+seed, func(t *testing.T) {
			assertRepeatableDaily(t, seed)
		})
	}
}

func assertRepeatableDaily(t *testing.T, seed string) {
	t.Helper()

	s := seeded(t)
	args := []string{"daily", "--now", "2100-01-01", "--count", "2", "--seed", seed, "--json"}

	first, err := cmdtest.Run(NewCmdReview(s), args...)
	if err != nil {
		t.Fatalf("daily returned error: %v", err)
	}
	second, err := cmdtest.Run(NewCmdReview(s), args...)
	if err != nil {
		t.Fatalf("daily returned error: %v", err)
	}
	if first != second {
		t.Fatalf("expected identical picks for the same seed:\n%s\n%s", first, second)
	}

	var decoded map[string][]note.Note
	if err := json.Unmarshal([]byte(first), &decoded); err != nil {
		t.Fatalf("decode picks: %v", err)
	}
	if len(decoded["suggestions"]) != 2 {
		t.Fatalf("expected two picks, got %+v", decoded)
	}
}

func TestRandomExcludesRecentByDefault(t *testing.T) {
	s := seeded(t)

	out, err := cmdtest.Run(NewCmdReview(s), "random")
	if err != nil {
		t.Fatalf("random returned error: %v", err)
	}
	if !strings.Contains(out, "No notes to pick from.") {
		t.Fatalf("expected recent notes excluded, got %q", out)
	}

	out, err = cmdtest.Run(NewCmdReview(s), "random", "--include-recent", "--seed", "3")
	if err != nil {
		t.Fatalf("random returned error: %v", err)
	}
	if !strings.Contains(out, "#") {
		t.Fatalf("expected a pick, got %q", out)
	}
}

func TestContextAndOrphans(t *testing.T) {
	s := seeded(t)

	out, err := cmdtest.Run(NewCmdReview(s), "context", "Hub")
	if err != nil {
		t.Fatalf("context returned error: %v", err)
	}
	if !strings.Contains(out, "Left") || !strings.Contains(out, "Right") || strings.Contains(out, "Lonely") {
		t.Fatalf("unexpected context picks %q", out)
	}

	out, err = cmdtest.Run(NewCmdReview(s), "orphans")
	if err != nil {
		t.Fatalf("orphans returned error: %v", err)
	}
	if !strings.Contains(out, "Lonely") || strings.Contains(out, "Left") {
		t.Fatalf("unexpected orphan picks %q", out)
	}
}

func TestInvalidNow(t *testing.T) {
	s := seeded(t)

	if _, err := cmdtest.Run(NewCmdReview(s), "daily", "--now", "someday maybe"); err == nil {
		t.Fatal("expected error for unparsable --now")
	}
}

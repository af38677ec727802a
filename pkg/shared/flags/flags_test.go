package flags

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
)

func TestHandleNow(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	AddNow(cmd)

	got, err := HandleNow(cmd)
	if err != nil || !got.IsZero() {
		t.Fatalf("expected zero time for unset flag, got %v, %v", got, err)
	}

	if err := cmd.Flags().Set("now", "2024-05-01"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	got, err = HandleNow(cmd)
	if err != nil {
		t.Fatalf("HandleNow returned error: %v", err)
	}
	if want := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("HandleNow = %v, want %v", got, want)
	}
}

func TestParseTimeRejectsGarbage(t *testing.T) {
	if _, err := ParseTime("not a date at all"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestBoolFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	AddYes(cmd)
	AddCopy(cmd)
	AddSeed(cmd)

	if err := cmd.Flags().Parse([]string{"--yes", "--seed", "42"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	yes, _ := HandleYes(cmd)
	copyOut, _ := HandleCopy(cmd)
	seed, _, _ := HandleSeed(cmd)
	if !yes || copyOut || seed != 42 {
		t.Fatalf("unexpected flag values yes=%v copy=%v seed=%d", yes, copyOut, seed)
	}
}

func TestHandleSeedReportsZeroAsSet(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	AddSeed(cmd)

	if _, set, _ := HandleSeed(cmd); set {
		t.Fatal("expected seed to be unset before parsing")
	}
	if err := cmd.Flags().Parse([]string{"--seed", "0"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	seed, set, err := HandleSeed(cmd)
	if err != nil || !set || seed != 0 {
		t.Fatalf("expected explicit zero seed, got seed=%d set=%v err=%v", seed, set, err)
	}
}

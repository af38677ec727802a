// Package cmdtest builds connected states and runs commands for CLI tests.
package cmdtest

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/focusnest/internal/config"
	indexsvc "github.com/Paintersrp/focusnest/internal/services/index"
	"github.com/Paintersrp/focusnest/internal/state"
	"github.com/Paintersrp/focusnest/internal/store"
)

// NewState opens a temporary sqlite store and wires the services around it.
// The index is rebuilt on every query.
func NewState(t *testing.T, opts ...indexsvc.Option) *state.State {
	t.Helper()

	home := t.TempDir()
	st, err := store.Open(context.Background(), store.Config{
		Driver: store.DriverSQLite,
		DSN:    filepath.Join(home, "focusnest.db"),
	})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	s := state.NewWithStore(config.Default(home), st, append([]indexsvc.Option{indexsvc.WithMaxAge(0)}, opts...)...)
	s.Home = home
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// Seed creates notes in order, given as title and content pairs.
func Seed(t *testing.T, s *state.State, pairs ...string) {
	t.Helper()

	if len(pairs)%2 != 0 {
		t.Fatalf("Seed needs title/content pairs, got %d values", len(pairs))
	}
	for i := 0; i < len(pairs); i += 2 {
		if _, err := s.Notes.Create(context.Background(), pairs[i], pairs[i+1]); err != nil {
			t.Fatalf("seed note %q: %v", pairs[i], err)
		}
	}
}

// Run executes cmd with args and returns its combined output.
func Run(cmd *cobra.Command, args ...string) (string, error) {
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(""))
	cmd.SilenceUsage = true
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

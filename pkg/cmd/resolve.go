package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/focusnest/internal/note"
	"github.com/Paintersrp/focusnest/internal/state"
	"github.com/Paintersrp/focusnest/internal/store"
)

// Connect opens the store behind s using the command's context.
func Connect(cmd *cobra.Command, s *state.State) error {
	if s == nil {
		return errors.New("state is not initialized")
	}
	return s.Connect(Context(cmd))
}

// Context returns the command context, or a background context for commands
// executed without one.
func Context(cmd *cobra.Command) context.Context {
	if cmd != nil && cmd.Context() != nil {
		return cmd.Context()
	}
	return context.Background()
}

// ResolveNote finds a note by numeric ID or, failing that, by exact title.
func ResolveNote(cmd *cobra.Command, s *state.State, arg string) (note.Note, error) {
	if err := Connect(cmd, s); err != nil {
		return note.Note{}, err
	}

	arg = strings.TrimSpace(arg)
	if arg == "" {
		return note.Note{}, errors.New("a note id or title is required")
	}

	ctx := Context(cmd)
	if id, err := strconv.ParseInt(arg, 10, 64); err == nil {
		n, err := s.Notes.Get(ctx, id)
		if err == nil {
			return n, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return note.Note{}, err
		}
	}

	n, err := s.Notes.FindByTitle(ctx, arg)
	if errors.Is(err, store.ErrNotFound) {
		return note.Note{}, fmt.Errorf("note %q not found", arg)
	}
	return n, err
}

// ParseID parses a positive note ID argument.
func ParseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid note id %q", arg)
	}
	return id, nil
}

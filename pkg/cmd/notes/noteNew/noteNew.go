package noteNew

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/focusnest/internal/state"
	cmdpkg "github.com/Paintersrp/focusnest/pkg/cmd"
	"github.com/Paintersrp/focusnest/pkg/shared/arg"
	"github.com/Paintersrp/focusnest/pkg/shared/view"
)

func NewCmdNoteNew(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "new [title] [tags] [content]",
		Aliases: []string{"add", "create"},
		Short:   "Create a new note.",
		Long: heredoc.Doc(`
			Creates a note with the given title. Tags are separated by spaces
			or commas. Everything after the tags becomes the note content, and
			any [[Title]] links in it are resolved immediately.

			Examples:
			  focusnest note new "Graph Theory"
			  focusnest note new "Graph Theory" "math study" "Builds on [[Set Theory]]"
		`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, s)
		},
	}

	return cmd
}

func run(cmd *cobra.Command, args []string, s *state.State) error {
	tags, err := arg.HandleTags(args)
	if err != nil {
		return err
	}
	if err := cmdpkg.Connect(cmd, s); err != nil {
		return err
	}

	ctx := cmdpkg.Context(cmd)
	n, err := s.Notes.Create(ctx, args[0], arg.HandleContent(args))
	if err != nil {
		return err
	}

	for _, tag := range tags {
		if _, err := s.Notes.AddTag(ctx, n.ID, tag); err != nil {
			return fmt.Errorf("tag note %d: %w", n.ID, err)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Created "+view.NoteLine(n))
	return nil
}

package noteShow

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/focusnest/internal/markdown"
	"github.com/Paintersrp/focusnest/internal/state"
	cmdpkg "github.com/Paintersrp/focusnest/pkg/cmd"
	"github.com/Paintersrp/focusnest/pkg/shared/view"
)

func NewCmdNoteShow(s *state.State) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:     "show [id|title]",
		Aliases: []string{"view", "cat"},
		Short:   "Display a note with its links resolved.",
		Long: heredoc.Doc(`
			Renders a note in the terminal. Resolved links are shown in bold
			with the ID of the note they point at; links to titles that do not
			exist are struck through.

			Examples:
			  focusnest note show 12
			  focusnest note show "Graph Theory" --plain
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], plain, s)
		},
	}

	cmd.Flags().BoolVarP(&plain, "plain", "p", false, "Render without colors.")
	return cmd
}

func run(cmd *cobra.Command, target string, plain bool, s *state.State) error {
	n, err := cmdpkg.ResolveNote(cmd, s, target)
	if err != nil {
		return err
	}

	ctx := cmdpkg.Context(cmd)
	body, err := s.Notes.RenderTerminal(ctx, n.ID)
	if err != nil {
		return err
	}
	tags, err := s.Notes.Tags(ctx, n.ID)
	if err != nil {
		return err
	}

	md := "# " + n.Title + "\n\n" + body
	var out string
	if plain {
		out, err = markdown.Plain(md, 0)
	} else {
		out, err = markdown.Render(md, 0)
	}
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprint(w, out)
	if len(tags) > 0 {
		fmt.Fprintln(w, "Tags: "+view.Tags(tags))
	}
	return nil
}

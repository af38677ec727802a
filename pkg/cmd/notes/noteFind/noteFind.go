package noteFind

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/focusnest/internal/fzf"
	"github.com/Paintersrp/focusnest/internal/state"
	cmdpkg "github.com/Paintersrp/focusnest/pkg/cmd"
	"github.com/Paintersrp/focusnest/pkg/shared/view"
)

func NewCmdNoteFind(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "find [query]",
		Aliases: []string{"f", "fzf"},
		Short:   "Fuzzy find a note by title with a rendered preview.",
		Long: heredoc.Doc(`
			Opens a fuzzy finder over every note title. The preview pane shows
			the rendered note with its links resolved. The selected note is
			printed on exit.

			Examples:
			  focusnest note find
			  focusnest note find graph
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmdpkg.Connect(cmd, s); err != nil {
				return err
			}

			ctx := cmdpkg.Context(cmd)
			all, err := s.Notes.List(ctx, 0, 0)
			if err != nil {
				return err
			}

			tags := make(map[int64][]string, len(all))
			for _, n := range all {
				ts, err := s.Notes.Tags(ctx, n.ID)
				if err != nil {
					return err
				}
				for _, t := range ts {
					tags[n.ID] = append(tags[n.ID], t.Name)
				}
			}

			finder := fzf.NewFuzzyFinder(all, tags, "Find a note")
			selected, err := finder.Run(strings.Join(args, " "))
			if errors.Is(err, fzf.ErrAbort) {
				fmt.Fprintln(cmd.ErrOrStderr(), "No note selected")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), view.NoteLine(selected))
			return nil
		},
	}

	return cmd
}

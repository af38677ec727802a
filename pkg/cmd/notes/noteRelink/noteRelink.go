package noteRelink

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/focusnest/internal/state"
	cmdpkg "github.com/Paintersrp/focusnest/pkg/cmd"
)

func NewCmdNoteRelink(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relink",
		Short: "Recompute the links of every note.",
		Long: heredoc.Doc(`
			Links are resolved when a note is saved, so a note that mentions a
			title before that note exists keeps a broken link. relink resolves
			the content of every note again against the current titles.
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmdpkg.Connect(cmd, s); err != nil {
				return err
			}

			count, err := s.Notes.Relink(cmdpkg.Context(cmd))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Relinked %d notes\n", count)
			return nil
		},
	}

	return cmd
}

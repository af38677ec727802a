package noteList

import (
	"github.com/spf13/cobra"

	"github.com/Paintersrp/focusnest/internal/state"
	cmdpkg "github.com/Paintersrp/focusnest/pkg/cmd"
	"github.com/Paintersrp/focusnest/pkg/shared/view"
)

func NewCmdNoteList(s *state.State) *cobra.Command {
	var limit, offset int

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List notes, most recently updated first.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmdpkg.Connect(cmd, s); err != nil {
				return err
			}

			notes, err := s.Notes.List(cmdpkg.Context(cmd), limit, offset)
			if err != nil {
				return err
			}
			view.Notes(cmd.OutOrStdout(), notes, "No notes yet. Create one with `focusnest note new`.")
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 100, "Maximum number of notes to list (0 for all).")
	cmd.Flags().IntVar(&offset, "offset", 0, "Number of notes to skip.")
	return cmd
}

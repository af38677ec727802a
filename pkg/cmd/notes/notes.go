package notes

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/focusnest/internal/state"
	"github.com/Paintersrp/focusnest/pkg/cmd/notes/noteDelete"
	"github.com/Paintersrp/focusnest/pkg/cmd/notes/noteEdit"
	"github.com/Paintersrp/focusnest/pkg/cmd/notes/noteFind"
	"github.com/Paintersrp/focusnest/pkg/cmd/notes/noteList"
	"github.com/Paintersrp/focusnest/pkg/cmd/notes/noteNew"
	"github.com/Paintersrp/focusnest/pkg/cmd/notes/noteRelink"
	"github.com/Paintersrp/focusnest/pkg/cmd/notes/noteRender"
	"github.com/Paintersrp/focusnest/pkg/cmd/notes/noteShow"
)

func NewCmdNotes(s *state.State) *cobra.Command {
	list := noteList.NewCmdNoteList(s)

	cmd := &cobra.Command{
		Use:     "note",
		Aliases: []string{"notes", "n"},
		Short:   "Create, view and manage notes.",
		Long: heredoc.Doc(`
			Manage notes. Notes reference each other with [[Title]] links,
			which are resolved against existing titles whenever a note is saved.

			Running the command without a subcommand lists recent notes.
		`),
		RunE: list.RunE,
	}
	cmd.Flags().AddFlagSet(list.Flags())

	cmd.AddCommand(
		noteNew.NewCmdNoteNew(s),
		noteShow.NewCmdNoteShow(s),
		list,
		noteEdit.NewCmdNoteEdit(s),
		noteDelete.NewCmdNoteDelete(s),
		noteRender.NewCmdNoteRender(s),
		noteFind.NewCmdNoteFind(s),
		noteRelink.NewCmdNoteRelink(s),
	)

	return cmd
}

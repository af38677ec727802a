package noteDelete

import (
	"errors"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/confirmation"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Paintersrp/focusnest/internal/state"
	cmdpkg "github.com/Paintersrp/focusnest/pkg/cmd"
	"github.com/Paintersrp/focusnest/pkg/shared/flags"
)

// ErrNotConfirmed is returned when a deletion is declined or cannot be
// confirmed interactively.
var ErrNotConfirmed = errors.New("deletion not confirmed; pass --yes to skip the prompt")

func NewCmdNoteDelete(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete [id|title]",
		Aliases: []string{"rm", "remove"},
		Short:   "Delete a note with its links and tags.",
		Long: heredoc.Doc(`
			Deletes a note. Links to and from the note and its tags are removed
			with it. Other notes that mention its title keep the text, and the
			link shows as broken until a note with that title exists again.

			Examples:
			  focusnest note delete 4
			  focusnest note delete "Scratch" --yes
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := cmdpkg.ResolveNote(cmd, s, args[0])
			if err != nil {
				return err
			}

			yes, err := flags.HandleYes(cmd)
			if err != nil {
				return err
			}
			if !yes {
				if err := confirm(fmt.Sprintf("Delete note #%d %q?", n.ID, n.Title)); err != nil {
					return err
				}
			}

			if err := s.Notes.Delete(cmdpkg.Context(cmd), n.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted note #%d %s\n", n.ID, n.Title)
			return nil
		},
	}

	flags.AddYes(cmd)
	return cmd
}

func confirm(prompt string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ErrNotConfirmed
	}

	ok, err := confirmation.New(prompt, confirmation.No).RunPrompt()
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotConfirmed
	}
	return nil
}

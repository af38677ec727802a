package echo

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/focusnest/internal/state"
	cmdpkg "github.com/Paintersrp/focusnest/pkg/cmd"
)

func NewCmdEcho(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "echo [id|title] [message]",
		Short: "Append a message to a note.",
		Long: heredoc.Doc(`
			The echo command appends a line to the end of a note. Links in the
			message are resolved like any other edit.

			Examples:
			  focusnest echo "Inbox" "Look into [[Graph Theory]]"
			  focusnest echo 3 remember the milk
		`),
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, s)
		},
	}
	return cmd
}

func run(cmd *cobra.Command, args []string, s *state.State) error {
	n, err := cmdpkg.ResolveNote(cmd, s, args[0])
	if err != nil {
		return err
	}

	message := strings.Join(args[1:], " ")
	content := message
	if body := strings.TrimRight(n.Content, "\n"); body != "" {
		content = body + "\n" + message
	}

	if _, err := s.Notes.Update(cmdpkg.Context(cmd), n.ID, n.Title, content); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Message appended to %s.\n", n.Title)
	return nil
}

package noteRender

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/focusnest/internal/state"
	cmdpkg "github.com/Paintersrp/focusnest/pkg/cmd"
	"github.com/Paintersrp/focusnest/pkg/shared/flags"
)

func NewCmdNoteRender(s *state.State) *cobra.Command {
	var html bool

	cmd := &cobra.Command{
		Use:   "render [id|title]",
		Short: "Print a note with links replaced by markers.",
		Long: heredoc.Doc(`
			Prints the note content with every [[Title]] replaced by a link
			marker: resolved links become anchors carrying the target note ID
			and unresolved links are flagged as broken. With --html the
			markdown is converted to HTML as well.

			Examples:
			  focusnest note render 2
			  focusnest note render "Graph Theory" --html --copy
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := cmdpkg.ResolveNote(cmd, s, args[0])
			if err != nil {
				return err
			}

			ctx := cmdpkg.Context(cmd)
			var out string
			if html {
				out, err = s.Notes.RenderHTML(ctx, n.ID)
			} else {
				out, err = s.Notes.Render(ctx, n.ID)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)

			copyOut, err := flags.HandleCopy(cmd)
			if err != nil {
				return err
			}
			if copyOut {
				if err := flags.CopyToClipboard(out); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&html, "html", false, "Convert the markdown to HTML.")
	flags.AddCopy(cmd)
	return cmd
}

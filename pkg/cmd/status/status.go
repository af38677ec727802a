package status

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/focusnest/internal/state"
	cmdpkg "github.com/Paintersrp/focusnest/pkg/cmd"
)

func NewCmdStatus(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the database and graph index status.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmdpkg.Connect(cmd, s); err != nil {
				return err
			}
			if _, err := s.Index.Snapshot(cmdpkg.Context(cmd)); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Database: %s (%s)\n", s.Config.Database.DSN, s.Config.Database.Driver)
			fmt.Fprintln(w, s.IndexStatus())
			return nil
		},
	}

	return cmd
}

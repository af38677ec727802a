package serve

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/focusnest/internal/server"
	"github.com/Paintersrp/focusnest/internal/state"
	cmdpkg "github.com/Paintersrp/focusnest/pkg/cmd"
)

func NewCmdServe(s *state.State) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"server", "api"},
		Short:   "Run the JSON API server.",
		Long: heredoc.Doc(`
			Serves notes, the link graph, search and resurfacing over HTTP.
			The listen address comes from server.addr in the config or the
			--addr flag. The server stops cleanly on interrupt.

			Examples:
			  focusnest serve
			  focusnest serve --addr :9000 --mode debug
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmdpkg.Connect(cmd, s); err != nil {
				return err
			}
			if mode == "" {
				mode = s.Config.Server.Mode
			}

			srv := server.New(s.Notes, s.Index, Limits(s), mode)

			ctx, stop := signal.NotifyContext(cmdpkg.Context(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx, s.Config.Server.Addr)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "Server mode: debug, release or test.")
	return cmd
}

// Limits derives the API's default counts from the loaded config.
func Limits(s *state.State) server.Limits {
	limits := server.DefaultLimits()
	if s == nil || s.Config == nil {
		return limits
	}

	cfg := s.Config
	limits.Central = cfg.Graph.CentralLimit
	limits.Suggest = cfg.Graph.SuggestLimit
	limits.Search = cfg.Search.Limit
	limits.Daily = cfg.Resurface.DailyCount
	limits.Context = cfg.Resurface.ContextCount
	limits.Orphans = cfg.Resurface.OrphanCount
	return limits
}

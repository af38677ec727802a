package root

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Paintersrp/focusnest/internal/constants"
	"github.com/Paintersrp/focusnest/internal/state"
	"github.com/Paintersrp/focusnest/pkg/cmd/echo"
	"github.com/Paintersrp/focusnest/pkg/cmd/export"
	"github.com/Paintersrp/focusnest/pkg/cmd/graph"
	"github.com/Paintersrp/focusnest/pkg/cmd/initialize"
	"github.com/Paintersrp/focusnest/pkg/cmd/notes"
	"github.com/Paintersrp/focusnest/pkg/cmd/review"
	"github.com/Paintersrp/focusnest/pkg/cmd/search"
	"github.com/Paintersrp/focusnest/pkg/cmd/serve"
	"github.com/Paintersrp/focusnest/pkg/cmd/status"
	"github.com/Paintersrp/focusnest/pkg/cmd/tags"
)

var (
	dsn    string
	driver string
	addr   string
)

func NewCmdRoot(s *state.State) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:     constants.AppName,
		Aliases: []string{"fn"},
		Short:   "Build a linked knowledge base and resurface what you've forgotten.",
		Long: heredoc.Doc(`
			FocusNest keeps short notes linked together with [[wiki-links]].
			Links are resolved by exact title. The resulting graph can be
			queried for neighbors, orphans and central notes, and older notes
			come back through daily and contextual resurfacing.

			  focusnest note new "Graph Theory" "math" "Builds on [[Sets]]"
			  focusnest graph central
			  focusnest resurface daily
		`),
		Version:      constants.Version,
		SilenceUsage: true,
	}
	cmd.SetUsageTemplate(constants.Help)

	cmd.PersistentFlags().
		StringVar(&dsn, "db", "", "Database DSN (a sqlite path or a postgres URL).")
	cmd.PersistentFlags().
		StringVar(&driver, "driver", "", "Database driver: sqlite or pgx.")
	cmd.PersistentFlags().
		StringVar(&addr, "addr", "", "Listen address for the API server.")
	viper.BindPFlag("database.dsn", cmd.PersistentFlags().Lookup("db"))
	viper.BindPFlag("database.driver", cmd.PersistentFlags().Lookup("driver"))
	viper.BindPFlag("server.addr", cmd.PersistentFlags().Lookup("addr"))

	cmd.AddCommand(
		initialize.NewCmdInit(s),
		notes.NewCmdNotes(s),
		tags.NewCmdTags(s),
		echo.NewCmdEcho(s),
		graph.NewCmdGraph(s),
		search.NewCmdSearch(s),
		review.NewCmdReview(s),
		export.NewCmdExport(s),
		serve.NewCmdServe(s),
		status.NewCmdStatus(s),
	)

	return cmd, nil
}

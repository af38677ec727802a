package search

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/focusnest/internal/state"
	cmdpkg "github.com/Paintersrp/focusnest/pkg/cmd"
	"github.com/Paintersrp/focusnest/pkg/shared/view"
)

func NewCmdSearch(s *state.State) *cobra.Command {
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "search [term]",
		Aliases: []string{"s", "grep"},
		Short:   "Search note titles and content.",
		Long: heredoc.Doc(`
			Finds notes whose title or content contains the term, ignoring
			case. Title matches are listed first. Terms must be at least two
			characters long.

			Examples:
			  focusnest search graph
			  focusnest search "spaced repetition" --limit 5 --json
		`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmdpkg.Connect(cmd, s); err != nil {
				return err
			}
			if !cmd.Flags().Changed("limit") {
				limit = s.Config.Search.Limit
			}

			res, err := s.Notes.Search(cmdpkg.Context(cmd), strings.Join(args, " "), limit)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}

			if len(res.Results) == 0 {
				view.Empty(w, "No matches.")
				return nil
			}
			for _, r := range res.Results {
				fmt.Fprintln(w, view.NoteLine(r.Note))
				if r.MatchFrom == "content" {
					fmt.Fprintf(w, "      %s\n", r.Snippet)
				}
			}
			if res.Total > len(res.Results) {
				view.Empty(w, fmt.Sprintf("%d of %d matches shown.", len(res.Results), res.Total))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "Maximum number of results.")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON.")
	return cmd
}

package graph

import (
	"encoding/json"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/focusnest/internal/note"
	"github.com/Paintersrp/focusnest/internal/state"
	cmdpkg "github.com/Paintersrp/focusnest/pkg/cmd"
	"github.com/Paintersrp/focusnest/pkg/shared/view"
)

func NewCmdGraph(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "graph",
		Aliases: []string{"g"},
		Short:   "Query the note link graph.",
		Long: heredoc.Doc(`
			Every note is a node and every resolved [[link]] an undirected,
			weighted edge. These commands query that graph.

			Examples:
			  focusnest graph neighbors "Graph Theory"
			  focusnest graph central --limit 5
			  focusnest graph data > graph.json
		`),
	}

	cmd.AddCommand(
		newCmdData(s),
		newCmdNeighbors(s),
		newCmdOrphans(s),
		newCmdCentral(s),
		newCmdSuggest(s),
	)
	return cmd
}

func newCmdData(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "data",
		Short: "Print the graph as JSON nodes and links.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmdpkg.Connect(cmd, s); err != nil {
				return err
			}
			data, err := s.Index.Graph(cmdpkg.Context(cmd))
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(data)
		},
	}
}

func newCmdNeighbors(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:     "neighbors [id|title]",
		Aliases: []string{"connections", "links"},
		Short:   "List notes linked to or from a note.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := cmdpkg.ResolveNote(cmd, s, args[0])
			if err != nil {
				return err
			}

			ctx := cmdpkg.Context(cmd)
			ids, err := s.Index.Connections(ctx, n.ID)
			if err != nil {
				return err
			}
			byID, err := notesByID(cmd, s)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			view.Heading(w, "Connected to "+n.Title)
			view.IDs(w, ids, byID, "No connections.")
			return nil
		},
	}
}

func newCmdOrphans(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "orphans",
		Short: "List notes without any links.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmdpkg.Connect(cmd, s); err != nil {
				return err
			}
			ids, err := s.Index.Orphans(cmdpkg.Context(cmd))
			if err != nil {
				return err
			}
			byID, err := notesByID(cmd, s)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			view.Heading(w, "Orphans")
			view.IDs(w, ids, byID, "Every note is linked.")
			return nil
		},
	}
}

func newCmdCentral(s *state.State) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "central",
		Aliases: []string{"hubs"},
		Short:   "List the most connected notes.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmdpkg.Connect(cmd, s); err != nil {
				return err
			}
			if !cmd.Flags().Changed("limit") {
				limit = s.Config.Graph.CentralLimit
			}

			central, err := s.Index.Central(cmdpkg.Context(cmd), limit)
			if err != nil {
				return err
			}
			byID, err := notesByID(cmd, s)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			view.Heading(w, "Central notes")
			if len(central) == 0 {
				view.Empty(w, "No notes yet.")
				return nil
			}
			for _, c := range central {
				view.Scored(w, byID[c.ID], fmt.Sprintf("%.3f", c.Score))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 10, "Number of notes to list.")
	return cmd
}

func newCmdSuggest(s *state.State) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "suggest [id|title]",
		Short: "Suggest notes two links away that are not yet linked.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := cmdpkg.ResolveNote(cmd, s, args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("limit") {
				limit = s.Config.Graph.SuggestLimit
			}

			ids, err := s.Index.Suggest(cmdpkg.Context(cmd), n.ID, limit)
			if err != nil {
				return err
			}
			byID, err := notesByID(cmd, s)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			view.Heading(w, "Suggested links for "+n.Title)
			view.IDs(w, ids, byID, "No suggestions.")
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 5, "Number of suggestions.")
	return cmd
}

func notesByID(cmd *cobra.Command, s *state.State) (map[int64]note.Note, error) {
	snap, err := s.Index.Snapshot(cmdpkg.Context(cmd))
	if err != nil {
		return nil, err
	}
	return note.ByID(snap.Notes), nil
}

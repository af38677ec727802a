package review

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/focusnest/internal/note"
	reviewpkg "github.com/Paintersrp/focusnest/internal/review"
	"github.com/Paintersrp/focusnest/internal/state"
	cmdpkg "github.com/Paintersrp/focusnest/pkg/cmd"
	"github.com/Paintersrp/focusnest/pkg/shared/flags"
	"github.com/Paintersrp/focusnest/pkg/shared/view"
)

func NewCmdReview(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "resurface",
		Aliases: []string{"review", "r"},
		Short:   "Bring older notes back into view.",
		Long: heredoc.Doc(`
			Resurfacing picks notes you have not touched in a while. Daily
			picks favor stale, well linked notes; context picks follow the
			links of a note; orphan picks find notes that are not linked at all.

			--now evaluates staleness as of another date and --seed makes the
			random choices repeatable.

			Examples:
			  focusnest resurface daily --count 3
			  focusnest resurface random --include-recent
			  focusnest resurface context "Graph Theory"
			  focusnest resurface daily --now 2024-06-01 --seed 7
		`),
	}

	cmd.AddCommand(
		newCmdDaily(s),
		newCmdRandom(s),
		newCmdContext(s),
		newCmdOrphans(s),
	)
	return cmd
}

type options struct {
	count  int
	asJSON bool
}

func (o *options) bind(cmd *cobra.Command, defaultCount int) {
	if defaultCount > 0 {
		cmd.Flags().IntVarP(&o.count, "count", "n", defaultCount, "Number of notes to pick.")
	}
	cmd.Flags().BoolVar(&o.asJSON, "json", false, "Print the picks as JSON.")
	flags.AddNow(cmd)
	flags.AddSeed(cmd)
}

// selector builds a selector over the current snapshot honoring --now and
// --seed.
func selector(cmd *cobra.Command, s *state.State) (*reviewpkg.Selector, error) {
	if err := cmdpkg.Connect(cmd, s); err != nil {
		return nil, err
	}

	now, err := flags.HandleNow(cmd)
	if err != nil {
		return nil, err
	}
	seed, seeded, err := flags.HandleSeed(cmd)
	if err != nil {
		return nil, err
	}

	snap, err := s.Index.Snapshot(cmdpkg.Context(cmd))
	if err != nil {
		return nil, err
	}

	opts := []reviewpkg.Option{
		reviewpkg.WithStaleAfter(s.Config.Resurface.StaleAfter),
		reviewpkg.WithRecentWithin(s.Config.Resurface.RecentWithin),
	}
	if !now.IsZero() {
		opts = append(opts, reviewpkg.WithNow(func() time.Time { return now }))
	}
	if seeded {
		opts = append(opts, reviewpkg.WithSeed(seed))
	}
	return reviewpkg.NewSelector(snap.Notes, snap.Links, opts...), nil
}

func newCmdDaily(s *state.State) *cobra.Command {
	var o options

	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Pick stale notes for today, favoring well linked ones.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := selector(cmd, s)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("count") {
				o.count = s.Config.Resurface.DailyCount
			}
			return o.write(cmd.OutOrStdout(), sel, "Daily review", sel.Daily(o.count), "Nothing is stale yet.")
		},
	}

	o.bind(cmd, 5)
	return cmd
}

func newCmdRandom(s *state.State) *cobra.Command {
	var o options
	var includeRecent bool

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Pick a single random note.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := selector(cmd, s)
			if err != nil {
				return err
			}

			var picks []note.Note
			if n, ok := sel.RandomDiscovery(!includeRecent); ok {
				picks = append(picks, n)
			}
			return o.write(cmd.OutOrStdout(), sel, "Random discovery", picks, "No notes to pick from.")
		},
	}

	o.bind(cmd, 0)
	cmd.Flags().BoolVar(&includeRecent, "include-recent", false, "Allow recently updated notes.")
	return cmd
}

func newCmdContext(s *state.State) *cobra.Command {
	var o options

	cmd := &cobra.Command{
		Use:   "context [id|title]",
		Short: "Pick notes linked to a note, falling back to daily picks.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := cmdpkg.ResolveNote(cmd, s, args[0])
			if err != nil {
				return err
			}
			sel, err := selector(cmd, s)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("count") {
				o.count = s.Config.Resurface.ContextCount
			}
			return o.write(cmd.OutOrStdout(), sel, "Related to "+n.Title, sel.Context(n.ID, o.count), "No related notes.")
		},
	}

	o.bind(cmd, 3)
	return cmd
}

func newCmdOrphans(s *state.State) *cobra.Command {
	var o options

	cmd := &cobra.Command{
		Use:   "orphans",
		Short: "Pick notes without links so they can be connected.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := selector(cmd, s)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("count") {
				o.count = s.Config.Resurface.OrphanCount
			}
			return o.write(cmd.OutOrStdout(), sel, "Orphans to connect", sel.Orphans(o.count), "Every note is linked.")
		},
	}

	o.bind(cmd, 3)
	return cmd
}

func (o *options) write(w io.Writer, sel *reviewpkg.Selector, heading string, picks []note.Note, empty string) error {
	if picks == nil {
		picks = []note.Note{}
	}
	if o.asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string][]note.Note{"suggestions": picks})
	}

	view.Heading(w, heading)
	if len(picks) == 0 {
		view.Empty(w, empty)
		return nil
	}
	for _, n := range picks {
		view.Scored(w, n, fmt.Sprintf("(%s)", reviewpkg.BucketFor(sel.Age(n), nil)))
	}
	return nil
}

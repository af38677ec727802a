/*
Copyright © 2024 Ryan Painter paintersrp@gmail.com

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package tags

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/focusnest/internal/state"
	cmdpkg "github.com/Paintersrp/focusnest/pkg/cmd"
	"github.com/Paintersrp/focusnest/pkg/shared/arg"
	"github.com/Paintersrp/focusnest/pkg/shared/view"
)

func NewCmdTags(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tags [id|title] [tags]",
		Aliases: []string{"tag", "t"},
		Short:   "List or add tags on a note.",
		Long: heredoc.Doc(`
			With only a note, lists its tags. Any further arguments are added
			as tags, separated by spaces or commas.

			Examples:
			  focusnest tags "Graph Theory"
			  focusnest tags 3 "math, study"
		`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := cmdpkg.ResolveNote(cmd, s, args[0])
			if err != nil {
				return err
			}

			names, err := arg.ParseTags(strings.Join(args[1:], " "))
			if err != nil {
				return err
			}

			ctx := cmdpkg.Context(cmd)
			for _, name := range names {
				if _, err := s.Notes.AddTag(ctx, n.ID, name); err != nil {
					return fmt.Errorf("add tag %q: %w", name, err)
				}
			}

			tags, err := s.Notes.Tags(ctx, n.ID)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(tags) == 0 {
				view.Empty(w, fmt.Sprintf("%s has no tags.", n.Title))
				return nil
			}
			fmt.Fprintf(w, "%s: %s\n", n.Title, view.Tags(tags))
			return nil
		},
	}

	return cmd
}

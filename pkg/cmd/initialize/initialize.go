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
package initialize

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/focusnest/internal/config"
	"github.com/Paintersrp/focusnest/internal/state"
	cmdpkg "github.com/Paintersrp/focusnest/pkg/cmd"
)

func NewCmdInit(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "initialize",
		Aliases: []string{"i", "init"},
		Short:   "Initialize the FocusNest config and database.",
		Long:    "Writes a default config file when none exists, then opens the configured database and creates its schema.",
		Example: "focusnest init --db ~/notes/focusnest.db",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s)
		},
	}

	return cmd
}

func run(cmd *cobra.Command, s *state.State) error {
	out := cmd.OutOrStdout()

	if s.Home != "" {
		created, err := config.EnsureConfigExists(s.Home)
		if err != nil {
			return err
		}
		if created {
			fmt.Fprintf(out, "Wrote default config to %s\n", config.GetConfigPath(s.Home))
		} else {
			fmt.Fprintf(out, "Using config at %s\n", config.GetConfigPath(s.Home))
		}
	}

	if err := cmdpkg.Connect(cmd, s); err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	fmt.Fprintf(out, "Database ready (%s): %s\n", s.Config.Database.Driver, s.Config.Database.DSN)
	return nil
}

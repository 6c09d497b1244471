// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"laptudirm.com/x/roundrobin/internal/util"
	"laptudirm.com/x/roundrobin/pkg/schedule"
)

func Teams() *cobra.Command {
	return &cobra.Command{
		Use:   "teams [team...]",
		Short: "Lists the teams and the rounds needed to schedule them",

		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			teams, err := teamList(args, conf.Teams)
			if err != nil {
				return err
			}

			if _, err := schedule.From(teams); err != nil {
				return err
			}

			sorted := slices.Clone(teams)
			util.SortAlphanum(sorted)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\x1b[32mTeams\x1b[0m (%d):\n\n", len(sorted))
			for i, team := range sorted {
				fmt.Fprintf(out, "%3d. %s\n", i+1, team)
			}

			fmt.Fprintf(out, "\nSingle round-robin: \x1b[33m%d\x1b[0m rounds\n", schedule.SingleRounds(len(teams)))
			fmt.Fprintf(out, "Double round-robin: \x1b[33m%d\x1b[0m rounds\n", schedule.DoubleRounds(len(teams)))
			return nil
		},
	}
}

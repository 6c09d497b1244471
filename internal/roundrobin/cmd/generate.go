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
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/roundrobin/internal/roundrobin/config"
	"laptudirm.com/x/roundrobin/pkg/render"
	"laptudirm.com/x/roundrobin/pkg/schedule"
)

// roundrobin generate
func Generate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [team...]",
		Short: "Generate a round-robin schedule for the given teams",
		Long: heredoc.Docf(`generate generates a round-robin schedule for the given teams,
			or for the teams listed in the configuration file if none are
			given. An odd number of teams gets a bye every round.

			The teams are shuffled before generation unless --no-shuffle
			is given. The seed of the shuffle is logged, and passing it
			back with --seed generates the same schedule again.

			Supported output formats: %s.`, strings.Join(render.Formats(), ", ")),
		Example: heredoc.Doc(`
			$ roundrobin generate Arsenal Bayer Barcelona Juventus
			$ roundrobin generate --double --seed 42 -f xlsx -o league.xlsx Arsenal Bayer Inter
			$ roundrobin generate --no-shuffle --team Milan -c league.yaml`),

		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if err := applyFlags(cmd, conf); err != nil {
				return err
			}

			teams, err := teamList(args, conf.Teams)
			if err != nil {
				return err
			}

			builder, err := schedule.From(teams)
			if err != nil {
				return err
			}

			builder.Logger(logrus.StandardLogger()).SetRounds(conf.Rounds)
			if conf.Double {
				builder.DoubleRoundRobin()
			}

			if conf.Shuffled() {
				builder.Shuffle()
			} else {
				builder.DoNotShuffle()
			}

			if conf.Seed != nil {
				builder.Seed(*conf.Seed)
			}

			s, err := builder.MakeSchedule()
			if err != nil {
				return err
			}

			if seed, shuffled := s.Seed(); shuffled {
				logrus.WithField("seed", seed).Info("Shuffled the teams")
			}

			return write(cmd, conf, s)
		},
	}

	flags := cmd.Flags()
	flags.IntP("rounds", "r", 0, "Number of rounds to generate")
	flags.BoolP("double", "d", false, "Generate a double round-robin")
	flags.Bool("no-shuffle", false, "Keep the teams in the given order")
	flags.Int64P("seed", "s", 0, "Seed to shuffle the teams with")
	flags.String("team", "", "Only show the schedule of the given team")
	flags.StringP("format", "f", "text", "Output format")
	flags.StringP("output", "o", "", "File to write the schedule to")
	flags.String("name", "", "Title of the calendar")
	flags.String("start", "", "Date of the first round, like 2026-08-15")
	flags.Int("interval", 7, "Days between two rounds, at least 1")

	return cmd
}

// applyFlags overrides the configuration with the flags that were set.
func applyFlags(cmd *cobra.Command, conf *config.Config) error {
	flags := cmd.Flags()

	// A round count and a double round-robin exclude each other, so the
	// one given on the command line replaces the configured one.
	switch rounds, double := flags.Changed("rounds"), flags.Changed("double"); {
	case rounds && double:
		return errors.New("generate: --rounds and --double can't be used together")
	case rounds:
		conf.Rounds, _ = flags.GetInt("rounds")
		conf.Double = false
	case double:
		conf.Double, _ = flags.GetBool("double")
		if conf.Double {
			conf.Rounds = 0
		}
	}

	if flags.Changed("no-shuffle") {
		noShuffle, _ := flags.GetBool("no-shuffle")
		shuffle := !noShuffle
		conf.Shuffle = &shuffle
	}

	if flags.Changed("seed") {
		seed, _ := flags.GetInt64("seed")
		conf.Seed = &seed
	}

	if flags.Changed("format") || conf.Format == "" {
		conf.Format, _ = flags.GetString("format")
	}

	if flags.Changed("output") {
		conf.Output, _ = flags.GetString("output")
	}

	if flags.Changed("name") {
		conf.Name, _ = flags.GetString("name")
	}

	if flags.Changed("start") {
		conf.Start, _ = flags.GetString("start")
	}

	if flags.Changed("interval") {
		conf.Interval, _ = flags.GetInt("interval")
		if conf.Interval < 1 {
			return fmt.Errorf("generate: invalid interval %d, need at least 1 day", conf.Interval)
		}
	}

	return conf.Validate()
}

func write(cmd *cobra.Command, conf *config.Config, s *schedule.Schedule[string]) error {
	team, _ := cmd.Flags().GetString("team")

	opts := render.Options{
		Team:     team,
		Name:     conf.Name,
		Start:    conf.StartDate(),
		Interval: conf.RoundInterval(),
	}

	if conf.Output == "" {
		return render.Write(cmd.OutOrStdout(), conf.Format, s, opts)
	}

	file, err := os.Create(conf.Output)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := render.Write(file, conf.Format, s, opts); err != nil {
		return err
	}

	logrus.WithField("file", conf.Output).Debug("Wrote schedule")
	return file.Close()
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	conf, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"file":  path,
		"teams": len(conf.Teams),
	}).Trace("Loaded configuration")

	return conf, nil
}

// teamList returns the teams given as arguments, or the configured ones
// if there are none. Empty and duplicate team names are rejected.
func teamList(args, configured []string) ([]string, error) {
	if len(args) == 0 {
		args = configured
	}

	teams := make([]string, 0, len(args))
	seen := make(map[string]bool, len(args))

	for _, team := range args {
		team = strings.TrimSpace(team)

		switch {
		case team == "":
			return nil, fmt.Errorf("team list: empty team name: %w", schedule.ErrInvalidInput)
		case seen[team]:
			return nil, fmt.Errorf("team list: duplicate team %s: %w", team, schedule.ErrInvalidInput)
		}

		seen[team] = true
		teams = append(teams, team)
	}

	return teams, nil
}

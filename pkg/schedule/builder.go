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

package schedule

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"github.com/sirupsen/logrus"
)

// ErrInvalidInput is returned when a schedule can't be generated from the
// given configuration, most commonly because there are less than 2 teams.
var ErrInvalidInput = errors.New("invalid round-robin input")

// Config contains all the parameters of a single schedule generation.
type Config[T comparable] struct {
	// The teams participating in the round-robin. At least 2 are needed.
	Teams []T

	// Number of rounds to generate. Zero means a single round-robin.
	Rounds int

	// The teams are shuffled before generation unless NoShuffle is set.
	// The Seed is only used when shuffling; a nil Seed draws a new one for
	// every call.
	NoShuffle bool
	Seed      *int64
}

// SingleRounds returns the number of rounds needed for every one of n teams
// to play every other team once.
func SingleRounds(n int) int {
	return n + n%2 - 1
}

// DoubleRounds returns the number of rounds needed for every one of n teams
// to play every other team twice, once at home and once away.
func DoubleRounds(n int) int {
	return 2 * SingleRounds(n)
}

// Generate generates the master schedule for the given configuration.
func Generate[T comparable](config Config[T]) (Master[T], error) {
	master, _, err := generate(config, logrus.StandardLogger())
	return master, err
}

// GenerateSchedule is like Generate, but wraps the result in a Schedule
// which also records the seed the teams were shuffled with.
func GenerateSchedule[T comparable](config Config[T]) (*Schedule[T], error) {
	return makeSchedule(config, logrus.StandardLogger())
}

func makeSchedule[T comparable](config Config[T], log logrus.FieldLogger) (*Schedule[T], error) {
	master, seed, err := generate(config, log)
	if err != nil {
		return nil, err
	}

	s := newSchedule(master)
	s.seed = seed
	return s, nil
}

func generate[T comparable](config Config[T], log logrus.FieldLogger) (Master[T], *int64, error) {
	if len(config.Teams) < 2 {
		return nil, nil, fmt.Errorf("generate schedule: %d team(s) given, need at least 2: %w", len(config.Teams), ErrInvalidInput)
	}

	if config.Rounds < 0 {
		return nil, nil, fmt.Errorf("generate schedule: invalid round count %d: %w", config.Rounds, ErrInvalidInput)
	}

	// The teams are rotated as indices into config.Teams, which leaves the
	// index past the last team free to stand in for a bye.
	bye := len(config.Teams)
	sequence := make([]int, len(config.Teams), len(config.Teams)+1)
	for i := range sequence {
		sequence[i] = i
	}

	if len(sequence)%2 == 1 {
		sequence = append(sequence, bye)
	}

	var seed *int64
	switch {
	case !config.NoShuffle:
		s := rand.Int63()
		if config.Seed != nil {
			s = *config.Seed
		}

		rng := rand.New(rand.NewSource(s))
		rng.Shuffle(len(sequence), func(i, j int) {
			sequence[i], sequence[j] = sequence[j], sequence[i]
		})

		seed = &s
		log.WithField("seed", s).Debug("Shuffled the teams")

	case config.Seed != nil:
		log.WithField("seed", *config.Seed).Warn("Shuffling is disabled, the seed has no effect")
	}

	rounds := config.Rounds
	if rounds == 0 {
		rounds = len(sequence) - 1
	}

	log.WithFields(logrus.Fields{
		"teams":  len(config.Teams),
		"rounds": rounds,
		"byes":   len(sequence) != len(config.Teams),
	}).Debug("Generating round-robin schedule")

	half := len(sequence) / 2
	master := make(Master[T], rounds)

	for round := 1; round <= rounds; round++ {
		matchups := make([]Matchup[T], 0, half)

		for slot := 0; slot < half; slot++ {
			team1, team2 := sequence[slot], sequence[slot+half]

			// Switch sides every round to balance home and away games.
			home, away := team2, team1
			if round%2 == 0 {
				home, away = team1, team2
			}

			// The team paired with the bye sits this round out.
			if home == bye || away == bye {
				continue
			}

			matchups = append(matchups, Matchup[T]{
				Home: config.Teams[home],
				Away: config.Teams[away],
			})
		}

		master[round] = matchups
		Rotate(sequence)
	}

	return master, seed, nil
}

// Builder configures and generates round-robin schedules through chained
// method calls:
//
//	s, err := schedule.New("A", "B", "C", "D").
//		DoubleRoundRobin().
//		Shuffle(42).
//		MakeSchedule()
//
// Teams are shuffled unless DoNotShuffle is called.
type Builder[T comparable] struct {
	teams []T

	rounds int
	double bool

	shuffle bool
	seed    *int64

	log logrus.FieldLogger
}

// New returns a Builder for the given teams. The teams are copied, and are
// only validated when a schedule is made.
func New[T comparable](teams ...T) *Builder[T] {
	return &Builder[T]{
		teams:   slices.Clone(teams),
		shuffle: true,
		log:     logrus.StandardLogger(),
	}
}

// From is like New but fails early if there are less than 2 teams.
func From[T comparable](teams []T) (*Builder[T], error) {
	if len(teams) < 2 {
		return nil, fmt.Errorf("new round-robin: %d team(s) given, need at least 2: %w", len(teams), ErrInvalidInput)
	}

	return New(teams...), nil
}

// Teams replaces the builder's teams with a copy of the given ones.
func (b *Builder[T]) Teams(teams ...T) *Builder[T] {
	b.teams = slices.Clone(teams)
	return b
}

// SetRounds sets the number of rounds to generate. A value less than 1
// restores the default of a single round-robin.
func (b *Builder[T]) SetRounds(n int) *Builder[T] {
	b.rounds = max(n, 0)
	b.double = false
	return b
}

// DoubleRoundRobin makes every team play every other team twice, once at
// home and once away.
func (b *Builder[T]) DoubleRoundRobin() *Builder[T] {
	b.double = true
	return b
}

// Shuffle shuffles the teams before generating the schedule. If a seed is
// given, the shuffle and hence the schedule are reproducible.
func (b *Builder[T]) Shuffle(seed ...int64) *Builder[T] {
	b.shuffle = true
	b.seed = nil

	if len(seed) > 0 {
		s := seed[0]
		b.seed = &s
	}

	return b
}

// Seed sets the seed used for shuffling without changing whether the teams
// are shuffled. A seed set on a builder that doesn't shuffle is ignored.
func (b *Builder[T]) Seed(seed int64) *Builder[T] {
	b.seed = &seed
	return b
}

// DoNotShuffle keeps the teams in the given order, and clears any seed.
func (b *Builder[T]) DoNotShuffle() *Builder[T] {
	b.shuffle = false
	b.seed = nil
	return b
}

// Logger sets the logger generation details and warnings are written to.
func (b *Builder[T]) Logger(log logrus.FieldLogger) *Builder[T] {
	b.log = log
	return b
}

// Config returns the generation parameters the builder currently holds.
func (b *Builder[T]) Config() Config[T] {
	rounds := b.rounds
	if b.double {
		rounds = DoubleRounds(len(b.teams))
	}

	return Config[T]{
		Teams:     slices.Clone(b.teams),
		Rounds:    rounds,
		NoShuffle: !b.shuffle,
		Seed:      b.seed,
	}
}

// Make generates the master schedule.
func (b *Builder[T]) Make() (Master[T], error) {
	master, _, err := generate(b.Config(), b.log)
	return master, err
}

// MakeSchedule generates the schedule and wraps it in a Schedule.
func (b *Builder[T]) MakeSchedule() (*Schedule[T], error) {
	return makeSchedule(b.Config(), b.log)
}

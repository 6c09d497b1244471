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

// Package schedule generates round-robin tournament schedules using the
// circle method, and provides per round and per team views of them.
package schedule

import (
	"iter"
	"maps"
	"slices"
	"sync"
)

// Matchup is a single game between two teams. Home is listed first.
type Matchup[T comparable] struct {
	Home T `yaml:"home" json:"home"`
	Away T `yaml:"away" json:"away"`
}

// Fixture is a game as seen from one of the teams playing it.
type Fixture[T comparable] struct {
	Opponent T
	Home     bool
}

// Master maps every round number, starting from 1, to its matchups.
type Master[T comparable] map[int][]Matchup[T]

// TeamSchedule maps the round numbers a team plays in to its fixture.
type TeamSchedule[T comparable] map[int]Fixture[T]

// Encounter is a matchup along with its place in the schedule. Games are
// numbered from 1 in order of play.
type Encounter[T comparable] struct {
	Round, Number int
	Matchup[T]
}

// View is the result of Schedule.Lookup. Exactly one of the two fields is
// set, depending on whether a team was asked for.
type View[T comparable] struct {
	Master Master[T]
	Team   TeamSchedule[T]
}

// Schedule is a read-only view of a generated round-robin. Per team
// schedules are derived from the master schedule the first time they are
// needed, and a Schedule is safe for use by concurrent readers.
type Schedule[T comparable] struct {
	master Master[T]
	seed   *int64

	once  sync.Once
	teams map[T]TeamSchedule[T]
	order []T
}

// NewSchedule wraps a copy of the given master schedule.
func NewSchedule[T comparable](master Master[T]) *Schedule[T] {
	return newSchedule(master.Clone())
}

func newSchedule[T comparable](master Master[T]) *Schedule[T] {
	if master == nil {
		master = make(Master[T])
	}

	return &Schedule[T]{master: master}
}

// Clone returns a copy of the master schedule which shares no memory with
// the original.
func (m Master[T]) Clone() Master[T] {
	if m == nil {
		return nil
	}

	clone := make(Master[T], len(m))
	for round, matchups := range m {
		clone[round] = append(make([]Matchup[T], 0, len(matchups)), matchups...)
	}

	return clone
}

// Master returns a copy of the schedule indexed by round.
func (s *Schedule[T]) Master() Master[T] {
	return s.master.Clone()
}

// Seed returns the seed used to shuffle the teams before generation. The
// second result is false if the teams were not shuffled.
func (s *Schedule[T]) Seed() (int64, bool) {
	if s.seed == nil {
		return 0, false
	}

	return *s.seed, true
}

// ForTeam returns the rounds the given team plays in, along with the
// opponent and side for each of them. An unknown team has an empty schedule.
func (s *Schedule[T]) ForTeam(team T) TeamSchedule[T] {
	s.once.Do(s.index)

	if fixtures, found := s.teams[team]; found {
		return maps.Clone(fixtures)
	}

	return TeamSchedule[T]{}
}

// Teams returns every team in the schedule, in order of first appearance.
func (s *Schedule[T]) Teams() []T {
	s.once.Do(s.index)
	return slices.Clone(s.order)
}

// Lookup returns the schedule for the given team, or the master schedule
// if team is nil.
func (s *Schedule[T]) Lookup(team *T) View[T] {
	if team != nil {
		return View[T]{Team: s.ForTeam(*team)}
	}

	return View[T]{Master: s.Master()}
}

// Len returns the number of rounds in the schedule.
func (s *Schedule[T]) Len() int {
	return len(s.master)
}

// Rounds returns the round numbers of the schedule in ascending order.
func (s *Schedule[T]) Rounds() []int {
	return slices.Sorted(maps.Keys(s.master))
}

// All iterates over the rounds of the schedule in ascending order. The
// yielded slices are copies.
func (s *Schedule[T]) All() iter.Seq2[int, []Matchup[T]] {
	return func(yield func(int, []Matchup[T]) bool) {
		for _, round := range s.Rounds() {
			if !yield(round, slices.Clone(s.master[round])) {
				return
			}
		}
	}
}

// Encounters iterates over every game in the schedule in order of play.
func (s *Schedule[T]) Encounters() iter.Seq[Encounter[T]] {
	return func(yield func(Encounter[T]) bool) {
		number := 0
		for round, matchups := range s.All() {
			for _, matchup := range matchups {
				number++
				if !yield(Encounter[T]{Round: round, Number: number, Matchup: matchup}) {
					return
				}
			}
		}
	}
}

// TotalEncounters returns the number of games in the schedule.
func (s *Schedule[T]) TotalEncounters() int {
	total := 0
	for _, matchups := range s.master {
		total += len(matchups)
	}

	return total
}

// index builds the per team schedules from the master schedule.
func (s *Schedule[T]) index() {
	s.teams = make(map[T]TeamSchedule[T])

	add := func(team T, round int, fixture Fixture[T]) {
		fixtures, found := s.teams[team]
		if !found {
			fixtures = make(TeamSchedule[T])
			s.teams[team] = fixtures
			s.order = append(s.order, team)
		}

		fixtures[round] = fixture
	}

	for round, matchups := range s.All() {
		for _, matchup := range matchups {
			add(matchup.Home, round, Fixture[T]{Opponent: matchup.Away, Home: true})
			add(matchup.Away, round, Fixture[T]{Opponent: matchup.Home, Home: false})
		}
	}
}

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
	"reflect"
	"slices"
	"sync"
	"testing"
)

func clubSchedule(t *testing.T) *Schedule[string] {
	t.Helper()

	s, err := New(clubs...).DoNotShuffle().MakeSchedule()
	if err != nil {
		t.Fatalf("MakeSchedule: %v", err)
	}

	return s
}

func TestForTeamMatchesMaster(t *testing.T) {
	s := clubSchedule(t)

	for _, team := range clubs {
		fixtures := s.ForTeam(team)
		if len(fixtures) != len(clubs)-1 {
			t.Errorf("%s plays %d rounds, want %d", team, len(fixtures), len(clubs)-1)
		}

		for round, fixture := range fixtures {
			var found bool
			for _, m := range s.Master()[round] {
				switch team {
				case m.Home:
					found = fixture == Fixture[string]{Opponent: m.Away, Home: true}
				case m.Away:
					found = fixture == Fixture[string]{Opponent: m.Home, Home: false}
				}
			}

			if !found {
				t.Errorf("%s round %d: fixture %+v not in master %v", team, round, fixture, s.Master()[round])
			}
		}
	}
}

func TestForTeamRoundOne(t *testing.T) {
	s := clubSchedule(t)

	if got, want := s.ForTeam("Milan")[1], (Fixture[string]{Opponent: "Arsenal", Home: true}); got != want {
		t.Errorf("Milan round 1 = %+v, want %+v", got, want)
	}

	if got, want := s.ForTeam("Arsenal")[1], (Fixture[string]{Opponent: "Milan", Home: false}); got != want {
		t.Errorf("Arsenal round 1 = %+v, want %+v", got, want)
	}
}

func TestForTeamUnknown(t *testing.T) {
	s := clubSchedule(t)

	fixtures := s.ForTeam("Chelsea")
	if fixtures == nil || len(fixtures) != 0 {
		t.Errorf("ForTeam(unknown) = %v, want empty", fixtures)
	}
}

func TestForTeamIsCopy(t *testing.T) {
	s := clubSchedule(t)

	fixtures := s.ForTeam("Milan")
	delete(fixtures, 1)

	if _, found := s.ForTeam("Milan")[1]; !found {
		t.Error("modifying a team schedule changed the cached one")
	}
}

func TestMasterIsCopy(t *testing.T) {
	s := clubSchedule(t)
	milan := s.ForTeam("Milan")

	master := s.Master()
	master[1] = nil
	delete(master, 7)
	s.Master()[2][0] = Matchup[string]{Home: "Chelsea", Away: "Chelsea"}
	s.Lookup(nil).Master[3] = nil

	for _, matchups := range s.All() {
		matchups[0] = Matchup[string]{}
	}

	if s.Len() != 7 || !slices.Equal(s.Rounds(), []int{1, 2, 3, 4, 5, 6, 7}) {
		t.Fatalf("rounds changed to %v", s.Rounds())
	}

	for round := 1; round <= 7; round++ {
		if got := len(s.Master()[round]); got != 4 {
			t.Errorf("round %d has %d matchups, want 4", round, got)
		}
	}

	if got, want := s.Master()[2][0], (Matchup[string]{Home: "Arsenal", Away: "PSG"}); got != want {
		t.Errorf("round 2 first matchup = %+v, want %+v", got, want)
	}

	if !reflect.DeepEqual(s.ForTeam("Milan"), milan) {
		t.Error("team schedule disagrees with the master schedule")
	}
}

func TestNewScheduleCopies(t *testing.T) {
	master := Master[string]{
		1: {{Home: "A", Away: "B"}},
		2: {{Home: "B", Away: "A"}},
	}

	s := NewSchedule(master)
	master[1][0] = Matchup[string]{Home: "C", Away: "D"}
	delete(master, 2)

	want := Master[string]{
		1: {{Home: "A", Away: "B"}},
		2: {{Home: "B", Away: "A"}},
	}
	if !reflect.DeepEqual(s.Master(), want) {
		t.Errorf("Master() = %v, want %v", s.Master(), want)
	}

	if got := NewSchedule[string](nil).Len(); got != 0 {
		t.Errorf("Len() of an empty schedule = %d", got)
	}
}

func TestTeams(t *testing.T) {
	s := clubSchedule(t)

	teams := s.Teams()
	if len(teams) != len(clubs) {
		t.Fatalf("Teams() = %v, want %d teams", teams, len(clubs))
	}

	// First appearance order: the home and away sides of round one.
	want := []string{"Milan", "Arsenal", "PSG", "Bayer", "Inter", "Barcelona", "Real Madrid", "Juventus"}
	if !slices.Equal(teams, want) {
		t.Errorf("Teams() = %v, want %v", teams, want)
	}

	odd, err := New("A", "B", "C").DoNotShuffle().MakeSchedule()
	if err != nil {
		t.Fatalf("MakeSchedule: %v", err)
	}

	got := odd.Teams()
	slices.Sort(got)
	if !slices.Equal(got, []string{"A", "B", "C"}) {
		t.Errorf("Teams() with a bye = %v, want [A B C]", got)
	}
}

func TestLookup(t *testing.T) {
	s := clubSchedule(t)

	view := s.Lookup(nil)
	if view.Team != nil || !reflect.DeepEqual(view.Master, s.Master()) {
		t.Errorf("Lookup(nil) = %+v, want the master schedule", view)
	}

	team := "PSG"
	view = s.Lookup(&team)
	if view.Master != nil || !reflect.DeepEqual(view.Team, s.ForTeam(team)) {
		t.Errorf("Lookup(%q) = %+v, want its team schedule", team, view)
	}
}

func TestAll(t *testing.T) {
	s := clubSchedule(t)

	var rounds []int
	for round, matchups := range s.All() {
		rounds = append(rounds, round)
		if !slices.Equal(matchups, s.Master()[round]) {
			t.Errorf("round %d = %v, want %v", round, matchups, s.Master()[round])
		}
	}

	if want := []int{1, 2, 3, 4, 5, 6, 7}; !slices.Equal(rounds, want) {
		t.Errorf("iterated rounds %v, want %v", rounds, want)
	}

	if !slices.Equal(s.Rounds(), rounds) || s.Len() != 7 {
		t.Errorf("Rounds() = %v, Len() = %d", s.Rounds(), s.Len())
	}

	for round := range s.All() {
		if round != 1 {
			t.Errorf("iteration continued to round %d after break", round)
		}
		break
	}
}

func TestEncounters(t *testing.T) {
	s := clubSchedule(t)

	var encounters []Encounter[string]
	for e := range s.Encounters() {
		encounters = append(encounters, e)
	}

	if len(encounters) != 28 || s.TotalEncounters() != 28 {
		t.Fatalf("got %d encounters, TotalEncounters() = %d, want 28", len(encounters), s.TotalEncounters())
	}

	for i, e := range encounters {
		if e.Number != i+1 {
			t.Errorf("encounter %d numbered %d", i, e.Number)
		}
	}

	if e := encounters[4]; e.Round != 2 || e.Matchup != (Matchup[string]{Home: "Arsenal", Away: "PSG"}) {
		t.Errorf("fifth encounter = %+v, want round 2 Arsenal vs PSG", e)
	}

	if e := encounters[27]; e.Round != 7 {
		t.Errorf("last encounter in round %d, want 7", e.Round)
	}
}

func TestConcurrentReaders(t *testing.T) {
	s := clubSchedule(t)

	var wg sync.WaitGroup
	for _, team := range clubs {
		wg.Add(1)
		go func(team string) {
			defer wg.Done()
			if len(s.ForTeam(team)) != len(clubs)-1 {
				t.Errorf("%s: incomplete schedule", team)
			}
			_ = s.Teams()
		}(team)
	}

	wg.Wait()
}

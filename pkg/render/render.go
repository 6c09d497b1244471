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

// Package render writes round-robin schedules out in human and machine
// readable formats.
package render

import (
	"fmt"
	"io"
	"slices"
	"time"

	"laptudirm.com/x/roundrobin/internal/util"
	"laptudirm.com/x/roundrobin/pkg/schedule"
)

// Options control what part of a schedule is rendered and how.
type Options struct {
	// Render only the fixtures of the team with this name.
	Team string

	// Title of the calendar or document.
	Name string

	// Date of the first round and the time between two rounds, used for
	// the calendar format. They default to today and a week.
	Start    time.Time
	Interval time.Duration

	// Creation time stamped on calendar events, defaults to now.
	Stamp time.Time
}

type renderer func(w io.Writer, doc *document, opts Options) error

var renderers = map[string]renderer{
	"text": writeText,
	"yaml": writeYAML,
	"json": writeJSON,
	"xlsx": writeXLSX,
	"ics":  writeICS,
}

// Formats returns the names of the supported formats.
func Formats() []string {
	formats := make([]string, 0, len(renderers))
	for format := range renderers {
		formats = append(formats, format)
	}

	slices.Sort(formats)
	return formats
}

// Write renders the schedule to w in the given format. Teams are named
// by their default fmt representation.
func Write[T comparable](w io.Writer, format string, s *schedule.Schedule[T], opts Options) error {
	render, found := renderers[format]
	if !found {
		return fmt.Errorf("render: invalid format %s", format)
	}

	doc, err := newDocument(s, opts.Team)
	if err != nil {
		return err
	}

	if opts.Start.IsZero() {
		year, month, day := time.Now().Date()
		opts.Start = time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	}

	if opts.Interval == 0 {
		opts.Interval = 7 * 24 * time.Hour
	}

	if opts.Stamp.IsZero() {
		opts.Stamp = time.Now().UTC()
	}

	return render(w, doc, opts)
}

// document is a schedule with its teams reduced to their names, in the
// shape it is written out by the data formats.
type document struct {
	Team   string  `yaml:"team,omitempty" json:"team,omitempty"`
	Seed   *int64  `yaml:"seed,omitempty" json:"seed,omitempty"`
	Rounds []round `yaml:"rounds" json:"rounds"`

	// Every team in natural order and its fixtures.
	teams    []string
	fixtures map[string][]fixture

	// Number of games in the whole schedule.
	games int
}

type round struct {
	Round   int     `yaml:"round" json:"round"`
	Matches []match `yaml:"matches" json:"matches"`
}

type match struct {
	Game int    `yaml:"game" json:"game"`
	Home string `yaml:"home" json:"home"`
	Away string `yaml:"away" json:"away"`
}

type fixture struct {
	Round    int
	Opponent string
	Home     bool
}

func (f fixture) venue() string {
	if f.Home {
		return "Home"
	}

	return "Away"
}

func newDocument[T comparable](s *schedule.Schedule[T], team string) (*document, error) {
	doc := document{
		Team:     team,
		fixtures: make(map[string][]fixture),
		games:    s.TotalEncounters(),
	}

	if seed, shuffled := s.Seed(); shuffled {
		doc.Seed = &seed
	}

	var found bool
	for _, t := range s.Teams() {
		name := fmt.Sprint(t)
		if team != "" && name != team {
			continue
		}

		found = true
		doc.teams = append(doc.teams, name)

		fixtures := s.ForTeam(t)
		for _, number := range s.Rounds() {
			if f, plays := fixtures[number]; plays {
				doc.fixtures[name] = append(doc.fixtures[name], fixture{
					Round:    number,
					Opponent: fmt.Sprint(f.Opponent),
					Home:     f.Home,
				})
			}
		}
	}

	if team != "" && !found {
		return nil, fmt.Errorf("render: team %s not in schedule", team)
	}

	util.SortAlphanum(doc.teams)

	// Rounds without games are kept, so they are all added up front.
	index := make(map[int]int)
	for _, number := range s.Rounds() {
		index[number] = len(doc.Rounds)
		doc.Rounds = append(doc.Rounds, round{Round: number, Matches: []match{}})
	}

	for e := range s.Encounters() {
		home, away := fmt.Sprint(e.Home), fmt.Sprint(e.Away)
		if team != "" && home != team && away != team {
			continue
		}

		r := &doc.Rounds[index[e.Round]]
		r.Matches = append(r.Matches, match{Game: e.Number, Home: home, Away: away})
	}

	return &doc, nil
}

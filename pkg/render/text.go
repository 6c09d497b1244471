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

package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

type section struct {
	title string
	lines []string
}

// writeText draws the schedule as a box with one section per round, or
// a single section listing a team's fixtures if a team was selected.
func writeText(w io.Writer, doc *document, _ Options) error {
	var sections []section

	if doc.Team != "" {
		sections = append(sections, teamSection(doc))
	} else {
		gameWidth, homeWidth := len(fmt.Sprint(doc.games)), 0
		for _, r := range doc.Rounds {
			for _, m := range r.Matches {
				homeWidth = max(homeWidth, utf8.RuneCountInString(m.Home))
			}
		}

		for _, r := range doc.Rounds {
			s := section{title: fmt.Sprintf("Round %d", r.Round)}
			for _, m := range r.Matches {
				s.lines = append(s.lines, fmt.Sprintf("%*d. %-*s  vs  %s", gameWidth, m.Game, homeWidth, m.Home, m.Away))
			}

			if len(r.Matches) == 0 {
				s.lines = append(s.lines, "No games")
			}

			sections = append(sections, s)
		}
	}

	if doc.Seed != nil {
		sections = append(sections, section{title: fmt.Sprintf("Seed %d", *doc.Seed)})
	}

	_, err := io.WriteString(w, drawBox(sections))
	return err
}

func teamSection(doc *document) section {
	fixtures := make(map[int]fixture)
	for _, f := range doc.fixtures[doc.Team] {
		fixtures[f.Round] = f
	}

	width := len(fmt.Sprint(len(doc.Rounds)))

	s := section{title: doc.Team}
	for _, r := range doc.Rounds {
		f, plays := fixtures[r.Round]
		if !plays {
			s.lines = append(s.lines, fmt.Sprintf("Round %*d  -  bye", width, r.Round))
			continue
		}

		s.lines = append(s.lines, fmt.Sprintf("Round %*d  %s  %s", width, r.Round, f.venue()[:1], f.Opponent))
	}

	return s
}

func drawBox(sections []section) string {
	width := 0
	for _, s := range sections {
		width = max(width, utf8.RuneCountInString(s.title))
		for _, line := range s.lines {
			width = max(width, utf8.RuneCountInString(line))
		}
	}

	bar := strings.Repeat("═", width+2)

	var b strings.Builder
	b.WriteString("╔" + bar + "╗\n")

	for i, s := range sections {
		if i > 0 {
			b.WriteString("╠" + bar + "╣\n")
		}

		fmt.Fprintf(&b, "║ %-*s ║\n", width, s.title)

		if len(s.lines) > 0 {
			b.WriteString("╟" + strings.Repeat("─", width+2) + "╢\n")
		}

		for _, line := range s.lines {
			fmt.Fprintf(&b, "║ %-*s ║\n", width, line)
		}
	}

	b.WriteString("╚" + bar + "╝\n")
	return b.String()
}

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

	"github.com/xuri/excelize/v2"
)

// Excel limits sheet names to 31 characters, some of which are reserved.
const maxSheetName = 31

var sheetReplacer = strings.NewReplacer(
	":", "_", "\\", "_", "/", "_", "?", "_", "*", "_", "[", "(", "]", ")",
)

// writeXLSX writes a workbook with the whole schedule on its first sheet
// followed by one sheet for every team.
func writeXLSX(w io.Writer, doc *document, _ Options) error {
	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	// The default sheet is deleted after the others are added.
	used := map[string]bool{"sheet1": true}

	var first string
	if doc.Team == "" {
		var rows [][]any
		for _, r := range doc.Rounds {
			for _, m := range r.Matches {
				rows = append(rows, []any{m.Game, r.Round, m.Home, m.Away})
			}
		}

		first = sheetName("Schedule", used)
		if err := addSheet(f, first, header, []any{"Game", "Round", "Home", "Away"}, rows); err != nil {
			return err
		}
	}

	for _, team := range doc.teams {
		var rows [][]any
		for _, fx := range doc.fixtures[team] {
			rows = append(rows, []any{fx.Round, fx.Opponent, fx.venue()})
		}

		name := sheetName(team, used)
		if first == "" {
			first = name
		}

		if err := addSheet(f, name, header, []any{"Round", "Opponent", "Venue"}, rows); err != nil {
			return err
		}
	}

	f.DeleteSheet("Sheet1")
	if index, err := f.GetSheetIndex(first); err == nil && index >= 0 {
		f.SetActiveSheet(index)
	}

	return f.Write(w)
}

func addSheet(f *excelize.File, name string, style int, header []any, rows [][]any) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("render: new sheet %s: %w", name, err)
	}

	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return err
	}

	if err := f.SetRowStyle(name, 1, 1, style); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return err
		}
	}

	return f.SetColWidth(name, "B", "D", 16)
}

// sheetName turns a team name into a valid sheet name which isn't in used.
func sheetName(name string, used map[string]bool) string {
	name = strings.Trim(sheetReplacer.Replace(name), "'")
	if name == "" {
		name = "Team"
	}

	unique := truncate(name, maxSheetName)
	for i := 2; used[strings.ToLower(unique)]; i++ {
		suffix := fmt.Sprintf(" (%d)", i)
		unique = truncate(name, maxSheetName-len(suffix)) + suffix
	}

	used[strings.ToLower(unique)] = true
	return unique
}

func truncate(s string, n int) string {
	if runes := []rune(s); len(runes) > n {
		return string(runes[:n])
	}

	return s
}

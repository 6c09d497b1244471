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
	"time"

	ics "github.com/arran4/golang-ical"
)

// writeICS writes an iCalendar with an all day event for every game,
// placing round r on Start + (r-1) * Interval.
func writeICS(w io.Writer, doc *document, opts Options) error {
	name := opts.Name
	switch {
	case doc.Team != "":
		name = doc.Team
	case name == "":
		name = "Round-robin"
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//laptudirm.com//roundrobin//EN")
	cal.SetXWRCalName(name)

	for _, r := range doc.Rounds {
		day := opts.Start.Add(time.Duration(r.Round-1) * opts.Interval)

		for _, m := range r.Matches {
			event := cal.AddEvent(fmt.Sprintf("game-%d@roundrobin", m.Game))
			event.SetDtStampTime(opts.Stamp)
			event.SetAllDayStartAt(day)
			event.SetAllDayEndAt(day.AddDate(0, 0, 1))
			event.SetSummary(fmt.Sprintf("%s vs %s", m.Home, m.Away))
			event.SetDescription(fmt.Sprintf("Round %d", r.Round))
		}
	}

	_, err := io.WriteString(w, cal.Serialize())
	return err
}

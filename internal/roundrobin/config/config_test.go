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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
teams: [Arsenal, Bayer, Barcelona]
double: true
shuffle: false
seed: 17
format: ics
start: 2026-08-15
interval: 3
`)

	config, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(config.Teams) != 3 || config.Teams[2] != "Barcelona" {
		t.Errorf("Teams = %v", config.Teams)
	}
	if !config.Double || config.Shuffled() {
		t.Errorf("Double = %v, Shuffled() = %v", config.Double, config.Shuffled())
	}
	if config.Seed == nil || *config.Seed != 17 {
		t.Errorf("Seed = %v, want 17", config.Seed)
	}
	if config.Format != "ics" {
		t.Errorf("Format = %q, want ics", config.Format)
	}

	if got, want := config.StartDate(), time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("StartDate() = %v, want %v", got, want)
	}
	if got := config.RoundInterval(); got != 72*time.Hour {
		t.Errorf("RoundInterval() = %v, want 72h", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	config, err := Load(writeConfig(t, "teams: [A, B]\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !config.Shuffled() {
		t.Error("Shuffled() = false by default")
	}
	if got := config.RoundInterval(); got != 7*24*time.Hour {
		t.Errorf("RoundInterval() = %v, want a week", got)
	}
}

func TestStartDate(t *testing.T) {
	want := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	for _, start := range []string{"2026-08-15", "2026/08/15", "2026-08-15 18:30:00", "Aug 15, 2026"} {
		config := Config{Start: start}
		if err := config.Validate(); err != nil {
			t.Errorf("Validate(%q): %v", start, err)
			continue
		}

		if got := config.StartDate(); !got.Equal(want) {
			t.Errorf("StartDate(%q) = %v, want %v", start, got, want)
		}
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of a missing explicit file succeeded")
	}

	defaultFile := DefaultFile
	t.Cleanup(func() { DefaultFile = defaultFile })

	DefaultFile = filepath.Join(t.TempDir(), "missing.yaml")
	config, err := Load("")
	if err != nil {
		t.Fatalf("Load of a missing default file: %v", err)
	}
	if len(config.Teams) != 0 {
		t.Errorf("Teams = %v, want none", config.Teams)
	}
}

func TestLoadInvalid(t *testing.T) {
	for name, data := range map[string]string{
		"syntax":   "teams: [A, B\n",
		"rounds":   "rounds: -2\n",
		"interval": "interval: -1\n",
		"double":   "rounds: 2\ndouble: true\n",
		"start":    "start: next tuesday\n",
	} {
		if _, err := Load(writeConfig(t, data)); err == nil {
			t.Errorf("%s: Load succeeded", name)
		}
	}
}

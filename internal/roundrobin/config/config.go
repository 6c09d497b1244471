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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/araddon/dateparse"
	"gopkg.in/yaml.v3"
)

var (
	// Directory is where roundrobin looks for its configuration.
	Directory = filepath.Join(xdg.ConfigHome, "roundrobin")

	// DefaultFile is the configuration file used when none is given.
	DefaultFile = filepath.Join(Directory, "config.yaml")
)

// Config holds the defaults for schedule generation. Every field can be
// overridden from the command line.
type Config struct {
	// The teams participating in the round-robin.
	Teams []string `yaml:"teams"`

	// Number of rounds, 0 for a single round-robin. Can't be combined
	// with a double round-robin.
	Rounds int  `yaml:"rounds"`
	Double bool `yaml:"double"`

	// Shuffle the teams before generation, defaults to true. A seed makes
	// the shuffle reproducible.
	Shuffle *bool  `yaml:"shuffle"`
	Seed    *int64 `yaml:"seed"`

	// Output format and file, and the title used by formats that have one.
	Format string `yaml:"format"`
	Output string `yaml:"output"`
	Name   string `yaml:"name"`

	// Calendar settings: date of the first round and days between rounds.
	// The date may be written in any common layout, like 2026-08-15. An
	// unset interval is a week.
	Start    string `yaml:"start"`
	Interval int    `yaml:"interval"`
}

// Load reads the configuration at path. An empty path loads DefaultFile,
// which is allowed to not exist.
func Load(path string) (*Config, error) {
	var config Config

	optional := path == ""
	if optional {
		path = DefaultFile
	}

	file, err := os.ReadFile(path)
	switch {
	case err == nil:
	case optional && errors.Is(err, fs.ErrNotExist):
		return &config, nil
	default:
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := yaml.Unmarshal(file, &config); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	return &config, nil
}

// Validate checks the fields which can be checked without the teams.
func (config *Config) Validate() error {
	if config.Rounds < 0 {
		return fmt.Errorf("invalid round count %d", config.Rounds)
	}

	if config.Rounds > 0 && config.Double {
		return fmt.Errorf("round count %d set for a double round-robin", config.Rounds)
	}

	if config.Interval < 0 {
		return fmt.Errorf("invalid interval %d", config.Interval)
	}

	if config.Start != "" {
		if _, err := parseDate(config.Start); err != nil {
			return fmt.Errorf("invalid start date %q: %w", config.Start, err)
		}
	}

	return nil
}

// Shuffled reports whether the teams should be shuffled.
func (config *Config) Shuffled() bool {
	return config.Shuffle == nil || *config.Shuffle
}

// StartDate returns the date of the first round, today if unset.
func (config *Config) StartDate() time.Time {
	if start, err := parseDate(config.Start); err == nil {
		return start
	}

	return midnight(time.Now())
}

func parseDate(s string) (time.Time, error) {
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}

	return midnight(t), nil
}

func midnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// RoundInterval returns the time between two rounds, a week if unset.
func (config *Config) RoundInterval() time.Duration {
	if config.Interval == 0 {
		return 7 * 24 * time.Hour
	}

	return time.Duration(config.Interval) * 24 * time.Hour
}

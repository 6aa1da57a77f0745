// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// DefaultThreshold is the similarity acceptance threshold applied when the
// config does not set one.
const DefaultThreshold = 0.5

// 🎛️ Profile supplies per-file defaults for the configuration prompts,
// selected by a doublestar glob against the target file path. A prompt whose
// value is covered by the matching profile is skipped.
type Profile struct {
	Glob string `json:"glob" yaml:"glob"`
	Mode string `json:"mode,omitempty" yaml:"mode,omitempty"` // paste | replace-line | replace-multi
	Sign int    `json:"sign,omitempty" yaml:"sign,omitempty"` // +1 or -1
	Step int    `json:"step,omitempty" yaml:"step,omitempty"`
}

// 📚 Config is the host-supplied configuration surface, static for a
// session's lifetime unless re-supplied.
type Config struct {
	// RegisterTag names the shared register the engine watches.
	RegisterTag string `json:"register_tag,omitempty" yaml:"register_tag,omitempty"`
	// ForceLinewise makes every paste placement linewise regardless of the
	// register's type tag.
	ForceLinewise bool `json:"force_linewise,omitempty" yaml:"force_linewise,omitempty"`
	// Threshold is the similarity score a single-line candidate must reach.
	Threshold float64 `json:"threshold,omitempty" yaml:"threshold,omitempty"`
	// DetailedReport adds a per-line listing to the one-line summary after a
	// multi-line replacement.
	DetailedReport bool `json:"detailed_report,omitempty" yaml:"detailed_report,omitempty"`
	// Profiles are per-file prompt defaults.
	Profiles []Profile `json:"profiles,omitempty" yaml:"profiles,omitempty"`

	location string
}

// 🔍 Validate checks the configuration and applies defaults.
func (cfg *Config) Validate() error {
	if cfg.RegisterTag == "" {
		cfg.RegisterTag = `"`
	}
	if cfg.Threshold == 0 {
		cfg.Threshold = DefaultThreshold
	}
	if cfg.Threshold < 0 || cfg.Threshold > 1 {
		return errors.Errorf("threshold must be in [0,1], got %v", cfg.Threshold)
	}
	for i, p := range cfg.Profiles {
		if p.Glob == "" {
			return errors.Errorf("profile %d: glob is required", i)
		}
		if !doublestar.ValidatePattern(p.Glob) {
			return errors.Errorf("profile %d: invalid glob %q", i, p.Glob)
		}
		if p.Sign != 0 && p.Sign != 1 && p.Sign != -1 {
			return errors.Errorf("profile %d: sign must be +1 or -1, got %d", i, p.Sign)
		}
		if p.Step < 0 {
			return errors.Errorf("profile %d: step must be positive, got %d", i, p.Step)
		}
		switch p.Mode {
		case "", "paste", "replace-line", "replace-multi":
		default:
			return errors.Errorf("profile %d: unknown mode %q", i, p.Mode)
		}
	}
	return nil
}

// 🎯 ProfileFor returns the first profile whose glob matches path.
func (cfg *Config) ProfileFor(path string) (Profile, bool) {
	for _, p := range cfg.Profiles {
		ok, err := doublestar.Match(p.Glob, path)
		if err == nil && ok {
			return p, true
		}
	}
	return Profile{}, false
}

// Location returns the path the config was loaded from, if any.
func (cfg *Config) Location() string {
	return cfg.location
}

// Default returns a validated config with every default applied.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

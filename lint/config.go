// Copyright 2021-2025 The driftlint Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lint

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/driftlint/driftlint/report"
)

// Config is the on-disk lint configuration, conventionally .driftlint.yaml:
//
//	strict: true
//	rules:
//	  no-empty: warn
//	  no-extra-semi: off
//	ignore:
//	  - "vendor/**"
//	  - "**/*.min.js"
//
// Rules not mentioned run at "error".
type Config struct {
	// Strict parses every file as if it began with a "use strict" directive.
	Strict bool `yaml:"strict"`

	// Rules maps rule names to "error", "warn", or "off".
	Rules map[string]string `yaml:"rules"`

	// Ignore lists glob patterns, with ** support, for paths to skip.
	Ignore []string `yaml:"ignore"`
}

// DefaultConfig returns the configuration used when no config file exists:
// every rule at "error", nothing ignored.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig reads and validates a config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	for rule, level := range cfg.Rules {
		switch level {
		case "error", "warn", "off":
		default:
			return nil, fmt.Errorf("%s: rule %q has invalid level %q (want error, warn, or off)", path, rule, level)
		}
	}
	for _, pattern := range cfg.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("%s: invalid ignore pattern %q", path, pattern)
		}
	}
	return cfg, nil
}

// Level returns the severity a rule runs at, and whether it is enabled at
// all.
func (c *Config) Level(rule string) (report.Level, bool) {
	switch c.Rules[rule] {
	case "off":
		return 0, false
	case "warn":
		return report.Warning, true
	default:
		return report.Error, true
	}
}

// Ignored reports whether a path matches any of the config's ignore
// patterns.
func (c *Config) Ignored(path string) bool {
	path = filepath.ToSlash(path)
	for _, pattern := range c.Ignore {
		if ok, _ := doublestar.Match(pattern, path); ok {
			return true
		}
	}
	return false
}

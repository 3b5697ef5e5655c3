//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package config loads the editor configuration from an XDG-style user
// config file, with sensible defaults when none exists.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the editor settings.
type Config struct {
	// Shell interprets :! command lines.
	Shell string `yaml:"shell"`

	// Compiler and CompilerFlags build the buffer for :cpp.
	Compiler      string   `yaml:"compiler"`
	CompilerFlags []string `yaml:"compiler_flags"`

	// TabWidth is the column multiple the tab key advances to.
	TabWidth int `yaml:"tab_width"`

	// LogFile receives session logs; empty disables logging.
	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`
}

// NewConfig returns the default configuration.
func NewConfig() *Config {
	return &Config{
		Shell:         "/bin/sh",
		Compiler:      "g++",
		CompilerFlags: []string{"-std=c++23"},
		TabWidth:      8,
		LogLevel:      "info",
	}
}

// Load resolves the configuration. An explicit path takes precedence;
// otherwise the user config at $XDG_CONFIG_HOME/tove/config.yaml (or
// ~/.config/tove/config.yaml) is used when present. A missing user config
// leaves the defaults in place; a missing explicit path is an error.
func Load(explicitPath string) (*Config, error) {
	cfg := NewConfig()

	path := explicitPath
	if path == "" {
		path = findUserConfig()
	}
	if path == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// normalize backfills defaults for fields the file left empty or set to
// unusable values.
func (c *Config) normalize() {
	if c.Shell == "" {
		c.Shell = "/bin/sh"
	}
	if c.Compiler == "" {
		c.Compiler = "g++"
	}
	if c.TabWidth < 1 {
		c.TabWidth = 8
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// findUserConfig returns the path to the user-level config file, if it
// exists.
func findUserConfig() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	for _, name := range []string{"config.yaml", "config.yml"} {
		path := filepath.Join(configHome, "tove", name)
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

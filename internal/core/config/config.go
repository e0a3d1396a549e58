// Package config handles configuration loading and validation for tagtree.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/tagtree/internal/core/scanner"
	"github.com/colonyops/tagtree/internal/core/todo"
)

// Output format names accepted in config files and on the command line.
const (
	FormatTree = "tree"
	FormatFlat = "flat"
	FormatJSON = "json"
)

// Project-local config file names, searched upward from the working
// directory.
var projectConfigNames = []string{".tagtree.yaml", ".tagtree.yml"}

// Config holds the application configuration. Zero values mean "not set";
// Load fills in defaults after parsing so the file only needs the keys the
// user wants to change.
type Config struct {
	Tags             []string `yaml:"tags"`
	Include          []string `yaml:"include"`
	Exclude          []string `yaml:"exclude"`
	CaseSensitive    bool     `yaml:"case_sensitive"`
	CustomPattern    string   `yaml:"custom_pattern"`
	MaxDepth         int      `yaml:"max_depth"`
	FollowLinks      bool     `yaml:"follow_links"`
	Hidden           bool     `yaml:"hidden"`
	Threads          int      `yaml:"threads"`
	RespectGitignore *bool    `yaml:"respect_gitignore"`
	Format           string   `yaml:"format"`
	NoColor          bool     `yaml:"no_color"`

	// Source is the file the config was loaded from, empty when running on
	// defaults. Set by Load, not from the file.
	Source string `yaml:"-"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Tags:   todo.DefaultTagNames(),
		Format: FormatTree,
	}
}

// Load reads configuration from the given path. If configPath is empty the
// project config is discovered by walking up from the working directory,
// falling back to the user config directory; when no file exists anywhere,
// defaults are returned.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	path := configPath
	if path == "" {
		path = Discover()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist) && configPath == "":
			// Discovered candidates may race with deletion; fall through to
			// defaults.
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file %s: %w", path, err)
			}
			cfg.Source = path
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Discover returns the path of the nearest config file: project-local
// .tagtree.yaml (or .yml) walking up from the working directory, then the
// user config directory. Empty string when none exists.
func Discover() string {
	dir, err := os.Getwd()
	if err == nil {
		for {
			for _, name := range projectConfigNames {
				candidate := filepath.Join(dir, name)
				if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
					return candidate
				}
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	user := UserConfigPath()
	if info, err := os.Stat(user); err == nil && !info.IsDir() {
		return user
	}
	return ""
}

// UserConfigPath returns the per-user config file location.
func UserConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "tagtree", "config.yaml")
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if len(c.Tags) == 0 {
		c.Tags = defaults.Tags
	}
	if c.Format == "" {
		c.Format = defaults.Format
	}
}

// GitignoreEnabled resolves the tri-state respect_gitignore key; unset
// means enabled.
func (c *Config) GitignoreEnabled() bool {
	return c.RespectGitignore == nil || *c.RespectGitignore
}

// ScannerOptions converts the file-level settings into walk options.
func (c *Config) ScannerOptions() scanner.Options {
	return scanner.Options{
		Include:          c.Include,
		Exclude:          c.Exclude,
		MaxDepth:         c.MaxDepth,
		FollowLinks:      c.FollowLinks,
		Hidden:           c.Hidden,
		Threads:          c.Threads,
		RespectGitignore: c.GitignoreEnabled(),
	}
}

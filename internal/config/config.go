// Package config loads projsnap configuration from YAML and resolves
// the projsnap home directory used for the run history database.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigName is the per-project config file looked up when no
// --config flag is given.
const DefaultConfigName = ".projsnap.yaml"

// DefaultOutputName is the snapshot file name used when the config and
// flags are silent.
const DefaultOutputName = "project_snapshot.txt"

// HistoryConfig configures the run history journal.
type HistoryConfig struct {
	// Enabled turns run recording on. The engine never reads history;
	// it is an audit journal only.
	Enabled bool `yaml:"enabled"`

	// DBPath overrides the history database location. Empty means
	// <projsnap home>/history.db.
	DBPath string `yaml:"db_path"`
}

// Config represents projsnap configuration options.
type Config struct {
	// Output is the snapshot file path. Relative paths resolve against
	// the working directory, not the snapshot root.
	Output string `yaml:"output"`

	// Exclude lists extra exclusion patterns applied on top of the
	// built-in defaults.
	Exclude []string `yaml:"exclude"`

	// UseGitignore controls whether <root>/.gitignore patterns are
	// merged into the exclusion set.
	UseGitignore bool `yaml:"use_gitignore"`

	// Fence selects the fence style: "fixed" or "adaptive".
	Fence string `yaml:"fence"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// History configures the run journal.
	History HistoryConfig `yaml:"history"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Output:       DefaultOutputName,
		UseGitignore: true,
		Fence:        "fixed",
		LogLevel:     "info",
		History: HistoryConfig{
			Enabled: true,
		},
	}
}

// LoadConfig loads configuration from the specified file path.
// A missing file returns the defaults without error; a malformed file
// returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// LoadConfigFromDir loads <dir>/.projsnap.yaml, falling back to
// defaults when the file is absent.
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, DefaultConfigName))
}

// HistoryDBPath resolves the history database location, creating the
// projsnap home directory when the default location is used.
func (c *Config) HistoryDBPath() (string, error) {
	if c.History.DBPath != "" {
		return c.History.DBPath, nil
	}

	home, err := Home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "history.db"), nil
}

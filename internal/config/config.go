package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application name used for config directory
	AppName = "sharptime"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
)

// Config represents the application configuration
type Config struct {
	// DailyTargetMinutes is the per-day compliance target in minutes
	DailyTargetMinutes int `toml:"daily_target_minutes"`
	// WeeklyTargetMinutes is the per-person aggregate compliance target in minutes
	WeeklyTargetMinutes int `toml:"weekly_target_minutes"`
	// EditWindowHours is how long after creation an entry stays editable
	EditWindowHours int `toml:"edit_window_hours"`
	// WeekGrouping selects aggregate bucketing: "all-time" or "iso-week"
	WeekGrouping string `toml:"week_grouping"`
	// Theme is the color theme name for the terminal UI
	Theme string `toml:"theme"`
}

// DefaultConfig returns a Config with the standard targets:
// - daily_target_minutes: 480 (8 hours)
// - weekly_target_minutes: 2400 (40 hours)
// - edit_window_hours: 24
// - week_grouping: "all-time" (sum every entry in view per person)
// - theme: "" (use built-in default styling)
func DefaultConfig() Config {
	return Config{
		DailyTargetMinutes:  480,
		WeeklyTargetMinutes: 2400,
		EditWindowHours:     24,
		WeekGrouping:        "all-time",
		Theme:               "",
	}
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// Normalize cleans up string fields in place: trims whitespace and
// lowercases the grouping name.
func (c *Config) Normalize() {
	c.WeekGrouping = strings.ToLower(strings.TrimSpace(c.WeekGrouping))
	c.Theme = strings.TrimSpace(c.Theme)
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if c.DailyTargetMinutes < 1 {
		return fmt.Errorf("invalid daily_target_minutes %d, must be at least 1", c.DailyTargetMinutes)
	}
	if c.WeeklyTargetMinutes < 1 {
		return fmt.Errorf("invalid weekly_target_minutes %d, must be at least 1", c.WeeklyTargetMinutes)
	}
	if c.EditWindowHours < 1 {
		return fmt.Errorf("invalid edit_window_hours %d, must be at least 1", c.EditWindowHours)
	}
	if c.WeekGrouping != "all-time" && c.WeekGrouping != "iso-week" {
		return fmt.Errorf("invalid week_grouping %q, must be \"all-time\" or \"iso-week\"", c.WeekGrouping)
	}
	return nil
}

// Load reads and parses the config file at the given path. Fields absent
// from the file keep their default values. The result is normalized and
// validated.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadOrDefault loads the config file if it exists, or returns the default
// configuration if it doesn't. A file that exists but fails to parse or
// validate is an error, not a fallback to defaults.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, err
	}
	return Load(path)
}

// GenerateSampleConfig returns a commented-out sample config file showing
// every setting with its default value.
func GenerateSampleConfig() string {
	return `# sharptime configuration file
# Uncomment and edit the settings you want to change.

# Daily compliance target in minutes (default: 480 = 8 hours)
# daily_target_minutes = 480

# Weekly compliance target in minutes (default: 2400 = 40 hours)
# weekly_target_minutes = 2400

# How long after creation an entry stays editable, in hours (default: 24)
# edit_window_hours = 24

# How per-person aggregate summaries are bucketed:
#   "all-time" - sum every entry currently in view (default)
#   "iso-week" - bucket by ISO-8601 calendar week
# week_grouping = "all-time"

# Color theme for the terminal UI (e.g. "dracula", "nord")
# theme = ""
`
}

// Package config provides persistence for user preferences.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/aditsuru-git/rpomodoro/internal/domain"
	"github.com/aditsuru-git/rpomodoro/internal/theme"
)

// Bounds for the editable numeric fields. Every field saturates at 1 on
// the low end.
const (
	MinValue  = 1
	MaxWork   = 120
	MaxShort  = 60
	MaxLong   = 120
	MaxCycles = 10
)

// Config holds the persisted user preferences. Durations are whole
// minutes, matching the on-disk representation.
type Config struct {
	Theme            string `mapstructure:"theme"`
	WorkDuration     int    `mapstructure:"work_duration"`
	ShortBreak       int    `mapstructure:"short_break"`
	LongBreak        int    `mapstructure:"long_break"`
	CyclesBeforeLong int    `mapstructure:"cycles_before_long"`
}

// DefaultConfig returns the built-in defaults used on first run and as the
// fallback for malformed config files.
func DefaultConfig() *Config {
	return &Config{
		Theme:            "blue",
		WorkDuration:     25,
		ShortBreak:       5,
		LongBreak:        15,
		CyclesBeforeLong: 4,
	}
}

// DefaultPath returns the config file location under the user config
// directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config directory: %w", err)
	}
	return filepath.Join(dir, "rpomodoro", "config.json"), nil
}

// Load reads the config file at path, creating it with defaults when it
// does not exist. A file that cannot be parsed yields the defaults rather
// than an error; a directory or write failure propagates.
func Load(path string) (*Config, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := Save(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return DefaultConfig(), nil
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return DefaultConfig(), nil
	}

	cfg.normalize()
	return &cfg, nil
}

// Save writes the config as JSON at path.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	v.Set("theme", cfg.Theme)
	v.Set("work_duration", cfg.WorkDuration)
	v.Set("short_break", cfg.ShortBreak)
	v.Set("long_break", cfg.LongBreak)
	v.Set("cycles_before_long", cfg.CyclesBeforeLong)

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Durations converts the minute-granularity preferences into the domain
// representation.
func (c *Config) Durations() domain.Durations {
	return domain.Durations{
		Work:             time.Duration(c.WorkDuration) * time.Minute,
		ShortBreak:       time.Duration(c.ShortBreak) * time.Minute,
		LongBreak:        time.Duration(c.LongBreak) * time.Minute,
		CyclesBeforeLong: c.CyclesBeforeLong,
	}
}

// normalize clamps loaded values into their valid ranges and drops unknown
// theme names.
func (c *Config) normalize() {
	if !theme.Valid(c.Theme) {
		c.Theme = DefaultConfig().Theme
	}
	c.WorkDuration = Clamp(c.WorkDuration, MaxWork)
	c.ShortBreak = Clamp(c.ShortBreak, MaxShort)
	c.LongBreak = Clamp(c.LongBreak, MaxLong)
	c.CyclesBeforeLong = Clamp(c.CyclesBeforeLong, MaxCycles)
}

// Clamp saturates v into [MinValue, max]. The config editor uses it for
// increment/decrement edits.
func Clamp(v, max int) int {
	if v < MinValue {
		return MinValue
	}
	if v > max {
		return max
	}
	return v
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("theme", d.Theme)
	v.SetDefault("work_duration", d.WorkDuration)
	v.SetDefault("short_break", d.ShortBreak)
	v.SetDefault("long_break", d.LongBreak)
	v.SetDefault("cycles_before_long", d.CyclesBeforeLong)
}

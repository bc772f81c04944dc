// Package config loads CLI defaults from a config file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/grindlemire/go-shadow/internal/layout"
)

// Config holds application configuration.
type Config struct {
	Layout LayoutConfig `mapstructure:"layout"`
	Log    LogConfig    `mapstructure:"log"`
}

// LayoutConfig holds the default root constraints and base direction.
type LayoutConfig struct {
	MinWidth  int    `mapstructure:"min_width"`
	MinHeight int    `mapstructure:"min_height"`
	MaxWidth  int    `mapstructure:"max_width"`
	MaxHeight int    `mapstructure:"max_height"`
	Direction string `mapstructure:"direction"`
}

// LogConfig holds debug log settings. An empty path disables logging.
type LogConfig struct {
	Path string `mapstructure:"path"`
}

// Load reads configuration from file and env. Env var overrides use prefix SHADOW_.
// The file is $SHADOW_CONFIG if set, otherwise ~/.config/shadow/config.yaml
// when present.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("layout.min_width", 0)
	v.SetDefault("layout.min_height", 0)
	v.SetDefault("layout.max_width", layout.Unbounded)
	v.SetDefault("layout.max_height", layout.Unbounded)
	v.SetDefault("layout.direction", "auto")
	v.SetDefault("log.path", "")

	v.SetConfigType("yaml")

	cfgPath := os.Getenv("SHADOW_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "shadow"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SHADOW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	l := c.Layout
	if l.MinWidth < 0 || l.MinHeight < 0 || l.MaxWidth < 0 || l.MaxHeight < 0 {
		return fmt.Errorf("config: layout sizes must not be negative")
	}
	if l.MinWidth > l.MaxWidth || l.MinHeight > l.MaxHeight {
		return fmt.Errorf("config: layout minimum exceeds maximum")
	}
	if _, _, err := ParseDirection(l.Direction); err != nil {
		return err
	}
	return nil
}

// Minimum returns the configured minimum root size.
func (l LayoutConfig) Minimum() layout.Size {
	return layout.Size{Width: l.MinWidth, Height: l.MinHeight}
}

// Maximum returns the configured maximum root size.
func (l LayoutConfig) Maximum() layout.Size {
	return layout.Size{Width: l.MaxWidth, Height: l.MaxHeight}
}

// BaseDirection returns the configured direction. ok is false for "auto",
// meaning the direction comes from the locale.
func (l LayoutConfig) BaseDirection() (dir layout.WritingDirection, ok bool) {
	dir, ok, _ = ParseDirection(l.Direction)
	return dir, ok
}

// ParseDirection parses "ltr", "rtl" or "auto" (also the empty string).
func ParseDirection(s string) (dir layout.WritingDirection, ok bool, err error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return layout.Inherit, false, nil
	case "ltr":
		return layout.LTR, true, nil
	case "rtl":
		return layout.RTL, true, nil
	default:
		return layout.Inherit, false, fmt.Errorf("config: unknown direction %q", s)
	}
}

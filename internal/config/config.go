package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/ponderhq/ponder/internal/theme"
	"github.com/ponderhq/ponder/internal/thought"
)

type NotificationsConfig struct {
	Enabled  bool `mapstructure:"enabled"`
	Rollover bool `mapstructure:"rollover"` // desktop notice when the day rolls over
}

type Config struct {
	Source        string              `mapstructure:"source"` // file path or http(s) URL
	Theme         string              `mapstructure:"theme"`
	Epoch         string              `mapstructure:"epoch"` // "YYYY-MM-DD", optional
	Notifications NotificationsConfig `mapstructure:"notifications"`
}

func Default() Config {
	return Config{
		Source: "",
		Theme:  theme.System.String(),
		Epoch:  "",
		Notifications: NotificationsConfig{
			Enabled:  true,
			Rollover: false,
		},
	}
}

func xdgConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".config", "ponder")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Load() (Config, error) {
	cfg := Default()

	path, err := xdgConfigPath()
	if err != nil {
		return cfg, err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)

	// defaults
	v.SetDefault("source", cfg.Source)
	v.SetDefault("theme", cfg.Theme)
	v.SetDefault("epoch", cfg.Epoch)
	v.SetDefault("notifications.enabled", cfg.Notifications.Enabled)
	v.SetDefault("notifications.rollover", cfg.Notifications.Rollover)

	_ = v.ReadInConfig() // ok if missing
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config unmarshal: %w", err)
	}
	return cfg, nil
}

// Save writes the whole config back to the config file. Used for the one
// mutable setting, the theme preference.
func Save(cfg Config) error {
	path, err := xdgConfigPath()
	if err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("source", cfg.Source)
	v.Set("theme", cfg.Theme)
	v.Set("epoch", cfg.Epoch)
	v.Set("notifications.enabled", cfg.Notifications.Enabled)
	v.Set("notifications.rollover", cfg.Notifications.Rollover)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("config write: %w", err)
	}
	return nil
}

// ThemePreference parses the persisted theme, falling back to system on an
// unknown value rather than failing boot.
func (c Config) ThemePreference() theme.Preference {
	p, err := theme.Parse(strings.TrimSpace(c.Theme))
	if err != nil {
		return theme.System
	}
	return p
}

// EpochTime parses the configured epoch date (UTC midnight), falling back
// to the built-in epoch when unset or unparseable.
func (c Config) EpochTime() time.Time {
	s := strings.TrimSpace(c.Epoch)
	if s == "" {
		return thought.DefaultEpoch
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return thought.DefaultEpoch
	}
	return t
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ponderhq/ponder/internal/theme"
	"github.com/ponderhq/ponder/internal/thought"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Source)
	assert.Equal(t, theme.System, cfg.ThemePreference())
	assert.True(t, cfg.Notifications.Enabled)
	assert.False(t, cfg.Notifications.Rollover)
	assert.Equal(t, thought.DefaultEpoch, cfg.EpochTime())
}

func TestSaveThenLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	cfg.Theme = theme.Dark.String()
	cfg.Source = "/tmp/thoughts.json"
	require.NoError(t, Save(cfg))

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, theme.Dark, got.ThemePreference())
	assert.Equal(t, "/tmp/thoughts.json", got.Source)
}

func TestThemePreference_BadValueFallsBack(t *testing.T) {
	cfg := Config{Theme: "mauve"}
	assert.Equal(t, theme.System, cfg.ThemePreference())
}

func TestEpochTime(t *testing.T) {
	cfg := Config{Epoch: "2025-06-15"}
	assert.Equal(t, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), cfg.EpochTime())

	assert.Equal(t, thought.DefaultEpoch, Config{Epoch: "June 15"}.EpochTime())
	assert.Equal(t, thought.DefaultEpoch, Config{}.EpochTime())
}

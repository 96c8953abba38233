package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"cloudeng.io/datetime"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, datetime.NewTimeOfDay(8, 14, 0), cfg.Sunrise)
	assert.Equal(t, datetime.NewTimeOfDay(17, 25, 0), cfg.Sunset)
	assert.InDelta(t, 9.1833, cfg.DayLengthHours, 0.001)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.GreaterOrEqual(t, cfg.Workers, 1)

	sky := cfg.Sky()
	assert.Equal(t, cfg.Sunrise, sky.Sunrise)
	assert.Equal(t, cfg.DayLengthHours, sky.DayLengthHours)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("SUNLIGHT_SUNRISE", "07:30")
	t.Setenv("SUNLIGHT_DAY_LENGTH_HOURS", "12")
	t.Setenv("SUNLIGHT_LOG_LEVEL", "debug")

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, datetime.NewTimeOfDay(7, 30, 0), cfg.Sunrise)
	assert.Equal(t, 12.0, cfg.DayLengthHours)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadFlags(t *testing.T) {
	v := New()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	require.NoError(t, BindFlags(v, fs))
	require.NoError(t, fs.Parse([]string{"--sunset", "19:00", "--workers", "2", "--min-hours", "4.5"}))

	cfg, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, datetime.NewTimeOfDay(19, 0, 0), cfg.Sunset)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 4.5, cfg.MinHours)
	assert.InDelta(t, 10.7667, cfg.DayLengthHours, 0.001)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sunlight.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sunrise: \"06:45\"\nsunset: \"20:15\"\nworkers: 3\n"), 0o600))

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, datetime.NewTimeOfDay(6, 45, 0), cfg.Sunrise)
	assert.Equal(t, datetime.NewTimeOfDay(20, 15, 0), cfg.Sunset)
	assert.Equal(t, 3, cfg.Workers)
	assert.InDelta(t, 13.5, cfg.DayLengthHours, 1e-9)

	_, err = Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string]string{
		"SUNLIGHT_SUNRISE":          "25:00",
		"SUNLIGHT_SUNSET":           "07:00",
		"SUNLIGHT_DAY_LENGTH_HOURS": "-1",
		"SUNLIGHT_WORKERS":          "0",
		"SUNLIGHT_LOG_LEVEL":        "loud",
		"SUNLIGHT_MIN_HOURS":        "-2",
	}
	for key, val := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			_, err := Load(New(), "")
			assert.Error(t, err)
		})
	}
}

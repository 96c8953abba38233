// Package config loads the sky constants and process settings from flags,
// environment variables and an optional config file.
package config

import (
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"cloudeng.io/datetime"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ChicagoDave/sunlight/pkg/neighborhood"
)

// EnvPrefix is prepended to every environment variable, e.g. SUNLIGHT_SUNRISE.
const EnvPrefix = "SUNLIGHT"

const (
	KeySunrise   = "sunrise"
	KeySunset    = "sunset"
	KeyDayLength = "day_length_hours"
	KeyWorkers   = "workers"
	KeyLogLevel  = "log_level"
	KeyMinHours  = "min_hours"
)

// Config holds the resolved settings.
type Config struct {
	Sunrise datetime.TimeOfDay
	Sunset  datetime.TimeOfDay
	// DayLengthHours defaults to the time between sunrise and sunset.
	DayLengthHours float64
	Workers        int
	LogLevel       slog.Level
	MinHours       float64
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeySunrise, "08:14")
	v.SetDefault(KeySunset, "17:25")
	v.SetDefault(KeyDayLength, 0.0)
	v.SetDefault(KeyWorkers, runtime.NumCPU())
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyMinHours, 0.0)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags registers the configuration flags on fs and binds them to v.
// Flag names use dashes, e.g. --day-length-hours.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	fs.String("sunrise", "08:14", "base sunrise time (hh:mm[:ss])")
	fs.String("sunset", "17:25", "base sunset time (hh:mm[:ss])")
	fs.Float64("day-length-hours", 0, "hours the sun takes to cross the sky (default sunset - sunrise)")
	fs.Int("workers", runtime.NumCPU(), "apartments resolved concurrently")
	fs.String("log-level", "info", "log level: debug, info, warn or error")
	fs.Float64("min-hours", 0, "report apartments with fewer hours of sunlight")
	for key, flag := range map[string]string{
		KeySunrise:   "sunrise",
		KeySunset:    "sunset",
		KeyDayLength: "day-length-hours",
		KeyWorkers:   "workers",
		KeyLogLevel:  "log-level",
		KeyMinHours:  "min-hours",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return fmt.Errorf("binding flag %s: %w", flag, err)
		}
	}
	return nil
}

// Load reads the config file, if any, and resolves v into a Config.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{
		DayLengthHours: v.GetFloat64(KeyDayLength),
		Workers:        v.GetInt(KeyWorkers),
		MinHours:       v.GetFloat64(KeyMinHours),
	}
	if err := cfg.Sunrise.Parse(v.GetString(KeySunrise)); err != nil {
		return nil, fmt.Errorf("%s: %w", KeySunrise, err)
	}
	if err := cfg.Sunset.Parse(v.GetString(KeySunset)); err != nil {
		return nil, fmt.Errorf("%s: %w", KeySunset, err)
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString(KeyLogLevel))); err != nil {
		return nil, fmt.Errorf("%s: %w", KeyLogLevel, err)
	}
	if cfg.DayLengthHours == 0 {
		cfg.DayLengthHours = (cfg.Sunset.Duration() - cfg.Sunrise.Duration()).Hours()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the settings describe a usable day.
func (c *Config) Validate() error {
	if c.Sunset.Duration() <= c.Sunrise.Duration() {
		return fmt.Errorf("sunset %v must be after sunrise %v", c.Sunset, c.Sunrise)
	}
	if !(c.DayLengthHours > 0) {
		return fmt.Errorf("%s must be greater than 0, got %v", KeyDayLength, c.DayLengthHours)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%s must be at least 1, got %d", KeyWorkers, c.Workers)
	}
	if c.MinHours < 0 {
		return fmt.Errorf("%s must not be negative, got %v", KeyMinHours, c.MinHours)
	}
	return nil
}

// Sky returns the neighborhood constants described by c.
func (c *Config) Sky() neighborhood.Sky {
	return neighborhood.Sky{
		Sunrise:        c.Sunrise,
		Sunset:         c.Sunset,
		DayLengthHours: c.DayLengthHours,
	}
}

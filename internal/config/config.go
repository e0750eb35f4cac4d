// Package config loads the not settings from flags, environment variables
// and an optional config file through viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/Geun-Oh/not/internal/compare"
	"github.com/Geun-Oh/not/internal/fault"
	"github.com/Geun-Oh/not/internal/source"
)

// EnvPrefix namespaces the environment variables read by viper, e.g.
// NOT_COMPARE or NOT_LOG_LEVEL.
const EnvPrefix = "NOT"

// Config represents the settings that may come from outside the command
// line as well as from flags.
type Config struct {
	// Compare is the comparison policy name.
	Compare string `mapstructure:"compare"`
	// Locale overrides the process locale for culture-aware policies.
	// Empty means LC_ALL, LC_MESSAGES, LANG.
	Locale string `mapstructure:"locale"`
	// LogLevel is the diagnostic log level (debug, info, warn, error, fatal).
	LogLevel string `mapstructure:"log_level"`
	// MaxLineBytes is the longest input record accepted.
	MaxLineBytes int `mapstructure:"max_line_bytes"`
	// Stats prints a run summary to stderr when set.
	Stats bool `mapstructure:"stats"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Compare:      compare.Default.String(),
		LogLevel:     "error",
		MaxLineBytes: source.DefaultMaxLine,
	}
}

// New returns a viper instance with defaults registered and environment
// lookup enabled.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// SetDefaults registers default values with v.
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("compare", defaults.Compare)
	v.SetDefault("locale", defaults.Locale)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("max_line_bytes", defaults.MaxLineBytes)
	v.SetDefault("stats", defaults.Stats)
}

// ReadFile merges the config file at path into v. The format follows the
// file extension (yaml, toml, json, ...).
func ReadFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("%w: read config %s: %w", fault.ErrConfig, path, err)
	}
	return nil
}

// Load reads the configuration from v into a Config struct and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", fault.ErrConfig, err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", fault.ErrConfig, errs)
	}

	return &cfg, nil
}

// Policy returns the parsed comparison policy. Only valid after Validate.
func (c *Config) Policy() compare.Policy {
	p, _ := compare.ParsePolicy(c.Compare)
	return p
}

// Package config loads the settings shared by the C library and the drphone
// CLI: defaults, then a TOML file, then DRPHONENUMBER_* environment
// variables, then explicit overrides.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/drlibphonenumber/dr-libphonenumber-go/pkg/phonenumber"
	"github.com/drlibphonenumber/dr-libphonenumber-go/pkg/phonenumber/logging"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "DRPHONENUMBER_"

// Environment variable names.
const (
	EnvConfigPath     = EnvPrefix + "CONFIG"
	EnvDefaultRegion  = EnvPrefix + "DEFAULT_REGION"
	EnvMaxInputLength = EnvPrefix + "MAX_INPUT_LENGTH"
	EnvLogLevel       = EnvPrefix + "LOG_LEVEL"
	EnvLogFormat      = EnvPrefix + "LOG_FORMAT"
)

// Config is the top-level configuration.
type Config struct {
	Engine  EngineConfig  `toml:"engine"`
	Logging LoggingConfig `toml:"logging"`
}

type EngineConfig struct {
	DefaultRegion  string `toml:"default_region"`
	MaxInputLength int    `toml:"max_input_length"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Default returns a Config with all defaults applied.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			MaxInputLength: phonenumber.DefaultMaxInputLength,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Overrides carries values set explicitly by a caller, typically CLI flags.
// Empty fields leave the loaded value untouched.
type Overrides struct {
	DefaultRegion string
	LogLevel      string
	LogFormat     string
}

// Load reads configuration with priority: defaults, TOML file, env vars,
// overrides. An empty path falls back to $DRPHONENUMBER_CONFIG; if neither is
// set no file is read. A path that was named but does not exist is an error.
func Load(path string, o Overrides) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("config file %s not found", path)
			}
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	applyOverrides(cfg, o)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Engine.MaxInputLength < 1 || c.Engine.MaxInputLength > phonenumber.MaxInputLengthLimit {
		return fmt.Errorf("engine.max_input_length must be between 1 and %d, got %d",
			phonenumber.MaxInputLengthLimit, c.Engine.MaxInputLength)
	}
	if c.Engine.DefaultRegion != "" {
		if _, err := phonenumber.NormalizeRegion(c.Engine.DefaultRegion); err != nil {
			return fmt.Errorf("engine.default_region: %w", err)
		}
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error; got %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("logging.format must be one of: text, json; got %q", c.Logging.Format)
	}
	return nil
}

// EngineConfig converts the engine section into phonenumber.Config.
func (c *Config) EngineConfig(log logging.Logger) phonenumber.Config {
	return phonenumber.Config{
		DefaultRegion:  c.Engine.DefaultRegion,
		MaxInputLength: c.Engine.MaxInputLength,
		Logger:         log,
	}
}

// NewLogger builds a Logger writing to w according to the logging section.
func (c *Config) NewLogger(w io.Writer) (logging.Logger, error) {
	h, err := logging.NewHandler(c.Logging.Level, c.Logging.Format, w)
	if err != nil {
		return nil, err
	}
	return logging.New(slog.New(h)), nil
}

// ToTOML returns the config serialized as TOML.
func (c *Config) ToTOML() (string, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// envInt reads an integer from the named environment variable.
// Returns an error if the value is set but not a valid integer.
func envInt(name string, dest *int) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %q is not an integer", name, v)
	}
	*dest = n
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvDefaultRegion); v != "" {
		cfg.Engine.DefaultRegion = v
	}
	if err := envInt(EnvMaxInputLength, &cfg.Engine.MaxInputLength); err != nil {
		return err
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Logging.Format = v
	}
	return nil
}

func applyOverrides(cfg *Config, o Overrides) {
	if o.DefaultRegion != "" {
		cfg.Engine.DefaultRegion = o.DefaultRegion
	}
	if o.LogLevel != "" {
		cfg.Logging.Level = o.LogLevel
	}
	if o.LogFormat != "" {
		cfg.Logging.Format = o.LogFormat
	}
}

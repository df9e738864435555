// Package config loads the optional bonemap.toml settings file.
package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"go.trai.ch/zerr"

	"bonemap/internal/autofill"
)

// DefaultPath is where the CLI looks for its configuration.
const DefaultPath = "bonemap.toml"

var (
	// ErrNotFound is returned when the configuration file does not exist.
	ErrNotFound = zerr.New("config file not found")

	// ErrInvalid is returned when the configuration cannot be decoded or fails validation.
	ErrInvalid = zerr.New("invalid config")
)

// Config is the decoded bonemap.toml.
type Config struct {
	Rig      string         `toml:"rig"`
	State    string         `toml:"state"`
	Log      LogConfig      `toml:"log"`
	AutoFill AutoFillConfig `toml:"autofill"`
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// AutoFillConfig tunes the resolver used by the autofill command.
type AutoFillConfig struct {
	MaxDistance    int `toml:"max_distance"`
	MaxSuggestions int `toml:"max_suggestions"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	af := autofill.DefaultConfig()

	return &Config{
		Rig:   "rig.yaml",
		State: ".bonemap-state.yaml",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		AutoFill: AutoFillConfig{
			MaxDistance:    af.MaxDistance,
			MaxSuggestions: af.MaxSuggestions,
		},
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Join(ErrNotFound, zerr.With(zerr.Wrap(err, "failed to read config"), "path", path))
	}

	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config"), "path", path)
	}

	return Parse(string(data))
}

// Parse decodes TOML over the defaults and validates the result.
func Parse(data string) (*Config, error) {
	cfg := Default()

	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, errors.Join(ErrInvalid, zerr.Wrap(err, "failed to parse config"))
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Join(ErrInvalid, zerr.With(zerr.New("unknown config key"), "key", undecoded[0].String()))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.Join(ErrInvalid, zerr.With(zerr.New("log.format must be text or json"), "format", c.Log.Format))
	}

	if c.AutoFill.MaxDistance < 0 {
		return errors.Join(ErrInvalid, zerr.With(zerr.New("autofill.max_distance must not be negative"),
			"max_distance", c.AutoFill.MaxDistance))
	}

	if c.AutoFill.MaxSuggestions < 0 {
		return errors.Join(ErrInvalid, zerr.With(zerr.New("autofill.max_suggestions must not be negative"),
			"max_suggestions", c.AutoFill.MaxSuggestions))
	}

	return nil
}

// Resolver returns the auto-fill configuration.
func (c *Config) Resolver() autofill.Config {
	return autofill.Config{
		MaxDistance:    c.AutoFill.MaxDistance,
		MaxSuggestions: c.AutoFill.MaxSuggestions,
	}
}

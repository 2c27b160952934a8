// Package config loads visualizer configuration from a TOML file and
// ANSYS_VISUALIZER_* environment variables.
//
// Environment variables override file values. The two mode switches
// mirror the original library's behavior in CI and documentation
// builds:
//
//   - ANSYS_VISUALIZER_TESTMODE=true forces off-screen rendering
//   - ANSYS_VISUALIZER_DOC_MODE=true forces fixed-size renders
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/errors"
)

// EnvPrefix is the prefix for all environment overrides.
const EnvPrefix = "ANSYS_VISUALIZER_"

// Fixed render size used in doc mode so generated images are stable.
const (
	DocModeWidth  = 640
	DocModeHeight = 480
)

// RedisConfig configures the optional Redis artifact cache.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MongoConfig configures the optional MongoDB scene store.
type MongoConfig struct {
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

// Config holds all visualizer settings.
type Config struct {
	// TestMode forces off-screen rendering: Show never opens the
	// interactive viewer.
	TestMode bool `toml:"test_mode"`

	// DocMode forces fixed-size renders for reproducible documentation
	// images.
	DocMode bool `toml:"doc_mode"`

	// Width and Height are the default render dimensions.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Background is the default frame background color.
	Background string `toml:"background"`

	// CacheDir is the root directory for the file cache.
	CacheDir string `toml:"cache_dir"`

	// ServiceURL is the default scene service endpoint for the client
	// and the send command.
	ServiceURL string `toml:"service_url"`

	Redis RedisConfig `toml:"redis"`
	Mongo MongoConfig `toml:"mongo"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Width:      800,
		Height:     600,
		Background: "#FFFFFF",
		ServiceURL: "http://localhost:8080",
	}
}

// DefaultPath returns the conventional config file location,
// $XDG_CONFIG_HOME/ansys-visualizer/config.toml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "ansys-visualizer", "config.toml")
}

// Load reads configuration: defaults, then the TOML file (if present),
// then environment overrides. A missing file is not an error; a
// malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if !os.IsNotExist(err) {
				return cfg, errors.Wrap(errors.ErrCodeInvalidFormat, err, "failed to parse config %s", path)
			}
		}
	}

	cfg.applyEnv()

	if cfg.DocMode {
		cfg.Width = DocModeWidth
		cfg.Height = DocModeHeight
	}
	if cfg.Background != "" {
		if err := errors.ValidateHexColor(cfg.Background); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v, ok := envBool("TESTMODE"); ok {
		c.TestMode = v
	}
	if v, ok := envBool("DOC_MODE"); ok {
		c.DocMode = v
	}
	if v := os.Getenv(EnvPrefix + "SERVICE_URL"); v != "" {
		c.ServiceURL = v
	}
	if v := os.Getenv(EnvPrefix + "CACHE_DIR"); v != "" {
		c.CacheDir = v
	}
	if v := os.Getenv(EnvPrefix + "BACKGROUND"); v != "" {
		c.Background = v
	}
	if v := os.Getenv(EnvPrefix + "REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv(EnvPrefix + "MONGO_URI"); v != "" {
		c.Mongo.URI = v
	}
}

func envBool(name string) (value, ok bool) {
	raw := os.Getenv(EnvPrefix + name)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		// Accept the original's loose convention of any non-empty
		// value meaning "on" for the mode switches.
		return true, true
	}
	return v, true
}

// OffScreen reports whether interactive viewing is disabled.
func (c Config) OffScreen() bool {
	return c.TestMode || c.DocMode
}

// Package config loads panekit settings from YAML files and the environment.
package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/odvcencio/panekit/pkg/errors"
	"github.com/odvcencio/panekit/pkg/logging"
)

const (
	dirName  = ".panekit"
	fileName = "config.yaml"
)

// Config holds all settings.
type Config struct {
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
	Tracing TracingConfig `yaml:"tracing"`
}

// UIConfig controls the frame loop.
type UIConfig struct {
	// PollInterval bounds how long a frame waits for input.
	PollInterval time.Duration `yaml:"poll_interval"`
	// FrameBudget is the frame time above which a slow frame is logged.
	FrameBudget   time.Duration `yaml:"frame_budget"`
	ExitKey       string        `yaml:"exit_key"`
	AlertDuration time.Duration `yaml:"alert_duration"`
	AlertLimit    int           `yaml:"alert_limit"`
	Mouse         bool          `yaml:"mouse"`
}

// LoggingConfig controls the log file.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Listen  string `yaml:"listen"`
}

// TracingConfig controls frame span export.
type TracingConfig struct {
	Enabled bool   `yaml:"enabled"`
	File    string `yaml:"file"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			PollInterval:  250 * time.Millisecond,
			FrameBudget:   50 * time.Millisecond,
			ExitKey:       "q",
			AlertDuration: time.Second,
			AlertLimit:    32,
			Mouse:         true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Listen: "127.0.0.1:9464",
		},
		Tracing: TracingConfig{
			File: filepath.Join("~", dirName, "traces.jsonl"),
		},
	}
}

// Load builds the config from defaults, the user file
// (~/.panekit/config.yaml), the project file (./.panekit/config.yaml) and
// PANEKIT_* environment variables, in increasing precedence.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	if home != "" {
		if err := loadFile(cfg, filepath.Join(home, dirName, fileName)); err != nil {
			return nil, err
		}
	}
	if err := loadFile(cfg, ProjectPath()); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromPath builds the config from defaults, path and the environment.
// Unlike Load, a missing file is an error.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	if err := loadAndMerge(cfg, path); err != nil {
		if errors.IsCode(err, errors.ErrCodeConfigParse) {
			return nil, err
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigLoad, "read config").WithContext("path", path)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ProjectPath returns the project config location.
func ProjectPath() string {
	return filepath.Join(".", dirName, fileName)
}

func loadFile(cfg *Config, path string) error {
	err := loadAndMerge(cfg, path)
	if err == nil || os.IsNotExist(err) {
		return nil
	}
	if errors.IsCode(err, errors.ErrCodeConfigParse) {
		return err
	}
	return errors.Wrap(err, errors.ErrCodeConfigLoad, "read config").WithContext("path", path)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PANEKIT_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("PANEKIT_LOG_FILE"); v != "" {
		cfg.Logging.File = v
	}
	if v, ok := envDuration("PANEKIT_POLL_INTERVAL"); ok {
		cfg.UI.PollInterval = v
	}
	if v, ok := envDuration("PANEKIT_ALERT_DURATION"); ok {
		cfg.UI.AlertDuration = v
	}
	if val, ok := envBool("PANEKIT_MOUSE"); ok {
		cfg.UI.Mouse = val
	}
	if val, ok := envBool("PANEKIT_METRICS_ENABLED"); ok {
		cfg.Metrics.Enabled = val
	}
	if v := os.Getenv("PANEKIT_METRICS_LISTEN"); v != "" {
		cfg.Metrics.Listen = v
	}
	if val, ok := envBool("PANEKIT_TRACING_ENABLED"); ok {
		cfg.Tracing.Enabled = val
	}
}

func envBool(key string) (bool, bool) {
	val := os.Getenv(key)
	if val == "" {
		return false, false
	}
	switch strings.ToLower(val) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	default:
		return false, false
	}
}

func envDuration(key string) (time.Duration, bool) {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return 0, false
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, false
	}
	return d, true
}

// ExitRune returns the key that ends the program while the window has focus.
func (c *Config) ExitRune() rune {
	r, _ := utf8.DecodeRuneInString(c.UI.ExitKey)
	return r
}

// LogFile returns the log path with ~ expanded.
func (c *Config) LogFile() string {
	return ExpandHome(c.Logging.File)
}

// TraceFile returns the trace path with ~ expanded.
func (c *Config) TraceFile() string {
	return ExpandHome(c.Tracing.File)
}

// Validate checks that settings are usable.
func (c *Config) Validate() error {
	invalid := func(format string, args ...any) *errors.Error {
		return errors.New(errors.ErrCodeConfigInvalid, fmt.Sprintf(format, args...))
	}

	if c.UI.PollInterval < time.Millisecond {
		return invalid("ui.poll_interval must be at least 1ms, got %s", c.UI.PollInterval).
			WithRemediation("set ui.poll_interval to a duration such as 250ms")
	}
	if c.UI.FrameBudget <= 0 {
		return invalid("ui.frame_budget must be positive, got %s", c.UI.FrameBudget)
	}
	if utf8.RuneCountInString(c.UI.ExitKey) != 1 {
		return invalid("ui.exit_key must be a single character, got %q", c.UI.ExitKey)
	}
	if c.UI.AlertDuration <= 0 {
		return invalid("ui.alert_duration must be positive, got %s", c.UI.AlertDuration)
	}
	if c.UI.AlertLimit <= 0 {
		return invalid("ui.alert_limit must be positive, got %d", c.UI.AlertLimit)
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "logging.level").
			WithRemediation("use one of debug, info, warn, error")
	}
	if c.Metrics.Enabled {
		if _, _, err := net.SplitHostPort(c.Metrics.Listen); err != nil {
			return errors.Wrap(err, errors.ErrCodeConfigInvalid, "metrics.listen")
		}
	}
	if c.Tracing.Enabled && strings.TrimSpace(c.Tracing.File) == "" {
		return invalid("tracing.file is required when tracing is enabled")
	}
	return nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil && strings.TrimSpace(home) != "" {
			return home
		}
		return path
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil && strings.TrimSpace(home) != "" {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

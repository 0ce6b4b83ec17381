package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/odvcencio/panekit/pkg/errors"
)

// loadAndMerge reads a YAML file and merges it into cfg. Read errors are
// returned unwrapped so callers can test for a missing file.
func loadAndMerge(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var override Config
	if err := yaml.Unmarshal(data, &override); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigParse, "parse config").WithContext("path", path)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigParse, "parse config").WithContext("path", path)
	}

	mergeConfigs(cfg, &override, raw)
	return nil
}

// mergeConfigs copies set fields of override into base. Booleans are only
// copied when present in raw, so an omitted key keeps the default.
func mergeConfigs(base, override *Config, raw map[string]any) {
	if override == nil {
		return
	}

	if override.UI.PollInterval != 0 {
		base.UI.PollInterval = override.UI.PollInterval
	}
	if override.UI.FrameBudget != 0 {
		base.UI.FrameBudget = override.UI.FrameBudget
	}
	if override.UI.ExitKey != "" {
		base.UI.ExitKey = override.UI.ExitKey
	}
	if override.UI.AlertDuration != 0 {
		base.UI.AlertDuration = override.UI.AlertDuration
	}
	if override.UI.AlertLimit != 0 {
		base.UI.AlertLimit = override.UI.AlertLimit
	}
	if boolFieldSet(raw, "ui", "mouse") {
		base.UI.Mouse = override.UI.Mouse
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.File != "" {
		base.Logging.File = override.Logging.File
	}

	if boolFieldSet(raw, "metrics", "enabled") {
		base.Metrics.Enabled = override.Metrics.Enabled
	}
	if override.Metrics.Listen != "" {
		base.Metrics.Listen = override.Metrics.Listen
	}

	if boolFieldSet(raw, "tracing", "enabled") {
		base.Tracing.Enabled = override.Tracing.Enabled
	}
	if override.Tracing.File != "" {
		base.Tracing.File = override.Tracing.File
	}
}

func boolFieldSet(raw map[string]any, path ...string) bool {
	if raw == nil || len(path) == 0 {
		return false
	}
	current := raw
	for i, key := range path {
		val, ok := current[key]
		if !ok {
			return false
		}
		if i == len(path)-1 {
			_, isBool := val.(bool)
			return isBool
		}
		next, ok := val.(map[string]any)
		if !ok {
			return false
		}
		current = next
	}
	return false
}

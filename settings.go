package strata

import (
	"encoding/json"
	"log/slog"
	"strings"
)

// showSettingsVar is the name suffix of the diagnostics flag variable.
const showSettingsVar = "SHOW_SETTINGS"

// shouldShowSettings reports whether the resolved configuration gets logged
// after a successful load. The gate is the {prefix}{separator}SHOW_SETTINGS
// variable, matched case-insensitively against "true", "1", "yes" and "on".
// A file-only load never emits, and an unset or unrecognized value means
// false rather than an error.
func shouldShowSettings(env Environment, param Param) bool {
	if param.Env == nil {
		return false
	}

	name := param.Env.Prefix + param.Env.separator() + showSettingsVar
	value, ok := env.LookupEnv(name)
	if !ok {
		return false
	}

	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	default:
		return false
	}
}

// emitSettings logs the resolved configuration as indented JSON.
// A render failure degrades to a plain loaded notice.
func emitSettings(logger *slog.Logger, cfg any) {
	settings, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		logger.Warn("render settings for logging", "err", err)
		logger.Info("configuration loaded")
		return
	}
	logger.Info("configuration loaded", "settings", string(settings))
}

// Package strata provides a layered configuration loader that resolves a
// typed configuration object from a structured file and/or environment
// variables under a chosen prefix.
//
// Strata merges sources with a fixed precedence (environment over file),
// decodes the merged key tree into the caller's type, and classifies every
// failure with a sentinel error while keeping the underlying diagnostic.
//
// # Key Components
//
//   - Load: the typed entry point, generic over the target type
//   - Param/EnvConfig: per-call source selection (file path, env prefix and separator)
//   - Environment: injectable variable snapshot (MapEnvironment for tests)
//   - LoadNamed/LoadFile: best-effort loaders for conventionally named YAML files
//
// # Sources and Precedence
//
// A file source is parsed by extension (.json, .yaml/.yml, .toml, .ini;
// anything else is treated as YAML). An environment source collects every
// variable under {prefix}{separator}, splits the rest of the name into a
// nested key path and coerces values (bool, integer, float, then string).
// When both sources are present the environment layer overrides the file
// layer key by key; sibling keys are preserved.
//
// # Example Usage
//
//	type AppConfig struct {
//	    Name  string `mapstructure:"name" validate:"required"`
//	    Value int    `mapstructure:"value"`
//	}
//
//	cfg, err := strata.Load[AppConfig](strata.Param{
//	    File: "config.yaml",
//	    Env:  &strata.EnvConfig{Prefix: "APP"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// With prefix APP and the default separator, APP__VALUE=42 sets Value to 42
// and overrides any value from the file.
//
// # Diagnostics
//
// Setting {prefix}{separator}SHOW_SETTINGS to a truthy value (true, 1, yes,
// on; any case) logs the fully resolved configuration as indented JSON after
// a successful environment-aware load. File-only loads never emit.
package strata

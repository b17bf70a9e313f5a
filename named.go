package strata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a single YAML configuration file into T on a best-effort
// basis: any read or parse failure reports false with no error detail.
// Use Load for typed errors and format selection.
func LoadFile[T any](path string) (T, bool) {
	var zero T

	data, err := os.ReadFile(path) //#nosec G304 -- path is caller-provided config file
	if err != nil {
		return zero, false
	}

	var cfg T
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return zero, false
	}
	return cfg, true
}

// LoadNamed loads configuration from conventionally named YAML files in the
// working directory. When the ENV variable is set and non-empty the
// candidates are config.{ENV}.yml then config.{ENV}.yaml, otherwise
// config.yml then config.yaml. The first candidate that both exists and
// parses wins; a candidate that fails to parse falls through to the next.
// Reports false when no candidate loads. This path performs no environment
// merging and no diagnostics.
func LoadNamed[T any]() (T, bool) {
	for _, path := range namedCandidates(os.Getenv("ENV")) {
		if cfg, ok := LoadFile[T](path); ok {
			return cfg, true
		}
	}

	var zero T
	return zero, false
}

func namedCandidates(env string) []string {
	if env != "" {
		return []string{
			fmt.Sprintf("config.%s.yml", env),
			fmt.Sprintf("config.%s.yaml", env),
		}
	}
	return []string{"config.yml", "config.yaml"}
}

package strata

import "path/filepath"

// Format identifies a configuration file format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatINI  Format = "ini"
)

// DetectFormat returns the format a file will be parsed as, based on its
// extension. The match is case sensitive: ".json", ".yaml", ".yml",
// ".toml" and ".ini" are recognized; any other extension, or none,
// is treated as YAML.
func DetectFormat(path string) Format {
	switch filepath.Ext(path) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	case ".ini":
		return FormatINI
	default:
		return FormatYAML
	}
}

package strata

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// layer is one configuration source resolved to a key tree.
// Later layers win over earlier ones during the merge.
type layer map[string]any

// buildLayers resolves the configured sources into ordered layers:
// file first, environment second.
func buildLayers(env Environment, param Param) ([]layer, error) {
	var layers []layer

	if param.File != "" {
		values, err := readFileSource(param.File)
		if err != nil {
			return nil, err
		}
		layers = append(layers, values)
	}

	if param.Env != nil {
		values, err := readEnvSource(env, *param.Env)
		if err != nil {
			return nil, err
		}
		layers = append(layers, values)
	}

	return layers, nil
}

// readFileSource parses the file into a key tree using the format derived
// from its extension.
func readFileSource(path string) (map[string]any, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- path is caller-provided config file
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: read %s: %w", ErrInvalidConfig, path, err)
	}

	values, err := parseFile(data, DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrInvalidConfig, path, err)
	}
	return values, nil
}

func parseFile(data []byte, format Format) (map[string]any, error) {
	values := make(map[string]any)

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &values); err != nil {
			return nil, err
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &values); err != nil {
			return nil, err
		}
	case FormatINI:
		return parseINI(data)
	default:
		if err := yaml.Unmarshal(data, &values); err != nil {
			return nil, err
		}
	}

	return values, nil
}

// parseINI lifts default-section keys to the root and keeps named sections
// as nested maps. Values stay strings; the weakly typed decode coerces
// them into the target fields.
func parseINI(data []byte) (map[string]any, error) {
	f, err := ini.Load(data)
	if err != nil {
		return nil, err
	}

	values := make(map[string]any)
	for _, section := range f.Sections() {
		target := values
		if section.Name() != ini.DefaultSection {
			nested := make(map[string]any)
			values[section.Name()] = nested
			target = nested
		}
		for _, key := range section.Keys() {
			target[key.Name()] = key.Value()
		}
	}
	return values, nil
}

// readEnvSource collects variables under the prefix into a key tree.
// A variable contributes keys only past prefix+separator: that lead is
// stripped and the remainder split on the separator into path segments,
// lower-cased to line up with file-sourced keys. A variable matching the
// bare prefix alone still counts as a prefix hit.
func readEnvSource(env Environment, cfg EnvConfig) (map[string]any, error) {
	sep := cfg.separator()
	lead := cfg.Prefix + sep

	matched := false
	vars := make(map[string]string)
	for _, pair := range env.Environ() {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || !strings.HasPrefix(name, cfg.Prefix) {
			continue
		}
		matched = true
		if len(name) <= len(lead) || !strings.HasPrefix(name, lead) {
			continue
		}
		vars[name[len(lead):]] = value
	}

	if !matched {
		return nil, fmt.Errorf("%w: %s", ErrEnvPrefixNotFound, cfg.Prefix)
	}

	// Sorted insertion keeps scalar/subtree collisions between variable
	// names deterministic: the later name replaces what an earlier one wrote.
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	values := make(map[string]any)
	for _, name := range names {
		segments := strings.Split(name, sep)
		for i := range segments {
			segments[i] = strings.ToLower(segments[i])
		}
		insertPath(values, segments, coerce(vars[name]))
	}
	return values, nil
}

// insertPath writes value at the nested key path, creating intermediate
// maps and replacing non-map values along the way.
func insertPath(tree map[string]any, path []string, value any) {
	for _, segment := range path[:len(path)-1] {
		next, ok := tree[segment].(map[string]any)
		if !ok {
			next = make(map[string]any)
			tree[segment] = next
		}
		tree = next
	}
	tree[path[len(path)-1]] = value
}

// coerce converts an environment value to the most specific type it parses
// as: the literals "true" and "false", then base-10 integers, then floats,
// then the string itself.
func coerce(value string) any {
	switch value {
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	return value
}

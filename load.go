package strata

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load resolves a configuration object of type T from the sources selected
// by param. When both a file and an environment source are configured their
// layers merge key by key with environment values winning over file values,
// sibling keys untouched. The merged tree is decoded into T with weak
// typing (strings coerce into numeric, boolean and duration fields); when T
// is a struct, its `validate` tags run against the decoded value, so
// `validate:"required"` marks a field that every load must supply.
//
// Failures are classified by the package sentinel errors and checked with
// errors.Is; the wrapped message keeps the underlying diagnostic.
//
//	cfg, err := strata.Load[AppConfig](strata.Param{
//	    File: "config.yaml",
//	    Env:  &strata.EnvConfig{Prefix: "APP"},
//	})
func Load[T any](param Param, opts ...Option) (T, error) {
	var zero T
	opt := newOptions(opts)

	logParams(opt.logger, param)

	if err := validateParam(param); err != nil {
		return zero, err
	}

	layers, err := buildLayers(opt.env, param)
	if err != nil {
		return zero, err
	}

	cfg, err := decode[T](layers, opt.strict)
	if err != nil {
		return zero, err
	}

	if shouldShowSettings(opt.env, param) {
		emitSettings(opt.logger, cfg)
	}

	return cfg, nil
}

// validateParam checks that param names at least one source and that the
// environment prefix cannot be confused with a key path. Pure function of
// its input.
func validateParam(param Param) error {
	if param.File == "" && param.Env == nil {
		return ErrNoSource
	}

	if param.Env != nil {
		if param.Env.Prefix == "" {
			return fmt.Errorf("%w: prefix is empty", ErrInvalidEnvPrefix)
		}
		if sep := param.Env.separator(); strings.Contains(param.Env.Prefix, sep) {
			return fmt.Errorf("%w: prefix %q contains separator %q", ErrInvalidEnvPrefix, param.Env.Prefix, sep)
		}
	}

	return nil
}

// decode folds the layers into one key tree and deserializes it into T.
func decode[T any](layers []layer, strict bool) (T, error) {
	var cfg T

	v := viper.New()
	if err := v.MergeConfigMap(mergeLayers(layers)); err != nil {
		return cfg, fmt.Errorf("%w: merge layers: %w", ErrInvalidConfig, err)
	}

	unmarshal := v.Unmarshal
	if strict {
		unmarshal = v.UnmarshalExact
	}
	if err := unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("%w: decode: %w", ErrInvalidConfig, err)
	}

	if reflect.ValueOf(&cfg).Elem().Kind() == reflect.Struct {
		validate := validator.New()
		if err := validate.Struct(&cfg); err != nil {
			return cfg, fmt.Errorf("%w: validate: %w", ErrInvalidConfig, err)
		}
	}

	return cfg, nil
}

// mergeLayers folds the ordered layers into a single key tree with the later
// layer winning key by key, so an environment value replaces a file value
// even when a scalar lands on a subtree or a subtree on a scalar.
func mergeLayers(layers []layer) map[string]any {
	merged := make(map[string]any)
	for _, l := range layers {
		mergeTree(merged, l)
	}
	return merged
}

// mergeTree writes src into dst, lower-casing keys to match the casing the
// decode step uses. Maps merge recursively; any other pairing is replaced
// by the src value.
func mergeTree(dst, src map[string]any) {
	for key, value := range src {
		key = strings.ToLower(key)
		if srcMap, ok := value.(map[string]any); ok {
			dstMap, ok := dst[key].(map[string]any)
			if !ok {
				dstMap = make(map[string]any)
				dst[key] = dstMap
			}
			mergeTree(dstMap, srcMap)
			continue
		}
		dst[key] = value
	}
}

// logParams records the requested sources before any of them is touched.
func logParams(logger *slog.Logger, param Param) {
	if param.File != "" {
		logger.Info("loading configuration from file", "file", param.File, "format", DetectFormat(param.File))
	}
	if param.Env != nil {
		logger.Info("loading configuration from environment", "prefix", param.Env.Prefix, "separator", param.Env.separator())
	}
}

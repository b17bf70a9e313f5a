package strata_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarc03/strata"
)

// captureLogger returns a logger writing plain text into a buffer.
func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), &buf
}

func TestLoad_ShowSettingsTruthTable(t *testing.T) {
	tt := []struct {
		Name  string
		Value string
		Want  bool
	}{
		{Name: "true", Value: "true", Want: true},
		{Name: "true upper", Value: "TRUE", Want: true},
		{Name: "one", Value: "1", Want: true},
		{Name: "yes", Value: "yes", Want: true},
		{Name: "yes mixed case", Value: "Yes", Want: true},
		{Name: "on", Value: "on", Want: true},
		{Name: "on upper", Value: "ON", Want: true},
		{Name: "false", Value: "false", Want: false},
		{Name: "zero", Value: "0", Want: false},
		{Name: "no", Value: "no", Want: false},
		{Name: "off", Value: "off", Want: false},
		{Name: "unparsable", Value: "invalid", Want: false},
	}

	for _, tc := range tt {
		t.Run(tc.Name, func(t *testing.T) {
			logger, buf := captureLogger()
			env := strata.MapEnvironment{
				"APP__NAME":          "test",
				"APP__SHOW_SETTINGS": tc.Value,
			}

			_, err := strata.Load[testConfig](
				strata.Param{Env: &strata.EnvConfig{Prefix: "APP"}},
				strata.WithEnvironment(env),
				strata.WithLogger(logger),
			)
			require.NoError(t, err)

			if tc.Want {
				assert.Contains(t, buf.String(), "configuration loaded")
			} else {
				assert.NotContains(t, buf.String(), "configuration loaded")
			}
		})
	}
}

func TestLoad_ShowSettingsUnset(t *testing.T) {
	logger, buf := captureLogger()
	env := strata.MapEnvironment{"APP__NAME": "test"}

	_, err := strata.Load[testConfig](
		strata.Param{Env: &strata.EnvConfig{Prefix: "APP"}},
		strata.WithEnvironment(env),
		strata.WithLogger(logger),
	)
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "configuration loaded")
}

func TestLoad_ShowSettingsNeverOnFileOnly(t *testing.T) {
	logger, buf := captureLogger()
	path := writeConfig(t, "config.yaml", "name: test\n")
	env := strata.MapEnvironment{"APP__SHOW_SETTINGS": "true"}

	_, err := strata.Load[testConfig](
		strata.Param{File: path},
		strata.WithEnvironment(env),
		strata.WithLogger(logger),
	)
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "configuration loaded")
}

func TestLoad_ShowSettingsRendersConfig(t *testing.T) {
	logger, buf := captureLogger()
	env := strata.MapEnvironment{
		"APP__NAME":          "rendered-name",
		"APP__SHOW_SETTINGS": "true",
	}

	_, err := strata.Load[testConfig](
		strata.Param{Env: &strata.EnvConfig{Prefix: "APP"}},
		strata.WithEnvironment(env),
		strata.WithLogger(logger),
	)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "configuration loaded")
	assert.Contains(t, out, "rendered-name")
}

func TestLoad_ShowSettingsRenderFailure(t *testing.T) {
	// A channel field decodes fine under mapstructure:"-" but cannot be
	// rendered as JSON; the load still succeeds with a plain loaded notice.
	type unrenderableConfig struct {
		Name string   `mapstructure:"name"`
		Done chan int `mapstructure:"-"`
	}

	logger, buf := captureLogger()
	env := strata.MapEnvironment{
		"APP__NAME":          "test",
		"APP__SHOW_SETTINGS": "true",
	}

	_, err := strata.Load[unrenderableConfig](
		strata.Param{Env: &strata.EnvConfig{Prefix: "APP"}},
		strata.WithEnvironment(env),
		strata.WithLogger(logger),
	)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "render settings for logging")
	assert.Contains(t, out, "configuration loaded")
	assert.NotContains(t, out, "settings=")
}

func TestLoad_ShowSettingsCustomSeparator(t *testing.T) {
	logger, buf := captureLogger()
	env := strata.MapEnvironment{
		"APP-NAME":          "test",
		"APP-SHOW_SETTINGS": "on",
	}

	_, err := strata.Load[testConfig](
		strata.Param{Env: &strata.EnvConfig{Prefix: "APP", Separator: "-"}},
		strata.WithEnvironment(env),
		strata.WithLogger(logger),
	)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "configuration loaded")
}

func TestLoad_LogsRequestedSources(t *testing.T) {
	logger, buf := captureLogger()
	path := writeConfig(t, "config.yaml", "name: test\n")
	env := strata.MapEnvironment{"APP__VALUE": "1"}

	_, err := strata.Load[testConfig](
		strata.Param{File: path, Env: &strata.EnvConfig{Prefix: "APP"}},
		strata.WithEnvironment(env),
		strata.WithLogger(logger),
	)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "loading configuration from file")
	assert.Contains(t, out, "loading configuration from environment")
}

package strata

import "log/slog"

// DefaultSeparator is the separator used when EnvConfig.Separator is empty.
const DefaultSeparator = "__"

// EnvConfig describes an environment variable source.
type EnvConfig struct {
	// Prefix selects which variables belong to this configuration,
	// e.g. prefix "APP" with the default separator matches APP__SERVER__PORT.
	// Must be non-empty and must not contain the separator.
	Prefix string
	// Separator splits a variable name into nested key segments.
	// Empty means DefaultSeparator.
	Separator string
}

// separator returns the effective separator with the default applied.
func (e EnvConfig) separator() string {
	if e.Separator == "" {
		return DefaultSeparator
	}
	return e.Separator
}

// Param selects the sources for one Load call. At least one of File and
// Env must be set.
type Param struct {
	// File is the path of a configuration file. Empty means no file source.
	File string
	// Env enables the environment variable source. Nil means no environment source.
	Env *EnvConfig
}

// Option configures a Load call.
type Option func(*options)

// options holds the resolved per-call settings.
type options struct {
	env    Environment
	logger *slog.Logger
	strict bool
}

// WithEnvironment sets the environment snapshot variables are read from.
// The default is the process environment.
func WithEnvironment(env Environment) Option {
	return func(o *options) { o.env = env }
}

// WithLogger sets the logger used for load progress and settings output.
// The default is slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// StrictKeys makes Load fail when a source contains a key the target type
// does not declare.
func StrictKeys() Option {
	return func(o *options) { o.strict = true }
}

func newOptions(opts []Option) options {
	o := options{
		env:    osEnvironment{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

package strata

import "errors"

var (
	// ErrNoSource is returned when neither a file nor an environment source is configured
	ErrNoSource = errors.New("no configuration source")
	// ErrInvalidEnvPrefix is returned when the environment prefix is empty or contains the separator
	ErrInvalidEnvPrefix = errors.New("invalid environment prefix")
	// ErrFileNotFound is returned when the configured file does not exist
	ErrFileNotFound = errors.New("configuration file not found")
	// ErrEnvPrefixNotFound is returned when no environment variable starts with the prefix
	ErrEnvPrefixNotFound = errors.New("environment prefix not found")
	// ErrInvalidConfig is returned when sources cannot be parsed, merged, or decoded into the target
	ErrInvalidConfig = errors.New("invalid configuration")
)

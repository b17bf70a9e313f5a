package strata

import (
	"os"
	"sort"
)

// Environment is a read-only snapshot of environment variables. Load reads
// the process environment unless WithEnvironment supplies a replacement.
type Environment interface {
	// Environ lists all variables as "KEY=VALUE" pairs.
	Environ() []string
	// LookupEnv returns the value of a variable and whether it is set.
	LookupEnv(key string) (string, bool)
}

// osEnvironment reads from the process environment.
type osEnvironment struct{}

func (osEnvironment) Environ() []string { return os.Environ() }

func (osEnvironment) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }

// MapEnvironment is an in-memory Environment backed by a map.
// Suitable for tests and for replaying captured variable sets.
type MapEnvironment map[string]string

// Environ lists the map entries as "KEY=VALUE" pairs in key order.
func (m MapEnvironment) Environ() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+m[k])
	}
	return pairs
}

// LookupEnv returns the value for key and whether it is present in the map.
func (m MapEnvironment) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

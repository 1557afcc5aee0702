package config

import (
	"os"
)

// DebugEnvVar toggles verbose logging when set to any non-empty value
const DebugEnvVar = "SLS_DEBUG"

// EnvLoader reads the process environment on every call
type EnvLoader struct {
	lookup func(string) (string, bool)
}

// NewEnvLoader creates a loader backed by os.LookupEnv
func NewEnvLoader() *EnvLoader { return &EnvLoader{lookup: os.LookupEnv} }

// NewEnvLoaderWithLookup creates a loader backed by a custom lookup function
func NewEnvLoaderWithLookup(lookup func(string) (string, bool)) *EnvLoader {
	return &EnvLoader{lookup: lookup}
}

// DebugEnabled reports whether SLS_DEBUG is currently set and non-empty
func (l *EnvLoader) DebugEnabled() bool {
	v, ok := l.lookup(DebugEnvVar)
	return ok && v != ""
}

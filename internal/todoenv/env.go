// Package todoenv reads the environment variables that override rtodo
// configuration.
package todoenv

import (
	"os"
	"strings"
)

const (
	// FileEnvVar overrides the todo store path.
	FileEnvVar = "RTODO_FILE"
	// ConfigEnvVar overrides the config file path.
	ConfigEnvVar = "RTODO_CONFIG"
	// LogLevelEnvVar overrides the configured log level.
	LogLevelEnvVar = "RTODO_LOG_LEVEL"
)

// StorePath returns the store path set in the environment, if any.
func StorePath() string {
	return lookup(FileEnvVar)
}

// ConfigPath returns the config path set in the environment, if any.
func ConfigPath() string {
	return lookup(ConfigEnvVar)
}

// LogLevel returns the log level set in the environment, if any.
func LogLevel() string {
	return lookup(LogLevelEnvVar)
}

// FirstNonEmpty returns the first value that is not blank.
func FirstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func lookup(name string) string {
	return strings.TrimSpace(os.Getenv(name))
}

package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is the component-scoped logging surface used across the application
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// LevelFromEnv determines the log level from LOG_LEVEL, falling back to DEBUG=1
func LevelFromEnv() zerolog.Level {
	return ParseLevel(os.Getenv("LOG_LEVEL"), os.Getenv("DEBUG") == "1")
}

// ParseLevel maps a level name to a zerolog level. Unknown names yield info,
// or debug when debugFallback is set.
func ParseLevel(name string, debugFallback bool) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		if debugFallback {
			return zerolog.DebugLevel
		}
		return zerolog.InfoLevel
	}
}

package logger

import (
	"strings"

	"github.com/rs/zerolog"
)

type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warning(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}

// ParseLevel maps a LOG_LEVEL style value to a zerolog level.
// Empty or unrecognised values fall back to info.
func ParseLevel(value string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Nop discards everything.
type Nop struct{}

func (Nop) Debug(msg string, fields map[string]interface{})            {}
func (Nop) Info(msg string, fields map[string]interface{})             {}
func (Nop) Warning(msg string, fields map[string]interface{})          {}
func (Nop) Error(msg string, err error, fields map[string]interface{}) {}

package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Named returns a child of the global logger for one component
// (e.g. "actor", "catalog"). Call it after Init; children created
// earlier keep the logger that was current at the time.
func Named(component string) *zap.Logger {
	return Log.Named(component)
}

// Debug logs on the global logger.
func Debug(msg string, fields ...zap.Field) { Log.Debug(msg, fields...) }

// Info logs on the global logger.
func Info(msg string, fields ...zap.Field) { Log.Info(msg, fields...) }

// Warn logs on the global logger.
func Warn(msg string, fields ...zap.Field) { Log.Warn(msg, fields...) }

// Error logs on the global logger.
func Error(msg string, fields ...zap.Field) { Log.Error(msg, fields...) }

// Character tags a log entry with the character it concerns.
func Character(name string) zap.Field {
	return zap.String("character", name)
}

// Event tags a log entry with a resolved animation event.
func Event(event fmt.Stringer) zap.Field {
	return zap.Stringer("event", event)
}

// Request tags a log entry with a playback request id.
func Request(id fmt.Stringer) zap.Field {
	return zap.Stringer("request", id)
}

package logger

import (
	"sync"
)

var (
	defaultLogger = New("")
	defaultMu     sync.RWMutex
)

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger. A nil logger is ignored.
func SetDefault(l *Logger) {
	if l == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Error logs at error level using the default logger
func Error(args ...any) {
	Default().Error(args...)
}

// Warn logs at warn level using the default logger
func Warn(args ...any) {
	Default().Warn(args...)
}

// Info logs at info level using the default logger
func Info(args ...any) {
	Default().Info(args...)
}

// Verbose logs at verbose level using the default logger
func Verbose(args ...any) {
	Default().Verbose(args...)
}

// Debug logs at debug level using the default logger
func Debug(args ...any) {
	Default().Debug(args...)
}

// Silly logs at silly level using the default logger
func Silly(args ...any) {
	Default().Silly(args...)
}

package logger

import (
	"github.com/Philipp01105/labellog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	ErrorLevel   = core.ErrorLevel
	WarnLevel    = core.WarnLevel
	InfoLevel    = core.InfoLevel
	VerboseLevel = core.VerboseLevel
	DebugLevel   = core.DebugLevel
	SillyLevel   = core.SillyLevel
)

// ErrInvalidArgument is returned, wrapped, by setters that reject their input.
var ErrInvalidArgument = core.ErrInvalidArgument

// Undefined renders as "undefined" when passed as a log argument.
var Undefined = core.Undefined

// ParseLevel converts a lowercase level name to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}

// Levels returns the name to value mapping of all levels
func Levels() map[string]Level {
	return core.Levels()
}

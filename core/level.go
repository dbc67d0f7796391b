package core

import (
	"strconv"

	"github.com/pkg/errors"
)

// Level represents the severity of a log entry. Lower values are more severe.
type Level int8

const (
	// ErrorLevel for failures that need attention
	ErrorLevel Level = iota
	// WarnLevel for unexpected but recoverable conditions
	WarnLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// VerboseLevel for extra detail on normal operation
	VerboseLevel
	// DebugLevel for debugging information
	DebugLevel
	// SillyLevel for everything else
	SillyLevel
)

// MinLevel and MaxLevel bound the valid thresholds.
const (
	MinLevel = ErrorLevel
	MaxLevel = SillyLevel
)

// levelNames is indexed by Level and never modified.
var levelNames = [...]string{
	ErrorLevel:   "error",
	WarnLevel:    "warn",
	InfoLevel:    "info",
	VerboseLevel: "verbose",
	DebugLevel:   "debug",
	SillyLevel:   "silly",
}

// AllLevels lists every level in severity order.
var AllLevels = [...]Level{ErrorLevel, WarnLevel, InfoLevel, VerboseLevel, DebugLevel, SillyLevel}

// String returns the lowercase name of the level
func (l Level) String() string {
	if l.Valid() {
		return levelNames[l]
	}
	return "level(" + strconv.Itoa(int(l)) + ")"
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l >= MinLevel && l <= MaxLevel
}

// IsErrorStream reports whether entries at this level belong on the error sink.
func (l Level) IsErrorStream() bool {
	return l <= WarnLevel
}

// Levels returns the name to value mapping of all levels.
// The returned map is a fresh copy; mutating it has no effect on the package.
func Levels() map[string]Level {
	m := make(map[string]Level, len(levelNames))
	for i, name := range levelNames {
		m[name] = Level(i)
	}
	return m
}

// ParseLevel converts a lowercase level name to a Level.
func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if name == s {
			return Level(i), nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "unknown level %q", s)
}

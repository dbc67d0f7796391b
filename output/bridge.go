package output

import (
	"log/slog"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

// The bridges below hand already formatted lines to another logging
// library. The target's own level filter still applies on top of the
// labellog threshold.

// Slog writes log lines at slog.LevelInfo and error lines at slog.LevelError.
func Slog(l *slog.Logger) Output {
	return Output{
		Log:   func(line string) { l.Info(line) },
		Error: func(line string) { l.Error(line) },
	}
}

// Zap writes log lines with Info and error lines with Error.
func Zap(l *zap.Logger) Output {
	return Output{
		Log:   func(line string) { l.Info(line) },
		Error: func(line string) { l.Error(line) },
	}
}

// Zerolog writes log lines as info events and error lines as error events.
func Zerolog(l zerolog.Logger) Output {
	return Output{
		Log:   func(line string) { l.Info().Msg(line) },
		Error: func(line string) { l.Error().Msg(line) },
	}
}

// Logrus writes log lines with Info and error lines with Error.
func Logrus(l logrus.FieldLogger) Output {
	return Output{
		Log:   func(line string) { l.Info(line) },
		Error: func(line string) { l.Error(line) },
	}
}

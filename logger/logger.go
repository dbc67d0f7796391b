package logger

import (
	"os"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/Philipp01105/labellog/core"
	"github.com/Philipp01105/labellog/formatter"
	"github.com/Philipp01105/labellog/output"
)

// DebugEnv is the environment variable consulted once when a Logger is
// created. The value "*" or the logger's own label raises the default
// threshold from info to debug.
const DebugEnv = "DEBUG"

// Logger is a leveled logger with an optional label.
//
// The threshold, output pair and format function are each swapped
// atomically, so setters may be called from any goroutine, including from
// inside a sink while a line is being written.
//
// The zero Logger has no output and discards every call; use New or a
// Builder to get a working one.
type Logger struct {
	label     string
	threshold atomic.Int32
	out       atomic.Pointer[output.Output]
	format    atomic.Pointer[formatter.FormatFunc]
	now       func() time.Time
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	label     string
	level     *core.Level
	out       *output.Output
	format    formatter.FormatFunc
	formatSet bool
	now       func() time.Time
	lookupEnv func(string) (string, bool)
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		now:       time.Now,
		lookupEnv: os.LookupEnv,
	}
}

// WithLabel sets the label printed on every line
func (b *Builder) WithLabel(label string) *Builder {
	b.label = label
	return b
}

// WithLevel sets the initial threshold, overriding the DEBUG environment variable
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = &level
	return b
}

// WithOutput sets the sink pair
func (b *Builder) WithOutput(out output.Output) *Builder {
	b.out = &out
	return b
}

// WithFormatFunction sets the format function
func (b *Builder) WithFormatFunction(fn formatter.FormatFunc) *Builder {
	b.format = fn
	b.formatSet = true
	return b
}

// WithClock sets the time source used for timestamps
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

// WithLookupEnv sets how the DEBUG environment variable is read
func (b *Builder) WithLookupEnv(lookup func(string) (string, bool)) *Builder {
	b.lookupEnv = lookup
	return b
}

// Build validates the configuration and creates the Logger instance.
// Invalid settings fail with core.ErrInvalidArgument.
func (b *Builder) Build() (*Logger, error) {
	if b.now == nil {
		return nil, errors.Wrap(core.ErrInvalidArgument, "build logger: clock is nil")
	}
	if b.lookupEnv == nil {
		return nil, errors.Wrap(core.ErrInvalidArgument, "build logger: env lookup is nil")
	}

	level := defaultLevel(b.label, b.lookupEnv)
	if b.level != nil {
		if err := validateLevel(*b.level); err != nil {
			return nil, errors.WithMessage(err, "build logger")
		}
		level = *b.level
	}

	out := output.Std()
	if b.out != nil {
		n, err := b.out.Normalize()
		if err != nil {
			return nil, errors.WithMessage(err, "build logger")
		}
		out = n
	}

	format := formatter.FormatFunc(formatter.Text)
	if b.formatSet {
		if b.format == nil {
			return nil, errors.Wrap(core.ErrInvalidArgument, "build logger: format function is nil")
		}
		format = b.format
	}

	return newLogger(b.label, level, out, format, b.now), nil
}

// New creates a Logger with the given label, writing to stdout and stderr
// with the default text format. The threshold is info, or debug when the
// DEBUG environment variable is "*" or equals the non-empty label.
func New(label string) *Logger {
	return newLogger(label, defaultLevel(label, os.LookupEnv), output.Std(), formatter.Text, time.Now)
}

func newLogger(label string, level core.Level, out output.Output, format formatter.FormatFunc, now func() time.Time) *Logger {
	l := &Logger{label: label, now: now}
	l.threshold.Store(int32(level))
	l.out.Store(&out)
	l.format.Store(&format)
	return l
}

func defaultLevel(label string, lookup func(string) (string, bool)) core.Level {
	v, ok := lookup(DebugEnv)
	if ok && (v == "*" || (label != "" && v == label)) {
		return core.DebugLevel
	}
	return core.InfoLevel
}

func validateLevel(level core.Level) error {
	if !level.Valid() {
		return errors.Wrapf(core.ErrInvalidArgument, "level %d is out of range [%d, %d]",
			level, core.MinLevel, core.MaxLevel)
	}
	return nil
}

// Label returns the label given at construction
func (l *Logger) Label() string {
	return l.label
}

// Level returns the current threshold
func (l *Logger) Level() core.Level {
	return core.Level(l.threshold.Load())
}

// Levels returns the name to value mapping of all levels.
func (l *Logger) Levels() map[string]core.Level {
	return core.Levels()
}

// Enabled reports whether a call at level would be written.
func (l *Logger) Enabled(level core.Level) bool {
	return level.Valid() && level <= l.Level()
}

// SetLevel sets the threshold. Every level whose value is less than or
// equal to it is written; the rest are discarded without formatting.
func (l *Logger) SetLevel(level core.Level) error {
	if err := validateLevel(level); err != nil {
		return errors.WithMessage(err, "set level")
	}
	l.threshold.Store(int32(level))
	return nil
}

// SetLevelName sets the threshold from a level name such as "debug".
func (l *Logger) SetLevelName(name string) error {
	level, err := core.ParseLevel(name)
	if err != nil {
		return errors.WithMessage(err, "set level")
	}
	return l.SetLevel(level)
}

// SetOutput replaces both sinks at once. A nil Error sink reuses Log;
// a nil Log sink is rejected and the current sinks are kept.
func (l *Logger) SetOutput(out output.Output) error {
	n, err := out.Normalize()
	if err != nil {
		return errors.WithMessage(err, "set output")
	}
	l.out.Store(&n)
	return nil
}

// SetFormatFunction replaces the format function used by subsequent calls.
func (l *Logger) SetFormatFunction(fn formatter.FormatFunc) error {
	if fn == nil {
		return errors.Wrap(core.ErrInvalidArgument, "set format function: function is nil")
	}
	l.format.Store(&fn)
	return nil
}

// Log writes args at the given level if it is enabled
func (l *Logger) Log(level core.Level, args ...any) {
	if !l.Enabled(level) {
		return
	}
	l.write(level, args)
}

// write formats and dispatches an enabled call. The format function and
// output are loaded once, so a setter running inside the sink only affects
// later calls.
func (l *Logger) write(level core.Level, args []any) {
	format, out := l.format.Load(), l.out.Load()
	if format == nil || out == nil {
		return
	}
	now := l.now
	if now == nil {
		now = time.Now
	}
	out.For(level)((*format)(now(), level.String(), l.label, args))
}

// Error logs at error level to the error sink
func (l *Logger) Error(args ...any) {
	if core.ErrorLevel > l.Level() {
		return
	}
	l.write(core.ErrorLevel, args)
}

// Warn logs at warn level to the error sink
func (l *Logger) Warn(args ...any) {
	if core.WarnLevel > l.Level() {
		return
	}
	l.write(core.WarnLevel, args)
}

// Info logs at info level
func (l *Logger) Info(args ...any) {
	if core.InfoLevel > l.Level() {
		return
	}
	l.write(core.InfoLevel, args)
}

// Verbose logs at verbose level
func (l *Logger) Verbose(args ...any) {
	if core.VerboseLevel > l.Level() {
		return
	}
	l.write(core.VerboseLevel, args)
}

// Debug logs at debug level
func (l *Logger) Debug(args ...any) {
	if core.DebugLevel > l.Level() {
		return
	}
	l.write(core.DebugLevel, args)
}

// Silly logs at silly level
func (l *Logger) Silly(args ...any) {
	if core.SillyLevel > l.Level() {
		return
	}
	l.write(core.SillyLevel, args)
}

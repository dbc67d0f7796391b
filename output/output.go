package output

import (
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"

	"github.com/Philipp01105/labellog/core"
)

// Sink receives one fully formatted log line.
// A panicking sink propagates to the caller of the level method.
type Sink func(line string)

// Output is the pair of sinks a logger writes to. Error and Warn lines go
// to Error, every other level to Log.
type Output struct {
	// Log receives info, verbose, debug and silly lines. Required.
	Log Sink
	// Error receives error and warn lines. When nil, Log is used.
	Error Sink
}

// Normalize validates o and fills in the Error sink from Log when it is
// missing. It fails with core.ErrInvalidArgument if Log is nil.
func (o Output) Normalize() (Output, error) {
	if o.Log == nil {
		return Output{}, errors.Wrap(core.ErrInvalidArgument, "output: Log sink is required")
	}
	if o.Error == nil {
		o.Error = o.Log
	}
	return o, nil
}

// For returns the sink that lines at the given level are written to.
// o must be normalized.
func (o Output) For(level core.Level) Sink {
	if level.IsErrorStream() {
		return o.Error
	}
	return o.Log
}

// Discard drops every line.
var Discard = Output{Log: func(string) {}}

// Std writes log lines to stdout and error lines to stderr.
func Std() Output {
	return Console(os.Stdout, os.Stderr)
}

// Console writes each line, newline terminated, to stdout or stderr. Writes
// to each writer are serialized. A nil stderr sends every line to stdout
// under a single lock.
func Console(stdout, stderr io.Writer) Output {
	out := &lockedWriter{w: stdout}
	if stderr == nil {
		return Output{Log: out.writeLine, Error: out.writeLine}
	}
	errOut := &lockedWriter{w: stderr}
	return Output{Log: out.writeLine, Error: errOut.writeLine}
}

// lockedWriter attaches a mutex to an io.Writer.
type lockedWriter struct {
	mu  sync.Mutex
	w   io.Writer
	buf []byte
}

// writeLine ignores write errors, as the standard streams do.
func (lw *lockedWriter) writeLine(line string) {
	lw.mu.Lock()
	lw.buf = append(append(lw.buf[:0], line...), '\n')
	_, _ = lw.w.Write(lw.buf)
	lw.mu.Unlock()
}

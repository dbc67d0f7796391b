// Package output provides the sink pairs a logger writes formatted lines to.
//
// An Output holds two Sinks: Log for info and lower-severity lines and
// Error for error and warn lines. Only Log is required; Normalize fills in
// a missing Error sink with Log and rejects an Output without Log.
//
// Built-in outputs:
//
//   - Std writes to os.Stdout and os.Stderr; Console to any pair of writers.
//   - Multi fans lines out to several outputs.
//   - Slog, Zap, Zerolog and Logrus forward lines to an existing logger of
//     those libraries, so labellog can sit in front of an application's
//     established logging pipeline.
//   - Recorder keeps lines in memory and Testing writes them to t.Log.
//   - Discard drops everything.
//
// Sinks are called synchronously on the logging goroutine. The logger does
// not recover panics raised by a sink.
package output

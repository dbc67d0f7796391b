// Package formatter turns a log call into the single line handed to a sink.
//
// A FormatFunc receives the call time, the level name, the logger label
// and the raw arguments, and returns the finished line. Loggers accept any
// FormatFunc, so custom layouts are plain functions.
//
// Text is the default layout, "<ISO-8601> <level>[ <label>]: <message>",
// with the timestamp in UTC at millisecond precision. NewText builds a
// TextFormatter with a different timestamp layout or location; its Format
// method satisfies FormatFunc.
//
// Formatting uses a pooled bytes.Buffer. Buffers larger than 64 KiB are
// not returned to the pool to prevent a single large log line from
// permanently inflating memory usage.
package formatter

package formatter

import (
	"bytes"
	"sync"
	"time"

	"github.com/Philipp01105/labellog/core"
)

// FormatFunc renders one log call into the line handed to a sink.
//
// It receives the time of the call, the lowercase level name, the logger's
// label (empty when the logger has none) and the arguments exactly as they
// were passed to the level method.
type FormatFunc func(t time.Time, level string, label string, args []any) string

// ISO8601 is the default timestamp layout: UTC with millisecond precision.
const ISO8601 = "2006-01-02T15:04:05.000Z07:00"

// Text is the default FormatFunc. It produces
//
//	<timestamp> <level>[ <label>]: <joined args>
//
// where the label segment is omitted when label is empty.
func Text(t time.Time, level string, label string, args []any) string {
	return defaultText.Format(t, level, label, args)
}

var defaultText = NewText(Config{})

// Config holds text formatter configuration
type Config struct {
	// TimestampFormat specifies the time layout (empty for ISO8601)
	TimestampFormat string
	// Local keeps the timestamp in its own location instead of UTC
	Local bool
}

// TextFormatter renders lines in the default layout with a configurable
// timestamp.
type TextFormatter struct {
	Config
}

// NewText creates a new text formatter
func NewText(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = ISO8601
	}
	return &TextFormatter{Config: cfg}
}

// Format implements FormatFunc; pass f.Format wherever a FormatFunc is expected.
func (f *TextFormatter) Format(t time.Time, level string, label string, args []any) string {
	buf := getBuffer()
	defer putBuffer(buf)

	if !f.Local {
		t = t.UTC()
	}
	buf.Write(t.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	buf.WriteByte(' ')
	buf.WriteString(level)
	if label != "" {
		buf.WriteByte(' ')
		buf.WriteString(label)
	}
	buf.WriteString(": ")
	buf.WriteString(core.JoinArgs(args))

	return buf.String()
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

package output

import "sync"

// Stream identifies which sink of an Output received a line.
type Stream uint8

const (
	// LogStream is the Output.Log sink
	LogStream Stream = iota
	// ErrorStream is the Output.Error sink
	ErrorStream
)

// String returns the string representation of the stream
func (s Stream) String() string {
	switch s {
	case LogStream:
		return "log"
	case ErrorStream:
		return "error"
	default:
		return "unknown"
	}
}

// Record is one line captured by a Recorder.
type Record struct {
	Stream Stream
	Line   string
}

// Recorder captures lines in memory. It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	records []Record
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Output returns an Output whose sinks append to the recorder.
func (r *Recorder) Output() Output {
	return Output{
		Log:   func(line string) { r.add(LogStream, line) },
		Error: func(line string) { r.add(ErrorStream, line) },
	}
}

func (r *Recorder) add(s Stream, line string) {
	r.mu.Lock()
	r.records = append(r.records, Record{Stream: s, Line: line})
	r.mu.Unlock()
}

// Records returns a copy of everything recorded so far.
func (r *Recorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// Lines returns the recorded lines of one stream.
func (r *Recorder) Lines(s Stream) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var lines []string
	for _, rec := range r.records {
		if rec.Stream == s {
			lines = append(lines, rec.Line)
		}
	}
	return lines
}

// Len returns the number of recorded lines.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// Reset discards all recorded lines.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.records = r.records[:0]
	r.mu.Unlock()
}

package benchmark

import (
	"github.com/Philipp01105/labellog/output"
)

// newNoopOutput returns an Output that only touches the line, so the
// benchmarks measure gating, joining and formatting rather than I/O.
func newNoopOutput() output.Output {
	sink := func(line string) { _ = len(line) }
	return output.Output{Log: sink, Error: sink}
}

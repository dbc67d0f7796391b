package output

import "testing"

// Testing returns an Output that writes every line to tb.Log, so log
// output shows up next to the failing test.
func Testing(tb testing.TB) Output {
	tb.Helper()
	return Output{
		Log:   func(line string) { tb.Log(line) },
		Error: func(line string) { tb.Log("[stderr] " + line) },
	}
}

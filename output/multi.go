package output

// Multi fans every line out to all given outputs in order. Unlike
// Logger.SetOutput, Multi does not fail on an Output without a Log sink;
// such outputs are skipped, so Multi(outs...) is usable with optional
// outputs left at their zero value.
func Multi(outs ...Output) Output {
	normalized := make([]Output, 0, len(outs))
	for _, o := range outs {
		if n, err := o.Normalize(); err == nil {
			normalized = append(normalized, n)
		}
	}

	return Output{
		Log: func(line string) {
			for _, o := range normalized {
				o.Log(line)
			}
		},
		Error: func(line string) {
			for _, o := range normalized {
				o.Error(line)
			}
		},
	}
}

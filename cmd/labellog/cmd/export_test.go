package cmd

import (
	"io"
	"time"
)

type (
	Command = command
	Option  = option
)

var NewCommand = newCommand

func WithArgs(a ...string) func(c *Command) {
	return func(c *Command) {
		c.root.SetArgs(a)
	}
}

func WithInput(r io.Reader) func(c *Command) {
	return func(c *Command) {
		c.root.SetIn(r)
	}
}

func WithOutput(w io.Writer) func(c *Command) {
	return func(c *Command) {
		c.root.SetOut(w)
	}
}

func WithErrorOutput(w io.Writer) func(c *Command) {
	return func(c *Command) {
		c.root.SetErr(w)
	}
}

func WithLookupEnv(lookup func(string) (string, bool)) func(c *Command) {
	return func(c *Command) {
		c.lookupEnv = lookup
	}
}

func WithClock(now func() time.Time) func(c *Command) {
	return func(c *Command) {
		c.now = now
	}
}

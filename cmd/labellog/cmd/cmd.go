// Package cmd implements the labellog command, which writes messages
// through a labellog Logger from the shell.
package cmd

import (
	"bufio"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Philipp01105/labellog/formatter"
	"github.com/Philipp01105/labellog/logger"
	"github.com/Philipp01105/labellog/output"
)

const (
	optionNameLabel      = "label"
	optionNameThreshold  = "threshold"
	optionNameStdin      = "stdin"
	optionNameTimeFormat = "time-format"
	optionNameLocalTime  = "local-time"
)

// maxLineSize bounds a single message read with --stdin.
const maxLineSize = 16 << 20

type command struct {
	root      *cobra.Command
	lookupEnv func(string) (string, bool)
	now       func() time.Time

	label      string
	threshold  string
	stdin      bool
	timeFormat string
	localTime  bool
}

type option func(*command)

func newCommand(opts ...option) (c *command, err error) {
	c = &command{
		lookupEnv: os.LookupEnv,
		now:       time.Now,
	}
	c.root = &cobra.Command{
		Use:   "labellog <level> [message...]",
		Short: "Write leveled, labelled log lines",
		Long: `Write a log line at the given level (error, warn, info, verbose, debug, silly).

Error and warn lines go to stderr, everything else to stdout. Lines above the
threshold are discarded. The threshold defaults to info, or to debug when the
DEBUG environment variable is "*" or equals the label.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          c.run,
	}

	for _, o := range opts {
		o(c)
	}

	flags := c.root.Flags()
	flags.StringVarP(&c.label, optionNameLabel, "l", "", "label printed on every line")
	flags.StringVarP(&c.threshold, optionNameThreshold, "t", "", "highest level to write (default: info, or debug via DEBUG)")
	flags.BoolVar(&c.stdin, optionNameStdin, false, "read messages from stdin, one per line")
	flags.StringVar(&c.timeFormat, optionNameTimeFormat, "", "Go time layout for timestamps (default: ISO-8601)")
	flags.BoolVar(&c.localTime, optionNameLocalTime, false, "print timestamps in local time instead of UTC")

	return c, nil
}

func (c *command) Execute() (err error) {
	return c.root.Execute()
}

// Execute parses command line arguments and writes the requested lines.
func Execute() (err error) {
	c, err := newCommand()
	if err != nil {
		return err
	}
	return c.Execute()
}

func (c *command) run(cmd *cobra.Command, args []string) error {
	level, err := logger.ParseLevel(args[0])
	if err != nil {
		return err
	}

	log, err := c.newLogger(cmd)
	if err != nil {
		return err
	}

	if !c.stdin {
		msg := make([]any, len(args)-1)
		for i, a := range args[1:] {
			msg[i] = a
		}
		log.Log(level, msg...)
		return nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		log.Log(level, scanner.Text())
	}
	return errors.Wrap(scanner.Err(), "read stdin")
}

func (c *command) newLogger(cmd *cobra.Command) (*logger.Logger, error) {
	b := logger.NewBuilder().
		WithLabel(c.label).
		WithLookupEnv(c.lookupEnv).
		WithClock(c.now).
		WithOutput(output.Console(cmd.OutOrStdout(), cmd.ErrOrStderr()))

	if c.threshold != "" {
		t, err := logger.ParseLevel(c.threshold)
		if err != nil {
			return nil, errors.WithMessage(err, optionNameThreshold)
		}
		b.WithLevel(t)
	}

	if c.timeFormat != "" || c.localTime {
		f := formatter.NewText(formatter.Config{
			TimestampFormat: c.timeFormat,
			Local:           c.localTime,
		})
		b.WithFormatFunction(f.Format)
	}

	return b.Build()
}

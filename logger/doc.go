// Package logger is the public API of labellog. Most users only need to
// import this package.
//
// New creates an independent Logger. Each logger carries an optional
// label, a threshold, a pair of sinks and a format function:
//
//	log := logger.New("db")
//	log.Info("connected to", host)
//	log.Error("query failed:", err)
//
// Levels are, from most to least severe, error (0), warn (1), info (2),
// verbose (3), debug (4) and silly (5). A call is written when its level
// is less than or equal to the threshold, which defaults to info. When the
// DEBUG environment variable is "*" or equals the logger's label at
// creation time, the default becomes debug instead. Disabled calls cost a
// single integer comparison; their arguments are never formatted.
//
// Error and warn lines go to the Error sink (stderr by default), all other
// levels to the Log sink (stdout by default). SetOutput replaces both
// sinks, SetFormatFunction the line layout, and SetLevel the threshold.
// Setters validate their input and leave the logger unchanged on failure;
// the returned error wraps ErrInvalidArgument.
//
// For explicit configuration, including an injected environment lookup
// and clock, use the Builder:
//
//	log, err := logger.NewBuilder().
//	    WithLabel("api").
//	    WithLevel(logger.VerboseLevel).
//	    WithOutput(output.Zap(z)).
//	    Build()
//
// The package also keeps a default label-less logger behind the
// package-level functions Error, Warn, Info, Verbose, Debug and Silly.
package logger

// Package core defines the shared types used across labellog.
//
// It provides the Level enumeration (error, warn, info, verbose, debug,
// silly) with its stable numeric values, the ErrInvalidArgument sentinel
// returned by every rejecting setter, and JoinArgs, which renders the
// variadic arguments of a log call into a single message.
//
// Level values are part of the public contract: lower numbers are more
// severe, and a logger emits every level whose value is less than or
// equal to its threshold.
package core

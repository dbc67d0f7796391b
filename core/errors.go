package core

import "github.com/pkg/errors"

// ErrInvalidArgument is returned, wrapped with context, by every setter that
// rejects its input. Test for it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

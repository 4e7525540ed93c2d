package core

import "github.com/pkg/errors"

// ErrInvalidArgument marks bad user-supplied parameters. Use errors.Is to test.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentf wraps ErrInvalidArgument with a formatted description.
func InvalidArgumentf(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

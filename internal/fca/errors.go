package fca

import (
	"github.com/cockroachdb/errors"
)

// ErrInvalidInput marks a malformed relation or a reference to an element
// outside the relation's universe. Callers match it with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// IsInvariantViolation reports whether err signals an internal invariant
// violation (an unsound closure, a non-minimal key, a bad pseudo-intent).
func IsInvariantViolation(err error) bool {
	return errors.HasAssertionFailure(err)
}

func invalidf(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidInput, format, args...)
}

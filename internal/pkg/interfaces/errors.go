package interfaces

import (
	"errors"
	"fmt"
)

var (
	// ErrGuardViolation matches a *GuardError.
	ErrGuardViolation = errors.New("interfaces file is not marked as unconfigured")
	ErrOrphanLine     = errors.New("configuration line before any auto or ifname line")
	ErrMissingName    = errors.New("auto or ifname line without an interface name")
)

// GuardError is returned when a write is attempted on a file without the marker line.
type GuardError struct {
	Path  string
	State State
}

func (e *GuardError) Error() string {
	return fmt.Sprintf("not writing to %s: header not found: %s", e.Path, MarkerLine)
}

// Is reports whether target is ErrGuardViolation.
func (e *GuardError) Is(target error) bool {
	return target == ErrGuardViolation
}

// ParseError reports a line of the interfaces file that cannot be attributed to an interface.
type ParseError struct {
	Path string
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
	}
	return fmt.Sprintf("%s:%d: %v: %q", e.Path, e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

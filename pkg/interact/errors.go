package interact

import (
	"errors"
	"fmt"
)

// ErrConfiguration marks programming errors in a pipeline declaration.
var ErrConfiguration = errors.New("interact: invalid configuration")

// Failure is the signal produced by Context.Fail. The engine absorbs it
// unless the Context is in strict mode.
type Failure struct {
	Message string
	Strict  bool
}

func (f *Failure) Error() string {
	return f.Message
}

// AsFailure returns the failure signal carried by err, if any.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// IsFailure reports whether err carries a failure signal.
func IsFailure(err error) bool {
	_, ok := AsFailure(err)
	return ok
}

// ConfigError reports a pipeline entry that cannot be run.
type ConfigError struct {
	Organizer string
	Ref       string
	Index     int
	Reason    string
}

func (e *ConfigError) Error() string {
	if e.Organizer == "" {
		return fmt.Sprintf("%s %s", e.Ref, e.Reason)
	}
	return fmt.Sprintf("%s: step %d: %s %s", e.Organizer, e.Index, e.Ref, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrConfiguration
}

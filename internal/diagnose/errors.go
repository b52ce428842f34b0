package diagnose

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned by Analyze when no AI credential is configured.
// It is a recoverable, user-visible condition, not a startup failure.
var ErrNotConfigured = errors.New("no AI credential configured")

// ProviderError wraps a failed or empty remote call.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("diagnosis provider: %v", e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// ParseError marks a payload that is not valid JSON or is missing one of the
// required result fields. The capture pipeline treats it like a provider
// failure; the distinction exists only for logs and tests.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("diagnosis parse: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("diagnosis parse: %s", e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

package complaints

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSession is returned when an operation needs a signed-in user.
	ErrNoSession = errors.New("complaints: no active session")
	// ErrSubmissionBusy is returned when a submission is already in flight or
	// waiting to return to the dashboard.
	ErrSubmissionBusy = errors.New("complaints: submission already in progress")
	// ErrUnknownTab is returned when selecting a tab that does not exist.
	ErrUnknownTab = errors.New("complaints: unknown tab")
)

// ValidationError reports missing or invalid user input. No network call is
// issued when one is returned.
type ValidationError struct {
	Field   string
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "complaints: validation: " + e.Message
	}
	return fmt.Sprintf("complaints: validation: %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return e.Cause }

// TransportError wraps failures reaching the remote service at all.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("complaints: %s: transport: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServerError is a non-success HTTP response. Detail carries the server's
// structured message when one was provided.
type ServerError struct {
	Status int
	Detail string
}

func (e *ServerError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("complaints: remote error %d", e.Status)
	}
	return fmt.Sprintf("complaints: remote error %d: %s", e.Status, e.Detail)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsTransport reports whether err originated from an unreachable backend.
func IsTransport(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}

// ServerDetail returns the server-provided detail message, if any.
func ServerDetail(err error) (string, bool) {
	var target *ServerError
	if errors.As(err, &target) && target.Detail != "" {
		return target.Detail, true
	}
	return "", false
}

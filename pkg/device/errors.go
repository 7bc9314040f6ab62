package device

import (
	"errors"
)

// The error kinds every backend adapter translates its native errors
// into. Nothing backend-specific crosses a contract boundary: adapters
// wrap one of these with fmt.Errorf("...: %w", ...) so the native
// detail stays in the message, and callers match with errors.Is.
var (
	// ErrDeviceUnavailable indicates the device is disconnected or was
	// never opened.
	ErrDeviceUnavailable = errors.New("device unavailable")

	// ErrNoBackendAvailable indicates no registered backend could open a
	// device for the current platform and build.
	ErrNoBackendAvailable = errors.New("no backend available")

	// ErrInjectionFailed indicates the OS rejected a synthetic input
	// event (e.g. a permission denial).
	ErrInjectionFailed = errors.New("input injection failed")

	// ErrBufferOverrun indicates an output cannot accept a block without
	// dropping data.
	ErrBufferOverrun = errors.New("buffer overrun")

	// ErrInsufficientData indicates an input stream ended before a read
	// request was satisfied.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrClosed indicates an operation on a handle after Close.
	ErrClosed = errors.New("handle is closed")
)

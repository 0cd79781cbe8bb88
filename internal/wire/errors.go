package wire

import (
	"fmt"
	"time"
)

// TransportError reports an I/O failure on the underlying channel. Not
// retryable without reconnecting.
type TransportError struct {
	Op  string // "send", "receive", "open", "close"
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// TimeoutError reports that an exact-length read did not complete within
// its bound. The channel read position is undefined afterwards, so callers
// should treat the session as broken rather than silently retrying.
type TimeoutError struct {
	Op      string
	Want    int // bytes requested
	Got     int // bytes consumed before expiry
	Elapsed time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s timed out after %v: got %d of %d bytes", e.Op, e.Elapsed, e.Got, e.Want)
}

// FormatError reports malformed or unexpected framing: a missing marker, a
// bad length prefix, a reply that echoes the wrong opcode. Fatal, not
// retried; it signals a protocol or firmware mismatch.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "protocol format: " + e.Reason
}

// Formatf builds a *FormatError from a printf-style reason.
func Formatf(format string, args ...any) *FormatError {
	return &FormatError{Reason: fmt.Sprintf(format, args...)}
}

// DeviceError carries an explicit nonzero status or response code reported
// by the device, with its table-mapped name. Recoverable: the exchange
// framed correctly and the channel is still usable; the caller decides
// what to do with the code.
type DeviceError struct {
	Code int
	Name string
}

func (e *DeviceError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("device error %d", e.Code)
	}
	return fmt.Sprintf("device error %d: %s", e.Code, e.Name)
}

// Package wire defines the byte-channel boundary shared by all robowire
// device codecs: a blocking Conn with exact-length timed reads, and the
// error taxonomy callers branch on to tell transient failures from
// structural ones.
package wire

import "time"

// Conn is a synchronous byte channel to a device. Implementations carry a
// single in-flight exchange at a time: a new Send must not be issued before
// the previous Receive (or its timeout) has resolved.
type Conn interface {
	// Send writes the whole buffer to the channel. A short write or I/O
	// failure returns a *TransportError.
	Send(p []byte) error

	// Receive blocks until exactly n bytes are available or timeout
	// elapses, returning *TimeoutError on expiry. Exactly n bytes are
	// consumed from the channel; any bytes beyond n remain buffered for
	// the next call. After a timeout the channel read position is
	// undefined and the session should be reconnected rather than
	// retried.
	Receive(n int, timeout time.Duration) ([]byte, error)

	// Close releases the channel and unblocks any pending Receive with a
	// *TransportError.
	Close() error
}

package serialio

import (
	"io"
	"time"

	"go.bug.st/serial"

	"github.com/fieldbotics/robowire/internal/wire"
)

// pollInterval bounds the busy-wait between short reads on ports that do
// not support a read timeout of their own.
const pollInterval = 5 * time.Millisecond

// Conn is a wire.Conn over a serial port. It owns the port exclusively and
// carries one exchange at a time; callers serialize access.
type Conn struct {
	port Porter
}

// Open opens the serial port at path and wraps it in a Conn.
func Open(path string, opts PortOptions) (*Conn, error) {
	mode, err := opts.Mode()
	if err != nil {
		return nil, &wire.TransportError{Op: "open", Err: err}
	}
	port, err := serial.Open(path, mode)
	if err != nil {
		return nil, &wire.TransportError{Op: "open", Err: err}
	}
	return NewConn(port), nil
}

// NewConn wraps an already-open port. Used by tests and by factories.
func NewConn(port Porter) *Conn {
	return &Conn{port: port}
}

// Send writes the whole buffer to the port.
func (c *Conn) Send(p []byte) error {
	n, err := c.port.Write(p)
	if err != nil {
		return &wire.TransportError{Op: "send", Err: err}
	}
	if n != len(p) {
		return &wire.TransportError{Op: "send", Err: io.ErrShortWrite}
	}
	return nil
}

// Receive blocks until exactly n bytes arrive or timeout elapses. Reads
// are capped at the remaining byte count, so bytes beyond n stay in the
// driver's buffer for the next call (drain only the requested count). On
// expiry the partial bytes already consumed are discarded and a
// *wire.TimeoutError is returned; the read position is then undefined and
// the session should be reopened.
func (c *Conn) Receive(n int, timeout time.Duration) ([]byte, error) {
	buf := make([]byte, n)
	got := 0
	start := time.Now()
	deadline := start.Add(timeout)

	for got < n {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, &wire.TimeoutError{
				Op:      "receive",
				Want:    n,
				Got:     got,
				Elapsed: time.Since(start),
			}
		}

		tp, timed := c.port.(TimeoutPorter)
		if timed {
			if err := tp.SetReadTimeout(remaining); err != nil {
				return nil, &wire.TransportError{Op: "receive", Err: err}
			}
		}

		m, err := c.port.Read(buf[got:n])
		if err != nil {
			return nil, &wire.TransportError{Op: "receive", Err: err}
		}
		got += m

		// a zero-byte read on an untimed port means it is idle; yield
		// briefly so the loop cannot spin hot
		if m == 0 && !timed {
			time.Sleep(pollInterval)
		}
	}
	return buf, nil
}

// Close closes the underlying port, unblocking any pending read.
func (c *Conn) Close() error {
	if err := c.port.Close(); err != nil {
		return &wire.TransportError{Op: "close", Err: err}
	}
	return nil
}

var _ wire.Conn = (*Conn)(nil)

// Package serialio provides the serial-line transport for robowire device
// codecs: a wire.Conn over a raw serial port, connection options, and a
// factory abstraction so codecs can be exercised without hardware.
package serialio

import (
	"io"
	"time"
)

// Porter is the minimal interface needed for a serial port. The
// abstraction enables unit testing without real serial hardware.
type Porter interface {
	io.ReadWriter
	io.Closer
}

// TimeoutPorter extends Porter with a per-read timeout. Real ports
// implement it; the Conn uses it to bound each read against the caller's
// deadline instead of blocking indefinitely.
type TimeoutPorter interface {
	Porter
	SetReadTimeout(timeout time.Duration) error
}

// Factory creates serial ports. The abstraction enables dependency
// injection of port creation in tests and in the CLI.
type Factory interface {
	// Open opens a serial port at the specified path with the given options.
	Open(path string, opts PortOptions) (Porter, error)
}

// Package trace wraps a wire.Conn with an exchange recorder: every send
// and receive is appended to a log with a session id, direction, hex
// payload, duration, and outcome. The recorded log is enough to replay a
// session against a simulated channel when debugging firmware quirks.
package trace

import (
	"encoding/hex"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fieldbotics/robowire/internal/wire"
)

// Conn records all traffic through an underlying wire.Conn. Semantics are
// otherwise identical to the wrapped connection.
type Conn struct {
	inner   wire.Conn
	session string

	mu  sync.Mutex
	out io.Writer
}

// New wraps conn, logging each exchange to out. Each wrapper gets its own
// session id so interleaved device logs can be told apart.
func New(conn wire.Conn, out io.Writer) *Conn {
	return &Conn{
		inner:   conn,
		session: uuid.NewString(),
		out:     out,
	}
}

// Session returns the recorder's session id.
func (c *Conn) Session() string { return c.session }

func (c *Conn) record(dir string, data []byte, elapsed time.Duration, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	outcome := "ok"
	if err != nil {
		outcome = err.Error()
	}
	fmt.Fprintf(c.out, "%s %s %s %d %s %v %s\n",
		time.Now().UTC().Format(time.RFC3339Nano),
		c.session, dir, len(data), hex.EncodeToString(data), elapsed, outcome)
}

// Send forwards to the wrapped connection, recording the frame.
func (c *Conn) Send(p []byte) error {
	start := time.Now()
	err := c.inner.Send(p)
	c.record("send", p, time.Since(start), err)
	return err
}

// Receive forwards to the wrapped connection, recording the bytes that
// actually arrived.
func (c *Conn) Receive(n int, timeout time.Duration) ([]byte, error) {
	start := time.Now()
	data, err := c.inner.Receive(n, timeout)
	c.record("recv", data, time.Since(start), err)
	return data, err
}

// Close closes the wrapped connection.
func (c *Conn) Close() error {
	err := c.inner.Close()
	c.record("close", nil, 0, err)
	return err
}

var _ wire.Conn = (*Conn)(nil)

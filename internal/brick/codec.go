package brick

import (
	"errors"
	"time"

	"github.com/fieldbotics/robowire/internal/wire"
)

// DefaultTimeout bounds each of the two reads that make up a reply: the
// length prefix and the body.
const DefaultTimeout = time.Second

// Codec frames requests for the brick and decodes its status-coded
// replies.
type Codec struct {
	conn    wire.Conn
	timeout time.Duration
}

// NewCodec creates a codec over the given channel. A zero timeout selects
// DefaultTimeout.
func NewCodec(conn wire.Conn, timeout time.Duration) *Codec {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Codec{conn: conn, timeout: timeout}
}

// EncodeRequest frames opcode+payload with the little-endian length
// prefix: [len_lo][len_hi][opcode][payload...]. len counts opcode and
// payload.
func EncodeRequest(opcode byte, payload []byte) []byte {
	n := 1 + len(payload)
	frame := make([]byte, 0, 2+n)
	frame = append(frame, byte(n), byte(n>>8))
	frame = append(frame, opcode)
	frame = append(frame, payload...)
	return frame
}

// DecodeRequest undoes EncodeRequest, recovering opcode and payload. Used
// by the simulator side of tests and by trace tooling.
func DecodeRequest(frame []byte) (opcode byte, payload []byte, err error) {
	if len(frame) < 3 {
		return 0, nil, wire.Formatf("request frame too short: %d bytes", len(frame))
	}
	n := int(frame[0]) | int(frame[1])<<8
	if n != len(frame)-2 {
		return 0, nil, wire.Formatf("request length prefix %d does not match %d framed bytes", n, len(frame)-2)
	}
	return frame[2], frame[3:], nil
}

// Exchange sends one request and, unless the opcode's top bit marks it
// fire-and-forget, reads and validates the reply. The returned slice is
// the reply payload after the status byte; fire-and-forget exchanges
// return nil. A nonzero status comes back as a *wire.DeviceError named
// from the brick's status table.
func (c *Codec) Exchange(opcode byte, payload []byte) ([]byte, error) {
	if len(payload) > MaxPayload {
		return nil, wire.Formatf("payload of %d bytes exceeds frame limit %d", len(payload), MaxPayload)
	}
	if err := c.conn.Send(EncodeRequest(opcode, payload)); err != nil {
		return nil, err
	}
	if opcode&NoReplyBit != 0 {
		return nil, nil
	}

	hdr, err := c.conn.Receive(2, c.timeout)
	if err != nil {
		return nil, err
	}
	n := int(hdr[0]) | int(hdr[1])<<8
	if n < 3 {
		return nil, wire.Formatf("reply length prefix %d below minimum 3", n)
	}

	body, err := c.conn.Receive(n, c.timeout)
	if err != nil {
		return nil, err
	}
	if body[0] != ReplyMarker {
		return nil, wire.Formatf("reply marker 0x%02x, want 0x%02x", body[0], ReplyMarker)
	}
	if err := wire.ValidateReply(body, opcode); err != nil {
		var derr *wire.DeviceError
		if errors.As(err, &derr) {
			derr.Name = StatusName(byte(derr.Code))
		}
		return nil, err
	}
	return body[3:], nil
}

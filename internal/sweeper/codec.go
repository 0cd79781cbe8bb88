package sweeper

import (
	"time"

	"github.com/fieldbotics/robowire/internal/statebuf"
	"github.com/fieldbotics/robowire/internal/wire"
)

// DefaultTimeout bounds the single receive that follows a sensor request.
const DefaultTimeout = 500 * time.Millisecond

// Codec frames commands for the floor cleaner and decodes its sensor
// packets. It owns nothing but the channel reference; commands are built
// per call and discarded after send.
type Codec struct {
	conn    wire.Conn
	timeout time.Duration
}

// NewCodec creates a codec over the given channel. A zero timeout selects
// DefaultTimeout for sensor replies.
func NewCodec(conn wire.Conn, timeout time.Duration) *Codec {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Codec{conn: conn, timeout: timeout}
}

// command sends [opcode][payload...] with no reply expected.
func (c *Codec) command(opcode byte, payload ...byte) error {
	frame := make([]byte, 0, 1+len(payload))
	frame = append(frame, opcode)
	frame = append(frame, payload...)
	return c.conn.Send(frame)
}

// Start begins communication and puts the robot in passive mode.
func (c *Codec) Start() error { return c.command(opStart) }

// Control enables safe mode from passive mode.
func (c *Codec) Control() error { return c.command(opControl) }

// Safe returns the robot to safe mode from full mode.
func (c *Codec) Safe() error { return c.command(opSafe) }

// Full enables full mode: no cliff or wheel-drop safeguards.
func (c *Codec) Full() error { return c.command(opFull) }

// Power puts the robot to sleep.
func (c *Codec) Power() error { return c.command(opPower) }

// Spot starts a spot cleaning cycle.
func (c *Codec) Spot() error { return c.command(opSpot) }

// Clean starts a standard cleaning cycle.
func (c *Codec) Clean() error { return c.command(opClean) }

// Max starts a maximum-time cleaning cycle.
func (c *Codec) Max() error { return c.command(opMax) }

// Dock tells the robot to seek its charging dock.
func (c *Codec) Dock() error { return c.command(opDock) }

// Baud changes the serial rate. The code is the protocol's baud index,
// not a bit rate.
func (c *Codec) Baud(code byte) error { return c.command(opBaud, code) }

// Drive sets wheel velocity (mm/s) and turn radius (mm). Both are encoded
// as 16-bit two's-complement, high byte first. Velocity is clamped to
// ±MaxVelocity; radius, unless one of the special values Straight, SpinCW
// or SpinCCW, is clamped to ±MaxRadius.
func (c *Codec) Drive(velocity, radius int16) error {
	velocity = clamp(velocity, MaxVelocity)
	if radius != Straight && radius != SpinCW && radius != SpinCCW {
		radius = clamp(radius, MaxRadius)
	}
	return c.command(opDrive,
		byte(uint16(velocity)>>8), byte(uint16(velocity)),
		byte(uint16(radius)>>8), byte(uint16(radius)),
	)
}

// Stop halts both wheels.
func (c *Codec) Stop() error { return c.Drive(0, Straight) }

// Motors switches the cleaning motors. Bit 0 is the side brush, bit 1 the
// vacuum, bit 2 the main brush.
func (c *Codec) Motors(bits byte) error { return c.command(opMotors, bits) }

// Song defines a song in the given slot. Notes alternate MIDI note number
// and duration in 1/64ths of a second.
func (c *Codec) Song(slot byte, notes []byte) error {
	if len(notes) == 0 || len(notes)%2 != 0 {
		return wire.Formatf("song payload must be a nonempty sequence of note/duration pairs, got %d bytes", len(notes))
	}
	payload := append([]byte{slot, byte(len(notes) / 2)}, notes...)
	return c.command(opSong, payload...)
}

// Play plays the song stored in the given slot.
func (c *Codec) Play(slot byte) error { return c.command(opPlay, slot) }

// RequestSensors issues the sensor command for the given selector and
// performs exactly one receive of the selector's packet size, writing the
// bytes into the state buffer at the selector's fixed offset. Bytes
// outside that subrange are untouched. The buffer must be StateSize long.
func (c *Codec) RequestSensors(sel Selector, buf *statebuf.Buffer) error {
	if err := c.command(opSensors, byte(sel.index())); err != nil {
		return err
	}
	data, err := c.conn.Receive(sel.Size(), c.timeout)
	if err != nil {
		return err
	}
	buf.Write(sel.Offset(), data)
	return nil
}

func clamp(v, limit int16) int16 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}

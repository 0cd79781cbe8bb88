// Package sweeper implements the serial command protocol for the
// floor-cleaning robot: single-byte opcodes, big-endian two's-complement
// numeric payloads, no reply envelope, and a four-packet sensor selector
// scheme feeding a fixed 26-byte state buffer.
package sweeper

// Command opcodes. All commands are fire-and-forget except opSensors,
// which is answered by a raw sensor packet.
const (
	opStart   = 128
	opBaud    = 129
	opControl = 130
	opSafe    = 131
	opFull    = 132
	opPower   = 133
	opSpot    = 134
	opClean   = 135
	opMax     = 136
	opDrive   = 137
	opMotors  = 138
	opLeds    = 139
	opSong    = 140
	opPlay    = 141
	opSensors = 142
	opDock    = 143
)

// Drive limits and special radius values. A radius of Straight (0x8000)
// drives both wheels at the same speed; SpinCW/SpinCCW rotate in place.
const (
	MaxVelocity = 500  // mm/s
	MaxRadius   = 2000 // mm

	Straight int16 = -32768 // 0x8000
	SpinCW   int16 = -1
	SpinCCW  int16 = 1
)

// Selector chooses which subset of the sensor buffer a request/response
// cycle populates.
type Selector int

const (
	// SelectAll refreshes the whole 26-byte buffer.
	SelectAll Selector = iota
	// SelectEnvironment refreshes bytes 0-9: bumps, wall, cliffs, dirt.
	SelectEnvironment
	// SelectActuation refreshes bytes 10-15: remote, buttons, odometry.
	SelectActuation
	// SelectPower refreshes bytes 16-25: charging, voltage, current,
	// temperature, charge, capacity.
	SelectPower
)

// Packet geometry per selector: how many bytes the device answers with and
// where they land in the state buffer. Fixed by the protocol, never
// changes at runtime.
var (
	packetSizes   = [4]int{26, 10, 6, 10}
	packetOffsets = [4]int{0, 0, 10, 16}
)

// StateSize is the declared length of the sensor state buffer.
const StateSize = 26

// Size returns the number of bytes the device sends for this selector.
func (s Selector) Size() int { return packetSizes[s.index()] }

// Offset returns where the selector's packet lands in the state buffer.
func (s Selector) Offset() int { return packetOffsets[s.index()] }

func (s Selector) index() int {
	if s < 0 || s > 3 {
		panic("sweeper: sensor selector out of range 0-3")
	}
	return int(s)
}

// Package brick implements the length-prefixed request/reply protocol for
// the programmable brick: little-endian length framing, opcode echo and
// status-coded replies, and the command surface built on top of it.
package brick

// NoReplyBit marks an opcode as fire-and-forget: the brick sends no reply
// and the codec must not read one.
const NoReplyBit = 0x80

// ReplyMarker is the first byte of every reply body.
const ReplyMarker = 0x02

// Request opcodes.
const (
	opStartProgram    = 0x00
	opStopProgram     = 0x01
	opPlaySoundFile   = 0x02
	opPlayTone        = 0x03
	opSetOutputState  = 0x04
	opSetInputMode    = 0x05
	opGetOutputState  = 0x06
	opGetInputValues  = 0x07
	opMessageWrite    = 0x09
	opResetMotor      = 0x0A
	opGetBatteryLevel = 0x0B
	opStopSound       = 0x0C
	opKeepAlive       = 0x0D
	opFileOpenRead    = 0x15
	opFileRead        = 0x16
	opFileWrite       = 0x17
	opFileClose       = 0x18
	opFirmwareVersion = 0x1A
	opDeviceInfo      = 0x1B

	// silent variants: same command, no reply
	opKeepAliveSilent = opKeepAlive | NoReplyBit
	opStopAllSilent   = opStopProgram | NoReplyBit
)

// Output port motor mode bits for SetOutputState.
const (
	ModeMotorOn   = 0x01
	ModeBrake     = 0x02
	ModeRegulated = 0x04
)

// MaxPayload is the largest request payload the framing supports in one
// exchange.
const MaxPayload = 252

package brick

import (
	"bytes"

	"github.com/fieldbotics/robowire/internal/wire"
)

const nameFieldLen = 16 // file and program names are NUL-padded to this

// DeviceInfo is the identity block reported by the brick.
type DeviceInfo struct {
	Name           string
	SignalStrength uint32
	FreeFlash      uint32
}

// FirmwareVersion holds the protocol and firmware revision pairs.
type FirmwareVersion struct {
	ProtocolMinor, ProtocolMajor byte
	FirmwareMinor, FirmwareMajor byte
}

func u16le(b []byte) int { return int(b[0]) | int(b[1])<<8 }
func u32le(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func putU16le(v uint16) []byte { return []byte{byte(v), byte(v >> 8)} }

// padName NUL-pads a name to the fixed field width.
func padName(name string) ([]byte, error) {
	if len(name) >= nameFieldLen {
		return nil, wire.Formatf("name %q exceeds %d bytes", name, nameFieldLen-1)
	}
	field := make([]byte, nameFieldLen)
	copy(field, name)
	return field, nil
}

// BatteryLevel returns the battery voltage in millivolts.
func (c *Codec) BatteryLevel() (int, error) {
	reply, err := c.Exchange(opGetBatteryLevel, nil)
	if err != nil {
		return 0, err
	}
	if len(reply) < 2 {
		return 0, wire.Formatf("battery reply payload is %d bytes, want 2", len(reply))
	}
	return u16le(reply), nil
}

// PlayTone plays a tone of the given frequency (Hz) for the given
// duration (ms).
func (c *Codec) PlayTone(freqHz, durationMS uint16) error {
	payload := append(putU16le(freqHz), putU16le(durationMS)...)
	_, err := c.Exchange(opPlayTone, payload)
	return err
}

// StopSound stops any sound or tone playback.
func (c *Codec) StopSound() error {
	_, err := c.Exchange(opStopSound, nil)
	return err
}

// SetOutputState drives a motor port: power is -100..100, mode a
// combination of the Mode* bits.
func (c *Codec) SetOutputState(port byte, power int8, mode byte) error {
	_, err := c.Exchange(opSetOutputState, []byte{port, byte(power), mode})
	return err
}

// ResetMotorPosition zeroes the tachometer for a port; relative selects
// the position counter relative to the last movement.
func (c *Codec) ResetMotorPosition(port byte, relative bool) error {
	rel := byte(0)
	if relative {
		rel = 1
	}
	_, err := c.Exchange(opResetMotor, []byte{port, rel})
	return err
}

// StartProgram runs a stored program by name.
func (c *Codec) StartProgram(name string) error {
	field, err := padName(name)
	if err != nil {
		return err
	}
	_, err = c.Exchange(opStartProgram, field)
	return err
}

// StopProgram stops the running program.
func (c *Codec) StopProgram() error {
	_, err := c.Exchange(opStopProgram, nil)
	return err
}

// KeepAlive resets the brick's sleep timer and returns the remaining
// time until sleep in milliseconds.
func (c *Codec) KeepAlive() (uint32, error) {
	reply, err := c.Exchange(opKeepAlive, nil)
	if err != nil {
		return 0, err
	}
	if len(reply) < 4 {
		return 0, wire.Formatf("keep-alive reply payload is %d bytes, want 4", len(reply))
	}
	return u32le(reply), nil
}

// KeepAliveSilent resets the sleep timer without waiting for a reply.
func (c *Codec) KeepAliveSilent() error {
	_, err := c.Exchange(opKeepAliveSilent, nil)
	return err
}

// MessageWrite posts a text message to one of the brick's mailboxes. The
// message travels as a length-prefixed, NUL-terminated string.
func (c *Codec) MessageWrite(inbox byte, msg string) error {
	if len(msg) > 58 {
		return wire.Formatf("message of %d bytes exceeds mailbox limit 58", len(msg))
	}
	payload := append([]byte{inbox, byte(len(msg) + 1)}, msg...)
	payload = append(payload, 0)
	_, err := c.Exchange(opMessageWrite, payload)
	return err
}

// GetFirmwareVersion reports protocol and firmware revisions.
func (c *Codec) GetFirmwareVersion() (FirmwareVersion, error) {
	reply, err := c.Exchange(opFirmwareVersion, nil)
	if err != nil {
		return FirmwareVersion{}, err
	}
	if len(reply) < 4 {
		return FirmwareVersion{}, wire.Formatf("firmware reply payload is %d bytes, want 4", len(reply))
	}
	return FirmwareVersion{
		ProtocolMinor: reply[0],
		ProtocolMajor: reply[1],
		FirmwareMinor: reply[2],
		FirmwareMajor: reply[3],
	}, nil
}

// GetDeviceInfo reports the brick's name, radio signal strength and free
// flash.
func (c *Codec) GetDeviceInfo() (DeviceInfo, error) {
	reply, err := c.Exchange(opDeviceInfo, nil)
	if err != nil {
		return DeviceInfo{}, err
	}
	if len(reply) < nameFieldLen+8 {
		return DeviceInfo{}, wire.Formatf("device info reply payload is %d bytes, want %d", len(reply), nameFieldLen+8)
	}
	name := reply[:nameFieldLen]
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	return DeviceInfo{
		Name:           string(name),
		SignalStrength: u32le(reply[nameFieldLen:]),
		FreeFlash:      u32le(reply[nameFieldLen+4:]),
	}, nil
}

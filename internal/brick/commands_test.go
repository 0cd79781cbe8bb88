package brick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldbotics/robowire/internal/wire"
)

func TestBatteryLevel(t *testing.T) {
	codec, port := newTestCodec(t)
	port.AddReadData(reply(opGetBatteryLevel, StatusOK, 0x4C, 0x1D)) // 7500 mV

	mv, err := codec.BatteryLevel()
	require.NoError(t, err)
	assert.Equal(t, 7500, mv)
}

func TestPlayToneEncoding(t *testing.T) {
	codec, port := newTestCodec(t)
	port.AddReadData(reply(opPlayTone, StatusOK))

	require.NoError(t, codec.PlayTone(440, 1000))
	assert.Equal(t,
		[]byte{0x05, 0x00, opPlayTone, 0xB8, 0x01, 0xE8, 0x03},
		port.WrittenData())
}

func TestSetOutputState(t *testing.T) {
	codec, port := newTestCodec(t)
	port.AddReadData(reply(opSetOutputState, StatusOK))

	require.NoError(t, codec.SetOutputState(0, -75, ModeMotorOn|ModeRegulated))
	assert.Equal(t,
		[]byte{0x04, 0x00, opSetOutputState, 0x00, 0xB5, 0x05},
		port.WrittenData())
}

func TestKeepAlive(t *testing.T) {
	codec, port := newTestCodec(t)
	port.AddReadData(reply(opKeepAlive, StatusOK, 0x60, 0xEA, 0x00, 0x00)) // 60000 ms

	ms, err := codec.KeepAlive()
	require.NoError(t, err)
	assert.Equal(t, uint32(60000), ms)
}

func TestMessageWrite(t *testing.T) {
	codec, port := newTestCodec(t)
	port.AddReadData(reply(opMessageWrite, StatusOK))

	require.NoError(t, codec.MessageWrite(2, "go"))
	// inbox, length including NUL, text, NUL
	assert.Equal(t,
		[]byte{0x06, 0x00, opMessageWrite, 0x02, 0x03, 'g', 'o', 0x00},
		port.WrittenData())

	var ferr *wire.FormatError
	assert.ErrorAs(t, codec.MessageWrite(0, string(make([]byte, 59))), &ferr)
}

func TestGetFirmwareVersion(t *testing.T) {
	codec, port := newTestCodec(t)
	port.AddReadData(reply(opFirmwareVersion, StatusOK, 0x7C, 0x01, 0x1F, 0x01))

	v, err := codec.GetFirmwareVersion()
	require.NoError(t, err)
	assert.Equal(t, FirmwareVersion{
		ProtocolMinor: 0x7C, ProtocolMajor: 0x01,
		FirmwareMinor: 0x1F, FirmwareMajor: 0x01,
	}, v)
}

func TestGetDeviceInfo(t *testing.T) {
	codec, port := newTestCodec(t)

	payload := make([]byte, nameFieldLen+8)
	copy(payload, "hallway-bot")
	payload[nameFieldLen] = 0xC8 // signal strength 200
	payload[nameFieldLen+4] = 0x00
	payload[nameFieldLen+5] = 0x50 // free flash 0x5000
	port.AddReadData(reply(opDeviceInfo, StatusOK, payload...))

	info, err := codec.GetDeviceInfo()
	require.NoError(t, err)
	assert.Equal(t, "hallway-bot", info.Name)
	assert.Equal(t, uint32(200), info.SignalStrength)
	assert.Equal(t, uint32(0x5000), info.FreeFlash)
}

func TestStartProgramPadsName(t *testing.T) {
	codec, port := newTestCodec(t)
	port.AddReadData(reply(opStartProgram, StatusOK))

	require.NoError(t, codec.StartProgram("demo.rxe"))
	frame := port.WrittenData()
	require.Len(t, frame, 2+1+nameFieldLen)
	assert.Equal(t, byte(nameFieldLen+1), frame[0])
	assert.Equal(t, "demo.rxe", string(frame[3:11]))
	for _, b := range frame[11:] {
		assert.Zero(t, b)
	}

	var ferr *wire.FormatError
	assert.ErrorAs(t, codec.StartProgram("a-name-well-beyond-the-field-width"), &ferr)
}

func TestFileReadWriteCycle(t *testing.T) {
	codec, port := newTestCodec(t)

	// open
	port.AddReadData(reply(opFileOpenRead, StatusOK, 0x01, 0x0A, 0x00, 0x00, 0x00))
	h, size, err := codec.FileOpenRead("log.txt")
	require.NoError(t, err)
	assert.Equal(t, FileHandle(1), h)
	assert.Equal(t, uint32(10), size)

	// read: handle, count=4, data
	port.AddReadData(reply(opFileRead, StatusOK, 0x01, 0x04, 0x00, 'd', 'a', 't', 'a'))
	data, err := codec.FileRead(h, 4)
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), data)

	// write: handle, accepted count
	port.AddReadData(reply(opFileWrite, StatusOK, 0x01, 0x02, 0x00))
	n, err := codec.FileWrite(h, []byte("hi"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// close
	port.AddReadData(reply(opFileClose, StatusOK, 0x01))
	require.NoError(t, codec.FileClose(h))
}

func TestFileReadCountBeyondFrame(t *testing.T) {
	codec, port := newTestCodec(t)
	port.AddReadData(reply(opFileRead, StatusOK, 0x01, 0x08, 0x00, 'x'))

	_, err := codec.FileRead(1, 8)
	var ferr *wire.FormatError
	require.ErrorAs(t, err, &ferr)
}

package brick

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldbotics/robowire/internal/serialio"
	"github.com/fieldbotics/robowire/internal/wire"
)

func newTestCodec(t *testing.T) (*Codec, *serialio.TestablePort) {
	t.Helper()
	port := serialio.NewTestablePort()
	return NewCodec(serialio.NewConn(port), 100*time.Millisecond), port
}

// reply frames [len][len][marker][echo][status][payload...] the way the
// brick answers.
func reply(opcode, status byte, payload ...byte) []byte {
	n := 3 + len(payload)
	frame := []byte{byte(n), byte(n >> 8), ReplyMarker, opcode, status}
	return append(frame, payload...)
}

func TestRequestRoundTripAllSizes(t *testing.T) {
	// encode then decode must recover opcode and payload length exactly
	// for every payload size the framing supports
	for size := 0; size <= MaxPayload; size++ {
		payload := make([]byte, size)
		for i := range payload {
			payload[i] = byte(i)
		}
		frame := EncodeRequest(opGetBatteryLevel, payload)

		opcode, got, err := DecodeRequest(frame)
		require.NoError(t, err, "size %d", size)
		require.Equal(t, byte(opGetBatteryLevel), opcode)
		require.Len(t, got, size, "size %d", size)
		require.Equal(t, payload, append([]byte{}, got...))
	}
}

func TestDecodeRequestRejectsBadFraming(t *testing.T) {
	var ferr *wire.FormatError
	_, _, err := DecodeRequest([]byte{0x01, 0x00})
	assert.ErrorAs(t, err, &ferr)

	// prefix disagrees with the framed byte count
	_, _, err = DecodeRequest([]byte{0x05, 0x00, 0x0B})
	assert.ErrorAs(t, err, &ferr)
}

func TestExchangeSuccess(t *testing.T) {
	codec, port := newTestCodec(t)
	port.AddReadData(reply(opGetBatteryLevel, StatusOK, 0x40, 0x1F))

	payload, err := codec.Exchange(opGetBatteryLevel, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x40, 0x1F}, payload)
	assert.Equal(t, []byte{0x01, 0x00, opGetBatteryLevel}, port.WrittenData())
}

func TestExchangeFireAndForgetSkipsReply(t *testing.T) {
	codec, port := newTestCodec(t)

	payload, err := codec.Exchange(opKeepAliveSilent, nil)
	require.NoError(t, err)
	assert.Nil(t, payload)
	assert.Zero(t, port.ReadCalls, "no reply must be read for a top-bit opcode")
}

func TestExchangeDeviceError(t *testing.T) {
	codec, port := newTestCodec(t)
	port.AddReadData(reply(opFileOpenRead, StatusFileNotFound))

	_, err := codec.Exchange(opFileOpenRead, make([]byte, nameFieldLen))
	var derr *wire.DeviceError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, StatusFileNotFound, derr.Code)
	assert.Equal(t, "file not found", derr.Name)
}

func TestExchangeStatusTable(t *testing.T) {
	codes := []struct {
		code byte
		name string
	}{
		{StatusPendingTransaction, "pending communication transaction in progress"},
		{StatusMailboxEmpty, "specified mailbox queue is empty"},
		{StatusNoMoreHandles, "no more handles"},
		{StatusBusError, "communication bus error"},
		{StatusInsufficientMemory, "insufficient memory available"},
		{StatusBadArguments, "bad arguments"},
	}
	for _, tc := range codes {
		codec, port := newTestCodec(t)
		port.AddReadData(reply(opGetBatteryLevel, tc.code))

		_, err := codec.Exchange(opGetBatteryLevel, nil)
		var derr *wire.DeviceError
		require.ErrorAs(t, err, &derr, "code 0x%02x", tc.code)
		assert.Equal(t, int(tc.code), derr.Code)
		assert.Equal(t, tc.name, derr.Name)
	}
}

func TestExchangeBadMarker(t *testing.T) {
	codec, port := newTestCodec(t)
	frame := reply(opGetBatteryLevel, StatusOK)
	frame[2] = 0x07 // not a reply marker
	port.AddReadData(frame)

	_, err := codec.Exchange(opGetBatteryLevel, nil)
	var ferr *wire.FormatError
	require.ErrorAs(t, err, &ferr)
}

func TestExchangeWrongOpcodeEcho(t *testing.T) {
	codec, port := newTestCodec(t)
	port.AddReadData(reply(opPlayTone, StatusOK))

	_, err := codec.Exchange(opGetBatteryLevel, nil)
	var ferr *wire.FormatError
	require.ErrorAs(t, err, &ferr)
}

func TestExchangeShortLengthPrefix(t *testing.T) {
	codec, port := newTestCodec(t)
	port.AddReadData([]byte{0x02, 0x00, ReplyMarker, opGetBatteryLevel})

	_, err := codec.Exchange(opGetBatteryLevel, nil)
	var ferr *wire.FormatError
	require.ErrorAs(t, err, &ferr)
}

func TestExchangeTimeout(t *testing.T) {
	codec, _ := newTestCodec(t)

	_, err := codec.Exchange(opGetBatteryLevel, nil)
	var toerr *wire.TimeoutError
	require.ErrorAs(t, err, &toerr)
}

func TestExchangeOversizePayload(t *testing.T) {
	codec, _ := newTestCodec(t)

	_, err := codec.Exchange(opFileWrite, make([]byte, MaxPayload+1))
	var ferr *wire.FormatError
	require.ErrorAs(t, err, &ferr)
}

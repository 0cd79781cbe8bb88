package trace

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldbotics/robowire/internal/serialio"
	"github.com/fieldbotics/robowire/internal/wire"
)

func TestConnIsSemanticsPreserving(t *testing.T) {
	port := serialio.NewTestablePort()
	port.AddReadData([]byte{0xAA, 0xBB})

	var log bytes.Buffer
	conn := New(serialio.NewConn(port), &log)

	require.NoError(t, conn.Send([]byte{0x80}))
	got, err := conn.Receive(2, 100*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAA, 0xBB}, got)
	assert.Equal(t, []byte{0x80}, port.WrittenData())
	require.NoError(t, conn.Close())
	assert.True(t, port.Closed)
}

func TestRecordedLines(t *testing.T) {
	port := serialio.NewTestablePort()
	port.AddReadData([]byte{0x01, 0x02, 0x03})

	var log bytes.Buffer
	conn := New(serialio.NewConn(port), &log)

	require.NoError(t, conn.Send([]byte{0x8E, 0x03}))
	_, err := conn.Receive(3, 100*time.Millisecond)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(log.String()), "\n")
	require.Len(t, lines, 2)

	assert.Contains(t, lines[0], conn.Session())
	assert.Contains(t, lines[0], " send 2 8e03 ")
	assert.Contains(t, lines[0], " ok")
	assert.Contains(t, lines[1], " recv 3 010203 ")
}

func TestRecordsErrors(t *testing.T) {
	port := serialio.NewTestablePort()
	var log bytes.Buffer
	conn := New(serialio.NewConn(port), &log)

	_, err := conn.Receive(4, 20*time.Millisecond)
	var toerr *wire.TimeoutError
	require.ErrorAs(t, err, &toerr)

	assert.Contains(t, log.String(), "timed out")
}

func TestSessionsAreDistinct(t *testing.T) {
	var log bytes.Buffer
	a := New(serialio.NewConn(serialio.NewTestablePort()), &log)
	b := New(serialio.NewConn(serialio.NewTestablePort()), &log)
	assert.NotEqual(t, a.Session(), b.Session())
}

package wire

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateReplyOK(t *testing.T) {
	assert.NoError(t, ValidateReply([]byte{0x02, 0x0B, 0x00}, 0x0B))
	assert.NoError(t, ValidateReply([]byte{0x02, 0x0B, 0x00, 0x50, 0x00}, 0x0B))
}

func TestValidateReplyTooShort(t *testing.T) {
	err := ValidateReply([]byte{0x02, 0x0B}, 0x0B)
	var ferr *FormatError
	require.ErrorAs(t, err, &ferr)
}

func TestValidateReplyOpcodeMismatch(t *testing.T) {
	err := ValidateReply([]byte{0x02, 0x0C, 0x00}, 0x0B)
	var ferr *FormatError
	require.ErrorAs(t, err, &ferr)
	assert.Contains(t, ferr.Reason, "0x0c")
}

func TestValidateReplyStatusCodes(t *testing.T) {
	// zero never raises; every nonzero status carries exactly that code
	for status := 1; status <= 255; status++ {
		err := ValidateReply([]byte{0x02, 0x0B, byte(status)}, 0x0B)
		var derr *DeviceError
		require.ErrorAs(t, err, &derr, "status 0x%02x", status)
		assert.Equal(t, status, derr.Code)
	}
}

func TestErrorClassesAreDistinct(t *testing.T) {
	// callers branch on error class to decide retryable vs structural
	timeout := &TimeoutError{Op: "receive", Want: 6, Got: 2}
	var derr *DeviceError
	assert.False(t, errors.As(error(timeout), &derr))

	wrapped := &TransportError{Op: "send", Err: errors.New("broken pipe")}
	assert.ErrorContains(t, wrapped, "broken pipe")

	derr = &DeviceError{Code: 4, Name: "unknown action"}
	assert.Equal(t, "device error 4: unknown action", derr.Error())
	assert.Equal(t, "device error 4", (&DeviceError{Code: 4}).Error())
}

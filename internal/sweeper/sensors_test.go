package sweeper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldbotics/robowire/internal/serialio"
)

// sampleState builds a full 26-byte snapshot with known field values.
func sampleState() []byte {
	snap := make([]byte, StateSize)
	snap[0] = 0b0000_0110  // bump left + wheel drop right
	snap[1] = 1            // wall
	snap[3] = 1            // cliff front left
	snap[6] = 1            // virtual wall
	snap[7] = 0b0001_0001  // side brush + left drive overcurrent
	snap[8] = 120          // dirt left
	snap[9] = 3            // dirt right
	snap[10] = 0xFF        // no remote command
	snap[11] = 0b0000_0001 // max button
	snap[12], snap[13] = 0xFE, 0x0C // distance -500
	snap[14], snap[15] = 0x00, 0x5A // angle 90
	snap[16] = Charging
	snap[17], snap[18] = 0x3F, 0xC0 // voltage 16320 mV
	snap[19], snap[20] = 0xFF, 0x9C // current -100 mA
	snap[21] = 0xE7                 // temperature -25 C
	snap[22], snap[23] = 0x0F, 0x50 // charge (0x0F<<7)|0x50 = 2000
	snap[24], snap[25] = 0x16, 0x48 // capacity (0x16<<7)|0x48 = 2888
	return snap
}

func TestStateAccessors(t *testing.T) {
	s := NewState(sampleState())

	assert.True(t, s.BumpLeft())
	assert.False(t, s.BumpRight())
	assert.True(t, s.WheelDropRight())
	assert.False(t, s.WheelDropLeft())
	assert.True(t, s.Wall())
	assert.True(t, s.CliffFrontLeft())
	assert.False(t, s.CliffRight())
	assert.True(t, s.VirtualWall())
	assert.True(t, s.OvercurrentSide())
	assert.True(t, s.OvercurrentLeft())
	assert.False(t, s.OvercurrentVac())

	assert.Equal(t, 120, s.DirtLeft())
	assert.Equal(t, 3, s.DirtRight())
	assert.Equal(t, 0xFF, s.RemoteOpcode())
	assert.Equal(t, 1, s.Buttons())
	assert.Equal(t, -500, s.DistanceMM())
	assert.Equal(t, 90, s.AngleMM())
	assert.Equal(t, Charging, s.ChargingState())
	assert.Equal(t, 16320, s.VoltageMV())
	assert.Equal(t, -100, s.CurrentMA())
	assert.Equal(t, -25, s.TemperatureC())
	assert.Equal(t, 2000, s.ChargeMAH())
	assert.Equal(t, 2888, s.CapacityMAH())
}

func TestChargePairUsesSevenBitShift(t *testing.T) {
	// charge/capacity are 7-bit packed pairs while voltage is a full
	// 16-bit pair; the same bytes must decode differently
	snap := make([]byte, StateSize)
	snap[17], snap[18] = 0x02, 0x01
	snap[22], snap[23] = 0x02, 0x01
	s := NewState(snap)

	assert.Equal(t, 0x0201, s.VoltageMV())
	assert.Equal(t, 0x02<<7|0x01, s.ChargeMAH())
}

func TestSessionTwoPhaseContract(t *testing.T) {
	port := serialio.NewTestablePort()
	sess := NewSession(NewCodec(serialio.NewConn(port), 100*time.Millisecond))

	// no snapshot yet: reads refuse rather than yielding zeros
	_, err := sess.State()
	assert.ErrorIs(t, err, ErrNoSnapshot)
	assert.Zero(t, port.WriteCalls)

	port.AddReadData(sampleState())
	require.NoError(t, sess.Refresh(SelectAll))

	s, err := sess.State()
	require.NoError(t, err)
	assert.Equal(t, 16320, s.VoltageMV())

	// accessors are pure reads: no further exchange happened
	assert.Equal(t, 1, port.WriteCalls)
}

func TestSessionAutoRefresh(t *testing.T) {
	port := serialio.NewTestablePort()
	sess := NewSession(NewCodec(serialio.NewConn(port), 100*time.Millisecond))
	sess.SetAutoRefresh(true)

	port.AddReadData(sampleState())
	s, err := sess.State()
	require.NoError(t, err)
	assert.Equal(t, Charging, s.ChargingState())
	assert.Equal(t, 1, port.WriteCalls)

	// every State call in auto-refresh mode is a fresh round-trip
	port.AddReadData(sampleState())
	_, err = sess.State()
	require.NoError(t, err)
	assert.Equal(t, 2, port.WriteCalls)
}

func TestSessionStateIsSnapshot(t *testing.T) {
	port := serialio.NewTestablePort()
	sess := NewSession(NewCodec(serialio.NewConn(port), 100*time.Millisecond))

	port.AddReadData(sampleState())
	require.NoError(t, sess.Refresh(SelectAll))
	s1, err := sess.State()
	require.NoError(t, err)

	// a later refresh must not disturb the earlier view
	changed := sampleState()
	changed[17], changed[18] = 0x10, 0x00
	port.AddReadData(changed)
	require.NoError(t, sess.Refresh(SelectAll))

	assert.Equal(t, 16320, s1.VoltageMV())
	s2, err := sess.State()
	require.NoError(t, err)
	assert.Equal(t, 0x1000, s2.VoltageMV())
}

func TestLedsReducersArePure(t *testing.T) {
	codec, port := newTestCodec(t)

	base := Leds{}
	lit := base.WithClean(true).WithSpot(true).WithStatus(true, false).WithPower(0, 128)

	// reducers never touch the transport
	assert.Empty(t, port.WrittenData())
	// and never mutate their receiver
	assert.Equal(t, Leds{}, base)

	require.NoError(t, codec.CommitLeds(lit))
	assert.Equal(t, []byte{139, 0b0001_1100, 0, 128}, port.WrittenData())

	// switching a bit off works through the same reducers
	dimmed := lit.WithSpot(false).WithStatus(false, true)
	port.Reset()
	require.NoError(t, codec.CommitLeds(dimmed))
	assert.Equal(t, []byte{139, 0b0010_0100, 0, 128}, port.WrittenData())
}

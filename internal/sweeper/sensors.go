package sweeper

import "github.com/fieldbotics/robowire/internal/statebuf"

// Sensor field table. Offsets and widths are fixed by the wire protocol.
// Charge and capacity decode as 7-bit packed pairs: captured device data
// shows their high bytes never exceed 0x7F and the full-shift reading
// disagrees with the charging display, while voltage reads correctly with
// an 8-bit shift. The mismatch is kept as-is rather than unified; see
// DESIGN.md.
var (
	fieldBumpRight      = statebuf.Field{Name: "bump_right", Offset: 0, Kind: statebuf.KindFlag, Bit: 0}
	fieldBumpLeft       = statebuf.Field{Name: "bump_left", Offset: 0, Kind: statebuf.KindFlag, Bit: 1}
	fieldWheelDropRight = statebuf.Field{Name: "wheel_drop_right", Offset: 0, Kind: statebuf.KindFlag, Bit: 2}
	fieldWheelDropLeft  = statebuf.Field{Name: "wheel_drop_left", Offset: 0, Kind: statebuf.KindFlag, Bit: 3}
	fieldWheelDropCast  = statebuf.Field{Name: "wheel_drop_caster", Offset: 0, Kind: statebuf.KindFlag, Bit: 4}

	fieldWall            = statebuf.Field{Name: "wall", Offset: 1, Kind: statebuf.KindFlag, Bit: 0}
	fieldCliffLeft       = statebuf.Field{Name: "cliff_left", Offset: 2, Kind: statebuf.KindFlag, Bit: 0}
	fieldCliffFrontLeft  = statebuf.Field{Name: "cliff_front_left", Offset: 3, Kind: statebuf.KindFlag, Bit: 0}
	fieldCliffFrontRight = statebuf.Field{Name: "cliff_front_right", Offset: 4, Kind: statebuf.KindFlag, Bit: 0}
	fieldCliffRight      = statebuf.Field{Name: "cliff_right", Offset: 5, Kind: statebuf.KindFlag, Bit: 0}
	fieldVirtualWall     = statebuf.Field{Name: "virtual_wall", Offset: 6, Kind: statebuf.KindFlag, Bit: 0}

	fieldOvercurrentSide   = statebuf.Field{Name: "overcurrent_side_brush", Offset: 7, Kind: statebuf.KindFlag, Bit: 0}
	fieldOvercurrentVacuum = statebuf.Field{Name: "overcurrent_vacuum", Offset: 7, Kind: statebuf.KindFlag, Bit: 1}
	fieldOvercurrentMain   = statebuf.Field{Name: "overcurrent_main_brush", Offset: 7, Kind: statebuf.KindFlag, Bit: 2}
	fieldOvercurrentRight  = statebuf.Field{Name: "overcurrent_drive_right", Offset: 7, Kind: statebuf.KindFlag, Bit: 3}
	fieldOvercurrentLeft   = statebuf.Field{Name: "overcurrent_drive_left", Offset: 7, Kind: statebuf.KindFlag, Bit: 4}

	fieldDirtLeft  = statebuf.Field{Name: "dirt_left", Offset: 8, Kind: statebuf.KindU8}
	fieldDirtRight = statebuf.Field{Name: "dirt_right", Offset: 9, Kind: statebuf.KindU8}

	fieldRemoteOpcode  = statebuf.Field{Name: "remote_opcode", Offset: 10, Kind: statebuf.KindU8}
	fieldButtons       = statebuf.Field{Name: "buttons", Offset: 11, Kind: statebuf.KindU8}
	fieldDistance      = statebuf.Field{Name: "distance_mm", Offset: 12, Kind: statebuf.KindS16}
	fieldAngle         = statebuf.Field{Name: "angle_mm", Offset: 14, Kind: statebuf.KindS16}
	fieldChargingState = statebuf.Field{Name: "charging_state", Offset: 16, Kind: statebuf.KindU8}
	fieldVoltage       = statebuf.Field{Name: "voltage_mv", Offset: 17, Kind: statebuf.KindU16}
	fieldCurrent       = statebuf.Field{Name: "current_ma", Offset: 19, Kind: statebuf.KindS16}
	fieldTemperature   = statebuf.Field{Name: "temperature_c", Offset: 21, Kind: statebuf.KindS8}
	fieldCharge        = statebuf.Field{Name: "charge_mah", Offset: 22, Kind: statebuf.KindPackedU14}
	fieldCapacity      = statebuf.Field{Name: "capacity_mah", Offset: 24, Kind: statebuf.KindPackedU14}
)

// ChargingState values reported at byte 16.
const (
	NotCharging = iota
	ChargingRecovery
	Charging
	TrickleCharging
	ChargingWaiting
	ChargingFault
)

// State is a pure accessor view over one sensor buffer snapshot. It holds
// its own copy, so reads stay stable across later refreshes.
type State struct {
	snap []byte
}

// NewState wraps a snapshot of the sensor buffer. The snapshot must be
// StateSize bytes; a shorter one is a programming error surfaced by the
// decoder's panics.
func NewState(snap []byte) State { return State{snap: snap} }

func (s State) flag(f statebuf.Field) bool { return statebuf.Decode(s.snap, f) != 0 }

func (s State) BumpLeft() bool         { return s.flag(fieldBumpLeft) }
func (s State) BumpRight() bool        { return s.flag(fieldBumpRight) }
func (s State) WheelDropLeft() bool    { return s.flag(fieldWheelDropLeft) }
func (s State) WheelDropRight() bool   { return s.flag(fieldWheelDropRight) }
func (s State) WheelDropCaster() bool  { return s.flag(fieldWheelDropCast) }
func (s State) Wall() bool             { return s.flag(fieldWall) }
func (s State) CliffLeft() bool        { return s.flag(fieldCliffLeft) }
func (s State) CliffFrontLeft() bool   { return s.flag(fieldCliffFrontLeft) }
func (s State) CliffFrontRight() bool  { return s.flag(fieldCliffFrontRight) }
func (s State) CliffRight() bool       { return s.flag(fieldCliffRight) }
func (s State) VirtualWall() bool      { return s.flag(fieldVirtualWall) }
func (s State) OvercurrentSide() bool  { return s.flag(fieldOvercurrentSide) }
func (s State) OvercurrentVac() bool   { return s.flag(fieldOvercurrentVacuum) }
func (s State) OvercurrentMain() bool  { return s.flag(fieldOvercurrentMain) }
func (s State) OvercurrentRight() bool { return s.flag(fieldOvercurrentRight) }
func (s State) OvercurrentLeft() bool  { return s.flag(fieldOvercurrentLeft) }

// DirtLeft and DirtRight report dirt detector levels 0-255.
func (s State) DirtLeft() int  { return statebuf.Decode(s.snap, fieldDirtLeft) }
func (s State) DirtRight() int { return statebuf.Decode(s.snap, fieldDirtRight) }

// RemoteOpcode is the last IR remote command seen, 255 when none.
func (s State) RemoteOpcode() int { return statebuf.Decode(s.snap, fieldRemoteOpcode) }

// Buttons is the raw button bitmask.
func (s State) Buttons() int { return statebuf.Decode(s.snap, fieldButtons) }

// DistanceMM is millimetres travelled since the last power-group request,
// capped at ±32768 by the wire width.
func (s State) DistanceMM() int { return statebuf.Decode(s.snap, fieldDistance) }

// AngleMM is the difference in wheel travel since the last request,
// expressed in millimetres.
func (s State) AngleMM() int { return statebuf.Decode(s.snap, fieldAngle) }

func (s State) ChargingState() int { return statebuf.Decode(s.snap, fieldChargingState) }
func (s State) VoltageMV() int     { return statebuf.Decode(s.snap, fieldVoltage) }
func (s State) CurrentMA() int     { return statebuf.Decode(s.snap, fieldCurrent) }
func (s State) TemperatureC() int  { return statebuf.Decode(s.snap, fieldTemperature) }
func (s State) ChargeMAH() int     { return statebuf.Decode(s.snap, fieldCharge) }
func (s State) CapacityMAH() int   { return statebuf.Decode(s.snap, fieldCapacity) }

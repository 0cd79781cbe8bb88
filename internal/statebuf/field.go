package statebuf

import "fmt"

// Kind selects how a field's bytes are decoded. The two packed-pair kinds
// are deliberately distinct: captured device data shows some 16-bit fields
// shifting the high byte by 8 and others by 7, and the discrepancy may be a
// hardware register width rather than a defect, so the table names which
// form each field uses instead of unifying them.
type Kind int

const (
	// KindFlag extracts a single bit: (byte>>Bit) & 1.
	KindFlag Kind = iota
	// KindU8 is one unsigned byte.
	KindU8
	// KindS8 is one byte, two's-complement.
	KindS8
	// KindU16 is an unsigned big-endian pair: (hi<<8)|lo.
	KindU16
	// KindS16 is a big-endian pair decoded as two's-complement.
	KindS16
	// KindPackedU14 is an unsigned pair where each source byte carries at
	// most 7 significant bits: (hi<<7)|lo.
	KindPackedU14
)

func (k Kind) String() string {
	switch k {
	case KindFlag:
		return "flag"
	case KindU8:
		return "u8"
	case KindS8:
		return "s8"
	case KindU16:
		return "u16"
	case KindS16:
		return "s16"
	case KindPackedU14:
		return "packed-u14"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// width in bytes consumed from the buffer.
func (k Kind) width() int {
	switch k {
	case KindU16, KindS16, KindPackedU14:
		return 2
	default:
		return 1
	}
}

// Field describes one named slot of a state buffer: fixed offset, decode
// kind, bit position for flags, and an optional scale applied to the raw
// integer when converting to engineering units.
type Field struct {
	Name   string
	Offset int
	Kind   Kind
	Bit    uint // bit index for KindFlag
	Scale  float64
}

// Decode reads the field from a buffer snapshot and returns the raw
// integer value. It never performs I/O and never returns an error: a
// buffer shorter than the field's extent is a programming error and
// panics.
func Decode(buf []byte, f Field) int {
	end := f.Offset + f.Kind.width()
	if f.Offset < 0 || end > len(buf) {
		panic(fmt.Sprintf("statebuf: field %q [%d:%d) outside buffer of %d bytes",
			f.Name, f.Offset, end, len(buf)))
	}
	switch f.Kind {
	case KindFlag:
		return int((buf[f.Offset] >> f.Bit) & 1)
	case KindU8:
		return int(buf[f.Offset])
	case KindS8:
		return int(int8(buf[f.Offset]))
	case KindU16:
		return int(buf[f.Offset])<<8 | int(buf[f.Offset+1])
	case KindS16:
		return int(int16(uint16(buf[f.Offset])<<8 | uint16(buf[f.Offset+1])))
	case KindPackedU14:
		return int(buf[f.Offset])<<7 | int(buf[f.Offset+1])
	}
	panic(fmt.Sprintf("statebuf: field %q has unknown kind %d", f.Name, int(f.Kind)))
}

// DecodeScaled decodes the field and applies its scale factor. Fields with
// a zero Scale are treated as unscaled.
func DecodeScaled(buf []byte, f Field) float64 {
	raw := float64(Decode(buf, f))
	if f.Scale == 0 {
		return raw
	}
	return raw * f.Scale
}

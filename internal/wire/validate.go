package wire

// Reply layout shared by the status-coded binary protocols:
// [0] reply marker or length byte (variant-specific, not checked here)
// [1] echo of the request opcode
// [2] status byte, zero on success
const minReplyLen = 3

// ValidateReply performs the structural checks on a framed reply: length
// floor, opcode echo, status byte. Length and echo violations are
// *FormatError (firmware mismatch, fatal); a nonzero status byte is a
// *DeviceError carrying exactly that code, which the caller resolves
// against its protocol's status table. A zero status never errors.
func ValidateReply(reply []byte, wantOpcode byte) error {
	if len(reply) < minReplyLen {
		return Formatf("reply too short: %d bytes, need at least %d", len(reply), minReplyLen)
	}
	if reply[1] != wantOpcode {
		return Formatf("reply echoes opcode 0x%02x, want 0x%02x", reply[1], wantOpcode)
	}
	if reply[2] != 0 {
		return &DeviceError{Code: int(reply[2])}
	}
	return nil
}

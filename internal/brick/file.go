package brick

import "github.com/fieldbotics/robowire/internal/wire"

// File access over the brick's flash filesystem. Every operation is one
// request/reply exchange; the handle returned by FileOpenRead identifies
// the open file in subsequent calls and must be closed to free it: the
// firmware has a small fixed handle pool (StatusNoMoreHandles when it
// runs out).

// FileHandle identifies an open file on the brick.
type FileHandle byte

// FileOpenRead opens a stored file for reading and returns its handle and
// size in bytes.
func (c *Codec) FileOpenRead(name string) (FileHandle, uint32, error) {
	field, err := padName(name)
	if err != nil {
		return 0, 0, err
	}
	reply, err := c.Exchange(opFileOpenRead, field)
	if err != nil {
		return 0, 0, err
	}
	if len(reply) < 5 {
		return 0, 0, wire.Formatf("file open reply payload is %d bytes, want 5", len(reply))
	}
	return FileHandle(reply[0]), u32le(reply[1:]), nil
}

// FileRead reads up to n bytes from an open handle. The reply carries the
// handle, a little-endian count, then that many data bytes.
func (c *Codec) FileRead(h FileHandle, n uint16) ([]byte, error) {
	payload := append([]byte{byte(h)}, putU16le(n)...)
	reply, err := c.Exchange(opFileRead, payload)
	if err != nil {
		return nil, err
	}
	if len(reply) < 3 {
		return nil, wire.Formatf("file read reply payload is %d bytes, want at least 3", len(reply))
	}
	count := u16le(reply[1:])
	data := reply[3:]
	if count > len(data) {
		return nil, wire.Formatf("file read count %d exceeds %d framed data bytes", count, len(data))
	}
	return data[:count], nil
}

// FileWrite appends data to an open handle and returns the byte count the
// brick accepted.
func (c *Codec) FileWrite(h FileHandle, data []byte) (int, error) {
	if len(data) > MaxPayload-1 {
		return 0, wire.Formatf("write of %d bytes exceeds frame limit %d", len(data), MaxPayload-1)
	}
	payload := append([]byte{byte(h)}, data...)
	reply, err := c.Exchange(opFileWrite, payload)
	if err != nil {
		return 0, err
	}
	if len(reply) < 3 {
		return 0, wire.Formatf("file write reply payload is %d bytes, want 3", len(reply))
	}
	return u16le(reply[1:]), nil
}

// FileClose releases the handle.
func (c *Codec) FileClose(h FileHandle) error {
	_, err := c.Exchange(opFileClose, []byte{byte(h)})
	return err
}

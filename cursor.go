package jpeginfo

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Cursor is a bounds-checked, read-only view of an input buffer. Every
// index computed by the scanner goes through it, so a read past the end
// is an error instead of a clamped or wrong value.
type Cursor struct {
	buf []byte
}

// NewCursor wraps buf. The buffer is not copied and must not be modified
// while the cursor is in use.
func NewCursor(buf []byte) Cursor {
	return Cursor{buf: buf}
}

// Len returns the number of bytes in the view.
func (c Cursor) Len() int {
	return len(c.buf)
}

// Peek returns the byte at offset.
func (c Cursor) Peek(offset int) (byte, error) {
	if offset < 0 || offset >= len(c.buf) {
		return 0, errors.Wrapf(ErrOutOfBounds, "peek %d of %d", offset, len(c.buf))
	}
	return c.buf[offset], nil
}

// Slice returns n bytes starting at start. The result aliases the
// underlying buffer.
func (c Cursor) Slice(start, n int) ([]byte, error) {
	// Compare against the remaining length so start+n cannot overflow.
	if start < 0 || n < 0 || start > len(c.buf) || n > len(c.buf)-start {
		return nil, errors.Wrapf(ErrOutOfBounds, "slice [%d:+%d] of %d", start, n, len(c.buf))
	}
	return c.buf[start : start+n : start+n], nil
}

// Uint16 reads a big-endian 16-bit value at offset.
func (c Cursor) Uint16(offset int) (uint16, error) {
	b, err := c.Slice(offset, 2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

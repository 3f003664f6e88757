package sbd

import "encoding/binary"

// cursor is a bounds-checked read position over the input buffer. Callers
// must get a true result from need(n) before reading n bytes; the typed reads
// themselves do not re-check. A failed need records a diagnostic through the
// note callback instead of failing hard, so the decoder can return partial
// results.
type cursor struct {
	data []byte
	pos  int
	note func(format string, args ...any)
}

func newCursor(data []byte, note func(format string, args ...any)) *cursor {
	return &cursor{data: data, note: note}
}

// need reports whether n more bytes are available, recording a diagnostic
// when they are not.
func (c *cursor) need(n int) bool {
	if c.pos+n > len(c.data) {
		c.note("Truncated: need %d bytes at offset %d, only %d available.",
			n, c.pos, len(c.data)-c.pos)
		return false
	}
	return true
}

func (c *cursor) remaining() int {
	return len(c.data) - c.pos
}

func (c *cursor) u8() uint8 {
	v := c.data[c.pos]
	c.pos++
	return v
}

func (c *cursor) u16() uint16 {
	v := binary.BigEndian.Uint16(c.data[c.pos : c.pos+2])
	c.pos += 2
	return v
}

func (c *cursor) i32() int32 {
	v := int32(binary.BigEndian.Uint32(c.data[c.pos : c.pos+4]))
	c.pos += 4
	return v
}

// bytes returns a copy of the next n bytes, so the decoded frame never
// aliases the caller's buffer.
func (c *cursor) bytes(n int) []byte {
	out := make([]byte, n)
	copy(out, c.data[c.pos:c.pos+n])
	c.pos += n
	return out
}

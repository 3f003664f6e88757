// Package testhelpers provides byte-level SBD frame construction for decoder
// tests, so fixtures read as field values instead of opaque hex.
package testhelpers

import "encoding/binary"

// FrameBuilder assembles a raw SBD payload section by section in wire order.
type FrameBuilder struct {
	buf []byte
}

// NewFrame starts an empty payload.
func NewFrame() *FrameBuilder {
	return &FrameBuilder{}
}

// Header appends the 2-byte device header.
func (b *FrameBuilder) Header(version, msgType uint8, hasPayload, needsAck, lowPower bool) *FrameBuilder {
	byte0 := (version&0x07)<<5 | msgType&0x1F
	var byte1 uint8
	if hasPayload {
		byte1 |= 0x01
	}
	if needsAck {
		byte1 |= 0x02
	}
	if lowPower {
		byte1 |= 0x04
	}
	b.buf = append(b.buf, byte0, byte1)
	return b
}

// Fix appends a big-endian signed lat/lon pair.
func (b *FrameBuilder) Fix(lat, lon int32) *FrameBuilder {
	b.buf = binary.BigEndian.AppendUint32(b.buf, uint32(lat))
	b.buf = binary.BigEndian.AppendUint32(b.buf, uint32(lon))
	return b
}

// Battery appends the battery code byte.
func (b *FrameBuilder) Battery(code uint8) *FrameBuilder {
	b.buf = append(b.buf, code)
	return b
}

// Timer appends the big-endian unsigned timer value.
func (b *FrameBuilder) Timer(v uint16) *FrameBuilder {
	b.buf = binary.BigEndian.AppendUint16(b.buf, v)
	return b
}

// TLV appends a type byte, the value length, and the value itself.
func (b *FrameBuilder) TLV(typ uint8, value []byte) *FrameBuilder {
	b.buf = append(b.buf, typ, uint8(len(value)))
	b.buf = append(b.buf, value...)
	return b
}

// HistoryEntry appends an 8-byte history entry (direct-scale format).
func (b *FrameBuilder) HistoryEntry(lat, lon int32) *FrameBuilder {
	return b.Fix(lat, lon)
}

// HistoryEntryTS appends a 12-byte history entry with timestamp (ddmm-legacy
// format).
func (b *FrameBuilder) HistoryEntryTS(lat, lon, timestamp int32) *FrameBuilder {
	b.Fix(lat, lon)
	b.buf = binary.BigEndian.AppendUint32(b.buf, uint32(timestamp))
	return b
}

// RecordingPeriod appends the trailing hour/minute pair.
func (b *FrameBuilder) RecordingPeriod(hour, minute uint8) *FrameBuilder {
	b.buf = append(b.buf, hour, minute)
	return b
}

// Raw appends arbitrary bytes, for leftover runs and malformed tails.
func (b *FrameBuilder) Raw(p ...byte) *FrameBuilder {
	b.buf = append(b.buf, p...)
	return b
}

// Bytes returns a copy of the assembled payload.
func (b *FrameBuilder) Bytes() []byte {
	out := make([]byte, len(b.buf))
	copy(out, b.buf)
	return out
}

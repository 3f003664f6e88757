package sbd

import "fmt"

// Frame is the decoded form of one SBD tracker payload. A Frame is built once
// per Decode call and is never mutated afterwards; all byte slices are copies
// of the input, never aliases into it.
type Frame struct {
	RawLength   int    // Total input size in bytes
	Header      Header // Device header flags
	Current     Fix    // Most recent GPS fix
	BatteryCode uint8  // Raw battery level code
	TimerValue  uint16 // Transmit timer value

	PayloadPresent bool // Mirrors Header.HasPayload

	// Present only when PayloadPresent
	TLV             *TLV
	History         []HistoryFix // Arrival order preserved (latest-first on the wire)
	RecordingPeriod *RecordingPeriod

	UnknownTail []byte // Leftover bytes that do not fit the expected layout

	// Notes accumulates diagnostics (truncation, malformed sections). A
	// non-empty list does not make the Frame unusable: every field decoded
	// before the failure point remains valid.
	Notes []string
}

// Header holds the decoded 2-byte device header.
type Header struct {
	Byte0      uint8
	Byte1      uint8
	Version    uint8 // 3-bit format version, byte0 bits 5-7
	MsgType    uint8 // 5-bit message type, byte0 bits 0-4
	HasPayload bool  // byte1 bit 0
	NeedsAck   bool  // byte1 bit 1
	LowPower   bool  // byte1 bit 2
}

// Fix is one GPS position. The degree fields are nil and the formatted fields
// empty when degree conversion is disabled (direct-scale variant with a zero
// scale).
type Fix struct {
	LatEnc int32
	LonEnc int32
	LatDeg *float64
	LonDeg *float64
	Lat    string // Zero-padded decimal degrees, "" when conversion disabled
	Lon    string
}

// HistoryFix is one prior GPS fix from the history section. Timestamp is nil
// in the 8-byte (direct-scale) entry format.
type HistoryFix struct {
	Fix
	Timestamp *int32
}

// TLV is the optional type-length-value block.
type TLV struct {
	Type     uint8
	Length   uint8
	ValueHex string
	// ValueBits holds the value expanded to individual bits, most
	// significant bit of each byte first, one byte per bit (0 or 1).
	ValueBits []byte
}

// RecordingPeriod is the trailing 2-byte recording period setting.
type RecordingPeriod struct {
	Hour   uint8
	Minute uint8
}

func (f *Frame) note(format string, args ...any) {
	f.Notes = append(f.Notes, fmt.Sprintf(format, args...))
}

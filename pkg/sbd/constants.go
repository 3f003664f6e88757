package sbd

// Frame section sizes (in bytes)
const (
	MinFrameSize        = 13 // Header + current fix + battery + timer
	HeaderSize          = 2  // Flags and message type
	CurrentFixSize      = 8  // Latitude (4) + longitude (4)
	BatterySize         = 1  // Battery level code
	TimerSize           = 2  // Transmit timer, unsigned
	TLVHeaderSize       = 2  // TLV type (1) + length (1)
	RecordingPeriodSize = 2  // Hour (1) + minute (1), final 2 bytes of the frame
)

// GNSS history entry sizes per wire-format variant
const (
	HistoryEntrySizeDDMM   = 12 // lat(4) + lon(4) + timestamp(4)
	HistoryEntrySizeDirect = 8  // lat(4) + lon(4)
)

// Header byte 0 bit layout
const (
	VersionShift = 5    // Bits 5-7: format version
	VersionMask  = 0x07 // 3-bit version after shift
	MsgTypeMask  = 0x1F // Bits 0-4: message type
)

// Header byte 1 flag masks
const (
	FlagHasPayload = 0x01 // Bit 0: TLV/history/recording-period block follows
	FlagNeedsAck   = 0x02 // Bit 1: sender requests acknowledgement
	FlagLowPower   = 0x04 // Bit 2: device is in low-power mode
)

package sbd

import "encoding/hex"

// Decode walks one SBD payload and returns the decoded Frame. Malformed or
// truncated input never produces an error: decoding stops at the first
// section that cannot be read, the problem is recorded in Frame.Notes, and
// every field decoded up to that point stays valid. The only error Decode
// returns is an Options validation failure, raised before any byte is read.
//
// Decode is a pure function of data and opts; it is safe to call concurrently
// on independent buffers.
func Decode(data []byte, opts Options) (*Frame, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	f := &Frame{RawLength: len(data)}

	if len(data) < MinFrameSize {
		f.note("Payload too short: %d bytes; expected at least %d.", len(data), MinFrameSize)
		return f, nil
	}

	cur := newCursor(data, f.note)

	// Header
	if !cur.need(HeaderSize) {
		return f, nil
	}
	byte0 := cur.u8()
	byte1 := cur.u8()
	f.Header = Header{
		Byte0:      byte0,
		Byte1:      byte1,
		Version:    (byte0 >> VersionShift) & VersionMask,
		MsgType:    byte0 & MsgTypeMask,
		HasPayload: byte1&FlagHasPayload != 0,
		NeedsAck:   byte1&FlagNeedsAck != 0,
		LowPower:   byte1&FlagLowPower != 0,
	}
	f.PayloadPresent = f.Header.HasPayload

	// Current fix: big-endian signed lat then lon
	if !cur.need(CurrentFixSize) {
		return f, nil
	}
	f.Current = decodeFix(cur.i32(), cur.i32(), opts)

	// Battery
	if !cur.need(BatterySize) {
		return f, nil
	}
	f.BatteryCode = cur.u8()

	// Transmit timer
	if !cur.need(TimerSize) {
		return f, nil
	}
	f.TimerValue = cur.u16()

	if !f.Header.HasPayload {
		if cur.remaining() > 0 {
			f.UnknownTail = cur.bytes(cur.remaining())
			f.note("No payload bit set, but %d extra bytes present.", len(f.UnknownTail))
		}
		return f, nil
	}

	// TLV block
	if !cur.need(TLVHeaderSize) {
		return f, nil
	}
	tlvType := cur.u8()
	tlvLen := cur.u8()
	if !cur.need(int(tlvLen)) {
		return f, nil
	}
	value := cur.bytes(int(tlvLen))
	f.TLV = &TLV{
		Type:      tlvType,
		Length:    tlvLen,
		ValueHex:  hex.EncodeToString(value),
		ValueBits: ExpandBits(value),
	}

	rem := cur.remaining()
	if rem < RecordingPeriodSize {
		f.note("Payload present but missing final recording period (%d bytes).", RecordingPeriodSize)
		if rem > 0 {
			f.UnknownTail = cur.bytes(rem)
		}
		return f, nil
	}

	// Everything between the TLV value and the final 2 bytes is GNSS
	// history. Entries that don't divide evenly leave a leftover run just
	// before the recording period.
	region := rem - RecordingPeriodSize
	entrySize := opts.Variant.EntrySize()
	entryCount := region / entrySize
	leftover := region % entrySize

	for i := 0; i < entryCount; i++ {
		if !cur.need(entrySize) {
			f.note("Truncated inside GNSS history.")
			break
		}
		entry := HistoryFix{Fix: decodeFix(cur.i32(), cur.i32(), opts)}
		if opts.Variant != VariantDirectScale {
			ts := cur.i32()
			entry.Timestamp = &ts
		}
		f.History = append(f.History, entry)
	}

	// The recording period always occupies the final 2 bytes of the
	// buffer, regardless of any leftover run before it.
	f.RecordingPeriod = &RecordingPeriod{
		Hour:   data[len(data)-2],
		Minute: data[len(data)-1],
	}

	if leftover != 0 {
		start := len(data) - RecordingPeriodSize - leftover
		f.UnknownTail = make([]byte, leftover)
		copy(f.UnknownTail, data[start:len(data)-RecordingPeriodSize])
		f.note("Non-multiple-of-%d bytes in history section: %d leftover bytes.", entrySize, leftover)
	}

	return f, nil
}

package sbd

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/golang/geo/s2"
	"github.com/lestrrat-go/strftime"
)

// ReportOptions controls the rendered text report. The report is a
// presentation concern only; anything that matters is on the Frame itself.
type ReportOptions struct {
	// TimestampFormat is a strftime pattern applied (in UTC) to history
	// timestamps, which are epoch seconds on the wire. Empty disables the
	// human-readable form; the raw value is always shown.
	TimestampFormat string
	// ShowBits includes the MSB-first bit expansion of the TLV value.
	ShowBits bool
}

// DefaultReportOptions returns the report settings used by the CLI when no
// configuration overrides them.
func DefaultReportOptions() ReportOptions {
	return ReportOptions{TimestampFormat: "%Y-%m-%d %H:%M:%S"}
}

// Render produces the human-readable multi-line summary of a decoded frame.
func Render(f *Frame, opts ReportOptions) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Raw length: %d\n", f.RawLength)
	fmt.Fprintf(&b, "Header byte0=0x%02X byte1=0x%02X\n", f.Header.Byte0, f.Header.Byte1)
	fmt.Fprintf(&b, "  version=%d msg_type=%d\n", f.Header.Version, f.Header.MsgType)
	fmt.Fprintf(&b, "  has_payload=%v needs_ack=%v low_power=%v\n",
		f.Header.HasPayload, f.Header.NeedsAck, f.Header.LowPower)

	fmt.Fprintf(&b, "Current fix: lat=%s lon=%s (lat_enc=%d lon_enc=%d)%s\n",
		orNA(f.Current.Lat), orNA(f.Current.Lon),
		f.Current.LatEnc, f.Current.LonEnc, rangeMarker(f.Current))

	fmt.Fprintf(&b, "Battery code: %d\n", f.BatteryCode)
	fmt.Fprintf(&b, "Timer: %d\n", f.TimerValue)

	if f.PayloadPresent {
		if f.TLV != nil {
			fmt.Fprintf(&b, "TLV: type=%d len=%d\n", f.TLV.Type, f.TLV.Length)
			fmt.Fprintf(&b, "  value(hex)=%s\n", f.TLV.ValueHex)
			if opts.ShowBits && len(f.TLV.ValueBits) > 0 {
				fmt.Fprintf(&b, "  value(bits)=%s\n", bitGroups(f.TLV.ValueBits))
			}
		}

		fmt.Fprintf(&b, "GNSS history entries: %d (latest-first)\n", len(f.History))
		for i, h := range f.History {
			fmt.Fprintf(&b, "  [%d] lat=%s lon=%s%s (lat_enc=%d lon_enc=%d)%s\n",
				i, orNA(h.Lat), orNA(h.Lon),
				timestampField(h.Timestamp, opts.TimestampFormat),
				h.LatEnc, h.LonEnc, rangeMarker(h.Fix))
		}

		if f.RecordingPeriod != nil {
			fmt.Fprintf(&b, "Recording period: hour=%d minute=%d\n",
				f.RecordingPeriod.Hour, f.RecordingPeriod.Minute)
		}
	}

	if len(f.UnknownTail) > 0 {
		fmt.Fprintf(&b, "Unknown tail bytes (%d): %s\n",
			len(f.UnknownTail), hex.EncodeToString(f.UnknownTail))
	}

	if len(f.Notes) > 0 {
		b.WriteString("Errors/Notes:\n")
		for _, n := range f.Notes {
			fmt.Fprintf(&b, "  - %s\n", n)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func orNA(s string) string {
	if s == "" {
		return "n/a"
	}
	return s
}

// rangeMarker flags fixes whose decoded degrees fall outside the valid
// latitude/longitude range, which usually means the wrong variant or scale
// was selected.
func rangeMarker(fix Fix) string {
	if fix.LatDeg == nil || fix.LonDeg == nil {
		return ""
	}
	if s2.LatLngFromDegrees(*fix.LatDeg, *fix.LonDeg).IsValid() {
		return ""
	}
	return " [position out of range]"
}

func timestampField(ts *int32, format string) string {
	if ts == nil {
		return ""
	}
	out := fmt.Sprintf(" timestamp=%d", *ts)
	if format == "" {
		return out
	}
	human, err := strftime.Format(format, time.Unix(int64(*ts), 0).UTC())
	if err != nil {
		return out
	}
	return fmt.Sprintf("%s (%s UTC)", out, human)
}

func bitGroups(bits []byte) string {
	var b strings.Builder
	for i, bit := range bits {
		if i > 0 && i%8 == 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('0' + bit)
	}
	return b.String()
}

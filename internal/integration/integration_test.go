//go:build integration
// +build integration

package integration

import (
	"strings"
	"testing"

	"github.com/spf13/viper"

	"sbdtrack/internal/testhelpers"
	"sbdtrack/pkg/config"
	"sbdtrack/pkg/sbd"
)

// TestDecodePipeline runs the full configuration -> decode -> report path the
// CLI uses, with the default (ddmm-legacy) settings.
func TestDecodePipeline(t *testing.T) {
	viper.Reset()

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("failed to load configuration: %v", err)
	}

	opts, err := cfg.Decoder.Options()
	if err != nil {
		t.Fatalf("failed to build decoder options: %v", err)
	}

	data := testhelpers.NewFrame().
		Header(1, 5, true, false, false).
		Fix(45300000, -3150000).
		Battery(113).
		Timer(600).
		TLV(7, []byte{0xBE, 0xEF}).
		HistoryEntryTS(45310000, -3160000, 1700000000).
		RecordingPeriod(6, 30).
		Bytes()

	frame, err := sbd.Decode(data, opts)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(frame.Notes) != 0 {
		t.Fatalf("expected clean decode, got notes: %v", frame.Notes)
	}

	out := sbd.Render(frame, sbd.ReportOptions{
		TimestampFormat: cfg.Report.TimestampFormat,
		ShowBits:        cfg.Report.ShowBits,
	})

	for _, want := range []string{
		"Current fix: lat=45.500000 lon=-03.250000",
		"GNSS history entries: 1",
		"Recording period: hour=6 minute=30",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected report to contain %q, got:\n%s", want, out)
		}
	}
}

// TestDecodePipeline_DirectScale exercises the alternate wire-format variant
// end to end through a configuration file.
func TestDecodePipeline_DirectScale(t *testing.T) {
	viper.Reset()

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("failed to load configuration: %v", err)
	}
	cfg.Decoder.Variant = sbd.VariantNameDirectScale
	cfg.Decoder.Scale = 1e6
	if err := config.Validate(cfg); err != nil {
		t.Fatalf("expected overridden config to validate: %v", err)
	}

	opts, err := cfg.Decoder.Options()
	if err != nil {
		t.Fatalf("failed to build decoder options: %v", err)
	}

	data := testhelpers.NewFrame().
		Header(2, 3, true, false, false).
		Fix(7500000, -51231451).
		Battery(88).
		Timer(42).
		TLV(1, []byte{0x01}).
		HistoryEntry(7600000, -51000000).
		RecordingPeriod(12, 0).
		Bytes()

	frame, err := sbd.Decode(data, opts)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(frame.History) != 1 {
		t.Fatalf("expected one history entry, got %d", len(frame.History))
	}
	if frame.History[0].Timestamp != nil {
		t.Fatal("expected no timestamps in direct-scale entries")
	}
	if frame.Current.Lat != "07.500000" {
		t.Errorf("expected lat 07.500000, got %q", frame.Current.Lat)
	}
}

package sbd

import "fmt"

// Variant selects the wire-format era of the frame.
type Variant int

const (
	// VariantDDMMLegacy encodes coordinates as DDMM.mmmm scaled by
	// Options.Scale and uses 12-byte history entries with a timestamp.
	VariantDDMMLegacy Variant = iota
	// VariantDirectScale encodes coordinates as plain fixed-point degrees
	// (degrees = raw / scale) and uses 8-byte history entries.
	VariantDirectScale
)

// Variant names as used in configuration files and on the command line.
const (
	VariantNameDDMMLegacy  = "ddmm-legacy"
	VariantNameDirectScale = "direct-scale"
)

// String returns the configuration name of the variant.
func (v Variant) String() string {
	switch v {
	case VariantDDMMLegacy:
		return VariantNameDDMMLegacy
	case VariantDirectScale:
		return VariantNameDirectScale
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// EntrySize returns the GNSS history entry size in bytes for the variant.
func (v Variant) EntrySize() int {
	if v == VariantDirectScale {
		return HistoryEntrySizeDirect
	}
	return HistoryEntrySizeDDMM
}

// ParseVariant maps a configuration name to a Variant.
func ParseVariant(name string) (Variant, error) {
	switch name {
	case VariantNameDDMMLegacy:
		return VariantDDMMLegacy, nil
	case VariantNameDirectScale:
		return VariantDirectScale, nil
	default:
		return 0, fmt.Errorf("unknown variant %q (must be %s or %s)",
			name, VariantNameDDMMLegacy, VariantNameDirectScale)
	}
}

// Options controls how Decode interprets coordinates and the history section.
type Options struct {
	Variant Variant
	// Scale divides the raw int32 coordinate. Required positive for
	// VariantDDMMLegacy. For VariantDirectScale a zero scale disables
	// degree conversion entirely (encoded values are still reported).
	Scale    float64
	LatWidth int // Minimum digits before the decimal point, default 2
	LonWidth int // Minimum digits before the decimal point, default 2
	Decimals int // Digits after the decimal point, default 6
}

// DefaultOptions returns the options matching the original tracker firmware:
// DDMM.mmmm encoding scaled by 1e4, widths 2/2, 6 decimals.
func DefaultOptions() Options {
	return Options{
		Variant:  VariantDDMMLegacy,
		Scale:    1e4,
		LatWidth: 2,
		LonWidth: 2,
		Decimals: 6,
	}
}

// Validate reports caller misuse. Decode runs this before touching the input
// buffer; a validation failure is the only way Decode returns an error.
func (o Options) Validate() error {
	switch o.Variant {
	case VariantDDMMLegacy:
		if o.Scale <= 0 {
			return fmt.Errorf("scale must be positive in %s mode, got %v", o.Variant, o.Scale)
		}
	case VariantDirectScale:
		if o.Scale < 0 {
			return fmt.Errorf("scale must not be negative in %s mode, got %v", o.Variant, o.Scale)
		}
	default:
		return fmt.Errorf("unknown variant %d", int(o.Variant))
	}
	if o.LatWidth < 1 {
		return fmt.Errorf("lat width must be at least 1, got %d", o.LatWidth)
	}
	if o.LonWidth < 1 {
		return fmt.Errorf("lon width must be at least 1, got %d", o.LonWidth)
	}
	if o.Decimals < 0 {
		return fmt.Errorf("decimals must not be negative, got %d", o.Decimals)
	}
	return nil
}

package sbd

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DDMMToDegrees converts a signed DDMM.mmmm fixed-point coordinate to decimal
// degrees. The raw value divided by scale yields a float of the form
// DDMM.mmmm; decimal degrees = DD + MM.mmmm/60, with the sign of raw applied
// afterwards so southern/western coordinates survive the folding.
func DDMMToDegrees(raw int32, scale float64) (float64, error) {
	if scale <= 0 {
		return 0, fmt.Errorf("ddmm scale must be positive, got %v", scale)
	}
	sign := 1.0
	if raw < 0 {
		sign = -1.0
	}
	ddmm := math.Abs(float64(raw)) / scale
	degrees := math.Floor(ddmm / 100)
	minutes := ddmm - degrees*100
	return sign * (degrees + minutes/60), nil
}

// FormatDegrees renders decimal degrees with at least width digits before the
// decimal point (zero-padded, never truncated) and exactly decimals digits
// after it, keeping a leading minus for negative input.
//
// Rounding follows strconv.FormatFloat: round to nearest, ties to even on the
// underlying binary value.
func FormatDegrees(value float64, width, decimals int) string {
	s := strconv.FormatFloat(math.Abs(value), 'f', decimals, 64)
	intPart := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i+1:]
	}
	for len(intPart) < width {
		intPart = "0" + intPart
	}
	if decimals > 0 {
		intPart += "." + frac
	}
	if value < 0 {
		intPart = "-" + intPart
	}
	return intPart
}

// decodeDegrees applies the variant's conversion mode. A nil result means
// conversion is disabled (direct-scale with zero scale). Options are
// validated before decoding starts, so the ddmm path cannot fail here.
func decodeDegrees(raw int32, opts Options) *float64 {
	switch opts.Variant {
	case VariantDirectScale:
		if opts.Scale == 0 {
			return nil
		}
		deg := float64(raw) / opts.Scale
		return &deg
	default:
		deg, err := DDMMToDegrees(raw, opts.Scale)
		if err != nil {
			return nil
		}
		return &deg
	}
}

// decodeFix converts and formats one raw lat/lon pair.
func decodeFix(latEnc, lonEnc int32, opts Options) Fix {
	fix := Fix{
		LatEnc: latEnc,
		LonEnc: lonEnc,
		LatDeg: decodeDegrees(latEnc, opts),
		LonDeg: decodeDegrees(lonEnc, opts),
	}
	if fix.LatDeg != nil {
		fix.Lat = FormatDegrees(*fix.LatDeg, opts.LatWidth, opts.Decimals)
	}
	if fix.LonDeg != nil {
		fix.Lon = FormatDegrees(*fix.LonDeg, opts.LonWidth, opts.Decimals)
	}
	return fix
}

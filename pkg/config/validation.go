package config

import (
	"fmt"

	"sbdtrack/pkg/sbd"
)

// Validate validates the configuration. The CLI also re-runs it after
// applying flag overrides.
func Validate(cfg *Config) error {
	// Validate decoder config
	variant, err := sbd.ParseVariant(cfg.Decoder.Variant)
	if err != nil {
		return fmt.Errorf("decoder.variant: %w", err)
	}
	switch variant {
	case sbd.VariantDDMMLegacy:
		if cfg.Decoder.Scale <= 0 {
			return fmt.Errorf("decoder.scale must be positive for %s", sbd.VariantNameDDMMLegacy)
		}
	case sbd.VariantDirectScale:
		if cfg.Decoder.Scale < 0 {
			return fmt.Errorf("decoder.scale must not be negative for %s", sbd.VariantNameDirectScale)
		}
	}
	if cfg.Decoder.LatWidth < 1 {
		return fmt.Errorf("decoder.lat_width must be at least 1")
	}
	if cfg.Decoder.LonWidth < 1 {
		return fmt.Errorf("decoder.lon_width must be at least 1")
	}
	if cfg.Decoder.Decimals < 0 {
		return fmt.Errorf("decoder.decimals must not be negative")
	}

	// Validate logging config
	switch cfg.Logging.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error")
	}
	switch cfg.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json")
	}

	return nil
}

package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"sbdtrack/pkg/sbd"
)

// Config represents the application configuration
type Config struct {
	Decoder DecoderConfig `mapstructure:"decoder"`
	Report  ReportConfig  `mapstructure:"report"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// DecoderConfig selects the wire-format variant and coordinate rendering.
type DecoderConfig struct {
	Variant  string  `mapstructure:"variant"`   // ddmm-legacy or direct-scale
	Scale    float64 `mapstructure:"scale"`     // Coordinate fixed-point scale
	LatWidth int     `mapstructure:"lat_width"` // Digits before '.' for latitude
	LonWidth int     `mapstructure:"lon_width"` // Digits before '.' for longitude
	Decimals int     `mapstructure:"decimals"`  // Digits after '.'
}

// ReportConfig controls the rendered text report.
type ReportConfig struct {
	TimestampFormat string `mapstructure:"timestamp_format"` // strftime pattern for history timestamps
	ShowBits        bool   `mapstructure:"show_bits"`        // Include TLV value bits
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Options converts the decoder section into sbd.Options. The returned options
// are already validated.
func (c DecoderConfig) Options() (sbd.Options, error) {
	variant, err := sbd.ParseVariant(c.Variant)
	if err != nil {
		return sbd.Options{}, err
	}
	opts := sbd.Options{
		Variant:  variant,
		Scale:    c.Scale,
		LatWidth: c.LatWidth,
		LonWidth: c.LonWidth,
		Decimals: c.Decimals,
	}
	return opts, opts.Validate()
}

// Load loads configuration from file and environment variables
func Load(configFile string) (*Config, error) {
	// Set defaults
	setDefaults()

	// Set config file
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")
		viper.AddConfigPath("/etc/sbdtrack")
	}

	// Environment variables
	viper.SetEnvPrefix("SBDTRACK")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found is OK, use defaults
		} else if os.IsNotExist(err) {
			// File explicitly specified but doesn't exist - that's also OK
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal to struct
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := Validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Decoder defaults match the original tracker firmware
	viper.SetDefault("decoder.variant", sbd.VariantNameDDMMLegacy)
	viper.SetDefault("decoder.scale", 1e4)
	viper.SetDefault("decoder.lat_width", 2)
	viper.SetDefault("decoder.lon_width", 2)
	viper.SetDefault("decoder.decimals", 6)

	// Report defaults
	viper.SetDefault("report.timestamp_format", "%Y-%m-%d %H:%M:%S")
	viper.SetDefault("report.show_bits", false)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
}

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"sbdtrack/pkg/config"
	"sbdtrack/pkg/logger"
	"sbdtrack/pkg/sbd"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	// Parse command line flags
	configFile := pflag.String("config", "", "Path to configuration file")
	filePath := pflag.StringP("file", "f", "", "Path to a binary SBD payload file (- for stdin)")
	hexInput := pflag.StringP("hex", "x", "", "Hex string representing the payload bytes")
	variant := pflag.String("variant", "", "Wire format variant: ddmm-legacy or direct-scale")
	scale := pflag.Float64("scale", 0, "Scale of the encoded coordinate integers")
	latWidth := pflag.Int("lat-width", 0, "Digits before '.' for latitude (zero-padded)")
	lonWidth := pflag.Int("lon-width", 0, "Digits before '.' for longitude (zero-padded)")
	decimals := pflag.Int("decimals", -1, "Digits after '.'")
	showBits := pflag.Bool("bits", false, "Include TLV value bits in the report")
	showVersion := pflag.Bool("version", false, "Show version information")
	validateOnly := pflag.Bool("validate", false, "Validate configuration and exit")
	pflag.Parse()

	// Show version
	if *showVersion {
		fmt.Printf("sbdtrack %s (built %s)\n", version, buildTime)
		os.Exit(0)
	}

	// Initialize a basic logger before configuration is known
	log := logger.New(logger.Config{Level: "info", Format: "text"})

	// Load configuration
	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Flags override configuration only when explicitly set
	flags := pflag.CommandLine
	if flags.Changed("variant") {
		cfg.Decoder.Variant = *variant
	}
	if flags.Changed("scale") {
		cfg.Decoder.Scale = *scale
	}
	if flags.Changed("lat-width") {
		cfg.Decoder.LatWidth = *latWidth
	}
	if flags.Changed("lon-width") {
		cfg.Decoder.LonWidth = *lonWidth
	}
	if flags.Changed("decimals") {
		cfg.Decoder.Decimals = *decimals
	}
	if flags.Changed("bits") {
		cfg.Report.ShowBits = *showBits
	}
	if err := config.Validate(cfg); err != nil {
		log.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	log = logger.New(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	// Validate only mode
	if *validateOnly {
		log.Info("Configuration is valid")
		os.Exit(0)
	}

	if *filePath != "" && *hexInput != "" {
		log.Error("--file and --hex are mutually exclusive")
		os.Exit(2)
	}
	if *filePath == "" && *hexInput == "" {
		pflag.Usage()
		return
	}

	data, err := readPayload(*filePath, *hexInput)
	if err != nil {
		log.Error("Failed to read payload", "error", err)
		os.Exit(1)
	}
	log.Debug("Payload read", "bytes", len(data))

	opts, err := cfg.Decoder.Options()
	if err != nil {
		log.Error("Invalid decoder configuration", "error", err)
		os.Exit(1)
	}

	frame, err := sbd.Decode(data, opts)
	if err != nil {
		log.Error("Decode rejected configuration", "error", err)
		os.Exit(1)
	}

	fmt.Println(sbd.Render(frame, sbd.ReportOptions{
		TimestampFormat: cfg.Report.TimestampFormat,
		ShowBits:        cfg.Report.ShowBits,
	}))

	if len(frame.Notes) > 0 {
		log.Warn("Decode completed with notes", "notes", len(frame.Notes))
	}
}

// readPayload acquires the raw frame bytes from a file, stdin ("-"), or a hex
// string.
func readPayload(filePath, hexInput string) ([]byte, error) {
	if filePath != "" {
		if filePath == "-" {
			return io.ReadAll(os.Stdin)
		}
		return os.ReadFile(filePath)
	}
	data, err := hex.DecodeString(strings.TrimSpace(hexInput))
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return data, nil
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/ybernard/camsweep/internal/config"
	"github.com/ybernard/camsweep/internal/debug"
	"github.com/ybernard/camsweep/internal/hw/gpio"
	"github.com/ybernard/camsweep/internal/hw/indicator"
	"github.com/ybernard/camsweep/internal/hw/video"
	"github.com/ybernard/camsweep/internal/logic/scan"
	"github.com/ybernard/camsweep/internal/storage"
)

// maxDevicesUnset marks the -max-devices flag as not given; 0 itself
// is a legal override (probe nothing).
const maxDevicesUnset = -1

func main() {
	// CLI flags
	cfgPath := flag.String("config", filepath.Join("configs", "default.yaml"), "path to config file")
	maxDevices := flag.Int("max-devices", maxDevicesUnset, "override upper bound on probed device indices (>= 0)")
	outputDir := flag.String("output-dir", "", "override output directory for captured frames")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Load configuration
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	// Validate CLI overrides (sentinel/empty values mean "use config default")
	if err := validateOverrides(*maxDevices, *outputDir); err != nil {
		log.Fatalf("invalid CLI override: %v", err)
	}
	applyOverrides(cfg, *maxDevices, *outputDir)

	// Initialize debug system, mirrored to the run log file
	debug.Init(cfg.Log.DebugLevel)
	logFile, err := os.OpenFile(cfg.Log.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Fatalf("open log file failed: %v", err)
	}
	defer logFile.Close()
	debug.SetOutput(io.MultiWriter(os.Stdout, logFile))

	debug.Section("Initialization")
	debug.Value("Config path", *cfgPath)
	debug.Value("Debug level", cfg.Log.DebugLevel)
	debug.Value("Max devices", cfg.Scan.MaxDevices)
	debug.Value("Output dir", cfg.Output.Dir)

	// Select capture backend
	debug.Step(1, "Selecting capture backend")
	backend, err := newBackendFromConfig(cfg)
	if err != nil {
		log.Fatalf("init capture backend failed: %v", err)
	}
	debug.Value("Backend", backend.Name())

	// Optional status LED
	debug.Step(2, "Initializing status indicator")
	led, closeLED, err := newIndicatorFromConfig(cfg)
	if err != nil {
		log.Fatalf("init status LED failed: %v", err)
	}
	defer closeLED()

	// Run the sweep
	debug.Step(3, "Starting device sweep")
	scanner := scan.NewScanner(backend, storage.PNGWriter{}, led, cfg.Output.Dir)
	if _, err := scanner.Run(ctx, cfg.Scan.MaxDevices); err != nil {
		if errors.Is(err, context.Canceled) {
			debug.Info("Sweep interrupted by operator")
			return
		}
		log.Fatalf("sweep failed: %v", err)
	}
}

// validateOverrides checks CLI override values. maxDevicesUnset and the
// empty output dir mean "use config default" and are always valid.
func validateOverrides(maxDevices int, outputDir string) error {
	if maxDevices != maxDevicesUnset && maxDevices < 0 {
		return fmt.Errorf("max-devices must be >= 0, got %d", maxDevices)
	}
	// Any output dir string is acceptable here; creation is checked at run time.
	return nil
}

// applyOverrides mutates cfg with CLI overrides. Sentinel/empty values
// keep the config file's settings.
func applyOverrides(cfg *config.Config, maxDevices int, outputDir string) {
	if maxDevices != maxDevicesUnset {
		cfg.Scan.MaxDevices = maxDevices
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}
}

// newBackendFromConfig selects a capture backend based on configuration.
func newBackendFromConfig(cfg *config.Config) (video.Backend, error) {
	hint, err := video.ParseHint(cfg.Scan.Backend)
	if err != nil {
		return nil, err
	}
	if hint == video.HintMock {
		debug.Info("Using MOCK capture backend (development mode)")
		return video.NewMock(cfg.Scan.MockDevices), nil
	}
	return video.NewGoCV(hint), nil
}

// newIndicatorFromConfig builds the status LED, or a no-op when the
// LED is disabled. The returned func releases the GPIO driver.
func newIndicatorFromConfig(cfg *config.Config) (indicator.Indicator, func(), error) {
	if !cfg.LED.Enabled {
		return indicator.Nop{}, func() {}, nil
	}

	driver, err := gpio.NewDriver(cfg.LED.MockGPIO)
	if err != nil {
		return nil, nil, err
	}
	closeDriver := func() {
		if err := driver.Close(); err != nil {
			log.Printf("closing GPIO driver failed: %v", err)
		}
	}
	return indicator.NewLED(driver, cfg.LED.Pin, cfg.PulseDelay()), closeDriver, nil
}

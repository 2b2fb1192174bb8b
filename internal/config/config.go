package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ScanConfig bounds the device sweep.
type ScanConfig struct {
	MaxDevices  int    `yaml:"max_devices"`  // upper bound on probed indices (0..max_devices-1)
	Backend     string `yaml:"backend"`      // capture backend hint: auto, any, v4l2, dshow, avfoundation, gstreamer, mock
	MockDevices []int  `yaml:"mock_devices"` // indices simulated by the mock backend
}

// OutputConfig describes where captured frames go.
type OutputConfig struct {
	Dir string `yaml:"dir"` // created (with parents) before the scan
}

// LogConfig describes the run log sink.
type LogConfig struct {
	File       string `yaml:"file"`        // append-only log file, mirrored to stdout
	DebugLevel int    `yaml:"debug_level"` // debug level 0-4 (0=off, 1=info, 2=live, 3=verbose, 4=trace)
}

// LEDConfig describes the optional status LED on headless rigs.
type LEDConfig struct {
	Enabled  bool `yaml:"enabled"`
	Pin      int  `yaml:"pin"`       // BCM pin number
	MockGPIO bool `yaml:"mock_gpio"` // use mock GPIO (true=dev/test, false=real Raspberry Pi)
	PulseMs  int  `yaml:"pulse_ms"`  // off-time of the per-capture blink (ms)
}

// Config aggregates all application configuration.
type Config struct {
	Scan   ScanConfig   `yaml:"scan"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
	LED    LEDConfig    `yaml:"led"`
}

// Default returns the built-in configuration. An explicit
// `max_devices: 0` in the file is a legal value (scan nothing), so
// defaults are filled before unmarshal rather than patched after.
func Default() *Config {
	return &Config{
		Scan: ScanConfig{
			MaxDevices: 10, // policy default, not a discovered hardware limit
			Backend:    "auto",
		},
		Output: OutputConfig{
			Dir: "captured_images",
		},
		Log: LogConfig{
			File:       "camera_capture.log",
			DebugLevel: 1,
		},
		LED: LEDConfig{
			Enabled:  false,
			Pin:      18,
			MockGPIO: true,
			PulseMs:  120,
		},
	}
}

// Load reads a YAML file and returns the configuration.
// Keys missing from the file keep their Default() values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	// Basic validation
	if cfg.Scan.MaxDevices < 0 {
		return nil, fmt.Errorf("scan.max_devices must be >= 0, got %d", cfg.Scan.MaxDevices)
	}
	if cfg.Log.DebugLevel < 0 || cfg.Log.DebugLevel > 4 {
		return nil, fmt.Errorf("log.debug_level must be between 0 and 4, got %d", cfg.Log.DebugLevel)
	}
	if cfg.LED.Enabled && (cfg.LED.Pin < 2 || cfg.LED.Pin > 27) {
		return nil, fmt.Errorf("led.pin must be a BCM pin between 2 and 27, got %d", cfg.LED.Pin)
	}
	if cfg.LED.PulseMs <= 0 {
		cfg.LED.PulseMs = 120 // long enough for the blink to be visible
	}

	return cfg, nil
}

// PulseDelay returns the off-time of the per-capture LED blink.
func (c *Config) PulseDelay() time.Duration {
	return time.Duration(c.LED.PulseMs) * time.Millisecond
}

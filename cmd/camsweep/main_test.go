package main

import (
	"testing"

	"github.com/ybernard/camsweep/internal/config"
	"github.com/ybernard/camsweep/internal/hw/indicator"
	"github.com/ybernard/camsweep/internal/hw/video"
)

// ---------- validateOverrides ----------

func TestValidateOverrides_Unset(t *testing.T) {
	if err := validateOverrides(maxDevicesUnset, ""); err != nil {
		t.Errorf("unset overrides should be valid (use config defaults), got: %v", err)
	}
}

func TestValidateOverrides_Valid(t *testing.T) {
	cases := []struct {
		name       string
		maxDevices int
		outputDir  string
	}{
		{"zero_devices", 0, ""},
		{"one_device", 1, ""},
		{"many_devices", 64, ""},
		{"output_dir_only", maxDevicesUnset, "shots"},
		{"both", 5, "/tmp/shots"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := validateOverrides(tc.maxDevices, tc.outputDir); err != nil {
				t.Errorf("expected valid, got: %v", err)
			}
		})
	}
}

func TestValidateOverrides_NegativeMaxDevices(t *testing.T) {
	for _, n := range []int{-2, -10, -100} {
		if err := validateOverrides(n, ""); err == nil {
			t.Errorf("expected error for max-devices %d, got nil", n)
		}
	}
}

// ---------- applyOverrides ----------

func TestApplyOverrides_Unset(t *testing.T) {
	cfg := config.Default()
	applyOverrides(cfg, maxDevicesUnset, "")

	if cfg.Scan.MaxDevices != 10 {
		t.Errorf("MaxDevices = %d, want config default 10", cfg.Scan.MaxDevices)
	}
	if cfg.Output.Dir != "captured_images" {
		t.Errorf("Output.Dir = %q, want config default", cfg.Output.Dir)
	}
}

func TestApplyOverrides_MaxDevices(t *testing.T) {
	cfg := config.Default()
	applyOverrides(cfg, 3, "")

	if cfg.Scan.MaxDevices != 3 {
		t.Errorf("MaxDevices = %d, want 3", cfg.Scan.MaxDevices)
	}
}

func TestApplyOverrides_ZeroMaxDevices(t *testing.T) {
	// 0 is a real override, not "unset".
	cfg := config.Default()
	applyOverrides(cfg, 0, "")

	if cfg.Scan.MaxDevices != 0 {
		t.Errorf("MaxDevices = %d, want 0", cfg.Scan.MaxDevices)
	}
}

func TestApplyOverrides_OutputDir(t *testing.T) {
	cfg := config.Default()
	applyOverrides(cfg, maxDevicesUnset, "elsewhere")

	if cfg.Output.Dir != "elsewhere" {
		t.Errorf("Output.Dir = %q, want elsewhere", cfg.Output.Dir)
	}
}

// ---------- newBackendFromConfig ----------

func TestNewBackendFromConfig_Mock(t *testing.T) {
	cfg := config.Default()
	cfg.Scan.Backend = "mock"
	cfg.Scan.MockDevices = []int{0, 1}

	backend, err := newBackendFromConfig(cfg)
	if err != nil {
		t.Fatalf("newBackendFromConfig: %v", err)
	}
	if backend.Name() != "mock" {
		t.Errorf("backend = %q, want mock", backend.Name())
	}
	if _, err := backend.Open(1); err != nil {
		t.Errorf("mock device 1 should open, got: %v", err)
	}
	if _, err := backend.Open(5); err == nil {
		t.Error("mock device 5 should not exist")
	}
}

func TestNewBackendFromConfig_GoCV(t *testing.T) {
	cfg := config.Default()
	cfg.Scan.Backend = "auto"

	backend, err := newBackendFromConfig(cfg)
	if err != nil {
		t.Fatalf("newBackendFromConfig: %v", err)
	}
	if _, ok := backend.(*video.GoCV); !ok {
		t.Errorf("backend = %T, want *video.GoCV", backend)
	}
}

func TestNewBackendFromConfig_UnknownHint(t *testing.T) {
	cfg := config.Default()
	cfg.Scan.Backend = "quicktime"

	if _, err := newBackendFromConfig(cfg); err == nil {
		t.Error("expected error for unknown backend hint, got nil")
	}
}

// ---------- newIndicatorFromConfig ----------

func TestNewIndicatorFromConfig_Disabled(t *testing.T) {
	cfg := config.Default()
	cfg.LED.Enabled = false

	led, closeLED, err := newIndicatorFromConfig(cfg)
	if err != nil {
		t.Fatalf("newIndicatorFromConfig: %v", err)
	}
	defer closeLED()

	if _, ok := led.(indicator.Nop); !ok {
		t.Errorf("indicator = %T, want indicator.Nop", led)
	}
}

func TestNewIndicatorFromConfig_EnabledMock(t *testing.T) {
	cfg := config.Default()
	cfg.LED.Enabled = true
	cfg.LED.MockGPIO = true
	cfg.LED.Pin = 18

	led, closeLED, err := newIndicatorFromConfig(cfg)
	if err != nil {
		t.Fatalf("newIndicatorFromConfig: %v", err)
	}
	defer closeLED()

	if _, ok := led.(*indicator.LED); !ok {
		t.Errorf("indicator = %T, want *indicator.LED", led)
	}
}

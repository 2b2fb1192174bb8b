package video

import (
	"fmt"
	"image"
	"strings"
)

// Frame is a single decoded still image read from a device.
type Frame struct {
	Image  image.Image
	Width  int
	Height int
}

// Device is an open capture handle on one device index.
// Callers must Close it exactly once, on every path.
type Device interface {
	// ReadFrame grabs and decodes a single frame.
	ReadFrame() (Frame, error)
	// Close releases the underlying device handle.
	Close() error
}

// Backend opens capture devices by index. It abstracts the OS capture
// API so the scan logic can run against real hardware or a mock,
// the same way gpio.Driver abstracts pins.
type Backend interface {
	// Open attaches to the device at index. An error means no usable
	// device exists there.
	Open(index int) (Device, error)
	// Name identifies the backend in logs.
	Name() string
}

// Hint names a preferred OS capture API. Hints are best effort: a hint
// for an API the current platform does not provide falls back to
// auto-detection instead of failing.
type Hint string

const (
	HintAuto         Hint = "auto"
	HintAny          Hint = "any"
	HintV4L2         Hint = "v4l2"
	HintDShow        Hint = "dshow"
	HintAVFoundation Hint = "avfoundation"
	HintGStreamer    Hint = "gstreamer"
	HintMock         Hint = "mock"
)

// ParseHint validates a backend name from config or CLI.
// The empty string means HintAuto.
func ParseHint(s string) (Hint, error) {
	switch h := Hint(strings.ToLower(strings.TrimSpace(s))); h {
	case "":
		return HintAuto, nil
	case HintAuto, HintAny, HintV4L2, HintDShow, HintAVFoundation, HintGStreamer, HintMock:
		return h, nil
	default:
		return "", fmt.Errorf("unknown backend %q (must be auto, any, v4l2, dshow, avfoundation, gstreamer or mock)", s)
	}
}

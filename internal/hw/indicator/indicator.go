package indicator

import (
	"time"

	"github.com/ybernard/camsweep/internal/debug"
	"github.com/ybernard/camsweep/internal/hw/gpio"
)

// Indicator signals scan progress on headless rigs where there is no
// screen to watch the log on. Failures to drive the indicator are
// logged and swallowed: a dead LED must never change a scan outcome.
type Indicator interface {
	ScanStarted()
	FrameCaptured()
	ScanFinished()
}

// Nop is the Indicator used when no LED is configured.
type Nop struct{}

func (Nop) ScanStarted()   {}
func (Nop) FrameCaptured() {}
func (Nop) ScanFinished()  {}

// LED drives a single status LED: solid on while the scan runs, a
// short off/on blink per captured frame, off when the scan completes.
type LED struct {
	gpio  gpio.Driver
	pin   int
	pulse time.Duration
	sleep func(time.Duration) // replaceable in tests
}

// NewLED creates a status LED on the given BCM pin.
// pulse is the off-time of the per-capture blink.
func NewLED(g gpio.Driver, pin int, pulse time.Duration) *LED {
	if err := g.SetupPin(pin, gpio.Output); err != nil {
		debug.Error(err)
	}
	return &LED{
		gpio:  g,
		pin:   pin,
		pulse: pulse,
		sleep: time.Sleep,
	}
}

// ScanStarted turns the LED on for the duration of the scan.
func (l *LED) ScanStarted() {
	l.write(gpio.High)
}

// FrameCaptured blinks the LED off and back on, so consecutive
// captures stay visible against the solid scan-in-progress light.
func (l *LED) FrameCaptured() {
	l.write(gpio.Low)
	l.sleep(l.pulse)
	l.write(gpio.High)
}

// ScanFinished turns the LED off.
func (l *LED) ScanFinished() {
	l.write(gpio.Low)
}

func (l *LED) write(level gpio.Level) {
	if err := l.gpio.WritePin(l.pin, level); err != nil {
		debug.Error(err)
	}
}

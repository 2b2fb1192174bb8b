package debug

import (
	"io"
	"log"
	"os"
)

// Debug levels
const (
	LevelOff     = 0 // No output
	LevelInfo    = 1 // Important info (run markers, device outcomes)
	LevelLive    = 2 // Live info (probe attempts, file writes)
	LevelVerbose = 3 // Verbose (backend selection, frame details)
	LevelTrace   = 4 // Trace (GPIO, very low level)
)

var (
	level  int
	out    io.Writer = os.Stdout
	logger *log.Logger
)

// Init initializes the debug system with a level (0-4).
// 0 = no output
// 1 = important info (run markers, one line per device outcome)
// 2 = live info (probe attempts, file writes)
// 3 = verbose (backend selection, frame dimensions)
// 4 = trace (GPIO, very low level)
func Init(debugLevel int) {
	level = debugLevel
	if level > LevelOff {
		logger = log.New(out, "[camsweep] ", log.LstdFlags|log.Lmicroseconds)
	}
}

// SetOutput redirects all subsequent output to w. Call it after Init,
// typically with an io.MultiWriter over stdout and the run log file.
func SetOutput(w io.Writer) {
	out = w
	if logger != nil {
		logger.SetOutput(w)
	}
}

// Level returns the current debug level.
func Level() int {
	return level
}

// IsEnabled returns true if debug level is >= the requested level.
func IsEnabled(minLevel int) bool {
	return level >= minLevel
}

// --- Level 1 functions (Info): run lifecycle and device outcomes ---

// Info prints a level 1 message (important info).
func Info(format string, args ...interface{}) {
	if level >= LevelInfo && logger != nil {
		logger.Printf("[INFO] "+format, args...)
	}
}

// Warn prints a level 1 message tagged as a warning.
func Warn(format string, args ...interface{}) {
	if level >= LevelInfo && logger != nil {
		logger.Printf("[WARN] "+format, args...)
	}
}

// RunStart prints the start-of-run marker (level 1).
func RunStart(runID string, maxDevices int, backend string) {
	if level >= LevelInfo && logger != nil {
		logger.Printf("[INFO] Run %s: scan start (max_devices=%d, backend=%s)", runID, maxDevices, backend)
	}
}

// RunEnd prints the end-of-run marker with outcome counts (level 1).
func RunEnd(runID string, captured, missing, failed int) {
	if level >= LevelInfo && logger != nil {
		logger.Printf("[INFO] Run %s: scan end (captured=%d, not_found=%d, capture_failed=%d)", runID, captured, missing, failed)
	}
}

// DeviceMissing prints a "no device at this index" outcome (level 1).
// This is the expected result for indices past the last attached camera.
func DeviceMissing(index int, detail string) {
	if level >= LevelInfo && logger != nil {
		logger.Printf("[INFO] Camera %d: not found (%s)", index, detail)
	}
}

// CaptureFailed prints an "opened but produced no frame" outcome (level 1, warning).
func CaptureFailed(index int, detail string) {
	if level >= LevelInfo && logger != nil {
		logger.Printf("[WARN] Camera %d: capture failed (%s)", index, detail)
	}
}

// Captured prints a successful capture outcome with the written path (level 1).
func Captured(index int, path string) {
	if level >= LevelInfo && logger != nil {
		logger.Printf("[INFO] Camera %d: captured -> %s", index, path)
	}
}

// --- Level 2 functions (Live): real-time info ---

// Live prints a level 2 message (live info).
func Live(format string, args ...interface{}) {
	if level >= LevelLive && logger != nil {
		logger.Printf("[LIVE] "+format, args...)
	}
}

// Probe prints a probe attempt on a device index (level 2).
func Probe(index int) {
	if level >= LevelLive && logger != nil {
		logger.Printf("[LIVE] Probing device index %d", index)
	}
}

// --- Level 3 functions (Verbose): everything ---

// Verbose prints a level 3 message (verbose).
func Verbose(format string, args ...interface{}) {
	if level >= LevelVerbose && logger != nil {
		logger.Printf("[VERBOSE] "+format, args...)
	}
}

// Section prints a section separator (level 3).
func Section(name string) {
	if level >= LevelVerbose && logger != nil {
		logger.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
		logger.Printf("  %s", name)
		logger.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	}
}

// Step prints a numbered step (level 3).
func Step(num int, description string) {
	if level >= LevelVerbose && logger != nil {
		logger.Printf("[VERBOSE] Step %d: %s", num, description)
	}
}

// Value prints a named value in formatted form (level 1).
func Value(name string, value interface{}) {
	if level >= LevelInfo && logger != nil {
		logger.Printf("[INFO]   %s = %v", name, value)
	}
}

// --- Level 4 functions (Trace): very low level ---

// Trace prints a level 4 message (trace, GPIO).
func Trace(format string, args ...interface{}) {
	if level >= LevelTrace && logger != nil {
		logger.Printf("[TRACE] "+format, args...)
	}
}

// GPIO prints a GPIO operation (level 4).
func GPIO(operation string, pin int, value interface{}) {
	if level >= LevelTrace && logger != nil {
		logger.Printf("[GPIO] %s pin=%d value=%v", operation, pin, value)
	}
}

// --- General functions ---

// Error prints a debug error (level 1+).
func Error(err error) {
	if level >= LevelInfo && logger != nil {
		logger.Printf("[ERROR] %v", err)
	}
}

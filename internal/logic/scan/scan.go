package scan

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ybernard/camsweep/internal/debug"
	"github.com/ybernard/camsweep/internal/hw/indicator"
	"github.com/ybernard/camsweep/internal/hw/video"
	"github.com/ybernard/camsweep/internal/storage"
)

// Outcome classifies one probed device index.
type Outcome string

const (
	// NotFound: no device answered at this index. Expected past the
	// last attached camera.
	NotFound Outcome = "not-found"
	// CaptureFailed: the device opened but no frame was persisted.
	CaptureFailed Outcome = "capture-failed"
	// Captured: one frame was read and written to disk.
	Captured Outcome = "captured"
)

// Result is the outcome of probing a single device index.
type Result struct {
	Index   int
	Outcome Outcome
	Path    string // written file, Captured only
	Err     error  // failure detail, NotFound and CaptureFailed only
}

// Scanner sweeps a range of device indices and grabs one still frame
// from every camera that responds.
type Scanner struct {
	backend   video.Backend
	writer    storage.Writer
	led       indicator.Indicator
	outputDir string
	now       func() time.Time // replaceable in tests
}

// NewScanner creates a scanner writing frames into outputDir.
func NewScanner(b video.Backend, w storage.Writer, led indicator.Indicator, outputDir string) *Scanner {
	if led == nil {
		led = indicator.Nop{}
	}
	return &Scanner{
		backend:   b,
		writer:    w,
		led:       led,
		outputDir: outputDir,
		now:       time.Now,
	}
}

// Run probes indices 0..maxDevices-1 in ascending order, strictly one
// at a time, capturing one frame per responding camera. Per-index
// failures never stop the sweep; only environment failures (bad bound,
// output directory cannot be created) abort, and they abort before the
// first probe. The returned slice holds one Result per probed index.
func (s *Scanner) Run(ctx context.Context, maxDevices int) ([]Result, error) {
	if maxDevices < 0 {
		return nil, fmt.Errorf("max devices must be >= 0, got %d", maxDevices)
	}
	if err := storage.EnsureDir(s.outputDir); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	debug.RunStart(runID, maxDevices, s.backend.Name())

	s.led.ScanStarted()
	defer s.led.ScanFinished()

	var captured, missing, failed int
	results := make([]Result, 0, maxDevices)
	for i := 0; i < maxDevices; i++ {
		// Cancellation is honored between indices only: a blocked
		// backend call is left to the backend's own timeouts.
		select {
		case <-ctx.Done():
			debug.Warn("Run %s: cancelled after %d of %d probes", runID, i, maxDevices)
			debug.RunEnd(runID, captured, missing, failed)
			return results, ctx.Err()
		default:
		}

		res := s.probe(i)
		results = append(results, res)

		switch res.Outcome {
		case NotFound:
			missing++
			debug.DeviceMissing(res.Index, res.Err.Error())
		case CaptureFailed:
			failed++
			debug.CaptureFailed(res.Index, res.Err.Error())
		case Captured:
			captured++
			s.led.FrameCaptured()
			debug.Captured(res.Index, res.Path)
		}
	}

	debug.RunEnd(runID, captured, missing, failed)
	return results, nil
}

// probe opens one device, reads one frame and writes it. Every failure
// is folded into the Result; nothing escapes the index. The device
// handle, once opened, is released on every path out of this function.
func (s *Scanner) probe(index int) Result {
	debug.Probe(index)

	dev, err := s.backend.Open(index)
	if err != nil {
		return Result{Index: index, Outcome: NotFound, Err: err}
	}
	defer func() {
		if err := dev.Close(); err != nil {
			debug.Error(fmt.Errorf("release device %d: %w", index, err))
		}
	}()

	frame, err := dev.ReadFrame()
	if err != nil {
		return Result{Index: index, Outcome: CaptureFailed, Err: err}
	}

	path := storage.FramePath(s.outputDir, s.now(), index)
	if err := s.writer.Write(frame.Image, path); err != nil {
		// The frame was read but not persisted: recoverable, the
		// sweep moves on to the next index.
		return Result{Index: index, Outcome: CaptureFailed, Err: err}
	}

	return Result{Index: index, Outcome: Captured, Path: path}
}

package video

import (
	"fmt"
	"runtime"

	"gocv.io/x/gocv"

	"github.com/ybernard/camsweep/internal/debug"
)

// GoCV is the real Backend, driving cameras through OpenCV.
type GoCV struct {
	api  gocv.VideoCaptureAPI
	name string
}

// NewGoCV creates the OpenCV-backed backend for the given hint,
// resolved against the current platform.
func NewGoCV(hint Hint) *GoCV {
	api := resolveAPI(hint, runtime.GOOS)
	effective := hint
	if api == gocv.VideoCaptureAny {
		if hint != HintAuto && hint != HintAny {
			debug.Verbose("Backend %q not available on %s, falling back to auto-detect", hint, runtime.GOOS)
		}
		effective = HintAuto
	}
	return &GoCV{
		api:  api,
		name: fmt.Sprintf("gocv:%s", effective),
	}
}

// resolveAPI maps a hint to a gocv capture API identifier for the given
// platform. Hints naming another platform's API resolve to auto-detect.
func resolveAPI(hint Hint, goos string) gocv.VideoCaptureAPI {
	switch hint {
	case HintV4L2:
		if goos == "linux" {
			return gocv.VideoCaptureV4L2
		}
	case HintDShow:
		if goos == "windows" {
			return gocv.VideoCaptureDshow
		}
	case HintAVFoundation:
		if goos == "darwin" {
			return gocv.VideoCaptureAVFoundation
		}
	case HintGStreamer:
		return gocv.VideoCaptureGstreamer
	}
	return gocv.VideoCaptureAny
}

// Open probes the device at index. OpenCV reports a missing device
// either as an open error or as a handle that is not opened; both map
// to a "no device" error here.
func (b *GoCV) Open(index int) (Device, error) {
	vc, err := gocv.VideoCaptureDeviceWithAPI(index, b.api)
	if err != nil {
		return nil, fmt.Errorf("open device %d: %w", index, err)
	}
	if !vc.IsOpened() {
		_ = vc.Close()
		return nil, fmt.Errorf("open device %d: no device", index)
	}
	debug.Live("Device %d opened (%s)", index, b.name)
	return &gocvDevice{index: index, vc: vc}, nil
}

func (b *GoCV) Name() string {
	return b.name
}

type gocvDevice struct {
	index int
	vc    *gocv.VideoCapture
}

// ReadFrame grabs one frame and converts it to a Go image.
func (d *gocvDevice) ReadFrame() (Frame, error) {
	mat := gocv.NewMat()
	defer mat.Close()

	if ok := d.vc.Read(&mat); !ok || mat.Empty() {
		return Frame{}, fmt.Errorf("device %d: no frame", d.index)
	}

	img, err := mat.ToImage()
	if err != nil {
		return Frame{}, fmt.Errorf("device %d: convert frame: %w", d.index, err)
	}

	debug.Verbose("Device %d frame: %dx%d", d.index, mat.Cols(), mat.Rows())

	return Frame{Image: img, Width: mat.Cols(), Height: mat.Rows()}, nil
}

func (d *gocvDevice) Close() error {
	debug.Trace("Device %d closed", d.index)
	return d.vc.Close()
}

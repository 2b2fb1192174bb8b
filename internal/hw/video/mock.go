package video

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ybernard/camsweep/internal/debug"
)

const (
	mockWidth  = 640
	mockHeight = 480
)

// Mock is a Backend for development on machines without cameras.
// It simulates devices at a fixed set of indices and synthesizes a
// deterministic test frame for each.
type Mock struct {
	present  map[int]bool
	failRead map[int]bool
}

// NewMock creates a mock backend with devices at the given indices.
func NewMock(indices []int) *Mock {
	m := &Mock{
		present:  make(map[int]bool),
		failRead: make(map[int]bool),
	}
	for _, i := range indices {
		m.present[i] = true
	}
	return m
}

// FailRead marks indices whose devices open fine but never deliver a
// frame, mimicking a camera held by another process.
func (m *Mock) FailRead(indices ...int) *Mock {
	for _, i := range indices {
		m.failRead[i] = true
	}
	return m
}

func (m *Mock) Open(index int) (Device, error) {
	if !m.present[index] {
		return nil, fmt.Errorf("open device %d: no device", index)
	}
	debug.Live("Device %d opened (mock)", index)
	return &mockDevice{index: index, failRead: m.failRead[index]}, nil
}

func (m *Mock) Name() string {
	return "mock"
}

type mockDevice struct {
	index    int
	failRead bool
	closed   bool
}

func (d *mockDevice) ReadFrame() (Frame, error) {
	if d.closed {
		return Frame{}, fmt.Errorf("device %d: read on closed device", d.index)
	}
	if d.failRead {
		return Frame{}, fmt.Errorf("device %d: no frame", d.index)
	}
	return Frame{
		Image:  testPattern(d.index, mockWidth, mockHeight),
		Width:  mockWidth,
		Height: mockHeight,
	}, nil
}

func (d *mockDevice) Close() error {
	d.closed = true
	debug.Trace("Device %d closed (mock)", d.index)
	return nil
}

// testPattern renders a gradient with an index-dependent blue channel
// so files from different simulated cameras are distinguishable.
func testPattern(index, w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: uint8(index * 40),
				A: 255,
			})
		}
	}
	return img
}

// Package export turns rendered frames into image files: a Recorder sink
// captures frames from the loop, and Run encodes them on a worker pool.
package export

import (
	"errors"

	"console-cube/internal/raster"
)

// Frame is one captured frame and the rotation it was rendered at.
type Frame struct {
	Index  int
	Angle  float64
	Buffer *raster.FrameBuffer
}

// ErrClosed is returned by Present after Close.
var ErrClosed = errors.New("export: recorder closed")

// Recorder is a display sink that keeps a copy of every frame.
type Recorder struct {
	// Angle reports the rotation of the frame being presented. Optional.
	Angle func() float64

	frames []Frame
	closed bool
}

func (r *Recorder) Present(fb *raster.FrameBuffer) error {
	if r.closed {
		return ErrClosed
	}
	f := Frame{Index: len(r.frames), Buffer: fb.Clone()}
	if r.Angle != nil {
		f.Angle = r.Angle()
	}
	r.frames = append(r.frames, f)
	return nil
}

func (r *Recorder) Close() error {
	r.closed = true
	return nil
}

// Frames returns the captured frames in presentation order.
func (r *Recorder) Frames() []Frame {
	return r.frames
}

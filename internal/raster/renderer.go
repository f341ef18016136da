package raster

import (
	"fmt"

	"console-cube/internal/mathutil"
)

// Mode selects how Draw interprets a vertex buffer.
type Mode uint8

const (
	Points Mode = iota
	Lines
)

func (m Mode) String() string {
	switch m {
	case Points:
		return "points"
	case Lines:
		return "lines"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Frame is the per-frame render context: the transform computed once for
// the frame and the buffer every draw call of that frame writes into.
type Frame struct {
	MVP    mathutil.Mat4
	Buffer *FrameBuffer
}

// NewFrame binds mvp to fb for one frame.
func NewFrame(fb *FrameBuffer, mvp mathutil.Mat4) *Frame {
	return &Frame{MVP: mvp, Buffer: fb}
}

// project runs the vertex shader and maps the result to screen space.
// ok is false when the shaded vertex is not finite.
func (f *Frame) project(v mathutil.Vec3) (x, y float64, ok bool) {
	p := VertexShader(f.MVP, v)
	if !p.IsFinite() {
		return 0, 0, false
	}
	x, y = ToScreen(p[0], p[1], f.Buffer.Width, f.Buffer.Height)
	return x, y, true
}

// Draw rasterizes vertices in the given mode with a single color.
//
// Lines consumes consecutive pairs; with an odd count the last vertex is
// drawn as a point. Later writes overwrite earlier ones. Vertices that
// shade to NaN or ±Inf are skipped, along with any edge touching them.
func (f *Frame) Draw(vertices []mathutil.Vec3, mode Mode, c Color) {
	fb := f.Buffer
	switch mode {
	case Lines:
		n := len(vertices) - len(vertices)%2
		for i := 0; i < n; i += 2 {
			x0, y0, ok0 := f.project(vertices[i])
			x1, y1, ok1 := f.project(vertices[i+1])
			if ok0 && ok1 {
				fb.DrawLine(x0, y0, x1, y1, c)
			}
		}
		if len(vertices)%2 != 0 {
			if x, y, ok := f.project(vertices[len(vertices)-1]); ok {
				fb.LitPixel(x, y, c)
			}
		}
	default:
		for _, v := range vertices {
			if x, y, ok := f.project(v); ok {
				fb.LitPixel(x, y, c)
			}
		}
	}
}

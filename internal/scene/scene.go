package scene

import (
	"math"

	"console-cube/internal/mathutil"
	"console-cube/internal/raster"
)

// Defaults for the demo cube.
const (
	DefaultWidth  = 160
	DefaultHeight = 100

	// DefaultFOV is fed to the projection as radians. The value 55 reads
	// like degrees but the on-screen framing of the demo depends on it
	// being taken as-is.
	DefaultFOV  = 55.0
	DefaultNear = 0.3
	DefaultFar  = 1000.0

	DefaultCubeSize = 0.5
	DefaultScale    = 2.0

	DefaultAngularSpeed = math.Pi / 8 // rad/s
)

// Params describes the cube scene.
type Params struct {
	Width, Height int

	FOV       float64 // radians
	Near, Far float64

	CubeSize float64 // edge length
	Scale    float64 // uniform model scale

	Background  raster.Color
	EdgeColor   raster.Color
	VertexColor raster.Color
}

// DefaultParams returns the demo scene: a blue background, white edges
// and red corners.
func DefaultParams() Params {
	return Params{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		FOV:         DefaultFOV,
		Near:        DefaultNear,
		Far:         DefaultFar,
		CubeSize:    DefaultCubeSize,
		Scale:       DefaultScale,
		Background:  raster.Blue,
		EdgeColor:   raster.White,
		VertexColor: raster.Red,
	}
}

// Aspect is height over width; the projection scales x by it so cells map
// to a square-ish image on the grid.
func (p Params) Aspect() float64 {
	return float64(p.Height) / float64(p.Width)
}

// MVP composes the cube transform for a rotation angle:
//
//	Projection × Rx(a)·Ry(a)·Rz(a) × Scale × Translation(-size/2)
//
// so a vertex is re-centered first and projected last.
func (p Params) MVP(angle float64) mathutil.Mat4 {
	proj := mathutil.Mat4Projection(p.Aspect(), p.FOV, p.Near, p.Far)
	rot := mathutil.Mat4Chain(
		mathutil.Mat4Rotation(angle, mathutil.Pitch),
		mathutil.Mat4Rotation(angle, mathutil.Yaw),
		mathutil.Mat4Rotation(angle, mathutil.Roll),
	)
	scale := mathutil.Mat4Scale(mathutil.Vec3{p.Scale, p.Scale, p.Scale})
	half := -p.CubeSize / 2
	origin := mathutil.Mat4Translation(mathutil.Vec3{half, half, half})
	return mathutil.Mat4Chain(proj, rot, scale, origin)
}

// Renderer draws the cube into a reusable frame buffer.
type Renderer struct {
	Params   Params
	Vertices []mathutil.Vec3

	fb *raster.FrameBuffer
}

// NewRenderer allocates the frame buffer for p and builds the cube geometry.
func NewRenderer(p Params) *Renderer {
	return &Renderer{
		Params:   p,
		Vertices: Cube(p.CubeSize),
		fb:       raster.NewFrameBuffer(p.Width, p.Height),
	}
}

// Buffer returns the frame buffer the renderer draws into.
func (r *Renderer) Buffer() *raster.FrameBuffer {
	return r.fb
}

// Render produces the frame for angle: the MVP is built once, the buffer
// is cleared, then edges and finally vertices are rasterized.
func (r *Renderer) Render(angle float64) *raster.FrameBuffer {
	f := raster.NewFrame(r.fb, r.Params.MVP(angle))
	r.fb.Clear(r.Params.Background)
	f.Draw(r.Vertices, raster.Lines, r.Params.EdgeColor)
	f.Draw(r.Vertices, raster.Points, r.Params.VertexColor)
	return r.fb
}

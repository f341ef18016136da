package raster

import "math"

// Window is an open rectangle (MinX, MaxX)×(MinY, MaxY) in screen space.
type Window struct {
	MinX, MinY, MaxX, MaxY float64
}

// Unbounded admits every position.
var Unbounded = Window{math.Inf(-1), math.Inf(-1), math.Inf(1), math.Inf(1)}

// DDA walks the segment (x0,y0)→(x1,y1) with a digital differential
// analyzer and calls plot at step+1 positions, both endpoints included,
// where step = max(|dx|, |dy|). Positions accumulate in floating point;
// snapping to cells is left to plot.
//
// A zero-length segment plots its start once. A segment with a NaN
// endpoint plots nothing, and so does one with an infinite extent.
func DDA(x0, y0, x1, y1 float64, plot func(x, y float64)) {
	DDAWithin(x0, y0, x1, y1, Unbounded, plot)
}

// DDAWithin is DDA restricted to the stretch of the walk that can fall
// inside w. Steps before the first candidate position are skipped in one
// jump, so the work is bounded by the window size rather than the segment
// length. Inside the window the positions match DDA's up to rounding of
// the jump.
func DDAWithin(x0, y0, x1, y1 float64, w Window, plot func(x, y float64)) {
	dx, dy := x1-x0, y1-y0
	step := math.Abs(dy)
	if math.Abs(dx) >= math.Abs(dy) {
		step = math.Abs(dx)
	}
	if step == 0 {
		plot(x0, y0)
		return
	}
	if math.IsInf(step, 0) || math.IsNaN(dx) || math.IsNaN(dy) {
		return
	}

	dx /= step
	dy /= step

	fromX, toX, ok := indexRange(x0, dx, w.MinX, w.MaxX)
	if !ok {
		return
	}
	fromY, toY, ok := indexRange(y0, dy, w.MinY, w.MaxY)
	if !ok {
		return
	}
	from := math.Max(0, math.Max(fromX, fromY))
	to := math.Min(step, math.Min(toX, toY))
	if from > to {
		return
	}

	x, y := x0, y0
	if from > 0 {
		x += from * dx
		y += from * dy
	}
	n := int(to - from)
	for i := 0; i <= n; i++ {
		plot(x, y)
		x += dx
		y += dy
	}
}

// indexRange returns the step indices i for which a + i*d may lie in
// (lo, hi), widened by one on each side. The result is whole numbers.
func indexRange(a, d, lo, hi float64) (from, to float64, ok bool) {
	if d == 0 {
		return math.Inf(-1), math.Inf(1), a > lo && a < hi
	}
	from, to = (lo-a)/d, (hi-a)/d
	if from > to {
		from, to = to, from
	}
	return math.Floor(from) - 1, math.Ceil(to) + 1, true
}

// DrawLine rasterizes a screen-space segment into fb. Only the part of the
// walk that can land within one cell of the buffer is visited.
func (fb *FrameBuffer) DrawLine(x0, y0, x1, y1 float64, c Color) {
	w := Window{
		MinX: -1, MinY: -1,
		MaxX: float64(fb.Width) + 1, MaxY: float64(fb.Height) + 1,
	}
	DDAWithin(x0, y0, x1, y1, w, func(x, y float64) {
		fb.LitPixel(x, y, c)
	})
}

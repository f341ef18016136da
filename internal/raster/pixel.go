package raster

// ToScreen maps normalized device coordinates ([-1,1] on both axes, y up)
// to screen space for a w×h grid (origin top-left, y down).
func ToScreen(x, y float64, w, h int) (sx, sy float64) {
	sx = float64(w) * (x + 1) / 2
	sy = float64(h) * (1 - y) / 2
	return sx, sy
}

// LitPixel writes c at screen coordinate (x, y).
//
// Snapping truncates toward zero and then, for strictly positive values,
// subtracts one: 3.7 → 2, 1.0 → 0, 0.5 → -1 (dropped), -0.5 → 0. Cells
// outside the buffer are dropped silently, as are NaN and ±Inf.
func (fb *FrameBuffer) LitPixel(x, y float64, c Color) {
	px, ok := snap(x, fb.Width)
	if !ok {
		return
	}
	py, ok := snap(y, fb.Height)
	if !ok {
		return
	}
	fb.Set(px, py, c)
}

// snap applies the pixel-snapping rule and bounds-checks the result against
// [0, n). Coordinates outside (-1, n+1) can never land in range; rejecting
// them before the int conversion keeps huge and non-finite values away from
// implementation-defined float-to-int behavior.
func snap(v float64, n int) (int, bool) {
	if !(v > -1 && v < float64(n)+1) {
		return 0, false
	}
	p := int(v)
	if v > 0 {
		p--
	}
	if p < 0 || p >= n {
		return 0, false
	}
	return p, true
}

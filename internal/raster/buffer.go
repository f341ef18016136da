package raster

import (
	"image"
	"image/color"
)

// FrameBuffer holds one frame of console cells, row-major.
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []Color // len = W*H
}

// NewFrameBuffer allocates a Black buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Pix:    make([]Color, w*h),
	}
}

// Clear overwrites every cell with c.
func (fb *FrameBuffer) Clear(c Color) {
	for i := range fb.Pix {
		fb.Pix[i] = c
	}
}

// At returns the cell at (x, y), or Black when out of bounds.
func (fb *FrameBuffer) At(x, y int) Color {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return Black
	}
	return fb.Pix[y*fb.Width+x]
}

// Set writes c at integer cell (x, y). Out-of-bounds writes are dropped.
func (fb *FrameBuffer) Set(x, y int, c Color) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	fb.Pix[y*fb.Width+x] = c
}

// Clone returns a deep copy.
func (fb *FrameBuffer) Clone() *FrameBuffer {
	out := &FrameBuffer{Width: fb.Width, Height: fb.Height, Pix: make([]Color, len(fb.Pix))}
	copy(out.Pix, fb.Pix)
	return out
}

// Image converts the buffer to an NRGBA image, one pixel per cell.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	var lut [256]color.NRGBA
	for i := range lut {
		lut[i] = Color(i).NRGBA()
	}
	for i, c := range fb.Pix {
		v := lut[c]
		o := i * 4
		img.Pix[o] = v.R
		img.Pix[o+1] = v.G
		img.Pix[o+2] = v.B
		img.Pix[o+3] = v.A
	}
	return img
}

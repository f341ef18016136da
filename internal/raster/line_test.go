package raster

import (
	"math"
	"testing"

	"console-cube/internal/mathutil"
)

type point struct{ x, y float64 }

func collect(x0, y0, x1, y1 float64) []point {
	var pts []point
	DDA(x0, y0, x1, y1, func(x, y float64) {
		pts = append(pts, point{x, y})
	})
	return pts
}

func TestDDA(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 float64
		want           []point
	}{
		{
			name: "horizontal",
			x0:   0, y0: 0, x1: 4, y1: 0,
			want: []point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}},
		},
		{
			name: "reversed",
			x0:   4, y0: 0, x1: 0, y1: 0,
			want: []point{{4, 0}, {3, 0}, {2, 0}, {1, 0}, {0, 0}},
		},
		{
			name: "diagonal",
			x0:   0, y0: 0, x1: 3, y1: 3,
			want: []point{{0, 0}, {1, 1}, {2, 2}, {3, 3}},
		},
		{
			name: "steep",
			x0:   0, y0: 0, x1: 2, y1: 4,
			want: []point{{0, 0}, {0.5, 1}, {1, 2}, {1.5, 3}, {2, 4}},
		},
		{
			name: "zero length",
			x0:   2.5, y0: 1.5, x1: 2.5, y1: 1.5,
			want: []point{{2.5, 1.5}},
		},
		{
			name: "NaN endpoint",
			x0:   0, y0: 0, x1: math.NaN(), y1: math.NaN(),
			want: nil,
		},
		{
			name: "infinite endpoint",
			x0:   0, y0: 0, x1: math.Inf(1), y1: 0,
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(tt.x0, tt.y0, tt.x1, tt.y1)
			if len(got) != len(tt.want) {
				t.Fatalf("DDA plotted %d positions %v, want %d", len(got), got, len(tt.want))
			}
			for i := range got {
				if math.Abs(got[i].x-tt.want[i].x) > 1e-12 || math.Abs(got[i].y-tt.want[i].y) > 1e-12 {
					t.Errorf("position %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDDAWithin(t *testing.T) {
	w := Window{MinX: -1, MinY: -1, MaxX: 9, MaxY: 3}

	tests := []struct {
		name           string
		x0, y0, x1, y1 float64
		maxPlots       int
	}{
		{"long horizontal", 0, 0, 1e15, 0, 16},
		{"long reversed", 1e15, 1, -1e15, 1, 16},
		{"long steep", 2, -1e15, 2, 1e15, 10},
		{"long diagonal", -1e12, -1e12, 1e12, 1e12, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var pts []point
			DDAWithin(tt.x0, tt.y0, tt.x1, tt.y1, w, func(x, y float64) {
				pts = append(pts, point{x, y})
			})
			if len(pts) == 0 || len(pts) > tt.maxPlots {
				t.Fatalf("plotted %d positions, want 1..%d", len(pts), tt.maxPlots)
			}
		})
	}

	t.Run("outside the window", func(t *testing.T) {
		n := 0
		DDAWithin(0, 50, 1e15, 50, w, func(x, y float64) { n++ })
		if n != 0 {
			t.Errorf("plotted %d positions for a segment below the window", n)
		}
	})

	t.Run("matches DDA inside the window", func(t *testing.T) {
		want := collect(0.5, 0.25, 7.5, 2.5)
		var got []point
		DDAWithin(0.5, 0.25, 7.5, 2.5, w, func(x, y float64) {
			got = append(got, point{x, y})
		})
		if len(got) != len(want) {
			t.Fatalf("plotted %d positions, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("position %d = %v, want %v", i, got[i], want[i])
			}
		}
	})
}

func TestDrawLineLongSegment(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 float64
	}{
		{"from origin", 0, 0, 1e15, 0},
		{"crossing", -1e15, 1, 1e15, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := NewFrameBuffer(8, 2)
			fb.Clear(Blue)
			fb.DrawLine(tt.x0, tt.y0, tt.x1, tt.y1, White)
			for x := 0; x < 8; x++ {
				if got := fb.At(x, 0); got != White {
					t.Errorf("cell (%d, 0) = %v, want white", x, got)
				}
				if got := fb.At(x, 1); got != Blue {
					t.Errorf("cell (%d, 1) = %v, want blue", x, got)
				}
			}
		})
	}
}

func TestDrawLineSnapsCells(t *testing.T) {
	fb := NewFrameBuffer(8, 2)
	fb.Clear(Blue)
	fb.DrawLine(0, 0, 4, 0, White)

	// x=0 stays at cell 0, x=1..4 snap one cell left.
	for x := 0; x < 8; x++ {
		want := Blue
		if x <= 3 {
			want = White
		}
		if got := fb.At(x, 0); got != want {
			t.Errorf("cell (%d, 0) = %v, want %v", x, got, want)
		}
	}
}

func TestFrameDraw(t *testing.T) {
	horizontal := []mathutil.Vec3{{-0.5, 0, 0}, {0.5, 0, 0}}

	t.Run("points", func(t *testing.T) {
		fb := NewFrameBuffer(10, 10)
		fb.Clear(Blue)
		NewFrame(fb, mathutil.Mat4Identity()).Draw([]mathutil.Vec3{{0, 0, 0}}, Points, Red)
		if got := fb.At(4, 4); got != Red {
			t.Errorf("center vertex cell = %v, want red", got)
		}
	})

	t.Run("lines", func(t *testing.T) {
		fb := NewFrameBuffer(10, 10)
		fb.Clear(Blue)
		NewFrame(fb, mathutil.Mat4Identity()).Draw(horizontal, Lines, White)
		for x := 0; x < 10; x++ {
			want := Blue
			if x >= 1 && x <= 6 {
				want = White
			}
			if got := fb.At(x, 4); got != want {
				t.Errorf("cell (%d, 4) = %v, want %v", x, got, want)
			}
		}
	})

	t.Run("odd vertex becomes a point", func(t *testing.T) {
		fb := NewFrameBuffer(10, 10)
		fb.Clear(Blue)
		verts := append(append([]mathutil.Vec3{}, horizontal...), mathutil.Vec3{0, 0.5, 0})
		NewFrame(fb, mathutil.Mat4Identity()).Draw(verts, Lines, White)
		if got := fb.At(4, 1); got != White {
			t.Errorf("trailing vertex cell = %v, want white", got)
		}
	})

	t.Run("points overwrite lines", func(t *testing.T) {
		fb := NewFrameBuffer(10, 10)
		fb.Clear(Blue)
		f := NewFrame(fb, mathutil.Mat4Identity())
		f.Draw(horizontal, Lines, White)
		f.Draw(horizontal, Points, Red)
		if fb.At(1, 4) != Red || fb.At(6, 4) != Red {
			t.Errorf("endpoints = %v, %v, want red", fb.At(1, 4), fb.At(6, 4))
		}
		if fb.At(3, 4) != White {
			t.Errorf("interior = %v, want white", fb.At(3, 4))
		}
	})

	t.Run("shader ignores w", func(t *testing.T) {
		mvp := mathutil.Mat4Identity()
		mvp[15] = 0
		mvp[14] = 1
		got := VertexShader(mvp, mathutil.Vec3{0.25, -0.5, 3})
		if got != (mathutil.Vec3{0.25, -0.5, 3}) {
			t.Errorf("VertexShader = %v", got)
		}
	})

	t.Run("non-finite vertices are dropped", func(t *testing.T) {
		fb := NewFrameBuffer(10, 10)
		fb.Clear(Blue)
		var bad mathutil.Vec3
		bad.Normalize()
		NewFrame(fb, mathutil.Mat4Identity()).Draw([]mathutil.Vec3{bad, {0, 0, 0}}, Lines, White)
		for i, c := range fb.Pix {
			if c != Blue {
				t.Fatalf("cell %d = %v, want untouched", i, c)
			}
		}
	})
}

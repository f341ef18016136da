// Package scene holds the hardcoded cube and the per-frame render pass that
// turns a rotation angle into a finished frame buffer.
package scene

import "console-cube/internal/mathutil"

// Cube returns the edge list of an axis-aligned cube with one corner at the
// origin and the given edge length, as 12 consecutive endpoint pairs:
//
//	   7--------6
//	  /|       /|
//	 / |      / |
//	4--------5  |
//	|  |     |  |
//	|  3-----|--2
//	| /      | /
//	|/       |/
//	0--------1
func Cube(size float64) []mathutil.Vec3 {
	s := size
	corners := [8]mathutil.Vec3{
		{0, 0, 0},
		{s, 0, 0},
		{s, 0, s},
		{0, 0, s},
		{0, s, 0},
		{s, s, 0},
		{s, s, s},
		{0, s, s},
	}
	edges := [12][2]int{
		// bottom
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		// verticals
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
		// top
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
	}

	out := make([]mathutil.Vec3, 0, len(edges)*2)
	for _, e := range edges {
		out = append(out, corners[e[0]], corners[e[1]])
	}
	return out
}

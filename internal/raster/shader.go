package raster

import "console-cube/internal/mathutil"

// VertexShader transforms an object-space vertex by the frame's MVP.
// The result is taken straight from rows 0–2 of MVP × (x,y,z,1); it is
// never divided by w.
func VertexShader(mvp mathutil.Mat4, v mathutil.Vec3) mathutil.Vec3 {
	return mvp.MulPoint(v)
}

package mathutil

import "math"

// Mat4Projection builds the perspective matrix used by the cube scene.
//
// fov is in radians. Row 2 maps depth with q = zFar/(zFar-zNear); row 3
// carries z into w for a perspective divide that the vertex stage never
// performs.
func Mat4Projection(aspect, fov, zNear, zFar float64) Mat4 {
	f := 1 / math.Tan(fov/2)
	q := zFar / (zFar - zNear)
	return Mat4{
		aspect * f, 0, 0, 0,
		0, f, 0, 0,
		0, 0, q, -zNear * q,
		0, 0, 1, 0,
	}
}

// Mat4Scale returns diag(x, y, z, 1).
func Mat4Scale(v Vec3) Mat4 {
	return Mat4{
		v[0], 0, 0, 0,
		0, v[1], 0, 0,
		0, 0, v[2], 0,
		0, 0, 0, 1,
	}
}

// Mat4Translation places v in the last column of rows 0–2.
func Mat4Translation(v Vec3) Mat4 {
	return FromMat3Translation(Mat3Identity(), v)
}

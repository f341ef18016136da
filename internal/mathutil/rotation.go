package mathutil

import (
	"fmt"
	"math"
)

// Axis selects which rotation Mat4Rotation builds.
type Axis uint8

const (
	Pitch Axis = iota // x
	Yaw               // y
	Roll              // z
)

var axisNames = [...]string{Pitch: "pitch", Yaw: "yaw", Roll: "roll"}

func (a Axis) String() string {
	if int(a) < len(axisNames) {
		return axisNames[a]
	}
	return fmt.Sprintf("Axis(%d)", uint8(a))
}

// RotX returns a 3×3 rotation matrix around the X axis. Angle in radians.
func RotX(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// RotY returns a 3×3 rotation matrix around the Y axis.
func RotY(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// RotZ returns a 3×3 rotation matrix around the Z axis.
func RotZ(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// Mat4Rotation returns a right-handed rotation by angle radians around axis.
// An unknown axis yields the identity.
func Mat4Rotation(angle float64, axis Axis) Mat4 {
	var r Mat3
	switch axis {
	case Pitch:
		r = RotX(angle)
	case Yaw:
		r = RotY(angle)
	case Roll:
		r = RotZ(angle)
	default:
		return Mat4Identity()
	}
	return FromMat3Translation(r, Vec3{})
}

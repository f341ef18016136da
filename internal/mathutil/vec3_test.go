package mathutil

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestVec3(t *testing.T) {
	Convey("Vec3 arithmetic is component-wise", t, func() {
		a, b := Vec3{1, 2, 3}, Vec3{0.5, -1, 4}
		So(a.Add(b), ShouldEqual, Vec3{1.5, 1, 7})
		So(a.Sub(b), ShouldEqual, Vec3{0.5, 3, -1})
		So(a.Scale(-2), ShouldEqual, Vec3{-2, -4, -6})
		So(a.Dot(b), ShouldEqual, 10.5)
	})

	Convey("Normalize works in place", t, func() {
		v := Vec3{3, 0, 4}
		v.Normalize()
		So(v[0], ShouldAlmostEqual, 0.6)
		So(v[2], ShouldAlmostEqual, 0.8)
		So(v.Len(), ShouldAlmostEqual, 1)
		So(v.IsFinite(), ShouldBeTrue)
	})

	Convey("Normalize of a zero vector propagates NaN", t, func() {
		var v Vec3
		v.Normalize()
		So(math.IsNaN(v[0]), ShouldBeTrue)
		So(v.IsFinite(), ShouldBeFalse)
	})
}

func TestWrapAngle(t *testing.T) {
	Convey("WrapAngle stays in [0, 2π)", t, func() {
		So(WrapAngle(0), ShouldEqual, 0.0)
		So(WrapAngle(TwoPi), ShouldAlmostEqual, 0)
		So(WrapAngle(-math.Pi/2), ShouldAlmostEqual, 3*math.Pi/2)
		So(WrapAngle(5*math.Pi), ShouldAlmostEqual, math.Pi)
		So(WrapAngle(-1e-20), ShouldEqual, 0.0)
	})
}

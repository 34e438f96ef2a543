package gmath

import (
	"fmt"
	"math"
)

type Vec4 struct {
	X float32
	Y float32
	Z float32
	W float32
}

func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// Vec4FromVec3 extends a 3D vector with an explicit w: 1 for points, 0 for
// directions.
func Vec4FromVec3(v Vec3, w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

func Vec4Zero() Vec4 { return Vec4{} }
func Vec4One() Vec4  { return Vec4{1, 1, 1, 1} }

func (v Vec4) XYZ() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

func (v Vec4) Sub(o Vec4) Vec4 {
	return Vec4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

func (v Vec4) Mul(o Vec4) Vec4 {
	return Vec4{v.X * o.X, v.Y * o.Y, v.Z * o.Z, v.W * o.W}
}

func (v Vec4) Dot(o Vec4) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

func (v Vec4) Length() float32 {
	return float32(math.Sqrt(float64(v.Dot(v))))
}

// Normalized returns the unit vector, or the zero vector unchanged.
func (v Vec4) Normalized() Vec4 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

func (v Vec4) Lerp(o Vec4, t float32) Vec4 {
	return v.Add(o.Sub(v).Scale(t))
}

// Homogenized divides through by w, yielding the projected point with w = 1.
// A zero w is returned unchanged.
func (v Vec4) Homogenized() Vec4 {
	if v.W == 0 {
		return v
	}
	inv := 1 / v.W
	return Vec4{v.X * inv, v.Y * inv, v.Z * inv, 1}
}

func (v Vec4) String() string {
	return fmt.Sprintf("{%.2f, %.2f, %.2f, %.2f}", v.X, v.Y, v.Z, v.W)
}

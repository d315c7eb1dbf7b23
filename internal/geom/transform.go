// Package geom provides the rotation and pose primitives behind the view
// tables and the lighting rig.
package geom

import (
	"math"

	"github.com/fogleman/fauxgl"
)

// epsilon bounds the cross-product magnitude below which two directions are
// treated as parallel or antiparallel.
const epsilon = 1e-8

// RotationFromVectors returns the rotation that maps the direction of a onto
// the direction of b. Both inputs must be nonzero; they are normalized here.
//
// The antiparallel case has infinitely many valid answers. The axis picked
// below (orthogonal to a, built from +X or +Y) is arbitrary; callers get
// some 180-degree rotation taking a to -a and must not depend on which one.
func RotationFromVectors(a, b fauxgl.Vector) fauxgl.Matrix {
	a = a.Normalize()
	b = b.Normalize()

	v := a.Cross(b)
	c := a.Dot(b)
	s := v.Length()

	if s < epsilon {
		if c > 0 {
			return fauxgl.Identity()
		}
		axis := fauxgl.Vector{X: 1}
		if math.Abs(a.Dot(axis)) > 1-1e-6 {
			axis = fauxgl.Vector{Y: 1}
		}
		return fauxgl.Rotate(a.Cross(axis).Normalize(), math.Pi)
	}

	return fauxgl.Rotate(v.DivScalar(s), math.Atan2(s, c))
}

// LookAt builds a rigid pose at eye oriented toward target: rotation rows
// [right; trueUp; -forward], translation column eye. It orients lights, not
// the camera (the camera pose is fixed and never recomputed).
func LookAt(eye, target, up fauxgl.Vector) fauxgl.Matrix {
	forward := target.Sub(eye).Normalize()
	right := forward.Cross(up).Normalize()
	trueUp := right.Cross(forward)

	return fauxgl.Matrix{
		X00: right.X, X01: right.Y, X02: right.Z, X03: eye.X,
		X10: trueUp.X, X11: trueUp.Y, X12: trueUp.Z, X13: eye.Y,
		X20: -forward.X, X21: -forward.Y, X22: -forward.Z, X23: eye.Z,
		X30: 0, X31: 0, X32: 0, X33: 1,
	}
}

// Forward extracts the viewing direction from a LookAt pose.
func Forward(pose fauxgl.Matrix) fauxgl.Vector {
	return fauxgl.Vector{X: -pose.X20, Y: -pose.X21, Z: -pose.X22}
}

// Det3 returns the determinant of the upper-left 3x3 block of m.
func Det3(m fauxgl.Matrix) float64 {
	return m.X00*(m.X11*m.X22-m.X12*m.X21) -
		m.X01*(m.X10*m.X22-m.X12*m.X20) +
		m.X02*(m.X10*m.X21-m.X11*m.X20)
}

// IsRotation reports whether the 3x3 block of m is a proper rotation within
// eps: orthonormal columns and determinant +1.
func IsRotation(m fauxgl.Matrix, eps float64) bool {
	cols := [3]fauxgl.Vector{
		{X: m.X00, Y: m.X10, Z: m.X20},
		{X: m.X01, Y: m.X11, Z: m.X21},
		{X: m.X02, Y: m.X12, Z: m.X22},
	}
	for i := 0; i < 3; i++ {
		if math.Abs(cols[i].Length()-1) > eps {
			return false
		}
		for j := i + 1; j < 3; j++ {
			if math.Abs(cols[i].Dot(cols[j])) > eps {
				return false
			}
		}
	}
	return math.Abs(Det3(m)-1) <= eps
}

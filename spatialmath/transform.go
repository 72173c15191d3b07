// Package spatialmath defines the spatial mathematical operations needed to
// chain kinematic frames: rigid homogeneous transforms and their action on
// 3D points.
package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// Transform represents a rigid rotation and translation in 3D space, encoded
// as a 4x4 homogeneous matrix. The rotation block of every Transform built
// through this package's constructors is orthonormal; no shear or scale is
// ever introduced. Transforms are immutable values, composition returns a
// new Transform.
type Transform struct {
	mat mgl64.Mat4
}

// NewZeroTransform returns the identity transform. The zero value of
// Transform is the all-zeroes matrix, not a valid rigid transform, so this
// should be used instead of Transform{}.
func NewZeroTransform() Transform {
	return Transform{mgl64.Ident4()}
}

// NewRotationX returns a transform performing a right-handed rotation by
// angle radians about the X axis, with no translation component.
func NewRotationX(angle float64) Transform {
	return Transform{mgl64.HomogRotate3DX(angle)}
}

// NewRotationY returns a transform performing a right-handed rotation by
// angle radians about the Y axis, with no translation component.
func NewRotationY(angle float64) Transform {
	return Transform{mgl64.HomogRotate3DY(angle)}
}

// NewRotationZ returns a transform performing a right-handed rotation by
// angle radians about the Z axis, with no translation component.
func NewRotationZ(angle float64) Transform {
	return Transform{mgl64.HomogRotate3DZ(angle)}
}

// NewTranslation returns a transform with an identity rotation block and the
// given translation.
func NewTranslation(x, y, z float64) Transform {
	return Transform{mgl64.Translate3D(x, y, z)}
}

// NewTranslationFromPoint returns a pure translation to the given point.
func NewTranslationFromPoint(pt r3.Vector) Transform {
	return NewTranslation(pt.X, pt.Y, pt.Z)
}

// Compose returns the transform equal to applying t first and other second,
// i.e. other's coordinates are expressed in the frame produced by t. This is
// the left-to-right frame chaining used throughout kinematic chains.
func (t Transform) Compose(other Transform) Transform {
	return Transform{t.mat.Mul4(other.mat)}
}

// TransformPoint applies t to the homogeneous extension of pt (implicit
// w = 1) and returns the resulting 3D point, dividing out w if non-unit.
func (t Transform) TransformPoint(pt r3.Vector) r3.Vector {
	v := t.mat.Mul4x1(mgl64.Vec4{pt.X, pt.Y, pt.Z, 1})
	if w := v.W(); w != 1 && w != 0 {
		return r3.Vector{X: v.X() / w, Y: v.Y() / w, Z: v.Z() / w}
	}
	return r3.Vector{X: v.X(), Y: v.Y(), Z: v.Z()}
}

// Point returns the origin of the frame produced by t, equal to transforming
// the zero vector.
func (t Transform) Point() r3.Vector {
	return r3.Vector{X: t.mat.At(0, 3), Y: t.mat.At(1, 3), Z: t.mat.At(2, 3)}
}

// Quaternion returns the rotation block of t as a quaternion, for consumers
// that need orientation rather than position.
func (t Transform) Quaternion() quat.Number {
	q := mgl64.Mat4ToQuat(t.mat)
	return quat.Number{Real: q.W, Imag: q.X(), Jmag: q.Y(), Kmag: q.Z()}
}

// Mat returns a copy of the underlying 4x4 matrix.
func (t Transform) Mat() mgl64.Mat4 {
	return t.mat
}

// TransformAlmostEqual returns whether every element of a and b is within
// epsilon of its counterpart.
func TransformAlmostEqual(a, b Transform, epsilon float64) bool {
	for i := 0; i < 16; i++ {
		if math.Abs(a.mat[i]-b.mat[i]) > epsilon {
			return false
		}
	}
	return true
}

// R3VectorAlmostEqual returns whether a and b are equal within epsilon,
// elementwise.
func R3VectorAlmostEqual(a, b r3.Vector, epsilon float64) bool {
	return math.Abs(a.X-b.X) <= epsilon && math.Abs(a.Y-b.Y) <= epsilon && math.Abs(a.Z-b.Z) <= epsilon
}

package hermite

import (
	"fmt"
	"math"
)

// epsilon is the magnitude below which a direction vector is considered to
// have no direction.
const epsilon = 1e-9

// Rotation is a planar rotation stored as the cosine and sine of its angle.
//
// The zero value is not a valid rotation; use [IdentityRotation].
type Rotation struct {
	Cos float64
	Sin float64
}

// IdentityRotation is the rotation by zero radians.
var IdentityRotation = Rotation{Cos: 1, Sin: 0}

// NewRotation returns the rotation that turns ⟨1, 0⟩ into the direction of
// ⟨x, y⟩.
//
// If normalize is false, x and y are used as the cosine and sine verbatim and
// must already describe a unit vector. If normalize is true, the vector is
// scaled to unit length; vectors shorter than 1e-9 have no meaningful direction
// and yield [IdentityRotation].
func NewRotation(x, y float64, normalize bool) Rotation {
	if !normalize {
		return Rotation{Cos: x, Sin: y}
	}
	m := Vec(x, y).Hypot()
	if !(m > epsilon) {
		return IdentityRotation
	}
	return Rotation{Cos: x / m, Sin: y / m}
}

// RotationFromAngle returns the rotation by th radians.
func RotationFromAngle(th float64) Rotation {
	v := VecFromAngle(th)
	return Rotation{Cos: v.X, Sin: v.Y}
}

// Angle returns the rotation's angle in radians, in the range [-π, π].
func (r Rotation) Angle() float64 {
	return r.Vec().Angle()
}

// Vec returns the unit vector ⟨cos, sin⟩.
func (r Rotation) Vec() Vec2 {
	return Vec2{X: r.Cos, Y: r.Sin}
}

// RotateBy returns the rotation r followed by o.
func (r Rotation) RotateBy(o Rotation) Rotation {
	return NewRotation(
		r.Cos*o.Cos-r.Sin*o.Sin,
		r.Cos*o.Sin+r.Sin*o.Cos,
		true,
	)
}

// Inverse returns the rotation that undoes r.
func (r Rotation) Inverse() Rotation {
	return Rotation{Cos: r.Cos, Sin: -r.Sin}
}

func (r Rotation) String() string {
	return fmt.Sprintf("%g°", r.Angle()*180/math.Pi)
}

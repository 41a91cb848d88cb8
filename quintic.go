package hermite

import (
	"fmt"
)

// Axis describes a scalar function of the curve parameter t, together with its
// first three derivatives. A [Spline2] is built from two axes evaluated at the
// same t.
//
// Implementations must be immutable: variants of a [Spline2] share the axis
// they don't modify.
type Axis interface {
	Position(t float64) float64
	// Tangent returns the first derivative with respect to t.
	Tangent(t float64) float64
	// SecondDerivative returns the second derivative with respect to t.
	// For a single axis this is not the curvature of the 2D curve.
	SecondDerivative(t float64) float64
	ThirdDerivative(t float64) float64
	// VaryAcceleration returns a copy of the axis whose second derivatives at
	// t = 0 and t = 1 are a0 and a1. All other boundary conditions are
	// retained.
	VaryAcceleration(a0, a1 float64) Axis
}

var _ Axis = Quintic{}

// Quintic is a quintic Hermite spline in one dimension: the unique polynomial
// of degree five with prescribed position, first derivative and second
// derivative at t = 0 and t = 1.
type Quintic struct {
	p0, v0, a0 float64
	p1, v1, a1 float64

	// Polynomial coefficients, c[i] is the coefficient of tⁱ.
	c [6]float64
}

// NewQuintic returns the quintic Hermite spline with position p0, derivative
// v0 and second derivative a0 at t = 0, and p1, v1, a1 at t = 1.
func NewQuintic(p0, v0, a0, p1, v1, a1 float64) Quintic {
	return Quintic{
		p0: p0, v0: v0, a0: a0,
		p1: p1, v1: v1, a1: a1,
		c: quinticCoefficients(p0, v0, a0, p1, v1, a1),
	}
}

// Return polynomial coefficients given Hermite boundary conditions.
func quinticCoefficients(p0, v0, a0, p1, v1, a1 float64) [6]float64 {
	return [6]float64{
		p0,
		v0,
		0.5 * a0,
		-10*p0 - 6*v0 - 1.5*a0 + 0.5*a1 - 4*v1 + 10*p1,
		15*p0 + 8*v0 + 1.5*a0 - a1 + 7*v1 - 15*p1,
		-6*p0 - 3*v0 - 0.5*a0 + 0.5*a1 - 3*v1 + 6*p1,
	}
}

// Boundary returns the boundary conditions the spline was constructed from.
func (q Quintic) Boundary() (p0, v0, a0, p1, v1, a1 float64) {
	return q.p0, q.v0, q.a0, q.p1, q.v1, q.a1
}

// VaryAcceleration implements [Axis].
func (q Quintic) VaryAcceleration(a0, a1 float64) Axis {
	return q.WithAcceleration(a0, a1)
}

// WithAcceleration is like [Quintic.VaryAcceleration] but returns the concrete
// type.
func (q Quintic) WithAcceleration(a0, a1 float64) Quintic {
	return NewQuintic(q.p0, q.v0, a0, q.p1, q.v1, a1)
}

func (q Quintic) Position(t float64) float64 {
	c := &q.c
	return ((((c[5]*t+c[4])*t+c[3])*t+c[2])*t+c[1])*t + c[0]
}

func (q Quintic) Tangent(t float64) float64 {
	c := &q.c
	return (((5*c[5]*t+4*c[4])*t+3*c[3])*t+2*c[2])*t + c[1]
}

func (q Quintic) SecondDerivative(t float64) float64 {
	c := &q.c
	return ((20*c[5]*t+12*c[4])*t+6*c[3])*t + 2*c[2]
}

func (q Quintic) ThirdDerivative(t float64) float64 {
	c := &q.c
	return (60*c[5]*t+24*c[4])*t + 6*c[3]
}

// Subsegment returns the part of the spline between t0 and t1, reparameterized
// to [0, 1]. The result is exact, as the restriction of a quintic is again a
// quintic.
func (q Quintic) Subsegment(t0, t1 float64) Quintic {
	dt := t1 - t0
	return NewQuintic(
		q.Position(t0), dt*q.Tangent(t0), dt*dt*q.SecondDerivative(t0),
		q.Position(t1), dt*q.Tangent(t1), dt*dt*q.SecondDerivative(t1),
	)
}

func (q Quintic) String() string {
	return fmt.Sprintf("Quintic{%g, %g, %g → %g, %g, %g}", q.p0, q.v0, q.a0, q.p1, q.v1, q.a1)
}

package hermite

import (
	"fmt"
	"iter"
	"math"
)

// PoseTangentScale is the factor by which [FromPoses] multiplies the distance
// between the two poses to obtain the magnitude of the endpoint tangents.
const PoseTangentScale = 1.2

// Spline2 is a curve in the plane composed of two independent axes, x(t) and
// y(t), evaluated at the same parameter t ∈ [0, 1]. The parameter is curve
// progress, not arc length.
//
// Queries memoize the derivatives they compute for the most recently queried
// t, so that sampling several quantities at the same t evaluates each
// derivative only once. Because of this, a Spline2 must not be queried
// concurrently from multiple goroutines. Splines that share an axis (see
// [FromSpline2VaryDDX]) don't share their caches and can be used
// independently.
//
// Degenerate curves whose velocity vanishes produce non-finite curvature
// values rather than errors.
type Spline2 struct {
	x, y  Axis
	cache evalCache
}

var _ ParametricCurve = (*Spline2)(nil)

// evalCache holds the derivatives of both axes at a single parameter value.
// Slot i holds the i-th derivative.
type evalCache struct {
	t      option[float64]
	derivs [4]option[Vec2]
}

// at makes the cache refer to t, discarding everything computed for any other
// parameter value.
func (c *evalCache) at(t float64) {
	if c.t.isSet && c.t.value == t {
		return
	}
	c.t.set(t)
	for i := range c.derivs {
		c.derivs[i].clear()
	}
}

// NewSpline2 returns the curve (x(t), y(t)).
func NewSpline2(x, y Axis) *Spline2 {
	return &Spline2{x: x, y: y}
}

// FromControlPoints returns the curve passing through (x0, y0) with
// derivative ⟨dx0, dy0⟩ and second derivative ⟨ddx0, ddy0⟩ at t = 0, and the
// corresponding values at t = 1. Each axis is a [Quintic].
func FromControlPoints(
	x0, y0, dx0, dy0, ddx0, ddy0 float64,
	x1, y1, dx1, dy1, ddx1, ddy1 float64,
) *Spline2 {
	return NewSpline2(
		NewQuintic(x0, dx0, ddx0, x1, dx1, ddx1),
		NewQuintic(y0, dy0, ddy0, y1, dy1, ddy1),
	)
}

// FromPoses returns a curve from p0 to p1 that leaves p0 and arrives at p1 in
// the direction of their respective headings.
//
// Both tangents have a magnitude of [PoseTangentScale] times the distance
// between the poses. Poses carry no information about acceleration, so the
// second derivatives at both ends are zero.
func FromPoses(p0, p1 Pose) *Spline2 {
	scale := PoseTangentScale * p0.Translation.Distance(p1.Translation)
	d0 := p0.Rotation.Vec().Mul(scale)
	d1 := p1.Rotation.Vec().Mul(scale)
	return FromControlPoints(
		p0.Translation.X, p0.Translation.Y, d0.X, d0.Y, 0, 0,
		p1.Translation.X, p1.Translation.Y, d1.X, d1.Y, 0, 0,
	)
}

// FromSpline2VaryDDX returns a curve that shares the y axis of s but whose x
// axis has the second derivatives ddx0 and ddx1 at its ends. It is used to
// measure how a boundary condition affects [Spline2.SumDCurveSq].
func FromSpline2VaryDDX(s *Spline2, ddx0, ddx1 float64) *Spline2 {
	return NewSpline2(s.x.VaryAcceleration(ddx0, ddx1), s.y)
}

// FromSpline2VaryDDY is like [FromSpline2VaryDDX] but varies the y axis.
func FromSpline2VaryDDY(s *Spline2, ddy0, ddy1 float64) *Spline2 {
	return NewSpline2(s.x, s.y.VaryAcceleration(ddy0, ddy1))
}

// X returns the curve's x axis.
func (s *Spline2) X() Axis { return s.x }

// Y returns the curve's y axis.
func (s *Spline2) Y() Axis { return s.y }

func (s *Spline2) position(t float64) Vec2 {
	s.cache.at(t)
	slot := &s.cache.derivs[0]
	if !slot.isSet {
		slot.set(Vec(s.x.Position(t), s.y.Position(t)))
	}
	return slot.unwrap()
}

func (s *Spline2) deriv1(t float64) Vec2 {
	s.cache.at(t)
	slot := &s.cache.derivs[1]
	if !slot.isSet {
		slot.set(Vec(s.x.Tangent(t), s.y.Tangent(t)))
	}
	return slot.unwrap()
}

func (s *Spline2) deriv2(t float64) Vec2 {
	s.cache.at(t)
	slot := &s.cache.derivs[2]
	if !slot.isSet {
		slot.set(Vec(s.x.SecondDerivative(t), s.y.SecondDerivative(t)))
	}
	return slot.unwrap()
}

func (s *Spline2) deriv3(t float64) Vec2 {
	s.cache.at(t)
	slot := &s.cache.derivs[3]
	if !slot.isSet {
		slot.set(Vec(s.x.ThirdDerivative(t), s.y.ThirdDerivative(t)))
	}
	return slot.unwrap()
}

// Eval returns the position of the curve at t.
func (s *Spline2) Eval(t float64) Point {
	return Point(s.position(t))
}

// Deriv returns the first derivative of the curve at t.
func (s *Spline2) Deriv(t float64) Vec2 {
	return s.deriv1(t)
}

// Start returns the position at t = 0.
func (s *Spline2) Start() Point {
	return s.Eval(0)
}

// End returns the position at t = 1.
func (s *Spline2) End() Point {
	return s.Eval(1)
}

// Pose returns the position of the curve at t and its heading, the direction
// of the curve's tangent. Where the velocity is zero the heading is undefined
// and [IdentityRotation] is returned.
func (s *Spline2) Pose(t float64) Pose {
	return Pose{
		Translation: s.Eval(t),
		Rotation:    s.Heading(t),
	}
}

// StartPose returns the pose at t = 0.
func (s *Spline2) StartPose() Pose {
	return s.Pose(0)
}

// EndPose returns the pose at t = 1.
func (s *Spline2) EndPose() Pose {
	return s.Pose(1)
}

// PoseWithCurvature returns the pose at t, the curvature at t, and the
// derivative of the curvature with respect to arc length.
func (s *Spline2) PoseWithCurvature(t float64) PoseWithCurvature {
	return PoseWithCurvature{
		Pose:       s.Pose(t),
		Curvature:  s.Curvature(t),
		DCurvature: s.DCurvature(t) / s.Velocity(t),
	}
}

// Velocity returns the tangential speed |⟨x'(t), y'(t)⟩|. It is never negative.
func (s *Spline2) Velocity(t float64) float64 {
	return s.deriv1(t).Hypot()
}

// Heading returns the direction of the tangent at t, or [IdentityRotation]
// where the velocity is zero.
func (s *Spline2) Heading(t float64) Rotation {
	d := s.deriv1(t)
	return NewRotation(d.X, d.Y, true)
}

// Curvature returns the signed curvature at t,
//
//	κ = (x'y'' − x''y') / (x'² + y'²)^(3/2)
//
// Curvature is positive where the curve turns counter-clockwise (in a y-up
// coordinate system). It is not finite where the velocity is zero.
func (s *Spline2) Curvature(t float64) float64 {
	d1 := s.deriv1(t)
	d2 := s.deriv2(t)
	h2 := d1.Hypot2()
	return d1.Cross(d2) / (h2 * math.Sqrt(h2))
}

// dCurvatureNum returns the numerator of dκ/dt and the squared velocity.
//
//	dκ/dt = ((x'y''' − x'''y')(x'² + y'²) − 3(x'y'' − x''y')(x'x'' + y'y'')) / (x'² + y'²)^(5/2)
func (s *Spline2) dCurvatureNum(t float64) (num, h2 float64) {
	d1 := s.deriv1(t)
	d2 := s.deriv2(t)
	d3 := s.deriv3(t)
	h2 = d1.Hypot2()
	num = d1.Cross(d3)*h2 - 3*d1.Cross(d2)*d1.Dot(d2)
	return num, h2
}

// DCurvature returns the derivative of [Spline2.Curvature] with respect to t.
// Divide by [Spline2.Velocity] to obtain the derivative with respect to arc
// length. It is not finite where the velocity is zero.
func (s *Spline2) DCurvature(t float64) float64 {
	num, h2 := s.dCurvatureNum(t)
	return num / (h2 * h2 * math.Sqrt(h2))
}

// DCurvatureSquared returns the square of [Spline2.DCurvature], computed
// without taking a square root.
func (s *Spline2) DCurvatureSquared(t float64) float64 {
	num, h2 := s.dCurvatureNum(t)
	return num * num / (h2 * h2 * h2 * h2 * h2)
}

// SumDCurveSq approximates the integral of [Spline2.DCurvatureSquared] over
// [0, 1] with a left Riemann sum of numSamples equally wide intervals. Smoother
// curves have smaller sums.
//
// It panics if numSamples is not positive.
func (s *Spline2) SumDCurveSq(numSamples int) float64 {
	if numSamples <= 0 {
		panic(fmt.Sprintf("numSamples must be positive, got %d", numSamples))
	}
	n := float64(numSamples)
	dt := 1 / n
	var sum float64
	for i := range numSamples {
		sum += dt * s.DCurvatureSquared(float64(i)/n)
	}
	return sum
}

// Samples returns an iterator over n+1 equally spaced samples of the curve,
// at t = 0, 1/n, …, 1. It panics if n is not positive.
func (s *Spline2) Samples(n int) iter.Seq2[float64, PoseWithCurvature] {
	if n <= 0 {
		panic(fmt.Sprintf("number of samples must be positive, got %d", n))
	}
	return func(yield func(float64, PoseWithCurvature) bool) {
		for i := range n + 1 {
			t := float64(i) / float64(n)
			if !yield(t, s.PoseWithCurvature(t)) {
				return
			}
		}
	}
}

// Subsegment returns the part of the curve between t0 and t1,
// reparameterized to [0, 1].
//
// The result has [Quintic] axes matching the position and first two
// derivatives of s at t0 and t1. For quintic axes this is exact.
func (s *Spline2) Subsegment(t0, t1 float64) *Spline2 {
	return s.hermite(t0, t1, Identity)
}

// SubsegmentCurve implements [ParametricCurve].
func (s *Spline2) SubsegmentCurve(t0, t1 float64) ParametricCurve {
	return s.Subsegment(t0, t1)
}

// Subdivide splits the curve at t = 0.5.
func (s *Spline2) Subdivide() (*Spline2, *Spline2) {
	return s.Subsegment(0, 0.5), s.Subsegment(0.5, 1)
}

// SubdivideCurve implements [ParametricCurve].
func (s *Spline2) SubdivideCurve() (ParametricCurve, ParametricCurve) {
	return s.Subdivide()
}

// Transform applies an affine transformation to the curve. Positions are
// mapped by aff, derivatives by its linear part. Like [Spline2.Subsegment],
// the result has [Quintic] axes and is exact for quintic input.
func (s *Spline2) Transform(aff Affine) *Spline2 {
	return s.hermite(0, 1, aff)
}

// hermite returns the quintic Hermite curve matching s on [t0, t1] after
// transformation by aff. It reads the axes directly so that the cache is left
// untouched.
func (s *Spline2) hermite(t0, t1 float64, aff Affine) *Spline2 {
	dt := t1 - t0
	at := func(t float64) (Point, Vec2, Vec2) {
		p := Pt(s.x.Position(t), s.y.Position(t)).Transform(aff)
		d1 := aff.Linear(Vec(s.x.Tangent(t), s.y.Tangent(t))).Mul(dt)
		d2 := aff.Linear(Vec(s.x.SecondDerivative(t), s.y.SecondDerivative(t))).Mul(dt * dt)
		return p, d1, d2
	}
	p0, d10, d20 := at(t0)
	p1, d11, d21 := at(t1)
	return FromControlPoints(
		p0.X, p0.Y, d10.X, d10.Y, d20.X, d20.Y,
		p1.X, p1.Y, d11.X, d11.Y, d21.X, d21.Y,
	)
}

func (s *Spline2) String() string {
	return fmt.Sprintf("Spline2{x: %v, y: %v}", s.x, s.y)
}

// Package hermite evaluates planar curves built from quintic Hermite splines,
// as used for generating smooth motion paths.
//
// # Curves
//
// A [Spline2] combines two independent one-dimensional splines, one per axis,
// into the curve (x(t), y(t)) for t ∈ [0, 1]. The parameter is curve progress,
// not arc length: t = 0 is the start and t = 1 is the end.
//
// The one-dimensional splines implement [Axis]. The package provides
// [Quintic], the polynomial of degree five determined by its position, first
// derivative and second derivative at both ends. Axes are immutable and may be
// shared between curves.
//
// Curves are constructed from explicit boundary conditions with
// [FromControlPoints], or from a start and end [Pose] with [FromPoses].
//
// # Evaluation
//
// Besides position and heading ([Spline2.Pose]), a curve reports its
// tangential speed ([Spline2.Velocity]), its signed curvature
// ([Spline2.Curvature]), and the rate of change of the curvature
// ([Spline2.DCurvature]). Curvature is positive for counter-clockwise turns
// in a y-up coordinate system.
//
// Evaluating any of these quantities memoizes the derivatives it needed for
// that value of t. Querying several quantities at the same t, as
// [Spline2.PoseWithCurvature] does, computes every derivative once.
//
// # Smoothing
//
// [Spline2.SumDCurveSq] approximates ∫₀¹ (dκ/dt)² dt, a measure of how abruptly
// the curvature changes along the curve. Optimizers that smooth a path by
// adjusting the second derivatives at its waypoints use [FromSpline2VaryDDX]
// and [FromSpline2VaryDDY] to probe how that cost responds to a single
// boundary condition.
//
// # Degenerate curves
//
// No function in this package returns an error. Where the velocity of a
// curve is zero, its direction is undefined: headings fall back to
// [IdentityRotation], and curvature and its derivatives are NaN or infinite.
package hermite

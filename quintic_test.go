package hermite

import (
	"testing"
)

func TestQuinticBoundary(t *testing.T) {
	const epsilon = 1e-12
	q := NewQuintic(1.5, -2, 3, 4, 0.5, -7)
	assertClose(t, q.Position(0), 1.5, epsilon)
	assertClose(t, q.Tangent(0), -2, epsilon)
	assertClose(t, q.SecondDerivative(0), 3, epsilon)
	assertClose(t, q.Position(1), 4, epsilon)
	assertClose(t, q.Tangent(1), 0.5, epsilon)
	assertClose(t, q.SecondDerivative(1), -7, epsilon)

	p0, v0, a0, p1, v1, a1 := q.Boundary()
	diff(t, [6]float64{1.5, -2, 3, 4, 0.5, -7}, [6]float64{p0, v0, a0, p1, v1, a1})
}

func TestQuinticDeriv(t *testing.T) {
	q := NewQuintic(0, 10, 5, 10, 8, -3)
	const n = 10
	const delta = 1e-6
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		check := func(f, df func(float64) float64) {
			t.Helper()
			approx := (f(ts+delta) - f(ts-delta)) / (2 * delta)
			assertClose(t, df(ts), approx, 1e-6)
		}
		check(q.Position, q.Tangent)
		check(q.Tangent, q.SecondDerivative)
		check(q.SecondDerivative, q.ThirdDerivative)
	}
}

func TestQuinticLinear(t *testing.T) {
	// Matching tangents and no acceleration degenerate to a straight line.
	q := NewQuintic(2, 10, 0, 12, 10, 0)
	for i := range 11 {
		ts := float64(i) / 10
		assertClose(t, q.Position(ts), 2+10*ts, 1e-12)
		assertClose(t, q.Tangent(ts), 10, 1e-12)
		assertClose(t, q.SecondDerivative(ts), 0, 1e-12)
		assertClose(t, q.ThirdDerivative(ts), 0, 1e-12)
	}
}

func TestQuinticVaryAcceleration(t *testing.T) {
	const epsilon = 1e-12
	q := NewQuintic(1, 2, 3, 4, 5, 6)
	v := q.VaryAcceleration(-1, 0.5)

	assertClose(t, v.Position(0), 1, epsilon)
	assertClose(t, v.Tangent(0), 2, epsilon)
	assertClose(t, v.SecondDerivative(0), -1, epsilon)
	assertClose(t, v.Position(1), 4, epsilon)
	assertClose(t, v.Tangent(1), 5, epsilon)
	assertClose(t, v.SecondDerivative(1), 0.5, epsilon)

	// q itself is unchanged.
	assertClose(t, q.SecondDerivative(0), 3, epsilon)
	assertClose(t, q.SecondDerivative(1), 6, epsilon)
}

func TestQuinticSubsegment(t *testing.T) {
	q := NewQuintic(3.1, 4.1, 5.9, 2.6, 5.3, 5.8)
	t0 := 0.1
	t1 := 0.8
	qs := q.Subsegment(t0, t1)
	const epsilon = 1e-10
	n := 10
	for i := range n + 1 {
		tt := float64(i) / float64(n)
		ts := t0 + tt*(t1-t0)
		assertClose(t, qs.Position(tt), q.Position(ts), epsilon)
		assertClose(t, qs.Tangent(tt), q.Tangent(ts)*(t1-t0), epsilon)
		assertClose(t, qs.SecondDerivative(tt), q.SecondDerivative(ts)*(t1-t0)*(t1-t0), epsilon)
	}
}

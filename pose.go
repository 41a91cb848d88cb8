package hermite

import (
	"fmt"
)

// Pose is a position together with a heading.
type Pose struct {
	Translation Point
	Rotation    Rotation
}

// NewPose returns the pose at (x, y) facing th radians.
func NewPose(x, y, th float64) Pose {
	return Pose{
		Translation: Pt(x, y),
		Rotation:    RotationFromAngle(th),
	}
}

func (p Pose) String() string {
	return fmt.Sprintf("%s @ %s", p.Translation, p.Rotation)
}

// Transform applies an affine transformation to the pose. The heading is
// mapped through the linear part of the transformation.
func (p Pose) Transform(aff Affine) Pose {
	d := aff.Linear(p.Rotation.Vec())
	return Pose{
		Translation: p.Translation.Transform(aff),
		Rotation:    NewRotation(d.X, d.Y, true),
	}
}

// PoseWithCurvature is a [Pose] sampled from a curve, together with the
// curve's signed curvature at that point and the rate of change of the
// curvature per unit of arc length.
type PoseWithCurvature struct {
	Pose
	Curvature  float64
	DCurvature float64
}

func (p PoseWithCurvature) String() string {
	return fmt.Sprintf("%s κ=%g dκ/ds=%g", p.Pose, p.Curvature, p.DCurvature)
}

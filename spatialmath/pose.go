package spatialmath

import (
	"math"

	"github.com/golang/geo/r2"
)

// Pose is a planar position plus heading. Theta is in radians, wrapped to
// (-pi, pi].
type Pose struct {
	Point r2.Point
	Theta float64
}

// NewPose creates a Pose from x, y coordinates in meters and a heading in radians.
func NewPose(x, y, theta float64) Pose {
	return Pose{Point: r2.Point{X: x, Y: y}, Theta: WrapToPi(theta)}
}

// Compose returns the pose obtained by applying the local offset (dx, dy, dtheta)
// in this pose's frame.
func (p Pose) Compose(dx, dy, dtheta float64) Pose {
	sin, cos := math.Sincos(p.Theta)
	return Pose{
		Point: r2.Point{
			X: p.Point.X + dx*cos - dy*sin,
			Y: p.Point.Y + dx*sin + dy*cos,
		},
		Theta: WrapToPi(p.Theta + dtheta),
	}
}

// PoseAlmostEqual returns whether two poses agree to within posTol meters of
// position and angTol radians of heading.
func PoseAlmostEqual(a, b Pose, posTol, angTol float64) bool {
	return a.Point.Sub(b.Point).Norm() <= posTol && AnglesAlmostEqual(a.Theta, b.Theta, angTol)
}

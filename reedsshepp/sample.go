package reedsshepp

import (
	"math"

	"go.viam.com/trailerplan/spatialmath"
)

// PathSamples is a path densely sampled at a fixed arc step. The slices are
// parallel. Forward[i] and Steps[i] describe the step arriving at sample i;
// Steps[0] is zero and Forward[0] mirrors the first step's direction.
type PathSamples struct {
	Poses   []spatialmath.Pose
	Forward []bool
	Steps   []float64
	Length  float64
}

// interpolate returns the normalized pose a signed arc length l along a
// segment of the given motion starting from the normalized origin pose.
func interpolate(origin spatialmath.Pose, m Motion, l float64) spatialmath.Pose {
	sin, cos := math.Sincos(origin.Theta)
	switch m {
	case MotionStraight:
		return spatialmath.NewPose(origin.Point.X+l*cos, origin.Point.Y+l*sin, origin.Theta)
	case MotionLeft:
		ldx := math.Sin(l)
		ldy := 1 - math.Cos(l)
		return spatialmath.NewPose(
			origin.Point.X+cos*ldx-sin*ldy,
			origin.Point.Y+sin*ldx+cos*ldy,
			origin.Theta+l,
		)
	default: // MotionRight
		ldx := math.Sin(l)
		ldy := -(1 - math.Cos(l))
		return spatialmath.NewPose(
			origin.Point.X+cos*ldx-sin*ldy,
			origin.Point.Y+sin*ldx+cos*ldy,
			origin.Theta-l,
		)
	}
}

// Sample walks the path from the given start pose, emitting poses every step
// meters of arc length along with per-step direction flags and signed arc
// increments. The first sample is the start pose itself.
func (p Path) Sample(from spatialmath.Pose, step float64) *PathSamples {
	out := &PathSamples{
		Poses:   []spatialmath.Pose{spatialmath.NewPose(0, 0, 0)},
		Forward: []bool{true},
		Steps:   []float64{0},
	}
	dd := step / p.Radius

	origin := out.Poses[0]
	for _, seg := range p.Segments {
		if seg.Length == 0 {
			continue
		}
		forward := seg.Length > 0
		total := math.Abs(seg.Length)
		sign := 1.0
		if !forward {
			sign = -1
		}
		prev := 0.0
		for d := dd; ; d += dd {
			if d > total {
				d = total
			}
			out.Poses = append(out.Poses, interpolate(origin, seg.Motion, sign*d))
			out.Forward = append(out.Forward, forward)
			out.Steps = append(out.Steps, sign*(d-prev)*p.Radius)
			prev = d
			if d >= total {
				break
			}
		}
		origin = out.Poses[len(out.Poses)-1]
		out.Length += total * p.Radius
	}
	if len(out.Forward) > 1 {
		out.Forward[0] = out.Forward[1]
	}

	// scale to the real radius and move into the start pose's frame
	sin, cos := math.Sincos(from.Theta)
	for i, pose := range out.Poses {
		x := pose.Point.X * p.Radius
		y := pose.Point.Y * p.Radius
		out.Poses[i] = spatialmath.NewPose(
			from.Point.X+cos*x-sin*y,
			from.Point.Y+sin*x+cos*y,
			pose.Theta+from.Theta,
		)
	}
	return out
}

package vehicle

import (
	"math"

	"github.com/golang/geo/r2"

	"go.viam.com/trailerplan/spatialmath"
)

// State is the full configuration of the rig: tractor rear-axle position,
// tractor heading, and trailer heading. Angles are wrapped to (-pi, pi].
type State struct {
	X          float64
	Y          float64
	TractorYaw float64
	TrailerYaw float64
}

// NewState creates a State with both headings wrapped.
func NewState(x, y, tractorYaw, trailerYaw float64) State {
	return State{
		X:          x,
		Y:          y,
		TractorYaw: spatialmath.WrapToPi(tractorYaw),
		TrailerYaw: spatialmath.WrapToPi(trailerYaw),
	}
}

// Point returns the tractor rear-axle position.
func (s State) Point() r2.Point {
	return r2.Point{X: s.X, Y: s.Y}
}

// TractorPose returns the tractor's planar pose.
func (s State) TractorPose() spatialmath.Pose {
	return spatialmath.NewPose(s.X, s.Y, s.TractorYaw)
}

// Jackknife returns the wrapped angle between tractor and trailer headings.
func (s State) Jackknife() float64 {
	return spatialmath.AngleDiff(s.TractorYaw, s.TrailerYaw)
}

// HitchPoint returns the hitch position, RearToHitch behind the rear axle.
func (cfg *Config) HitchPoint(s State) r2.Point {
	sin, cos := math.Sincos(s.TractorYaw)
	return r2.Point{X: s.X - cfg.RearToHitch*cos, Y: s.Y - cfg.RearToHitch*sin}
}

package vehicle

import (
	"math"

	"go.viam.com/trailerplan/spatialmath"
)

// Step advances the rig by one arc step of signed length dist (positive
// forward, negative backward) at the given steering angle. The tractor follows
// the bicycle model; the trailer heading relaxes toward the tractor heading at
// a rate set by the trailer wheelbase.
func (cfg *Config) Step(s State, steer, dist float64) State {
	sin, cos := math.Sincos(s.TractorYaw)
	return State{
		X:          s.X + dist*cos,
		Y:          s.Y + dist*sin,
		TractorYaw: spatialmath.WrapToPi(s.TractorYaw + dist/cfg.Wheelbase*math.Tan(steer)),
		TrailerYaw: spatialmath.WrapToPi(s.TrailerYaw + dist/cfg.TrailerWheelbase*math.Sin(s.TractorYaw-s.TrailerYaw)),
	}
}

// StepTrailer advances only the trailer heading for a tractor that moved one
// signed arc step while at the given heading. This is used when the tractor
// trajectory is fixed by an analytic curve and the trailer merely follows.
func (cfg *Config) StepTrailer(trailerYaw, tractorYaw, dist float64) float64 {
	return spatialmath.WrapToPi(trailerYaw + dist/cfg.TrailerWheelbase*math.Sin(tractorYaw-trailerYaw))
}

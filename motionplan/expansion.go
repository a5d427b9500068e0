package motionplan

import (
	"math"

	"go.viam.com/trailerplan/reedsshepp"
	"go.viam.com/trailerplan/spatialmath"
	"go.viam.com/trailerplan/vehicle"
)

// steerCandidates returns the fixed steering sample set: nSteer values evenly
// spaced across [-maxSteer, maxSteer], plus straight-ahead. The fixed order
// keeps expansion deterministic.
func steerCandidates(maxSteer float64, nSteer int) []float64 {
	steers := make([]float64, 0, nSteer+1)
	for i := 0; i < nSteer; i++ {
		steers = append(steers, -maxSteer+2*maxSteer*float64(i)/float64(nSteer-1))
	}
	return append(steers, 0)
}

// edgeCost computes the cost of one expansion edge: arc length plus the
// penalties for reversing, switching direction, steering, steering change,
// and ending near the jackknife limit.
func (p *Planner) edgeCost(parent *node, steer float64, forward bool, terminal vehicle.State, arcLen float64) float64 {
	cost := arcLen
	if !forward {
		cost += p.opts.backCost * arcLen
	}
	if forward != parent.arrivedForward() {
		cost += p.opts.switchBackCost
	}
	cost += p.opts.steerCost * math.Abs(steer)
	cost += p.opts.steerChangeCost * math.Abs(steer-parent.steer)
	cost += p.opts.jackknifeCost * math.Abs(terminal.Jackknife())
	return cost
}

// successors expands a parent node into its feasible children: one simulated
// edge per (steer, direction) pair, rejecting edges that collide, leave the
// grid, or quantize back onto the parent's own cell.
func (p *Planner) successors(parent *node, checker *vehicle.CollisionChecker, grid *holonomicGrid) []*node {
	nStep := int(math.Ceil(p.opts.xyRes * math.Sqrt2 / p.opts.motionRes))
	arcLen := float64(nStep) * p.opts.motionRes

	succs := make([]*node, 0, 2*len(p.steers))
	for _, steer := range p.steers {
		for _, forward := range []bool{true, false} {
			dist := p.opts.motionRes
			if !forward {
				dist = -dist
			}
			states := make([]vehicle.State, 0, nStep+1)
			states = append(states, parent.state())
			s := parent.state()
			for i := 0; i < nStep; i++ {
				s = p.cfg.Step(s, steer, dist)
				states = append(states, s)
			}

			key := p.opts.keyFor(s)
			if key == parent.key {
				continue
			}
			if !grid.inBounds(key.ix, key.iy) {
				continue
			}
			if !checker.CheckPath(states[1:]) {
				continue
			}

			forwardFlags := make([]bool, len(states))
			for i := range forwardFlags {
				forwardFlags[i] = forward
			}
			succs = append(succs, &node{
				key:     key,
				states:  states,
				forward: forwardFlags,
				steer:   steer,
				cost:    parent.cost + p.edgeCost(parent, steer, forward, s, arcLen),
				parent:  parent.key,
			})
		}
	}
	return succs
}

// analyticExpansion attempts to connect a state straight to the goal with a
// Reeds-Shepp curve. The tractor follows the curve exactly; the trailer
// heading is forward-propagated along it and must land within tolerance of
// the goal trailer heading. The first collision-free, jackknife-feasible
// curve in increasing length order wins.
func (p *Planner) analyticExpansion(
	from, goal vehicle.State,
	checker *vehicle.CollisionChecker,
) (*analyticSegment, bool) {
	rmin := p.cfg.MinTurningRadius()
	for _, path := range reedsshepp.AllPaths(from.TractorPose(), goal.TractorPose(), rmin) {
		samples := path.Sample(from.TractorPose(), p.opts.motionRes)
		if len(samples.Poses) < 2 {
			continue
		}

		states := make([]vehicle.State, len(samples.Poses))
		trailerYaw := from.TrailerYaw
		for i, pose := range samples.Poses {
			if i > 0 {
				trailerYaw = p.cfg.StepTrailer(trailerYaw, samples.Poses[i-1].Theta, samples.Steps[i])
			}
			states[i] = vehicle.State{X: pose.Point.X, Y: pose.Point.Y, TractorYaw: pose.Theta, TrailerYaw: trailerYaw}
		}
		if !spatialmath.AnglesAlmostEqual(trailerYaw, goal.TrailerYaw, p.opts.goalTrailerYawTol) {
			continue
		}
		if !checker.CheckPath(states) {
			continue
		}
		return &analyticSegment{states: states, forward: samples.Forward}, true
	}
	return nil, false
}

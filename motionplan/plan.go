package motionplan

import (
	"math"

	"go.viam.com/trailerplan/vehicle"
)

// Plan is a dense, time-monotone trajectory for the rig. The slices are
// parallel and equally sized. Forward[i] tells whether the step arriving at
// sample i was driven forward; Forward[0] mirrors the first real step.
type Plan struct {
	X          []float64
	Y          []float64
	TractorYaw []float64
	TrailerYaw []float64
	Forward    []bool
}

// Len returns the number of samples.
func (p *Plan) Len() int {
	return len(p.X)
}

// State returns the rig state at sample i.
func (p *Plan) State(i int) vehicle.State {
	return vehicle.State{X: p.X[i], Y: p.Y[i], TractorYaw: p.TractorYaw[i], TrailerYaw: p.TrailerYaw[i]}
}

// States returns the full sample sequence as rig states.
func (p *Plan) States() []vehicle.State {
	out := make([]vehicle.State, p.Len())
	for i := range out {
		out[i] = p.State(i)
	}
	return out
}

// Length returns the total arc length along the sample chain, in meters.
func (p *Plan) Length() float64 {
	total := 0.0
	for i := 1; i < p.Len(); i++ {
		total += math.Hypot(p.X[i]-p.X[i-1], p.Y[i]-p.Y[i-1])
	}
	return total
}

// Reversed returns the plan traversed goal-to-start, with every step's
// driving direction flipped. The result is kinematically valid for the same
// rig but makes no optimality claim.
func (p *Plan) Reversed() *Plan {
	n := p.Len()
	out := &Plan{
		X:          make([]float64, n),
		Y:          make([]float64, n),
		TractorYaw: make([]float64, n),
		TrailerYaw: make([]float64, n),
		Forward:    make([]bool, n),
	}
	for i := 0; i < n; i++ {
		j := n - 1 - i
		out.X[i] = p.X[j]
		out.Y[i] = p.Y[j]
		out.TractorYaw[i] = p.TractorYaw[j]
		out.TrailerYaw[i] = p.TrailerYaw[j]
		if i > 0 {
			out.Forward[i] = !p.Forward[n-i]
		}
	}
	if n > 1 {
		out.Forward[0] = out.Forward[1]
	}
	return out
}

func (p *Plan) appendState(s vehicle.State, forward bool) {
	p.X = append(p.X, s.X)
	p.Y = append(p.Y, s.Y)
	p.TractorYaw = append(p.TractorYaw, s.TractorYaw)
	p.TrailerYaw = append(p.TrailerYaw, s.TrailerYaw)
	p.Forward = append(p.Forward, forward)
}

// analyticSegment is the goal-connection tail found by a Reeds-Shepp shot,
// with the trailer heading already propagated along it.
type analyticSegment struct {
	states  []vehicle.State
	forward []bool
}

// reconstruct back-traces from the terminal node through its parents and
// stitches the stored edge samples with the analytic goal connection into a
// single dense plan.
func reconstruct(closed map[nodeKey]*node, terminal *node, seg *analyticSegment) (*Plan, error) {
	chain := []*node{}
	for n := terminal; ; {
		chain = append(chain, n)
		if n.isRoot {
			break
		}
		parent, ok := closed[n.parent]
		if !ok {
			return nil, newInternalError("node parent missing from closed set")
		}
		n = parent
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	plan := &Plan{}
	for i, n := range chain {
		states, forward := n.states, n.forward
		if i > 0 {
			// the first sample duplicates the parent's final state
			states, forward = states[1:], forward[1:]
		}
		for j := range states {
			plan.appendState(states[j], forward[j])
		}
	}
	if seg != nil {
		for j := 1; j < len(seg.states); j++ {
			plan.appendState(seg.states[j], seg.forward[j])
		}
	}
	if plan.Len() < 2 {
		return nil, newInternalError("reconstructed plan has fewer than two samples")
	}
	plan.Forward[0] = plan.Forward[1]
	return plan, nil
}

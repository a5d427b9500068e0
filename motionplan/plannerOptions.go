package motionplan

import (
	"math"
	"time"

	"github.com/benbjohnson/clock"
)

// default values for planning options.
const (
	// spatial width of one search cell, in meters.
	defaultXYGridResolution = 2.0

	// angular width of one search cell, for both tractor and trailer headings.
	defaultYawGridResolution = 15.0 * math.Pi / 180.0

	// arc length of one integration micro-step, in meters.
	defaultMotionResolution = 0.1

	// number of uniformly spaced steering samples per direction; zero steer is
	// always added on top.
	defaultNSteer = 20

	// multiplier on arc length driven in reverse.
	defaultBackCost = 5.0

	// flat penalty for changing driving direction between edges.
	defaultSwitchBackCost = 100.0

	// penalty per radian of steering change between consecutive edges.
	defaultSteerChangeCost = 5.0

	// penalty per radian of absolute steering on an edge.
	defaultSteerCost = 1.0

	// penalty per radian of tractor-trailer heading difference at an edge end.
	defaultJackknifeCost = 200.0

	// multiplicative weight on the heuristic; >1 trades optimality for speed.
	defaultHeuristicWeight = 1.3

	// largest allowed trailer heading error when connecting to the goal.
	defaultGoalTrailerYawTol = math.Pi / 60.0

	// hard cap on node expansions before giving up.
	defaultNodeBudget = 200000

	// wall-clock limit on a single plan invocation.
	defaultTimeout = 300 * time.Second
)

// plannerOptions are the tunable parameters of a hybrid A* search. All fields
// have usable defaults from newBasicPlannerOptions.
type plannerOptions struct {
	xyRes     float64
	yawRes    float64
	motionRes float64
	nSteer    int

	backCost        float64
	switchBackCost  float64
	steerChangeCost float64
	steerCost       float64
	jackknifeCost   float64

	heuristicWeight   float64
	goalTrailerYawTol float64

	nodeBudget int
	timeout    time.Duration
	clk        clock.Clock
}

// newBasicPlannerOptions specifies the default set of options for the planner.
func newBasicPlannerOptions() *plannerOptions {
	return &plannerOptions{
		xyRes:             defaultXYGridResolution,
		yawRes:            defaultYawGridResolution,
		motionRes:         defaultMotionResolution,
		nSteer:            defaultNSteer,
		backCost:          defaultBackCost,
		switchBackCost:    defaultSwitchBackCost,
		steerChangeCost:   defaultSteerChangeCost,
		steerCost:         defaultSteerCost,
		jackknifeCost:     defaultJackknifeCost,
		heuristicWeight:   defaultHeuristicWeight,
		goalTrailerYawTol: defaultGoalTrailerYawTol,
		nodeBudget:        defaultNodeBudget,
		timeout:           defaultTimeout,
		clk:               clock.New(),
	}
}

// Option adjusts a planner's options at construction time.
type Option func(*plannerOptions)

// WithGridResolutions sets the spatial and angular cell widths that define
// node identity. Non-positive values leave the corresponding default.
func WithGridResolutions(xy, yaw float64) Option {
	return func(o *plannerOptions) {
		if xy > 0 {
			o.xyRes = xy
		}
		if yaw > 0 {
			o.yawRes = yaw
		}
	}
}

// WithMotionResolution sets the integration micro-step arc length.
func WithMotionResolution(res float64) Option {
	return func(o *plannerOptions) {
		if res > 0 {
			o.motionRes = res
		}
	}
}

// WithSteeringSamples sets how many evenly spaced steering values are tried
// per direction on each expansion; straight-ahead is always tried as well.
func WithSteeringSamples(n int) Option {
	return func(o *plannerOptions) {
		if n > 1 {
			o.nSteer = n
		}
	}
}

// WithCosts overrides the edge cost penalties: reverse driving multiplier,
// direction switch penalty, steering change penalty, absolute steer penalty,
// and the near-jackknife penalty.
func WithCosts(back, switchBack, steerChange, steer, jackknife float64) Option {
	return func(o *plannerOptions) {
		o.backCost = back
		o.switchBackCost = switchBack
		o.steerChangeCost = steerChange
		o.steerCost = steer
		o.jackknifeCost = jackknife
	}
}

// WithHeuristicWeight sets the multiplicative heuristic weight; values above
// one speed up the search at the expense of path optimality.
func WithHeuristicWeight(w float64) Option {
	return func(o *plannerOptions) {
		if w >= 1 {
			o.heuristicWeight = w
		}
	}
}

// WithGoalTrailerYawTol sets the allowed trailer heading error at the goal.
func WithGoalTrailerYawTol(tol float64) Option {
	return func(o *plannerOptions) {
		if tol > 0 {
			o.goalTrailerYawTol = tol
		}
	}
}

// WithNodeBudget caps how many nodes may be expanded before the search fails
// with ErrBudgetExceeded.
func WithNodeBudget(n int) Option {
	return func(o *plannerOptions) {
		if n > 0 {
			o.nodeBudget = n
		}
	}
}

// WithTimeout caps the wall-clock duration of a single plan invocation. Zero
// disables the limit.
func WithTimeout(d time.Duration) Option {
	return func(o *plannerOptions) {
		o.timeout = d
	}
}

// WithClock substitutes the time source used for timeout checks.
func WithClock(clk clock.Clock) Option {
	return func(o *plannerOptions) {
		if clk != nil {
			o.clk = clk
		}
	}
}

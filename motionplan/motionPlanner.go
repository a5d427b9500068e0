// Package motionplan plans kinematically feasible, collision-free
// trajectories for a car towing a single trailer, using hybrid A* over a
// discretized (x, y, tractor yaw, trailer yaw) configuration space with
// Reeds-Shepp analytic goal connection and a holonomic Dijkstra heuristic.
package motionplan

import (
	"container/heap"
	"context"
	"math"
	"time"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.viam.com/utils"

	"go.viam.com/trailerplan/obstacles"
	"go.viam.com/trailerplan/reedsshepp"
	"go.viam.com/trailerplan/spatialmath"
	"go.viam.com/trailerplan/vehicle"
)

// Planner is a hybrid A* planner for a fixed tractor-trailer configuration.
// A Planner may be reused across plan invocations but must not be invoked
// concurrently with itself.
type Planner struct {
	cfg    *vehicle.Config
	logger golog.Logger
	opts   *plannerOptions
	steers []float64
}

// NewPlanner creates a planner for the given rig. A nil config selects the
// default rig geometry.
func NewPlanner(cfg *vehicle.Config, logger golog.Logger, opts ...Option) (*Planner, error) {
	if cfg == nil {
		cfg = vehicle.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid vehicle config")
	}
	o := newBasicPlannerOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Planner{
		cfg:    cfg,
		logger: logger,
		opts:   o,
		steers: steerCandidates(cfg.MaxSteer, o.nSteer),
	}, nil
}

type planReturn struct {
	plan *Plan
	err  error
}

// Plan searches for a trajectory from start to goal through the given
// obstacle set. It honors context cancellation between node expansions.
func (p *Planner) Plan(ctx context.Context, start, goal vehicle.State, index *obstacles.Index) (*Plan, error) {
	solutionChan := make(chan *planReturn, 1)
	utils.PanicCapturingGo(func() {
		plan, err := p.planRunner(ctx, start, goal, index)
		solutionChan <- &planReturn{plan: plan, err: err}
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case ret := <-solutionChan:
		return ret.plan, ret.err
	}
}

// planRunner executes the search synchronously. Plan runs it on its own
// goroutine so that callers regain control on context cancellation even
// mid-expansion.
func (p *Planner) planRunner(ctx context.Context, start, goal vehicle.State, index *obstacles.Index) (*Plan, error) {
	start = vehicle.NewState(start.X, start.Y, start.TractorYaw, start.TrailerYaw)
	goal = vehicle.NewState(goal.X, goal.Y, goal.TractorYaw, goal.TrailerYaw)

	checker := vehicle.NewCollisionChecker(p.cfg, index)
	if !checker.Check(start) {
		return nil, ErrInvalidStart
	}
	if !checker.Check(goal) {
		return nil, ErrInvalidGoal
	}

	if p.trivialPlan(start, goal) {
		plan := &Plan{}
		plan.appendState(start, true)
		plan.appendState(goal, true)
		return plan, nil
	}

	rmin := p.cfg.MinTurningRadius()
	clearance := math.Max(p.cfg.TractorWidth, p.cfg.TrailerWidth) / 2
	margin := 4*rmin + p.cfg.TrailerLength
	grid := newHolonomicGrid(index, start.Point(), goal.Point(), p.opts.xyRes, clearance, margin)

	startKey := p.opts.keyFor(start)
	if math.IsInf(grid.at(startKey.ix, startKey.iy), 1) {
		return nil, ErrHeuristicUnreachable
	}

	var deadline time.Time
	if p.opts.timeout > 0 {
		deadline = p.opts.clk.Now().Add(p.opts.timeout)
	}

	open := map[nodeKey]*node{}
	closed := map[nodeKey]*node{}
	queue := &nodeQueue{}
	heap.Init(queue)

	root := newRootNode(startKey, start)
	open[root.key] = root
	pushItem(queue, root.key, 0, p.heuristic(start, goal, grid, rmin), p.opts.heuristicWeight)

	expansions := 0
	analyticCountdown := 0
	for queue.Len() > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		if !deadline.IsZero() && p.opts.clk.Now().After(deadline) {
			return nil, errors.Wrap(ErrBudgetExceeded, "deadline reached")
		}

		item := heap.Pop(queue).(*queueItem)
		current, isOpen := open[item.key]
		if !isOpen || current.cost != item.g {
			// stale entry left behind by a cheaper re-insertion
			continue
		}
		delete(open, item.key)
		closed[item.key] = current

		expansions++
		if expansions > p.opts.nodeBudget {
			return nil, errors.Wrapf(ErrBudgetExceeded, "expanded %d nodes", expansions-1)
		}

		if analyticCountdown <= 0 {
			if seg, ok := p.analyticExpansion(current.state(), goal, checker); ok {
				p.logger.Debugf("analytic expansion connected after %d expansions", expansions)
				return reconstruct(closed, current, seg)
			}
			analyticCountdown = int(item.h / p.opts.xyRes)
		}
		analyticCountdown--

		for _, succ := range p.successors(current, checker, grid) {
			if _, done := closed[succ.key]; done {
				continue
			}
			if existing, isOpen := open[succ.key]; isOpen && existing.cost <= succ.cost {
				continue
			}
			open[succ.key] = succ
			pushItem(queue, succ.key, succ.cost, p.heuristic(succ.state(), goal, grid, rmin), p.opts.heuristicWeight)
		}
	}
	return nil, ErrSearchExhausted
}

// heuristic is the max of the holonomic-with-obstacles cost-to-go and the
// obstacle-free Reeds-Shepp distance. Each term is admissible on its own, so
// their max is too.
func (p *Planner) heuristic(s, goal vehicle.State, grid *holonomicGrid, rmin float64) float64 {
	key := p.opts.keyFor(s)
	hHolo := grid.at(key.ix, key.iy)
	hRS := reedsshepp.ShortestLength(s.TractorPose(), goal.TractorPose(), rmin)
	return math.Max(hHolo, hRS)
}

// trivialPlan reports whether start and goal already coincide to within the
// goal tolerances, in which case no search is needed.
func (p *Planner) trivialPlan(start, goal vehicle.State) bool {
	return spatialmath.PoseAlmostEqual(start.TractorPose(), goal.TractorPose(), p.opts.motionRes, p.opts.yawRes) &&
		spatialmath.AnglesAlmostEqual(start.TrailerYaw, goal.TrailerYaw, p.opts.goalTrailerYawTol)
}

// PlanTrailerPath is a convenience wrapper over NewPlanner and Planner.Plan
// taking flat start/goal coordinates and obstacle arrays. Units are meters
// and radians. Non-positive resolutions select the defaults.
func PlanTrailerPath(
	ctx context.Context,
	logger golog.Logger,
	sx, sy, syawT, syawR float64,
	gx, gy, gyawT, gyawR float64,
	obstaclesX, obstaclesY []float64,
	xyRes, yawRes float64,
) (*Plan, error) {
	index, err := obstacles.NewIndex(obstaclesX, obstaclesY)
	if err != nil {
		return nil, err
	}
	planner, err := NewPlanner(vehicle.DefaultConfig(), logger, WithGridResolutions(xyRes, yawRes))
	if err != nil {
		return nil, err
	}
	return planner.Plan(ctx,
		vehicle.NewState(sx, sy, syawT, syawR),
		vehicle.NewState(gx, gy, gyawT, gyawR),
		index,
	)
}

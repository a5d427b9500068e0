package motionplan

import "github.com/pkg/errors"

// Planning failures the caller is expected to handle. All are returned with a
// nil plan; use errors.Is to distinguish them.
var (
	// ErrInvalidStart means the start pose itself collides or exceeds the
	// jackknife limit.
	ErrInvalidStart = errors.New("start pose is in collision or exceeds the jackknife limit")
	// ErrInvalidGoal means the goal pose itself collides or exceeds the
	// jackknife limit.
	ErrInvalidGoal = errors.New("goal pose is in collision or exceeds the jackknife limit")
	// ErrHeuristicUnreachable means the holonomic heuristic grid found no
	// route between start and goal, so no kinematic path can exist either.
	ErrHeuristicUnreachable = errors.New("goal is unreachable in the holonomic heuristic grid")
	// ErrSearchExhausted means the open set emptied without reaching the goal.
	ErrSearchExhausted = errors.New("search exhausted without finding a path")
	// ErrBudgetExceeded means the node or time budget was reached.
	ErrBudgetExceeded = errors.New("planning budget exceeded")
)

// newInternalError marks a detected contract violation inside the planner.
// These indicate bugs, not user errors.
func newInternalError(msg string) error {
	return errors.Errorf("internal planner invariant violated: %s", msg)
}

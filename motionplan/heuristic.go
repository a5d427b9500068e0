package motionplan

import (
	"container/heap"
	"math"

	"github.com/golang/geo/r2"

	"go.viam.com/trailerplan/obstacles"
)

// holonomicGrid is a 2D cost-to-go field computed by Dijkstra from the goal
// cell over an obstacle-inflated occupancy grid. It serves both as an
// admissible heuristic that accounts for obstacles and as the spatial bound
// of the search.
type holonomicGrid struct {
	res    float64
	minIX  int
	minIY  int
	width  int
	height int
	cost   []float64
}

type gridCell struct {
	ix, iy int
	cost   float64
}

type gridQueue []gridCell

func (q gridQueue) Len() int            { return len(q) }
func (q gridQueue) Less(i, j int) bool  { return q[i].cost < q[j].cost }
func (q gridQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *gridQueue) Push(x interface{}) { *q = append(*q, x.(gridCell)) }
func (q *gridQueue) Pop() interface{} {
	old := *q
	n := len(old)
	c := old[n-1]
	*q = old[:n-1]
	return c
}

var gridNeighbors = []struct {
	dx, dy int
	cost   float64
}{
	{1, 0, 1}, {-1, 0, 1}, {0, 1, 1}, {0, -1, 1},
	{1, 1, math.Sqrt2}, {1, -1, math.Sqrt2}, {-1, 1, math.Sqrt2}, {-1, -1, math.Sqrt2},
}

// newHolonomicGrid builds the occupancy grid covering the obstacle bounding
// box and the start/goal positions plus margin, inflates obstacles by
// clearance, and runs Dijkstra from the goal. Stored costs are in meters;
// occupied and unreachable cells hold +Inf.
func newHolonomicGrid(index *obstacles.Index, start, goal r2.Point, res, clearance, margin float64) *holonomicGrid {
	minPt, maxPt := index.Bounds()
	minX := math.Min(math.Min(minPt.X, start.X), goal.X) - margin
	minY := math.Min(math.Min(minPt.Y, start.Y), goal.Y) - margin
	maxX := math.Max(math.Max(maxPt.X, start.X), goal.X) + margin
	maxY := math.Max(math.Max(maxPt.Y, start.Y), goal.Y) + margin

	g := &holonomicGrid{
		res:   res,
		minIX: int(math.Floor(minX / res)),
		minIY: int(math.Floor(minY / res)),
	}
	g.width = int(math.Floor(maxX/res)) - g.minIX + 1
	g.height = int(math.Floor(maxY/res)) - g.minIY + 1
	g.cost = make([]float64, g.width*g.height)
	for i := range g.cost {
		g.cost[i] = math.Inf(1)
	}

	occupied := make([]bool, g.width*g.height)
	for iy := 0; iy < g.height; iy++ {
		for ix := 0; ix < g.width; ix++ {
			center := r2.Point{
				X: (float64(g.minIX+ix) + 0.5) * res,
				Y: (float64(g.minIY+iy) + 0.5) * res,
			}
			occupied[iy*g.width+ix] = index.AnyWithinRadius(center, clearance)
		}
	}

	goalIX := int(math.Floor(goal.X/res)) - g.minIX
	goalIY := int(math.Floor(goal.Y/res)) - g.minIY
	if goalIX < 0 || goalIX >= g.width || goalIY < 0 || goalIY >= g.height {
		return g
	}
	if occupied[goalIY*g.width+goalIX] {
		return g
	}

	q := &gridQueue{{ix: goalIX, iy: goalIY, cost: 0}}
	heap.Init(q)
	g.cost[goalIY*g.width+goalIX] = 0
	for q.Len() > 0 {
		c := heap.Pop(q).(gridCell)
		if c.cost > g.cost[c.iy*g.width+c.ix] {
			continue
		}
		for _, nb := range gridNeighbors {
			nx, ny := c.ix+nb.dx, c.iy+nb.dy
			if nx < 0 || nx >= g.width || ny < 0 || ny >= g.height {
				continue
			}
			i := ny*g.width + nx
			if occupied[i] {
				continue
			}
			next := c.cost + nb.cost*res
			if next < g.cost[i] {
				g.cost[i] = next
				heap.Push(q, gridCell{ix: nx, iy: ny, cost: next})
			}
		}
	}
	return g
}

// inBounds reports whether the absolute cell indices fall inside the grid.
func (g *holonomicGrid) inBounds(ix, iy int) bool {
	return ix >= g.minIX && ix < g.minIX+g.width && iy >= g.minIY && iy < g.minIY+g.height
}

// at returns the cost-to-go of the cell with the given absolute indices, or
// +Inf outside the grid.
func (g *holonomicGrid) at(ix, iy int) float64 {
	if !g.inBounds(ix, iy) {
		return math.Inf(1)
	}
	return g.cost[(iy-g.minIY)*g.width+(ix-g.minIX)]
}

// Package obstacles provides a static spatial index over a 2D obstacle point
// cloud, supporting the radius queries the collision checker and heuristic
// grid need.
package obstacles

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// point is a single indexed obstacle implementing kdtree.Comparable.
type point struct {
	pt r2.Point
}

func (p point) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(point)
	switch d {
	case 0:
		return p.pt.X - q.pt.X
	default:
		return p.pt.Y - q.pt.Y
	}
}

func (p point) Dims() int { return 2 }

// Distance returns the squared Euclidean distance, per the kdtree contract.
func (p point) Distance(c kdtree.Comparable) float64 {
	q := c.(point)
	d := p.pt.Sub(q.pt)
	return d.X*d.X + d.Y*d.Y
}

// points implements kdtree.Interface for tree construction.
type points []point

func (p points) Index(i int) kdtree.Comparable { return p[i] }
func (p points) Len() int                      { return len(p) }
func (p points) Slice(start, end int) kdtree.Interface {
	return p[start:end]
}

func (p points) Pivot(d kdtree.Dim) int {
	return plane{points: p, Dim: d}.Pivot()
}

// plane is the sorting helper the kdtree package requires for pivoting.
type plane struct {
	kdtree.Dim
	points
}

func (p plane) Less(i, j int) bool {
	switch p.Dim {
	case 0:
		return p.points[i].pt.X < p.points[j].pt.X
	default:
		return p.points[i].pt.Y < p.points[j].pt.Y
	}
}

func (p plane) Pivot() int {
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}

func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.points = p.points[start:end]
	return p
}

func (p plane) Swap(i, j int) {
	p.points[i], p.points[j] = p.points[j], p.points[i]
}

// Index is an immutable spatial index over obstacle points. A nil or empty
// index is legal and reports no obstacles anywhere.
type Index struct {
	tree *kdtree.Tree
	pts  []r2.Point
	min  r2.Point
	max  r2.Point
}

// NewIndex builds an index over the given obstacle coordinates. The two
// slices must have equal length; an empty obstacle set is legal.
func NewIndex(xs, ys []float64) (*Index, error) {
	if len(xs) != len(ys) {
		return nil, errors.Errorf("obstacle coordinate slices have mismatched lengths %d and %d", len(xs), len(ys))
	}
	idx := &Index{
		pts: make([]r2.Point, 0, len(xs)),
		min: r2.Point{X: math.Inf(1), Y: math.Inf(1)},
		max: r2.Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
	data := make(points, 0, len(xs))
	for i := range xs {
		pt := r2.Point{X: xs[i], Y: ys[i]}
		idx.pts = append(idx.pts, pt)
		data = append(data, point{pt: pt})
		idx.min.X = math.Min(idx.min.X, pt.X)
		idx.min.Y = math.Min(idx.min.Y, pt.Y)
		idx.max.X = math.Max(idx.max.X, pt.X)
		idx.max.Y = math.Max(idx.max.Y, pt.Y)
	}
	if len(data) > 0 {
		idx.tree = kdtree.New(data, false)
	}
	return idx, nil
}

// Len returns the number of indexed obstacle points.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.pts)
}

// Bounds returns the axis-aligned bounding box of the obstacle set. With no
// obstacles the bounds are inverted infinities.
func (idx *Index) Bounds() (r2.Point, r2.Point) {
	if idx == nil || len(idx.pts) == 0 {
		return r2.Point{X: math.Inf(1), Y: math.Inf(1)}, r2.Point{X: math.Inf(-1), Y: math.Inf(-1)}
	}
	return idx.min, idx.max
}

// WithinRadius returns all obstacle points within r of the given center.
func (idx *Index) WithinRadius(center r2.Point, r float64) []r2.Point {
	if idx == nil || idx.tree == nil || r < 0 {
		return nil
	}
	keep := kdtree.NewDistKeeper(r * r)
	idx.tree.NearestSet(keep, point{pt: center})
	var found []r2.Point
	for _, c := range keep.Heap {
		if c.Comparable == nil {
			continue
		}
		found = append(found, c.Comparable.(point).pt)
	}
	return found
}

// AnyWithinRadius reports whether at least one obstacle lies within r of the
// given center.
func (idx *Index) AnyWithinRadius(center r2.Point, r float64) bool {
	if idx == nil || idx.tree == nil || r < 0 {
		return false
	}
	_, dist := idx.tree.Nearest(point{pt: center})
	return dist <= r*r
}

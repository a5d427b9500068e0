// Package spatialmath defines the planar geometric primitives used by the
// trailer planner: headings wrapped to (-pi, pi], poses, and oriented
// rectangles for vehicle footprints.
package spatialmath

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// WrapToPi returns the given angle mapped into the (-pi, pi] range.
func WrapToPi(theta float64) float64 {
	wrapped := math.Mod(theta+math.Pi, 2*math.Pi)
	if wrapped <= 0 {
		wrapped += 2 * math.Pi
	}
	return wrapped - math.Pi
}

// AngleDiff returns the wrapped difference a-b in (-pi, pi].
func AngleDiff(a, b float64) float64 {
	return WrapToPi(a - b)
}

// AnglesAlmostEqual returns whether two headings are within tol of one another,
// accounting for the wrap at pi.
func AnglesAlmostEqual(a, b, tol float64) bool {
	return scalar.EqualWithinAbs(AngleDiff(a, b), 0, tol)
}

package spatialmath

import (
	"math"

	"github.com/golang/geo/r2"
)

// Rectangle is an oriented rectangle in the plane. The center sits at a pose;
// the length spans along the pose heading and the width across it.
type Rectangle struct {
	center Pose
	length float64
	width  float64
}

// NewRectangle creates an oriented rectangle of the given length and width
// centered at the given pose.
func NewRectangle(center Pose, length, width float64) Rectangle {
	return Rectangle{center: center, length: length, width: width}
}

// Center returns the rectangle's center point.
func (r Rectangle) Center() r2.Point {
	return r.center.Point
}

// BoundingRadius returns the radius of the smallest circle centered at the
// rectangle center that contains the whole rectangle.
func (r Rectangle) BoundingRadius() float64 {
	return math.Hypot(r.length/2, r.width/2)
}

// ContainsPoint reports whether the given world point lies inside the
// rectangle (boundary inclusive).
func (r Rectangle) ContainsPoint(pt r2.Point) bool {
	d := pt.Sub(r.center.Point)
	sin, cos := math.Sincos(r.center.Theta)
	// project into the rectangle frame
	along := d.X*cos + d.Y*sin
	across := -d.X*sin + d.Y*cos
	return math.Abs(along) <= r.length/2 && math.Abs(across) <= r.width/2
}

package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"go.viam.com/test"
)

func TestRectangleContainsPoint(t *testing.T) {
	rect := NewRectangle(NewPose(0, 0, 0), 4, 2)
	test.That(t, rect.ContainsPoint(r2.Point{X: 1.9, Y: 0.9}), test.ShouldBeTrue)
	test.That(t, rect.ContainsPoint(r2.Point{X: 2.1, Y: 0}), test.ShouldBeFalse)
	test.That(t, rect.ContainsPoint(r2.Point{X: 0, Y: 1.1}), test.ShouldBeFalse)

	rotated := NewRectangle(NewPose(0, 0, math.Pi/2), 4, 2)
	test.That(t, rotated.ContainsPoint(r2.Point{X: 0.9, Y: 1.9}), test.ShouldBeTrue)
	test.That(t, rotated.ContainsPoint(r2.Point{X: 1.1, Y: 0}), test.ShouldBeFalse)

	offset := NewRectangle(NewPose(10, 5, 0), 2, 2)
	test.That(t, offset.ContainsPoint(r2.Point{X: 10.5, Y: 5.5}), test.ShouldBeTrue)
	test.That(t, offset.ContainsPoint(r2.Point{X: 0, Y: 0}), test.ShouldBeFalse)
}

func TestRectangleBoundingRadius(t *testing.T) {
	rect := NewRectangle(NewPose(3, 4, 1), 6, 8)
	test.That(t, rect.BoundingRadius(), test.ShouldAlmostEqual, 5, 1e-12)
	test.That(t, rect.Center().X, test.ShouldAlmostEqual, 3, 1e-12)
	test.That(t, rect.Center().Y, test.ShouldAlmostEqual, 4, 1e-12)
}

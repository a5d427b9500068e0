package vehicle

import (
	"math"
	"testing"

	"go.viam.com/test"

	"go.viam.com/trailerplan/obstacles"
)

func mustIndex(t *testing.T, xs, ys []float64) *obstacles.Index {
	t.Helper()
	idx, err := obstacles.NewIndex(xs, ys)
	test.That(t, err, test.ShouldBeNil)
	return idx
}

func TestCheckEmptyIndex(t *testing.T) {
	cfg := DefaultConfig()
	checker := NewCollisionChecker(cfg, mustIndex(t, nil, nil))
	test.That(t, checker.Check(NewState(0, 0, 0, 0)), test.ShouldBeTrue)
}

func TestCheckJackknife(t *testing.T) {
	cfg := DefaultConfig()
	checker := NewCollisionChecker(cfg, mustIndex(t, nil, nil))
	test.That(t, checker.Check(NewState(0, 0, 0, cfg.MaxJackknife-0.01)), test.ShouldBeTrue)
	test.That(t, checker.Check(NewState(0, 0, 0, cfg.MaxJackknife+0.01)), test.ShouldBeFalse)
	test.That(t, checker.Check(NewState(0, 0, 0, -cfg.MaxJackknife-0.01)), test.ShouldBeFalse)
}

func TestCheckTractorHit(t *testing.T) {
	cfg := DefaultConfig()
	// tractor body spans x in [-1, 4.5] at the default center offset
	checker := NewCollisionChecker(cfg, mustIndex(t, []float64{2}, []float64{0}))
	test.That(t, checker.Check(NewState(0, 0, 0, 0)), test.ShouldBeFalse)
	// moved well clear of the point
	test.That(t, checker.Check(NewState(20, 0, 0, 0)), test.ShouldBeTrue)
}

func TestCheckTrailerHit(t *testing.T) {
	cfg := DefaultConfig()
	// trailer center sits RearToHitch+TrailerCenterOffset behind the rear axle
	checker := NewCollisionChecker(cfg, mustIndex(t, []float64{-4.5}, []float64{0}))
	test.That(t, checker.Check(NewState(0, 0, 0, 0)), test.ShouldBeFalse)
	// obstacle beside the trailer, outside the body half-width
	checker = NewCollisionChecker(cfg, mustIndex(t, []float64{-4.5}, []float64{cfg.TrailerWidth/2 + 0.1}))
	test.That(t, checker.Check(NewState(0, 0, 0, 0)), test.ShouldBeTrue)
}

func TestCheckRotatedBodies(t *testing.T) {
	cfg := DefaultConfig()
	// rig pointing up: tractor body spans y in [-1, 4.5]
	checker := NewCollisionChecker(cfg, mustIndex(t, []float64{0}, []float64{3}))
	test.That(t, checker.Check(NewState(0, 0, math.Pi/2, math.Pi/2)), test.ShouldBeFalse)
	test.That(t, checker.Check(NewState(0, 0, 0, 0)), test.ShouldBeTrue)
}

func TestCheckPath(t *testing.T) {
	cfg := DefaultConfig()
	checker := NewCollisionChecker(cfg, mustIndex(t, []float64{12}, []float64{0}))
	clear := []State{NewState(0, 0, 0, 0), NewState(1, 0, 0, 0)}
	test.That(t, checker.CheckPath(clear), test.ShouldBeTrue)
	blocked := append(clear, NewState(11, 0, 0, 0))
	test.That(t, checker.CheckPath(blocked), test.ShouldBeFalse)
	test.That(t, checker.CheckPath(nil), test.ShouldBeTrue)
}

func TestFootprints(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(0, 0, 0, 0)

	tractor := cfg.TractorFootprint(s)
	test.That(t, tractor.Center().X, test.ShouldAlmostEqual, cfg.TractorCenterOffset, 1e-12)
	test.That(t, tractor.Center().Y, test.ShouldAlmostEqual, 0, 1e-12)

	trailer := cfg.TrailerFootprint(s)
	test.That(t, trailer.Center().X, test.ShouldAlmostEqual, -cfg.RearToHitch-cfg.TrailerCenterOffset, 1e-12)
	test.That(t, trailer.Center().Y, test.ShouldAlmostEqual, 0, 1e-12)

	hitch := cfg.HitchPoint(s)
	test.That(t, hitch.X, test.ShouldAlmostEqual, -cfg.RearToHitch, 1e-12)

	test.That(t, cfg.BoundingRadius(), test.ShouldAlmostEqual,
		math.Hypot(cfg.TrailerLength/2, cfg.TrailerWidth/2), 1e-12)
}

package vehicle

import (
	"math"

	"go.viam.com/trailerplan/obstacles"
	"go.viam.com/trailerplan/spatialmath"
)

// TractorFootprint returns the tractor body rectangle at the given state.
func (cfg *Config) TractorFootprint(s State) spatialmath.Rectangle {
	center := s.TractorPose().Compose(cfg.TractorCenterOffset, 0, 0)
	return spatialmath.NewRectangle(center, cfg.TractorLength, cfg.TractorWidth)
}

// TrailerFootprint returns the trailer body rectangle at the given state. The
// trailer hangs off the hitch point along the trailer heading.
func (cfg *Config) TrailerFootprint(s State) spatialmath.Rectangle {
	hitch := cfg.HitchPoint(s)
	sin, cos := math.Sincos(s.TrailerYaw)
	center := spatialmath.NewPose(
		hitch.X-cfg.TrailerCenterOffset*cos,
		hitch.Y-cfg.TrailerCenterOffset*sin,
		s.TrailerYaw,
	)
	return spatialmath.NewRectangle(center, cfg.TrailerLength, cfg.TrailerWidth)
}

// BoundingRadius returns a radius that covers either body rectangle from its
// own center: the larger of the two bodies' bounding radii.
func (cfg *Config) BoundingRadius() float64 {
	tractor := math.Hypot(cfg.TractorLength/2, cfg.TractorWidth/2)
	trailer := math.Hypot(cfg.TrailerLength/2, cfg.TrailerWidth/2)
	return math.Max(tractor, trailer)
}

// CollisionChecker tests rig states against a static obstacle index.
type CollisionChecker struct {
	cfg   *Config
	index *obstacles.Index
}

// NewCollisionChecker creates a checker for the given rig over the given
// obstacle index. The index may be empty.
func NewCollisionChecker(cfg *Config, index *obstacles.Index) *CollisionChecker {
	return &CollisionChecker{cfg: cfg, index: index}
}

// Check reports whether the state is feasible: within the jackknife limit and
// with both body rectangles clear of all obstacles.
func (c *CollisionChecker) Check(s State) bool {
	if math.Abs(s.Jackknife()) > c.cfg.MaxJackknife {
		return false
	}
	for _, body := range []spatialmath.Rectangle{c.cfg.TractorFootprint(s), c.cfg.TrailerFootprint(s)} {
		for _, pt := range c.index.WithinRadius(body.Center(), body.BoundingRadius()) {
			if body.ContainsPoint(pt) {
				return false
			}
		}
	}
	return true
}

// CheckPath reports whether every state in the sequence passes Check,
// returning at the first failure.
func (c *CollisionChecker) CheckPath(states []State) bool {
	for _, s := range states {
		if !c.Check(s) {
			return false
		}
	}
	return true
}

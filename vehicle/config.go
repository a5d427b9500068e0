// Package vehicle models a car towing a single trailer: its geometry, its
// kinematics, and collision checking of its footprint against a static
// obstacle set.
package vehicle

import (
	"math"

	"github.com/pkg/errors"
)

// Default tractor-trailer geometry, in meters and radians.
const (
	defaultWheelbase        = 3.7
	defaultTrailerWheelbase = 8.0
	defaultRearToHitch      = 0.5

	defaultTractorLength = 5.5
	defaultTractorWidth  = 2.6
	// distance from the rear axle to the tractor body center, along the heading
	defaultTractorCenterOffset = 1.75

	defaultTrailerLength = 10.0
	defaultTrailerWidth  = 2.6
	// distance from the hitch point back to the trailer body center
	defaultTrailerCenterOffset = 4.0

	defaultMaxSteer     = 0.6
	defaultMaxJackknife = math.Pi / 3
)

// Config holds the fixed geometric and kinematic parameters of a
// tractor-trailer. Distances are in meters, angles in radians.
type Config struct {
	// Wheelbase is the tractor front-to-rear axle distance.
	Wheelbase float64
	// TrailerWheelbase is the hitch-to-trailer-axle distance; it sets how
	// quickly the trailer heading converges to the tractor heading.
	TrailerWheelbase float64
	// RearToHitch is the distance from the tractor rear axle back to the
	// hitch point.
	RearToHitch float64

	TractorLength       float64
	TractorWidth        float64
	TractorCenterOffset float64

	TrailerLength       float64
	TrailerWidth        float64
	TrailerCenterOffset float64

	// MaxSteer is the steering angle limit of the front wheels.
	MaxSteer float64
	// MaxJackknife is the largest allowed angle between tractor and trailer
	// headings before the rig is considered mechanically infeasible.
	MaxJackknife float64
}

// DefaultConfig returns a Config for a typical semi-trailer rig.
func DefaultConfig() *Config {
	return &Config{
		Wheelbase:           defaultWheelbase,
		TrailerWheelbase:    defaultTrailerWheelbase,
		RearToHitch:         defaultRearToHitch,
		TractorLength:       defaultTractorLength,
		TractorWidth:        defaultTractorWidth,
		TractorCenterOffset: defaultTractorCenterOffset,
		TrailerLength:       defaultTrailerLength,
		TrailerWidth:        defaultTrailerWidth,
		TrailerCenterOffset: defaultTrailerCenterOffset,
		MaxSteer:            defaultMaxSteer,
		MaxJackknife:        defaultMaxJackknife,
	}
}

// Validate checks that the configuration describes a physically meaningful rig.
func (cfg *Config) Validate() error {
	switch {
	case cfg.Wheelbase <= 0:
		return errors.New("wheelbase must be positive")
	case cfg.TrailerWheelbase <= 0:
		return errors.New("trailer wheelbase must be positive")
	case cfg.RearToHitch < 0:
		return errors.New("rear-to-hitch distance must be non-negative")
	case cfg.TractorLength <= 0 || cfg.TractorWidth <= 0:
		return errors.New("tractor dimensions must be positive")
	case cfg.TrailerLength <= 0 || cfg.TrailerWidth <= 0:
		return errors.New("trailer dimensions must be positive")
	case cfg.MaxSteer <= 0 || cfg.MaxSteer >= math.Pi/2:
		return errors.New("max steer must be in (0, pi/2)")
	case cfg.MaxJackknife <= 0 || cfg.MaxJackknife > math.Pi:
		return errors.New("max jackknife must be in (0, pi]")
	}
	return nil
}

// MinTurningRadius returns the tractor's minimum turning radius at full steer.
func (cfg *Config) MinTurningRadius() float64 {
	return cfg.Wheelbase / math.Tan(cfg.MaxSteer)
}

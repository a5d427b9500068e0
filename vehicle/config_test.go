package vehicle

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	test.That(t, cfg.Validate(), test.ShouldBeNil)
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero wheelbase", func(c *Config) { c.Wheelbase = 0 }},
		{"negative trailer wheelbase", func(c *Config) { c.TrailerWheelbase = -1 }},
		{"negative rear to hitch", func(c *Config) { c.RearToHitch = -0.1 }},
		{"zero tractor width", func(c *Config) { c.TractorWidth = 0 }},
		{"zero trailer length", func(c *Config) { c.TrailerLength = 0 }},
		{"steer too large", func(c *Config) { c.MaxSteer = math.Pi / 2 }},
		{"zero steer", func(c *Config) { c.MaxSteer = 0 }},
		{"jackknife too large", func(c *Config) { c.MaxJackknife = math.Pi + 0.1 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultConfig()
			c.mutate(cfg)
			test.That(t, cfg.Validate(), test.ShouldNotBeNil)
		})
	}
}

func TestMinTurningRadius(t *testing.T) {
	cfg := &Config{Wheelbase: 2, MaxSteer: math.Pi / 4}
	test.That(t, cfg.MinTurningRadius(), test.ShouldAlmostEqual, 2, 1e-12)

	cfg = DefaultConfig()
	test.That(t, cfg.MinTurningRadius(), test.ShouldAlmostEqual, cfg.Wheelbase/math.Tan(cfg.MaxSteer), 1e-12)
}

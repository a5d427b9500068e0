package motionplan

import (
	"math"
	"testing"

	"go.viam.com/test"

	"go.viam.com/trailerplan/vehicle"
)

func TestKeyFor(t *testing.T) {
	o := newBasicPlannerOptions()
	o.xyRes = 2.0
	o.yawRes = math.Pi / 12

	test.That(t, o.keyFor(vehicle.NewState(0, 0, 0, 0)), test.ShouldResemble, nodeKey{0, 0, 0, 0})
	test.That(t, o.keyFor(vehicle.NewState(1.9, 0.1, 0, 0)), test.ShouldResemble, nodeKey{0, 0, 0, 0})
	test.That(t, o.keyFor(vehicle.NewState(2.0, 0, 0, 0)), test.ShouldResemble, nodeKey{1, 0, 0, 0})

	// floor division keeps negative coordinates on their own side of zero
	test.That(t, o.keyFor(vehicle.NewState(-0.1, -2.1, 0, 0)), test.ShouldResemble, nodeKey{-1, -2, 0, 0})
	test.That(t, o.keyFor(vehicle.NewState(0, 0, -0.01, 0.01)).iyawT, test.ShouldEqual, -1)
	test.That(t, o.keyFor(vehicle.NewState(0, 0, -0.01, 0.01)).iyawR, test.ShouldEqual, 0)

	// headings are wrapped before quantization
	a := o.keyFor(vehicle.State{TractorYaw: 0.1})
	b := o.keyFor(vehicle.State{TractorYaw: 0.1 + 2*math.Pi})
	test.That(t, a, test.ShouldResemble, b)
}

func TestNodeState(t *testing.T) {
	o := newBasicPlannerOptions()
	s := vehicle.NewState(1, 2, 0.3, 0.2)
	root := newRootNode(o.keyFor(s), s)
	test.That(t, root.isRoot, test.ShouldBeTrue)
	test.That(t, root.state(), test.ShouldResemble, s)
	test.That(t, root.arrivedForward(), test.ShouldBeTrue)

	n := &node{
		states:  []vehicle.State{s, vehicle.NewState(2, 2, 0.3, 0.2)},
		forward: []bool{false, false},
	}
	test.That(t, n.state().X, test.ShouldEqual, 2)
	test.That(t, n.arrivedForward(), test.ShouldBeFalse)
}

package motionplan

import (
	"testing"

	"go.viam.com/test"

	"go.viam.com/trailerplan/vehicle"
)

func TestPlanAccessors(t *testing.T) {
	plan := &Plan{}
	plan.appendState(vehicle.NewState(0, 0, 0, 0), true)
	plan.appendState(vehicle.NewState(3, 0, 0, 0), true)
	plan.appendState(vehicle.NewState(3, 4, 0, 0), true)

	test.That(t, plan.Len(), test.ShouldEqual, 3)
	test.That(t, plan.Length(), test.ShouldAlmostEqual, 7, 1e-12)
	test.That(t, plan.State(1).X, test.ShouldEqual, 3)
	test.That(t, plan.States(), test.ShouldHaveLength, 3)
}

func TestPlanReversed(t *testing.T) {
	plan := &Plan{}
	plan.appendState(vehicle.NewState(0, 0, 0, 0), true)
	plan.appendState(vehicle.NewState(1, 0, 0, 0), true)
	plan.appendState(vehicle.NewState(1.5, 0, 0, 0), false)

	rev := plan.Reversed()
	test.That(t, rev.Len(), test.ShouldEqual, 3)
	test.That(t, rev.State(0).X, test.ShouldEqual, 1.5)
	test.That(t, rev.State(2).X, test.ShouldEqual, 0)
	// the last step of the original was reverse, so the first of the flipped
	// plan is forward
	test.That(t, rev.Forward[1], test.ShouldBeTrue)
	test.That(t, rev.Forward[0], test.ShouldEqual, rev.Forward[1])
	test.That(t, rev.Forward[2], test.ShouldBeFalse)
	test.That(t, rev.Length(), test.ShouldAlmostEqual, plan.Length(), 1e-12)

	// flipping twice restores the original
	test.That(t, *rev.Reversed(), test.ShouldResemble, *plan)
}

func TestReconstructMissingParent(t *testing.T) {
	o := newBasicPlannerOptions()
	s := vehicle.NewState(0, 0, 0, 0)
	orphan := &node{
		key:     o.keyFor(s),
		states:  []vehicle.State{s},
		forward: []bool{true},
		parent:  nodeKey{ix: 99},
	}
	_, err := reconstruct(map[nodeKey]*node{}, orphan, nil)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestReconstructStitching(t *testing.T) {
	o := newBasicPlannerOptions()
	s0 := vehicle.NewState(0, 0, 0, 0)
	s1 := vehicle.NewState(1, 0, 0, 0)
	s2 := vehicle.NewState(2, 0, 0, 0)

	root := newRootNode(o.keyFor(s0), s0)
	child := &node{
		key:     o.keyFor(s2),
		states:  []vehicle.State{s0, s1, s2},
		forward: []bool{true, true, true},
		parent:  root.key,
	}
	closed := map[nodeKey]*node{root.key: root, child.key: child}

	seg := &analyticSegment{
		states:  []vehicle.State{s2, vehicle.NewState(3, 0, 0, 0)},
		forward: []bool{true, true},
	}
	plan, err := reconstruct(closed, child, seg)
	test.That(t, err, test.ShouldBeNil)
	// root sample, two edge samples with the duplicate dropped, one tail sample
	test.That(t, plan.Len(), test.ShouldEqual, 4)
	test.That(t, plan.X, test.ShouldResemble, []float64{0, 1, 2, 3})
}

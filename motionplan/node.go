package motionplan

import (
	"math"

	"go.viam.com/trailerplan/spatialmath"
	"go.viam.com/trailerplan/vehicle"
)

// nodeKey is the discrete identity of a search node: floor-divided position
// and headings. Two continuous states sharing a key are treated as the same
// node for open/closed membership.
type nodeKey struct {
	ix    int
	iy    int
	iyawT int
	iyawR int
}

func (o *plannerOptions) keyFor(s vehicle.State) nodeKey {
	return nodeKey{
		ix:    int(math.Floor(s.X / o.xyRes)),
		iy:    int(math.Floor(s.Y / o.xyRes)),
		iyawT: int(math.Floor(spatialmath.WrapToPi(s.TractorYaw) / o.yawRes)),
		iyawR: int(math.Floor(spatialmath.WrapToPi(s.TrailerYaw) / o.yawRes)),
	}
}

// node is a search record: the sampled states of the edge that reached it
// (the last sample is the node's own continuous state), per-sample direction
// flags, the edge's steering value, cost so far, and the parent key.
type node struct {
	key     nodeKey
	states  []vehicle.State
	forward []bool
	steer   float64
	cost    float64
	parent  nodeKey
	isRoot  bool
}

func newRootNode(key nodeKey, s vehicle.State) *node {
	return &node{
		key:     key,
		states:  []vehicle.State{s},
		forward: []bool{true},
		isRoot:  true,
	}
}

// state returns the node's continuous state, the final sample of its edge.
func (n *node) state() vehicle.State {
	return n.states[len(n.states)-1]
}

// arrivedForward returns the driving direction of the node's last micro-step.
func (n *node) arrivedForward() bool {
	return n.forward[len(n.forward)-1]
}

package motionplan

import (
	"container/heap"
	"testing"

	"go.viam.com/test"
)

func TestQueuePopOrder(t *testing.T) {
	q := &nodeQueue{}
	heap.Init(q)
	pushItem(q, nodeKey{ix: 1}, 5, 10, 1)
	pushItem(q, nodeKey{ix: 2}, 2, 3, 1)
	pushItem(q, nodeKey{ix: 3}, 8, 20, 1)

	first := heap.Pop(q).(*queueItem)
	test.That(t, first.key.ix, test.ShouldEqual, 2)
	second := heap.Pop(q).(*queueItem)
	test.That(t, second.key.ix, test.ShouldEqual, 1)
	third := heap.Pop(q).(*queueItem)
	test.That(t, third.key.ix, test.ShouldEqual, 3)
	test.That(t, q.Len(), test.ShouldEqual, 0)
}

func TestQueueTieBreakOnHeuristic(t *testing.T) {
	q := &nodeQueue{}
	heap.Init(q)
	// equal f, the entry nearer the goal pops first
	pushItem(q, nodeKey{ix: 1}, 6, 4, 1)
	pushItem(q, nodeKey{ix: 2}, 9, 1, 1)

	first := heap.Pop(q).(*queueItem)
	test.That(t, first.key.ix, test.ShouldEqual, 2)
}

func TestQueueWeightedF(t *testing.T) {
	q := &nodeQueue{}
	heap.Init(q)
	pushItem(q, nodeKey{ix: 1}, 1, 10, 2)
	test.That(t, (*q)[0].f, test.ShouldAlmostEqual, 21, 1e-12)
	test.That(t, (*q)[0].g, test.ShouldAlmostEqual, 1, 1e-12)
	test.That(t, (*q)[0].h, test.ShouldAlmostEqual, 10, 1e-12)
}

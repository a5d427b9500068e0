package motionplan

import "container/heap"

// queueItem is one priority queue entry. Entries are never updated in place;
// a re-inserted key leaves the old entry behind as stale, detected on pop by
// comparing g against the open set's best known cost.
type queueItem struct {
	key nodeKey
	g   float64
	h   float64
	f   float64
}

// nodeQueue is a min-heap on f, breaking ties toward smaller h so that pops
// prefer entries closer to the goal.
type nodeQueue []*queueItem

func (q nodeQueue) Len() int { return len(q) }

func (q nodeQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].h < q[j].h
}

func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *nodeQueue) Push(x interface{}) {
	*q = append(*q, x.(*queueItem))
}

func (q *nodeQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

func pushItem(q *nodeQueue, key nodeKey, g, h, weight float64) {
	heap.Push(q, &queueItem{key: key, g: g, h: h, f: g + weight*h})
}

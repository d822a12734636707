package search

import "github.com/YX-hueimie/geometric-solver/state"

// node is one entry in the open set: a partial path, the state it
// reaches, and its priority components.
type node struct {
	priority   float64
	tieBreaker int64
	g          int
	st         state.State
	path       []state.Step
}

// openHeap is a min-heap of *node ordered by (priority, tieBreaker),
// giving deterministic FIFO behavior among equal-priority nodes. This
// mirrors the lazy-decrease-key nodePQ used by this codebase's Dijkstra
// implementation: no fix-up on update, just push-and-ignore-stale.
type openHeap []*node

func (h openHeap) Len() int { return len(h) }

func (h openHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].tieBreaker < h[j].tieBreaker
}

func (h openHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *openHeap) Push(x interface{}) { *h = append(*h, x.(*node)) }

func (h *openHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}

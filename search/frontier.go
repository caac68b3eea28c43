package search

import (
	"container/heap"

	"github.com/dmarkou/flipsort/stack"
)

// node is one search-tree entry: a stack, its path cost, its stored
// heuristic value, and the combined extraction priority. Nodes are created
// once and never mutated; a better route to the same stack replaces the
// node wholesale so the parent chain always matches the cost it accompanies.
type node struct {
	stack    stack.Stack
	cost     int // flips from the initial stack
	heur     int // stored heuristic value (0 under UCS)
	priority int // cost + heur; the extraction key
	parent   *node
	seq      uint64 // frontier insertion order; FIFO tie-break
}

// path materializes the stacks from the root to n, inclusive.
// Costs increase by exactly one per level, so n.cost indexes n's own slot.
func (n *node) path() []stack.Stack {
	out := make([]stack.Stack, n.cost+1)
	for cur := n; cur != nil; cur = cur.parent {
		out[cur.cost] = cur.stack
	}

	return out
}

// frontier is the open set: a hash map keyed by canonical stack encoding
// holding the single live node per stack, plus a binary min-heap for
// lowest-priority extraction. Superseded heap entries are pruned lazily on
// pop, the same lazy-decrease-key pattern a Dijkstra heap uses, which keeps
// membership lookups O(1) and avoids linear scans on replacement.
type frontier struct {
	byKey map[string]*node
	heap  entryHeap
	seq   uint64
}

func newFrontier() *frontier {
	f := &frontier{byKey: make(map[string]*node)}
	heap.Init(&f.heap)

	return f
}

// lookup returns the live node for key, if any.
func (f *frontier) lookup(key string) (*node, bool) {
	n, ok := f.byKey[key]

	return n, ok
}

// push inserts n as the live node for key, replacing any resident node.
// The replaced node's heap entry stays behind and is skipped on pop.
func (f *frontier) push(key string, n *node) {
	n.seq = f.seq
	f.seq++
	f.byKey[key] = n
	heap.Push(&f.heap, entry{key: key, node: n})
}

// pop extracts the live node with the lowest priority (FIFO among equals),
// discarding stale heap entries along the way. Returns ok=false when the
// frontier is empty.
func (f *frontier) pop() (key string, n *node, ok bool) {
	for f.heap.Len() > 0 {
		e := heap.Pop(&f.heap).(entry)
		if cur, live := f.byKey[e.key]; live && cur == e.node {
			delete(f.byKey, e.key)

			return e.key, e.node, true
		}
		// stale entry for a node that was replaced; drop and continue
	}

	return "", nil, false
}

// entry pairs a map key with the node it was pushed for, so pop can detect
// entries invalidated by a later replacement.
type entry struct {
	key  string
	node *node
}

// entryHeap is a min-heap of frontier entries ordered by node priority
// ascending, ties broken by insertion sequence.
type entryHeap []entry

// Len returns the number of entries in the heap, stale ones included.
func (h entryHeap) Len() int { return len(h) }

// Less orders by priority, then FIFO by insertion sequence.
func (h entryHeap) Less(i, j int) bool {
	if h[i].node.priority != h[j].node.priority {
		return h[i].node.priority < h[j].node.priority
	}

	return h[i].node.seq < h[j].node.seq
}

// Swap swaps two entries in the heap.
func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new entry x onto the heap. Called by heap.Push.
func (h *entryHeap) Push(x interface{}) { *h = append(*h, x.(entry)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}

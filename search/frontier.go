package search

import (
	"container/heap"

	"github.com/warekit/warekit/grid"
)

// node is one explored or frontier state. Nodes live in a per-call
// arena and refer to their parent by arena index, so path
// reconstruction walks indices instead of chasing pointers.
type node struct {
	pos    grid.Position
	parent int32       // arena index of the generating node, noParent for the root
	action grid.Action // move that produced this node, "" for the root
	g      int         // accumulated cost from start (each move costs 1)
	f      int         // priority: g + h (h == 0 under UCS)
}

const noParent = int32(-1)

// arena owns every node generated during one search call. It is
// created fresh per invocation and discarded on return.
type arena struct {
	nodes []node
}

// add appends n and returns its stable index.
func (a *arena) add(n node) int32 {
	a.nodes = append(a.nodes, n)

	return int32(len(a.nodes) - 1)
}

// at returns the node stored at index i.
func (a *arena) at(i int32) node { return a.nodes[i] }

// path reconstructs the start→node position sequence by walking parent
// indices from i back to the root, then reversing.
// Invariant: for every node, len(path) == g + 1 (unit edge costs).
func (a *arena) path(i int32) []grid.Position {
	out := make([]grid.Position, 0, a.nodes[i].g+1)
	for j := i; j != noParent; j = a.nodes[j].parent {
		out = append(out, a.nodes[j].pos)
	}
	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}

	return out
}

// frontierItem pairs a node's priority with a monotonically assigned
// insertion sequence number. The sequence breaks priority ties in FIFO
// order, which makes repeated runs byte-for-byte reproducible and
// avoids any reliance on object identity.
type frontierItem struct {
	f    int
	seq  uint64
	node int32
}

// frontier is a min-heap of frontier items ordered by (f, seq).
// Like the teacherly lazy-decrease-key queue, improved entries are
// pushed as duplicates and stale ones filtered on pop by the caller.
type frontier struct {
	items []frontierItem
	seq   uint64
	peak  int
}

// push enqueues the node at index idx with priority f.
func (fr *frontier) push(f int, idx int32) {
	fr.seq++
	heap.Push((*frontierHeap)(&fr.items), frontierItem{f: f, seq: fr.seq, node: idx})
	if len(fr.items) > fr.peak {
		fr.peak = len(fr.items)
	}
}

// pop dequeues the lowest-priority entry.
func (fr *frontier) pop() frontierItem {
	return heap.Pop((*frontierHeap)(&fr.items)).(frontierItem)
}

// len returns the number of queued entries.
func (fr *frontier) len() int { return len(fr.items) }

// frontierHeap adapts the item slice to container/heap.
type frontierHeap []frontierItem

func (h frontierHeap) Len() int { return len(h) }

// Less orders by priority, then by insertion sequence (FIFO among ties).
func (h frontierHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}

	return h[i].seq < h[j].seq
}

func (h frontierHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds x; called by heap.Push, x must be a frontierItem.
func (h *frontierHeap) Push(x interface{}) { *h = append(*h, x.(frontierItem)) }

// Pop removes and returns the last element; called by heap.Pop.
func (h *frontierHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}

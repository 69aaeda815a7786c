package voxelstore

import "container/heap"

// OpenHeap is an addressable min-heap over *SearchNode, ordered by F
// ascending with ties broken by insertion order (stable). Each node
// records its own index so DecreaseKey can restore the heap invariant in
// O(log n) without removing and reinserting the node — the teacher's
// dijkstra package instead pushes a duplicate entry and relies on a
// visited-set to skip stale pops ("lazy decrease-key"); this engine needs
// genuine decrease-key so a live OPEN node's heap handle never goes stale,
// per invariant P4 (heap/store agreement).
type OpenHeap struct {
	items   []*SearchNode
	nextSeq int
}

// NewOpenHeap returns an empty, heap-initialized OpenHeap.
func NewOpenHeap() *OpenHeap {
	h := &OpenHeap{}
	heap.Init(h)
	return h
}

// Len implements heap.Interface.
func (h *OpenHeap) Len() int { return len(h.items) }

// Less implements heap.Interface: smaller F wins; ties go to the node
// inserted earlier (smaller seq), giving stable pop order.
func (h *OpenHeap) Less(i, j int) bool {
	if h.items[i].F != h.items[j].F {
		return h.items[i].F < h.items[j].F
	}
	return h.items[i].seq < h.items[j].seq
}

// Swap implements heap.Interface, keeping each node's heapIndex in sync.
func (h *OpenHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].heapIndex = i
	h.items[j].heapIndex = j
}

// Push implements heap.Interface. Use OpenHeap.Insert from outside this
// package; this method exists to satisfy container/heap.
func (h *OpenHeap) Push(x interface{}) {
	n := x.(*SearchNode)
	n.heapIndex = len(h.items)
	h.items = append(h.items, n)
}

// Pop implements heap.Interface. Use OpenHeap.PopMin from outside this
// package; this method exists to satisfy container/heap.
func (h *OpenHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.heapIndex = -1
	h.items = old[:n-1]
	return item
}

// Insert pushes n onto the heap, stamping it with the next insertion
// sequence number so ties break by arrival order. Complexity: O(log n).
func (h *OpenHeap) Insert(n *SearchNode) {
	n.seq = h.nextSeq
	h.nextSeq++
	heap.Push(h, n)
}

// PopMin removes and returns the node with the smallest F (ties broken by
// insertion order). Complexity: O(log n).
func (h *OpenHeap) PopMin() *SearchNode {
	return heap.Pop(h).(*SearchNode)
}

// DecreaseKey restores the heap invariant after n's F has been lowered
// in-place by the caller (typically via NodeStore.Update). Complexity:
// O(log n). Returns ErrNotOpen if n does not currently hold a heap handle.
func (h *OpenHeap) DecreaseKey(n *SearchNode) error {
	if n.heapIndex < 0 || n.heapIndex >= len(h.items) || h.items[n.heapIndex] != n {
		return ErrNotOpen
	}
	heap.Fix(h, n.heapIndex)
	return nil
}

// Peek returns the current minimum without removing it, or nil if empty.
func (h *OpenHeap) Peek() *SearchNode {
	if len(h.items) == 0 {
		return nil
	}
	return h.items[0]
}

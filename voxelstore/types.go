package voxelstore

import "errors"

// Sentinel errors for voxelstore operations.
var (
	// ErrNegativeCoord indicates a coordinate with a negative component was
	// used to index a store; stores are only ever indexed by in-bounds
	// voxel coordinates, so this signals a programmer error upstream.
	ErrNegativeCoord = errors.New("voxelstore: coordinate components must be non-negative")

	// ErrNotOpen indicates DecreaseKey was attempted on a node that does
	// not currently hold a live heap handle.
	ErrNotOpen = errors.New("voxelstore: node is not OPEN")

	// ErrCyclicPredecessors indicates a predecessor chain that loops back on
	// itself, violating the forest-of-in-trees invariant (I-data-model).
	ErrCyclicPredecessors = errors.New("voxelstore: predecessor chain contains a cycle")
)

// Status is the lifecycle state of a SearchNode. A node transitions
// Free -> Open* -> Closed*; CLOSED nodes may return to OPEN only when a
// cheaper path is found through a non-admissible (filtered-image) cost
// surface, per the Search Engine's relaxation rule.
type Status int

const (
	// Free means the voxel has never been touched by this side's search;
	// it has no entry in the NodeStore.
	Free Status = iota
	// OpenFromStart means the node is in the start-side open heap.
	OpenFromStart
	// ClosedFromStart means the node's g is finalized on the start side.
	ClosedFromStart
	// OpenFromGoal means the node is in the goal-side open heap.
	OpenFromGoal
	// ClosedFromGoal means the node's g is finalized on the goal side.
	ClosedFromGoal
)

// String renders a Status for logging/debugging.
func (s Status) String() string {
	switch s {
	case Free:
		return "FREE"
	case OpenFromStart:
		return "OPEN_FROM_START"
	case ClosedFromStart:
		return "CLOSED_FROM_START"
	case OpenFromGoal:
		return "OPEN_FROM_GOAL"
	case ClosedFromGoal:
		return "CLOSED_FROM_GOAL"
	default:
		return "UNKNOWN"
	}
}

// Open reports whether s is one of the OPEN_FROM_* states.
func (s Status) Open() bool { return s == OpenFromStart || s == OpenFromGoal }

// Closed reports whether s is one of the CLOSED_FROM_* states.
func (s Status) Closed() bool { return s == ClosedFromStart || s == ClosedFromGoal }

// SearchNode is a single voxel's search bookkeeping on one side of a
// search: its cost-so-far g, heuristic h, cached f=g+h, predecessor link,
// lifecycle status, and (while OPEN) its live heap index.
//
// Ownership: a SearchNode is owned by exactly one side's NodeStore.
// Pred is a back-reference into the same side's store, never an owner;
// predecessor links form a forest of in-trees rooted at that side's origin.
type SearchNode struct {
	X, Y, Z int
	G, H, F float64
	Pred    *SearchNode
	Status  Status

	heapIndex int // position in the owning heap; -1 when not OPEN
	seq       int // insertion sequence, used to break ties in heap ordering
}

// HeapIndex reports the node's current index in its owning heap, or -1 if
// the node does not hold a live heap handle (i.e. is not OPEN).
func (n *SearchNode) HeapIndex() int { return n.heapIndex }

// recomputeF refreshes F from the current G and H. Callers mutate G/H
// directly then call this before any heap operation, matching invariant
// I3 ("f is recomputed on every relaxation").
func (n *SearchNode) recomputeF() { n.F = n.G + n.H }

package voxelstore

import "testing"

func TestNodeStore_InsertAndGet(t *testing.T) {
	s := NewNodeStore(4)
	n := s.Insert(1, 2, 3, 5.0, 1.5, nil, OpenFromStart)
	if n.F != 6.5 {
		t.Fatalf("F = %g, want 6.5", n.F)
	}
	got, ok := s.Get(1, 2, 3)
	if !ok || got != n {
		t.Fatalf("Get did not return the inserted node")
	}
	if _, ok := s.Get(1, 2, 0); ok {
		t.Fatal("expected miss on untouched slice")
	}
	if st := s.Stats(); st.Open != 1 || st.Closed != 0 {
		t.Fatalf("Stats = %+v, want Open=1 Closed=0", st)
	}
}

func TestNodeStore_MarkClosedUpdatesStats(t *testing.T) {
	s := NewNodeStore(1)
	n := s.Insert(0, 0, 0, 0, 0, nil, OpenFromStart)
	s.MarkClosed(n, ClosedFromStart)
	if n.Status != ClosedFromStart {
		t.Fatalf("Status = %v, want CLOSED_FROM_START", n.Status)
	}
	if n.HeapIndex() != -1 {
		t.Fatal("closed node must not retain a heap handle")
	}
	if st := s.Stats(); st.Open != 0 || st.Closed != 1 {
		t.Fatalf("Stats = %+v, want Open=0 Closed=1", st)
	}
}

func TestOpenHeap_PopOrderIsMonotoneByF(t *testing.T) {
	h := NewOpenHeap()
	store := NewNodeStore(1)
	f := []float64{5, 1, 3, 1, 2}
	for i, fv := range f {
		n := store.Insert(i, 0, 0, fv, 0, nil, OpenFromStart)
		h.Insert(n)
	}
	var last float64 = -1
	for h.Len() > 0 {
		n := h.PopMin()
		if n.F < last {
			t.Fatalf("pop order not monotone: got %g after %g", n.F, last)
		}
		last = n.F
	}
}

func TestOpenHeap_DecreaseKey(t *testing.T) {
	h := NewOpenHeap()
	store := NewNodeStore(1)
	a := store.Insert(0, 0, 0, 10, 0, nil, OpenFromStart)
	b := store.Insert(1, 0, 0, 5, 0, nil, OpenFromStart)
	h.Insert(a)
	h.Insert(b)
	if h.Peek() != b {
		t.Fatal("expected b to be the current minimum")
	}
	store.Update(a, 1, 0, nil)
	if err := h.DecreaseKey(a); err != nil {
		t.Fatalf("DecreaseKey: %v", err)
	}
	if h.Peek() != a {
		t.Fatal("expected a to become the minimum after DecreaseKey")
	}
}

func TestNodeStore_RangeVisitsEveryInsertedNode(t *testing.T) {
	s := NewNodeStore(2)
	s.Insert(0, 0, 0, 1, 0, nil, OpenFromStart)
	s.Insert(1, 1, 1, 2, 0, nil, OpenFromStart)
	seen := make(map[[3]int]bool)
	s.Range(func(n *SearchNode) { seen[[3]int{n.X, n.Y, n.Z}] = true })
	if len(seen) != 2 || !seen[[3]int{0, 0, 0}] || !seen[[3]int{1, 1, 1}] {
		t.Fatalf("Range visited %v, want both inserted nodes", seen)
	}
	if s.Depth() != 2 {
		t.Fatalf("Depth() = %d, want 2", s.Depth())
	}
}

func TestWalkPredecessors_DetectsCycle(t *testing.T) {
	a := &SearchNode{X: 0}
	b := &SearchNode{X: 1}
	a.Pred = b
	b.Pred = a // cycle
	if _, err := WalkPredecessors(a); err != ErrCyclicPredecessors {
		t.Fatalf("expected ErrCyclicPredecessors, got %v", err)
	}
}

func TestWalkPredecessors_RootToLeafOrder(t *testing.T) {
	root := &SearchNode{X: 0}
	mid := &SearchNode{X: 1, Pred: root}
	leaf := &SearchNode{X: 2, Pred: mid}
	chain, err := WalkPredecessors(leaf)
	if err != nil {
		t.Fatalf("WalkPredecessors: %v", err)
	}
	if len(chain) != 3 || chain[0] != root || chain[2] != leaf {
		t.Fatalf("unexpected chain order: %+v", chain)
	}
}

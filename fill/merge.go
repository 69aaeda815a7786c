package fill

import "github.com/morphonets/snt-trace/voxelstore"

// Merge combines several completed fills' node stores into one, keeping
// the lower-G node at every voxel more than one store claims, per the
// spec's "merges concurrent fills' node stores, choosing the lower-cost
// node on collision." Merge is meant to run after each input fill has
// finished (Run returned), so every merged entry is recorded CLOSED
// regardless of its originating side — there is no heap backing the
// result, so an OPEN status here would be meaningless.
func Merge(depth int, stores ...*voxelstore.NodeStore) *voxelstore.NodeStore {
	merged := voxelstore.NewNodeStore(depth)
	for _, s := range stores {
		if s == nil {
			continue
		}
		s.Range(func(n *voxelstore.SearchNode) {
			existing, ok := merged.Get(n.X, n.Y, n.Z)
			if !ok {
				node := merged.Insert(n.X, n.Y, n.Z, n.G, n.H, n.Pred, voxelstore.OpenFromStart)
				merged.MarkClosed(node, voxelstore.ClosedFromStart)
				return
			}
			if n.G < existing.G {
				merged.Update(existing, n.G, n.H, n.Pred)
			}
		})
	}
	return merged
}

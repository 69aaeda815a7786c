// Package search implements the core {unidirectional, bidirectional} x
// {A*, Dijkstra-bounded} voxel search engine: a cooperative,
// single-worker-thread main loop popping minimum-f SearchNodes from one
// or two voxelstore stores, relaxing their 26- (or 8-, for 2D volumes)
// connected neighbourhood, and emitting the path's physical-coordinate
// points (see Point) on success.
//
// The main loop is grounded on the teacher's bfs package: a small
// mutable "runner" struct (here, Engine) owns all search state, and a
// deadline/cancellation token is polled at the top of the loop once
// every pollEvery iterations, the way bfs's WithContext-supplied
// context.Context is checked at the top of its own loop; it is not
// checked between neighbour relaxations. Configuration
// is a single validated Config struct rather than bfs's functional
// Option chain, since every field here is mandatory (a volume, a cost
// function, a start point) rather than an open set of optional hooks.
// The priority-queue relaxation rules (lazy vs. true decrease-key, stale
// entries, early termination on a distance bound) are grounded on the
// teacher's dijkstra package, generalized from string vertex IDs to
// physical-distance-weighted voxel coordinates and from a single-source
// frontier to one or two simultaneous frontiers.
package search

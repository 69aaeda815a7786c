// Package tracepath models the Path/Tree object boundary the search and
// fill engines emit into: an ordered polyline of physical 3D points
// (Path), and an arena of Paths linked into a tree by integer indices
// rather than parent/child pointers.
//
// The index-based linking follows the spec's Design Notes guidance on
// representing a cyclic object graph (Path<->parent, node<->startJoins)
// without owning pointers: a Tree holds a single slice of Paths, and
// parent/join-point references are plain PathID/point-index pairs, so a
// Tree can be copied, serialized, or torn down without walking a pointer
// graph. Nothing here is grounded in a single teacher file — the
// teacher's core.Graph models vertices/edges, not an indexed polyline
// forest — so this package's shape comes directly from the spec's own
// Design Notes rather than an adapted teacher type.
package tracepath

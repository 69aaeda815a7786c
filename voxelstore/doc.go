// Package voxelstore implements the per-side bookkeeping shared by every
// search mode: a SearchNode tuple, a NodeStore keyed by voxel coordinate,
// and an addressable min-heap ordered by f = g + h.
//
// A NodeStore is a length-D array of per-slice sparse maps (x,y) ->
// *SearchNode; slices are allocated lazily on first write so a search over
// a sparse region of a large volume only pays for the slices it touches.
// A voxel is present in a store if and only if its status is not Free.
//
// The heap is addressable: each *SearchNode records its own heap index, so
// the search engine can call DecreaseKey on a live OPEN node in O(log n)
// instead of pushing a duplicate entry, matching the addressable-heap
// design this engine relies on for invariant P4 (heap/store agreement).
package voxelstore

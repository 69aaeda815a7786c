// Package costfn maps a voxel's scalar value to a per-voxel movement cost
// consumed by the search engine, with a guaranteed strictly-positive lower
// bound used to scale the A* heuristic.
//
// The variants mirror the teacher's builder.WeightFn family (a function of
// configurable parameters producing a number with a documented, panicking
// validation of its inputs) but operate on voxel intensity rather than
// edge weight: Reciprocal (the default), MaxScaling (a caller-tunable
// reciprocal with an explicit ceiling in place of the legacy zero-cost
// fudge), and a Frangi/probabilistic variant driven by the z-score of a
// vesselness response against its own volume statistics.
package costfn

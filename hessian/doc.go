// Package hessian derives tubeness and Frangi vesselness response
// volumes from a source Volume at one or more Gaussian scales.
//
// The pipeline mirrors the teacher's matrix/ops Jacobi eigensolver
// (adapted here to fixed 2x2/3x3 symmetric matrices, since every Hessian
// is tiny and per-voxel) wired into a block-tiled, worker-pool-driven
// convolution-and-reduce loop: Gaussian blur, gradient, Hessian,
// eigenvalues, filter response, reduced across scales and blocks by a
// per-voxel maximum. The block x scale outer loop is sequential; the
// per-block inner loop is data-parallel over a fixed worker pool, the
// only place in this module that uses concurrency deliberately (every
// other package here is single-threaded by design).
package hessian

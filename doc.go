// Package snttrace is a semi-automated neuron tracing engine: a family of
// shortest-path searches over a 3D (or 2D) scalar volume that connect
// user-supplied anchor points along tubular structures.
//
// 🚀 What is snttrace?
//
//	A dependency-light toolkit (each search or fill runs on a single
//	goroutine; only read-only volumes are shared) that brings together:
//
//	  • Volume access: a read-only scalar volume with per-axis spacing
//	  • Hessian filtering: tubeness / Frangi vesselness as a cost landscape
//	  • Search: bidirectional / unidirectional A* and Dijkstra-bounded fills
//	  • Fill: flood expansion of a computed path into a connected region
//
// Under the hood, everything is organized into focused subpackages:
//
//	volume/     — Volume interface, calibration, dense in-memory volumes
//	hessian/    — block-tiled tubeness / Frangi vesselness filter engine
//	costfn/     — voxel value → movement cost mappings
//	voxelstore/ — per-slice sparse SearchNode stores + addressable heap
//	search/     — the cooperative, single-worker search engine
//	fill/       — Dijkstra flood fill, merge, and rasterization
//	tracepath/  — the Path/Tree object model exchanged with callers
//	progress/   — progress events, thread status, cancellation tokens
//	fixtures/   — deterministic synthetic volumes for tests and examples
//
// The GUI, persistence (SWC / .traces), tree analysis, and image-model
// adapters that surround this engine in the full application are outside
// this module's scope; it assumes only a readable scalar volume with a
// per-axis pixel spacing.
package snttrace

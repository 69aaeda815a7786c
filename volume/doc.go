// Package volume defines the read-only scalar-volume contract consumed by
// the rest of the tracing engine, plus a dense in-memory implementation.
//
// A Volume exposes voxel dimensions (W,H,D), physical per-axis spacing
// (sx,sy,sz), a unit label, a uniform value(x,y,z) accessor, and a bit
// depth. A 2D image presents as D=1 and returns the same value for any z.
//
// Neighbor enumeration is 26-connected in 3D (D>1) and 8-connected in 2D
// (D==1); NeighborOffsets reports the correct set for a given volume so
// callers never have to special-case dimensionality themselves.
package volume

package tracepath

import "errors"

// Sentinel errors for Path/Tree construction.
var (
	// ErrEmptyPath indicates a Path was built from zero points.
	ErrEmptyPath = errors.New("tracepath: path must contain at least one point")
	// ErrUnknownPath indicates a PathID not present in a Tree's arena.
	ErrUnknownPath = errors.New("tracepath: unknown path id")
	// ErrJoinOutOfRange indicates a join index outside the parent
	// path's point range.
	ErrJoinOutOfRange = errors.New("tracepath: join index out of range")
)

// SWCType mirrors the small integer type tag the SWC format assigns to
// each traced point (soma, axon, dendrite, ...); the core only carries
// it through, it never interprets the value.
type SWCType int

// Common SWC type tags, per the format's long-standing convention.
const (
	SWCUndefined SWCType = 0
	SWCSoma      SWCType = 1
	SWCAxon      SWCType = 2
	SWCDendrite  SWCType = 3
	SWCApical    SWCType = 4
)

// Point is one vertex of a Path: a physical-coordinate 3D position with
// an optional radius and SWC type tag.
type Point struct {
	X, Y, Z float64
	Radius  float64
	Type    SWCType
}

// PathID identifies a Path within a Tree's arena. IDs are assigned from
// 0 in insertion order; NoParent is used for root paths.
type PathID int

// NoParent is the PathID used for a Path with no parent in a Tree.
const NoParent PathID = -1

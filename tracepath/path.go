package tracepath

import "github.com/morphonets/snt-trace/volume"

// Path is an immutable ordered polyline of physical 3D points, created
// once a search succeeds or a fill is converted to a tree. Callers
// receive a Path by value from NewPath/NewPathFromVoxels; Points()
// returns a copy, so mutating it never changes the Path.
type Path struct {
	points []Point
}

// NewPath wraps points as an immutable Path. Returns ErrEmptyPath if
// points is empty.
func NewPath(points []Point) (Path, error) {
	if len(points) == 0 {
		return Path{}, ErrEmptyPath
	}
	cp := make([]Point, len(points))
	copy(cp, points)
	return Path{points: cp}, nil
}

// NewPathFromVoxels converts an ordered chain of integer voxel
// coordinates to a Path in physical coordinates, by multiplying each
// axis by the volume's calibration spacing.
func NewPathFromVoxels(voxels [][3]int, cal volume.Calibration) (Path, error) {
	if len(voxels) == 0 {
		return Path{}, ErrEmptyPath
	}
	points := make([]Point, len(voxels))
	for i, v := range voxels {
		points[i] = Point{
			X: float64(v[0]) * cal.SX,
			Y: float64(v[1]) * cal.SY,
			Z: float64(v[2]) * cal.SZ,
		}
	}
	return Path{points: points}, nil
}

// Points returns a defensive copy of the path's points, in order.
func (p Path) Points() []Point {
	cp := make([]Point, len(p.points))
	copy(cp, p.points)
	return cp
}

// Len returns the number of points in the path.
func (p Path) Len() int { return len(p.points) }

// First and Last return the path's endpoints. Both panic if the path is
// the zero value (Len()==0); callers only ever hold a Path constructed
// through NewPath/NewPathFromVoxels, which guarantee at least one point.
func (p Path) First() Point { return p.points[0] }
func (p Path) Last() Point  { return p.points[len(p.points)-1] }

// Reversed returns a new Path with points in the opposite order.
func (p Path) Reversed() Path {
	out := make([]Point, len(p.points))
	for i, pt := range p.points {
		out[len(p.points)-1-i] = pt
	}
	return Path{points: out}
}

// Concat returns a new Path containing p's points followed by other's,
// used to join a bidirectional search's two chains at their meeting
// point. If p's last point and other's first point coincide, the
// duplicate is dropped.
func (p Path) Concat(other Path) Path {
	if len(other.points) == 0 {
		return p
	}
	start := 0
	if len(p.points) > 0 && samePoint(p.Last(), other.points[0]) {
		start = 1
	}
	out := make([]Point, 0, len(p.points)+len(other.points)-start)
	out = append(out, p.points...)
	out = append(out, other.points[start:]...)
	return Path{points: out}
}

func samePoint(a, b Point) bool {
	return a.X == b.X && a.Y == b.Y && a.Z == b.Z
}

// Tree is an arena of Paths linked by index: each entry's parent is
// either NoParent (a root) or another entry's PathID, with joinIndex
// naming the point in the parent where this path branches off. A Tree
// never holds parent/child pointers, only integer indices, so it can be
// copied or torn down without walking a pointer graph.
type Tree struct {
	paths     []Path
	parent    []PathID
	joinIndex []int
}

// NewTree returns an empty Tree.
func NewTree() *Tree {
	return &Tree{}
}

// AddPath appends path to the arena under the given parent (NoParent for
// a root) and returns its new PathID. joinIndex is ignored for a root
// path; otherwise it must be a valid index into the parent path's
// points.
func (t *Tree) AddPath(path Path, parent PathID, joinIndex int) (PathID, error) {
	if parent != NoParent {
		if int(parent) < 0 || int(parent) >= len(t.paths) {
			return 0, ErrUnknownPath
		}
		if joinIndex < 0 || joinIndex >= t.paths[parent].Len() {
			return 0, ErrJoinOutOfRange
		}
	}
	id := PathID(len(t.paths))
	t.paths = append(t.paths, path)
	t.parent = append(t.parent, parent)
	t.joinIndex = append(t.joinIndex, joinIndex)
	return id, nil
}

// Path returns the path stored at id.
func (t *Tree) Path(id PathID) (Path, error) {
	if int(id) < 0 || int(id) >= len(t.paths) {
		return Path{}, ErrUnknownPath
	}
	return t.paths[id], nil
}

// Parent returns id's parent PathID (NoParent if id is a root) and the
// point index in the parent where id branches off.
func (t *Tree) Parent(id PathID) (parent PathID, joinIndex int, err error) {
	if int(id) < 0 || int(id) >= len(t.paths) {
		return 0, 0, ErrUnknownPath
	}
	return t.parent[id], t.joinIndex[id], nil
}

// Children returns the PathIDs whose parent is id.
func (t *Tree) Children(id PathID) []PathID {
	var out []PathID
	for i, p := range t.parent {
		if p == id {
			out = append(out, PathID(i))
		}
	}
	return out
}

// Roots returns the PathIDs with no parent.
func (t *Tree) Roots() []PathID {
	var out []PathID
	for i, p := range t.parent {
		if p == NoParent {
			out = append(out, PathID(i))
		}
	}
	return out
}

// Len returns the number of paths in the arena.
func (t *Tree) Len() int { return len(t.paths) }

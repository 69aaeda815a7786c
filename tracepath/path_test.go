package tracepath

import (
	"testing"

	"github.com/morphonets/snt-trace/volume"
)

func TestNewPath_RejectsEmpty(t *testing.T) {
	if _, err := NewPath(nil); err != ErrEmptyPath {
		t.Fatalf("expected ErrEmptyPath, got %v", err)
	}
}

func TestNewPathFromVoxels_ScalesBySpacing(t *testing.T) {
	cal := volume.Calibration{SX: 0.5, SY: 0.5, SZ: 2, Unit: "um"}
	p, err := NewPathFromVoxels([][3]int{{0, 0, 0}, {2, 4, 1}}, cal)
	if err != nil {
		t.Fatalf("NewPathFromVoxels: %v", err)
	}
	last := p.Last()
	if last.X != 1 || last.Y != 2 || last.Z != 2 {
		t.Fatalf("last point = %+v, want {1 2 2}", last)
	}
}

func TestPath_ReversedAndConcat(t *testing.T) {
	cal := volume.Calibration{SX: 1, SY: 1, SZ: 1, Unit: "px"}
	a, _ := NewPathFromVoxels([][3]int{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}, cal)
	b, _ := NewPathFromVoxels([][3]int{{4, 0, 0}, {3, 0, 0}, {2, 0, 0}}, cal)

	joined := a.Concat(b.Reversed())
	if joined.Len() != 5 {
		t.Fatalf("joined.Len() = %d, want 5 (duplicate meeting point dropped)", joined.Len())
	}
	if joined.Last().X != 4 {
		t.Fatalf("joined.Last().X = %g, want 4", joined.Last().X)
	}
}

func TestTree_AddPathAndWalk(t *testing.T) {
	tree := NewTree()
	cal := volume.Calibration{SX: 1, SY: 1, SZ: 1, Unit: "px"}
	root, _ := NewPathFromVoxels([][3]int{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}, cal)
	rootID, err := tree.AddPath(root, NoParent, 0)
	if err != nil {
		t.Fatalf("AddPath root: %v", err)
	}
	branch, _ := NewPathFromVoxels([][3]int{{1, 0, 0}, {1, 1, 0}}, cal)
	branchID, err := tree.AddPath(branch, rootID, 1)
	if err != nil {
		t.Fatalf("AddPath branch: %v", err)
	}

	roots := tree.Roots()
	if len(roots) != 1 || roots[0] != rootID {
		t.Fatalf("Roots() = %v, want [%v]", roots, rootID)
	}
	children := tree.Children(rootID)
	if len(children) != 1 || children[0] != branchID {
		t.Fatalf("Children(root) = %v, want [%v]", children, branchID)
	}
	parent, joinIdx, err := tree.Parent(branchID)
	if err != nil || parent != rootID || joinIdx != 1 {
		t.Fatalf("Parent(branch) = (%v,%d,%v), want (%v,1,nil)", parent, joinIdx, err, rootID)
	}
}

func TestTree_RejectsOutOfRangeJoin(t *testing.T) {
	tree := NewTree()
	cal := volume.Calibration{SX: 1, SY: 1, SZ: 1, Unit: "px"}
	root, _ := NewPathFromVoxels([][3]int{{0, 0, 0}}, cal)
	rootID, _ := tree.AddPath(root, NoParent, 0)
	branch, _ := NewPathFromVoxels([][3]int{{0, 0, 0}, {1, 0, 0}}, cal)
	if _, err := tree.AddPath(branch, rootID, 5); err != ErrJoinOutOfRange {
		t.Fatalf("expected ErrJoinOutOfRange, got %v", err)
	}
}

package search

import (
	"testing"

	"github.com/morphonets/snt-trace/costfn"
	"github.com/morphonets/snt-trace/progress"
	"github.com/morphonets/snt-trace/volume"
)

func uniformPlane(w, h int, bright float64) [][]float64 {
	plane := make([][]float64, h)
	for y := range plane {
		row := make([]float64, w)
		for x := range row {
			row[x] = bright
		}
		plane[y] = row
	}
	return plane
}

func mustReciprocal(t *testing.T) *costfn.Reciprocal {
	t.Helper()
	cf, err := costfn.NewReciprocal(volume.EightBit, 0, 0)
	if err != nil {
		t.Fatalf("NewReciprocal: %v", err)
	}
	return cf
}

func TestEngine_StraightLineUniformCost(t *testing.T) {
	plane := uniformPlane(20, 20, 200)
	vol, err := volume.NewDense2D(plane, volume.Calibration{SX: 1, SY: 1, SZ: 1, Unit: "px"}, volume.EightBit)
	if err != nil {
		t.Fatalf("NewDense2D: %v", err)
	}
	eng, err := NewEngine(Config{
		Volume:      vol,
		CostFn:      mustReciprocal(t),
		DefinedGoal: true,
		Start:       [3]int{0, 0, 0},
		Goal:        [3]int{10, 0, 0},
	})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	res := eng.Run()
	if res.Reason != progress.Success {
		t.Fatalf("Reason = %v, want Success", res.Reason)
	}
	if len(res.Path) == 0 {
		t.Fatal("expected a non-empty path")
	}
	first, last := res.Path[0], res.Path[len(res.Path)-1]
	if first.X != 0 || first.Y != 0 {
		t.Fatalf("path does not start at start: %+v", first)
	}
	if last.X != 10 || last.Y != 0 {
		t.Fatalf("path does not end at goal: %+v", last)
	}
}

func TestEngine_LShapedBrightTube(t *testing.T) {
	plane := uniformPlane(16, 16, 10)
	// Bright L-shaped tube: along y=8 from x=0..8, then along x=8 from y=0..8.
	for x := 0; x <= 8; x++ {
		plane[8][x] = 220
	}
	for y := 0; y <= 8; y++ {
		plane[y][8] = 220
	}
	vol, err := volume.NewDense2D(plane, volume.Calibration{SX: 1, SY: 1, SZ: 1, Unit: "px"}, volume.EightBit)
	if err != nil {
		t.Fatalf("NewDense2D: %v", err)
	}
	eng, err := NewEngine(Config{
		Volume:      vol,
		CostFn:      mustReciprocal(t),
		DefinedGoal: true,
		Start:       [3]int{0, 8, 0},
		Goal:        [3]int{8, 0, 0},
	})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	res := eng.Run()
	if res.Reason != progress.Success {
		t.Fatalf("Reason = %v, want Success", res.Reason)
	}
	for _, pt := range res.Path {
		onTube := (pt.Y == 8 && pt.X <= 8) || (pt.X == 8 && pt.Y <= 8)
		if !onTube {
			t.Fatalf("path point %+v left the bright tube", pt)
		}
	}
}

func TestEngine_BarrierForcesDetour(t *testing.T) {
	plane := uniformPlane(12, 12, 200)
	// A near-impassable vertical wall at x=6, with a single gap at y=10.
	for y := 0; y < 12; y++ {
		if y != 10 {
			plane[y][6] = 1
		}
	}
	vol, err := volume.NewDense2D(plane, volume.Calibration{SX: 1, SY: 1, SZ: 1, Unit: "px"}, volume.EightBit)
	if err != nil {
		t.Fatalf("NewDense2D: %v", err)
	}
	eng, err := NewEngine(Config{
		Volume:      vol,
		CostFn:      mustReciprocal(t),
		DefinedGoal: true,
		Start:       [3]int{0, 0, 0},
		Goal:        [3]int{11, 0, 0},
	})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	res := eng.Run()
	if res.Reason != progress.Success {
		t.Fatalf("Reason = %v, want Success", res.Reason)
	}
	crossedAtGap := false
	for _, pt := range res.Path {
		if pt.X == 6 && pt.Y == 10 {
			crossedAtGap = true
		}
	}
	if !crossedAtGap {
		t.Fatal("expected path to cross the wall through its single gap")
	}
}

func TestEngine_BidirectionalMeetsInMiddle(t *testing.T) {
	plane := uniformPlane(20, 20, 200)
	vol, err := volume.NewDense2D(plane, volume.Calibration{SX: 1, SY: 1, SZ: 1, Unit: "px"}, volume.EightBit)
	if err != nil {
		t.Fatalf("NewDense2D: %v", err)
	}
	eng, err := NewEngine(Config{
		Volume:        vol,
		CostFn:        mustReciprocal(t),
		DefinedGoal:   true,
		Bidirectional: true,
		Start:         [3]int{0, 0, 0},
		Goal:          [3]int{18, 0, 0},
	})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	res := eng.Run()
	if res.Reason != progress.Success {
		t.Fatalf("Reason = %v, want Success", res.Reason)
	}
	first, last := res.Path[0], res.Path[len(res.Path)-1]
	if first.X != 0 || last.X != 18 {
		t.Fatalf("path endpoints = (%+v,%+v), want start/goal", first, last)
	}
	if res.Stats.GoalOpen+res.Stats.GoalClosed == 0 {
		t.Fatal("expected goal-side store to have been used")
	}
}

func TestEngine_RejectsStartEqualsGoal(t *testing.T) {
	plane := uniformPlane(4, 4, 100)
	vol, _ := volume.NewDense2D(plane, volume.Calibration{SX: 1, SY: 1, SZ: 1, Unit: "px"}, volume.EightBit)
	_, err := NewEngine(Config{
		Volume: vol, CostFn: mustReciprocal(t), DefinedGoal: true,
		Start: [3]int{1, 1, 0}, Goal: [3]int{1, 1, 0},
	})
	if err != ErrStartEqualsGoal {
		t.Fatalf("expected ErrStartEqualsGoal, got %v", err)
	}
}

func TestEngine_DijkstraFillRespectsDrawThreshold(t *testing.T) {
	plane := uniformPlane(30, 30, 200)
	vol, err := volume.NewDense2D(plane, volume.Calibration{SX: 1, SY: 1, SZ: 1, Unit: "px"}, volume.EightBit)
	if err != nil {
		t.Fatalf("NewDense2D: %v", err)
	}
	eng, err := NewEngine(Config{
		Volume:        vol,
		CostFn:        mustReciprocal(t),
		DefinedGoal:   false,
		Start:         [3]int{15, 15, 0},
		DrawThreshold: 0.02,
	})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	res := eng.Run()
	if res.Reason != progress.Success {
		t.Fatalf("Reason = %v, want Success", res.Reason)
	}
	if res.Stats.StartClosed == 0 {
		t.Fatal("expected at least the seed voxel to close")
	}
	if res.Stats.StartClosed >= 30*30 {
		t.Fatal("expected the threshold to bound the fill well below the full volume")
	}
}

package costfn

import (
	"math"
	"testing"

	"github.com/morphonets/snt-trace/volume"
)

func TestReciprocal_EightBitBrightestIsCheapest(t *testing.T) {
	r, err := NewReciprocal(volume.EightBit, 0, 0)
	if err != nil {
		t.Fatalf("NewReciprocal: %v", err)
	}
	bright := r.CostMovingTo(255)
	dim := r.CostMovingTo(1)
	if bright >= dim {
		t.Fatalf("expected brighter voxel to cost less: bright=%g dim=%g", bright, dim)
	}
	if bright < r.MinCostPerUnitDistance() {
		t.Fatalf("cost %g fell below MinCostPerUnitDistance %g", bright, r.MinCostPerUnitDistance())
	}
}

func TestReciprocal_RejectsDegenerateRange(t *testing.T) {
	if _, err := NewReciprocal(volume.SixteenBit, 10, 10); err != ErrDegenerateRange {
		t.Fatalf("expected ErrDegenerateRange, got %v", err)
	}
}

func TestReciprocal_SixteenBitRescales(t *testing.T) {
	r, err := NewReciprocal(volume.SixteenBit, 0, 4095)
	if err != nil {
		t.Fatalf("NewReciprocal: %v", err)
	}
	low := r.CostMovingTo(0)
	high := r.CostMovingTo(4095)
	if high >= low {
		t.Fatalf("expected max-intensity voxel to be cheapest: low=%g high=%g", low, high)
	}
}

func TestMaxScaling_UsesCustomCeiling(t *testing.T) {
	m, err := NewMaxScaling(volume.EightBit, 0, 0, 1000)
	if err != nil {
		t.Fatalf("NewMaxScaling: %v", err)
	}
	if got, want := m.MinCostPerUnitDistance(), 1.0/1000; math.Abs(got-want) > 1e-12 {
		t.Fatalf("MinCostPerUnitDistance = %g, want %g", got, want)
	}
}

func TestMaxScaling_RejectsNonPositiveCeiling(t *testing.T) {
	if _, err := NewMaxScaling(volume.EightBit, 0, 0, 0); err != ErrDegenerateRange {
		t.Fatalf("expected ErrDegenerateRange, got %v", err)
	}
}

func TestComputeStats_MeanStdevAndMaxZ(t *testing.T) {
	s := ComputeStats([]float64{1, 2, 3, 4, 5})
	if s.Mean != 3 {
		t.Fatalf("Mean = %g, want 3", s.Mean)
	}
	wantStdev := math.Sqrt(2)
	if math.Abs(s.Stdev-wantStdev) > 1e-9 {
		t.Fatalf("Stdev = %g, want %g", s.Stdev, wantStdev)
	}
	wantMaxZ := (5 - 3) / wantStdev
	if math.Abs(s.MaxZScore-wantMaxZ) > 1e-9 {
		t.Fatalf("MaxZScore = %g, want %g", s.MaxZScore, wantMaxZ)
	}
}

func TestFrangiProbabilistic_HighZScoreIsCheap(t *testing.T) {
	stats := ComputeStats([]float64{0, 0, 0, 0, 10})
	f, err := NewFrangiProbabilistic(stats.Mean, stats.Stdev, stats.MaxZScore)
	if err != nil {
		t.Fatalf("NewFrangiProbabilistic: %v", err)
	}
	cheap := f.CostMovingTo(10)
	expensive := f.CostMovingTo(0)
	if cheap >= expensive {
		t.Fatalf("expected high-z voxel to be cheaper: cheap=%g expensive=%g", cheap, expensive)
	}
	if cheap < f.MinCostPerUnitDistance()-1e-9 {
		t.Fatalf("cost %g fell below MinCostPerUnitDistance %g", cheap, f.MinCostPerUnitDistance())
	}
}

func TestFrangiProbabilistic_RejectsZeroStdev(t *testing.T) {
	if _, err := NewFrangiProbabilistic(0, 0, 0); err != ErrDegenerateRange {
		t.Fatalf("expected ErrDegenerateRange, got %v", err)
	}
}

func TestErf_KnownValues(t *testing.T) {
	cases := []struct {
		x, want float64
	}{
		{0, 0},
		{1, 0.8427007929497149},
		{-1, -0.8427007929497149},
	}
	for _, c := range cases {
		if got := erf(c.x); math.Abs(got-c.want) > 1e-6 {
			t.Fatalf("erf(%g) = %g, want %g", c.x, got, c.want)
		}
	}
}

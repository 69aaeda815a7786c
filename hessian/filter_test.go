package hessian

import (
	"testing"

	"github.com/morphonets/snt-trace/volume"
)

// brightLine2D builds a 2D plane with a bright vertical line down column
// cx against a dim background, the minimal fixture a tubeness/Frangi
// filter should respond to.
func brightLine2D(w, h, cx int) *volume.Dense {
	plane := make([][]float64, h)
	for y := range plane {
		row := make([]float64, w)
		for x := range row {
			if x == cx {
				row[x] = 200
			} else {
				row[x] = 10
			}
		}
		plane[y] = row
	}
	v, err := volume.NewDense2D(plane, volume.Calibration{SX: 1, SY: 1, SZ: 1, Unit: "px"}, volume.EightBit)
	if err != nil {
		panic(err)
	}
	return v
}

func TestRun_RejectsEmptyScales(t *testing.T) {
	v := brightLine2D(16, 16, 8)
	if _, err := Run(v, Options{Response: Tubeness}); err != ErrNoScales {
		t.Fatalf("expected ErrNoScales, got %v", err)
	}
}

func TestRun_RejectsNonPositiveScale(t *testing.T) {
	v := brightLine2D(16, 16, 8)
	if _, err := Run(v, Options{Scales: []float64{0}, Response: Tubeness}); err != ErrBadScale {
		t.Fatalf("expected ErrBadScale, got %v", err)
	}
}

func TestRun_TubenessRespondsMoreOnLineThanBackground(t *testing.T) {
	v := brightLine2D(24, 24, 12)
	out, err := Run(v, Options{Scales: []float64{1.0, 2.0}, NumThreads: 2, Response: Tubeness})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	onLine := out.Value(12, 12, 0)
	offLine := out.Value(2, 12, 0)
	if onLine <= offLine {
		t.Fatalf("expected tubeness on the bright line (%g) to exceed background (%g)", onLine, offLine)
	}
}

func TestRun_FrangiNonNegativeAndFinite(t *testing.T) {
	v := brightLine2D(20, 20, 10)
	out, err := Run(v, Options{Scales: []float64{1.5}, Response: Frangi, Alpha: 0.5, Beta: 0.5})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	w, h, d := out.Dimensions()
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				val := out.Value(x, y, z)
				if val < 0 {
					t.Fatalf("negative Frangi response at (%d,%d,%d): %g", x, y, z, val)
				}
			}
		}
	}
}

func TestRun_HonorsCancellation(t *testing.T) {
	v := brightLine2D(32, 32, 16)
	calls := 0
	cancel := func() bool {
		calls++
		return calls > 1
	}
	_, err := Run(v, Options{Scales: []float64{1.0}, Response: Tubeness, BlockSize: [3]int{8, 8, 1}, Cancel: cancel})
	if err != ErrCancelled {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
}

func TestPlanBlockSize_HalvesUntilItFits(t *testing.T) {
	bw, bh, bd, err := planBlockSize(256, 256, 256, 1<<20, false)
	if err != nil {
		t.Fatalf("planBlockSize: %v", err)
	}
	if bw > 256 || bh > 256 || bd > 256 {
		t.Fatalf("block larger than volume: %d %d %d", bw, bh, bd)
	}
	if estimateBytes(bw, bh, bd) > 1<<20 {
		t.Fatalf("block estimate exceeds budget: %d", estimateBytes(bw, bh, bd))
	}
}

func TestPlanBlockSize_FailsBelowMinimum(t *testing.T) {
	if _, _, _, err := planBlockSize(4, 4, 4, 1, false); err != ErrInsufficientMemory {
		t.Fatalf("expected ErrInsufficientMemory, got %v", err)
	}
}

func TestEigenSym2_DiagonalMatrix(t *testing.T) {
	e0, e1 := eigenSym2(3, 0, 7)
	if e0 != 3 || e1 != 7 {
		t.Fatalf("eigenSym2(3,0,7) = (%g,%g), want (3,7)", e0, e1)
	}
}

func TestEigenSym3_DiagonalMatrix(t *testing.T) {
	e0, e1, e2 := eigenSym3(1, 2, 3, 0, 0, 0)
	if e0 != 1 || e1 != 2 || e2 != 3 {
		t.Fatalf("eigenSym3 diagonal = (%g,%g,%g), want (1,2,3)", e0, e1, e2)
	}
}

package costfn

import (
	"errors"
	"math"

	"github.com/morphonets/snt-trace/volume"
)

// Sentinel errors for cost-function construction.
var (
	// ErrDegenerateRange indicates vmax <= vmin was supplied for rescaling
	// a non-8-bit volume into [0,256). NewMaxScaling also returns it for a
	// non-positive ceiling, and NewFrangiProbabilistic for a non-positive
	// stdev.
	ErrDegenerateRange = errors.New("costfn: vmax must be greater than vmin")
	// ErrNilVolume indicates a cost function was asked to wrap a nil volume.
	ErrNilVolume = errors.New("costfn: volume must not be nil")
)

// scaleMax is the target range ceiling ([0,scaleMax)) for the Reciprocal
// variant's default 8-bit-style rescaling.
const scaleMax = 256.0

// epsilon prevents division by zero when a scaled value is exactly 0. The
// teacher's example pack has no equivalent constant; this mirrors the
// spec's guidance of deriving it from float32's positive-value floor so
// the resulting cost stays representable in single precision downstream.
const epsilon = scaleMax * 0.5 * math.SmallestNonzeroFloat32 / math.MaxFloat32

// CostFunction maps a voxel's scalar value to a strictly positive movement
// cost, and exposes a lower bound on that cost used to scale the A*
// heuristic (h = d_phys * MinCostPerUnitDistance()). Implementations hold
// their own reference to whatever volume (raw or Hessian-filtered) they
// read their scale/statistics from; the search engine only ever calls
// CostMovingTo with the value already read from that volume at the
// candidate voxel.
type CostFunction interface {
	// CostMovingTo returns the cost of moving into a voxel with this value.
	CostMovingTo(value float64) float64
	// MinCostPerUnitDistance is a lower bound on CostMovingTo, used to keep
	// the A* heuristic admissible and consistent (h <= d_phys * this bound).
	MinCostPerUnitDistance() float64
}

// rescale maps raw onto [0, ceiling] the way Reciprocal/MaxScaling do:
// pass through unchanged for 8-bit data, otherwise linearly rescale
// against the volume's observed [vmin,vmax].
func rescale(raw float64, depth volume.BitDepth, vmin, vmax, ceiling float64) float64 {
	if depth == volume.EightBit {
		return raw
	}
	if vmax <= vmin {
		return 0
	}
	return ceiling * (raw - vmin) / (vmax - vmin)
}

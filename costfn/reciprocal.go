package costfn

import "github.com/morphonets/snt-trace/volume"

// Reciprocal is the default cost function: scale the voxel value to
// [0,256) (identity for 8-bit data, linear rescale against [vmin,vmax]
// otherwise), then cost = 1/max(scaled, epsilon). Its lower bound is
// 1/256: rescaled data reaches it at vmax, while the brightest 8-bit
// value, 255, costs 1/255.
type Reciprocal struct {
	depth      volume.BitDepth
	vmin, vmax float64
}

// NewReciprocal builds a Reciprocal cost function. vmin/vmax are ignored
// for 8-bit volumes (values are assumed already in [0,256)).
func NewReciprocal(depth volume.BitDepth, vmin, vmax float64) (*Reciprocal, error) {
	if depth != volume.EightBit && vmax <= vmin {
		return nil, ErrDegenerateRange
	}
	return &Reciprocal{depth: depth, vmin: vmin, vmax: vmax}, nil
}

// CostMovingTo implements CostFunction.
func (r *Reciprocal) CostMovingTo(value float64) float64 {
	scaled := rescale(value, r.depth, r.vmin, r.vmax, scaleMax)
	if scaled < epsilon {
		scaled = epsilon
	}
	return 1.0 / scaled
}

// MinCostPerUnitDistance implements CostFunction.
func (r *Reciprocal) MinCostPerUnitDistance() float64 { return 1.0 / scaleMax }

// MaxScaling is Reciprocal generalized to a caller-supplied ceiling in
// place of the fixed 256, and it floors any scaled value below
// ceiling*ReciprocalFudge at that value instead of falling through to the cheap legacy
// cost the original AbstractSearch.costMovingTo returned for zero-valued
// voxels (see DESIGN.md's divergence note on that legacy behaviour).
type MaxScaling struct {
	depth      volume.BitDepth
	vmin, vmax float64
	ceiling    float64
}

// ReciprocalFudge is the fraction of the ceiling that MaxScaling uses as
// the minimum scaled value it will ever divide by (ceiling*ReciprocalFudge),
// standing in for the legacy "cost 2.0 for zero intensity" behaviour
// with a principled, ceiling-relative floor instead.
const ReciprocalFudge = 1e-6

// NewMaxScaling builds a MaxScaling cost function with the given ceiling
// in place of Reciprocal's fixed 256.
func NewMaxScaling(depth volume.BitDepth, vmin, vmax, ceiling float64) (*MaxScaling, error) {
	if depth != volume.EightBit && vmax <= vmin {
		return nil, ErrDegenerateRange
	}
	if ceiling <= 0 {
		return nil, ErrDegenerateRange
	}
	return &MaxScaling{depth: depth, vmin: vmin, vmax: vmax, ceiling: ceiling}, nil
}

// CostMovingTo implements CostFunction.
func (m *MaxScaling) CostMovingTo(value float64) float64 {
	scaled := rescale(value, m.depth, m.vmin, m.vmax, m.ceiling)
	floor := m.ceiling * ReciprocalFudge
	if scaled < floor {
		scaled = floor
	}
	return 1.0 / scaled
}

// MinCostPerUnitDistance implements CostFunction.
func (m *MaxScaling) MinCostPerUnitDistance() float64 { return 1.0 / m.ceiling }

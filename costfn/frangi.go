package costfn

import "math"

// FrangiProbabilistic costs movement by how unlikely a voxel's
// vesselness response is to come from background noise: cost = 1 -
// erf(0.8*z), where z is the voxel's z-score against the filter-response
// volume's precomputed mean and standard deviation. Bright, vessel-like
// voxels (large z) approach cost 0; background approaches cost 1.
type FrangiProbabilistic struct {
	mean, stdev float64
	minCost     float64
}

// frangiZScale is the fixed scaling applied to the z-score before erf,
// matching the spec's "1 - erf(0.8*z)" formula.
const frangiZScale = 0.8

// NewFrangiProbabilistic builds a cost function from the mean and
// standard deviation of a filter-response volume (see Stats) and the
// maximum z-score observed anywhere in it, used to derive a strictly
// positive lower bound instead of letting cost hit exactly zero at the
// single brightest voxel.
func NewFrangiProbabilistic(mean, stdev, maxZScore float64) (*FrangiProbabilistic, error) {
	if stdev <= 0 {
		return nil, ErrDegenerateRange
	}
	minCost := 1 - erf(frangiZScale*maxZScore) + epsilon
	if minCost <= 0 {
		minCost = epsilon
	}
	return &FrangiProbabilistic{mean: mean, stdev: stdev, minCost: minCost}, nil
}

// CostMovingTo implements CostFunction.
func (f *FrangiProbabilistic) CostMovingTo(value float64) float64 {
	z := (value - f.mean) / f.stdev
	cost := 1 - erf(frangiZScale*z)
	if cost < f.minCost {
		cost = f.minCost
	}
	return cost
}

// MinCostPerUnitDistance implements CostFunction.
func (f *FrangiProbabilistic) MinCostPerUnitDistance() float64 { return f.minCost }

// Stats summarizes a filter-response volume's scalar distribution, used
// to construct a FrangiProbabilistic cost function.
type Stats struct {
	Mean      float64
	Stdev     float64
	MaxZScore float64
}

// ComputeStats scans values (one filter-response sample per voxel) and
// returns their mean, (population) standard deviation, and the largest
// z-score observed, in three passes over values.
func ComputeStats(values []float64) Stats {
	if len(values) == 0 {
		return Stats{}
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	stdev := math.Sqrt(sq / float64(len(values)))
	if stdev == 0 {
		return Stats{Mean: mean, Stdev: epsilon, MaxZScore: 0}
	}

	maxZ := math.Inf(-1)
	for _, v := range values {
		z := (v - mean) / stdev
		if z > maxZ {
			maxZ = z
		}
	}
	return Stats{Mean: mean, Stdev: stdev, MaxZScore: maxZ}
}

// erf approximates the error function using the Hastings rational
// approximation (Abramowitz & Stegun 7.1.26), accurate to about 1.5e-7,
// the same closed-form widely used in place of a library erf when only
// single-precision accuracy is required downstream.
func erf(x float64) float64 {
	const (
		a1 = 0.254829592
		a2 = -0.284496736
		a3 = 1.421413741
		a4 = -1.453152027
		a5 = 1.061405429
		p  = 0.3275911
	)
	sign := 1.0
	if x < 0 {
		sign = -1.0
		x = -x
	}
	t := 1.0 / (1.0 + p*x)
	poly := t * (a1 + t*(a2+t*(a3+t*(a4+t*a5))))
	y := 1.0 - poly*math.Exp(-x*x)
	return sign * y
}

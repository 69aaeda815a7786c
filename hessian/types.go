package hessian

import "errors"

// Sentinel errors surfaced by the filter engine.
var (
	// ErrNoScales indicates Options.Scales was empty.
	ErrNoScales = errors.New("hessian: at least one scale is required")
	// ErrBadScale indicates a non-positive scale was supplied.
	ErrBadScale = errors.New("hessian: scales must be positive")
	// ErrInsufficientMemory indicates the block-sizing search could not
	// find a block that fits MaxBytes without dropping below the
	// minimum per-axis block size.
	ErrInsufficientMemory = errors.New("hessian: insufficient memory for block size")
	// ErrCancelled indicates the engine observed cancellation mid-run.
	ErrCancelled = errors.New("hessian: cancelled")
)

// minBlockAxis is the smallest per-axis block size the halving search in
// block.go will accept before giving up with ErrInsufficientMemory.
const minBlockAxis = 8

// Response selects which filter response Run computes.
type Response int

const (
	// Tubeness selects the simpler "bright tube" response (no alpha/beta).
	Tubeness Response = iota
	// Frangi selects the full Frangi et al. (1998) vesselness response.
	Frangi
)

// Options configures a Run of the Hessian filter engine.
type Options struct {
	// Scales are physical-unit Gaussian sigmas; the engine computes a
	// response at each and reduces across them by per-voxel maximum.
	Scales []float64
	// NumThreads bounds the block's internal worker pool. <= 0 means 1.
	NumThreads int
	// MaxBytes bounds the working-set estimate used to size blocks.
	// <= 0 falls back to a conservative built-in default.
	MaxBytes int64
	// BlockSize, if non-zero, overrides the automatic block-sizing
	// search entirely (each axis clamped to the volume's own extent).
	BlockSize [3]int
	// Response selects Tubeness or Frangi.
	Response Response
	// Alpha and Beta are the Frangi plate/blob discrimination
	// parameters; ignored for Tubeness. Zero means the spec default 0.5.
	Alpha, Beta float64
	// Cancel, if non-nil, is polled between blocks; a true read aborts
	// the run and returns ErrCancelled with whatever volume was filled
	// so far.
	Cancel func() bool
}

func (o Options) alpha() float64 {
	if o.Alpha == 0 {
		return 0.5
	}
	return o.Alpha
}

func (o Options) beta() float64 {
	if o.Beta == 0 {
		return 0.5
	}
	return o.Beta
}

func (o Options) threads() int {
	if o.NumThreads <= 0 {
		return 1
	}
	return o.NumThreads
}

func (o Options) validate() error {
	if len(o.Scales) == 0 {
		return ErrNoScales
	}
	for _, s := range o.Scales {
		if s <= 0 {
			return ErrBadScale
		}
	}
	return nil
}

package fill

import (
	"errors"
	"time"

	"github.com/morphonets/snt-trace/costfn"
	"github.com/morphonets/snt-trace/progress"
	"github.com/morphonets/snt-trace/volume"
)

// Sentinel errors for Config validation.
var (
	ErrNilVolume  = errors.New("fill: volume must not be nil")
	ErrNilCostFn  = errors.New("fill: cost function must not be nil")
	ErrNoSeeds    = errors.New("fill: at least one seed voxel is required")
	ErrSeedOOB    = errors.New("fill: seed voxel out of bounds")
	ErrBadThreshold = errors.New("fill: threshold must be positive")
)

// Config configures one fill expansion from a set of seed voxels.
type Config struct {
	Volume volume.Volume
	CostFn costfn.CostFunction
	// Seeds are the voxels the expansion starts from, each at g=0.
	Seeds [][3]int
	// Threshold bounds the explored g-distance: only voxels with
	// g <= Threshold are ever inserted.
	Threshold float64

	Timeout        time.Duration
	ReportInterval time.Duration
	Reporter       progress.Reporter
	Cancel         *progress.Token
}

func (c Config) validate() error {
	if c.Volume == nil {
		return ErrNilVolume
	}
	if c.CostFn == nil {
		return ErrNilCostFn
	}
	if len(c.Seeds) == 0 {
		return ErrNoSeeds
	}
	if c.Threshold <= 0 {
		return ErrBadThreshold
	}
	for _, s := range c.Seeds {
		if !c.Volume.InBounds(s[0], s[1], s[2]) {
			return ErrSeedOOB
		}
	}
	return nil
}

// pollEvery matches search's cooperative-polling cadence.
const pollEvery = 10_000

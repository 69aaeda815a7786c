package fill

import (
	"math"
	"time"

	"github.com/morphonets/snt-trace/progress"
	"github.com/morphonets/snt-trace/volume"
	"github.com/morphonets/snt-trace/voxelstore"
)

// Run expands cfg.Seeds outward by Dijkstra relaxation bounded by
// cfg.Threshold, returning the resulting NodeStore and how the run
// ended. The store is populated even on a non-Success exit, holding
// whatever partial expansion completed before interruption.
//
// A non-nil error means cfg itself was rejected before any expansion
// began (spec's InvalidArgument, "immediate failure from constructor");
// it is always accompanied by a nil store and the zero ExitReason,
// mirroring search.NewEngine's separate construction-time validation
// rather than folding a bad Config into an async exit reason.
func Run(cfg Config) (*voxelstore.NodeStore, progress.ExitReason, error) {
	if err := cfg.validate(); err != nil {
		return nil, 0, err
	}
	w, h, d := cfg.Volume.Dimensions()
	store := voxelstore.NewNodeStore(d)
	heap := voxelstore.NewOpenHeap()
	for _, seed := range cfg.Seeds {
		if n, ok := store.Get(seed[0], seed[1], seed[2]); ok {
			if n.G <= 0 {
				continue
			}
			store.ReopenFromClosed(n, 0, 0, nil, voxelstore.OpenFromStart)
			heap.Insert(n)
			continue
		}
		n := store.Insert(seed[0], seed[1], seed[2], 0, 0, nil, voxelstore.OpenFromStart)
		heap.Insert(n)
	}

	cal := cfg.Volume.Spacing()
	minCost := cfg.CostFn.MinCostPerUnitDistance()
	is2D := d == 1
	deadline := progress.NewDeadline(cfg.Timeout)
	var lastReport time.Time
	iterations := 0

	offsets := volume.NeighborOffsets3D()
	if is2D {
		offsets = volume.NeighborOffsets2D()
	}

	for heap.Len() > 0 {
		iterations++
		if iterations%pollEvery == 0 {
			if cfg.Cancel.Cancelled() {
				return store, progress.Cancelled, nil
			}
			if deadline.Expired() {
				return store, progress.TimedOut, nil
			}
		}
		reportProgress(&lastReport, cfg, store)

		p := heap.PopMin()
		store.MarkClosed(p, voxelstore.ClosedFromStart)

		for _, off := range offsets {
			nx, ny, nz := p.X+off[0], p.Y+off[1], p.Z+off[2]
			if nx < 0 || nx >= w || ny < 0 || ny >= h || nz < 0 || nz >= d {
				continue
			}
			dx, dy, dz := float64(off[0])*cal.SX, float64(off[1])*cal.SY, float64(off[2])*cal.SZ
			stepDist := math.Sqrt(dx*dx + dy*dy + dz*dz)
			stepCost := cfg.CostFn.CostMovingTo(cfg.Volume.Value(nx, ny, nz))
			if stepCost < minCost {
				stepCost = minCost
			}
			gPrime := p.G + stepDist*stepCost
			if gPrime > cfg.Threshold {
				continue
			}

			existing, ok := store.Get(nx, ny, nz)
			switch {
			case !ok:
				n := store.Insert(nx, ny, nz, gPrime, 0, p, voxelstore.OpenFromStart)
				heap.Insert(n)
			case existing.Status.Open():
				if existing.G > gPrime {
					store.Update(existing, gPrime, 0, p)
					heap.DecreaseKey(existing)
				}
			case existing.Status.Closed():
				if existing.G > gPrime {
					store.ReopenFromClosed(existing, gPrime, 0, p, voxelstore.OpenFromStart)
					heap.Insert(existing)
				}
			}
		}
	}
	return store, progress.Success, nil
}

func reportProgress(last *time.Time, cfg Config, store *voxelstore.NodeStore) {
	if cfg.Reporter == nil || cfg.ReportInterval <= 0 {
		return
	}
	now := time.Now()
	if !last.IsZero() && now.Sub(*last) < cfg.ReportInterval {
		return
	}
	*last = now
	st := store.Stats()
	cfg.Reporter(progress.Event{Open: st.Open, Closed: st.Closed, Status: progress.Running})
}

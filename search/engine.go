package search

import (
	"math"
	"time"

	"github.com/morphonets/snt-trace/progress"
	"github.com/morphonets/snt-trace/volume"
	"github.com/morphonets/snt-trace/voxelstore"
)

// side bundles one direction's store, heap, and fixed endpoint. The
// start side always exists; the goal side exists only when
// Config.Bidirectional is set.
type side struct {
	store        *voxelstore.NodeStore
	heap         *voxelstore.OpenHeap
	origin       [3]int
	opposite     [3]int
	openStatus   voxelstore.Status
	closedStatus voxelstore.Status
}

// Engine runs a single Config to completion. It is not safe for
// concurrent use by multiple goroutines, matching the spec's single
// worker-thread-per-search model; nothing in its stores is guarded by a
// mutex (see voxelstore.NodeStore's doc comment for the rationale).
type Engine struct {
	cfg     Config
	minCost float64
	w, h, d int
	sx, sy, sz float64
}

// NewEngine validates cfg and returns a ready-to-run Engine.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	w, h, d := cfg.Volume.Dimensions()
	cal := cfg.Volume.Spacing()
	return &Engine{
		cfg:     cfg,
		minCost: cfg.CostFn.MinCostPerUnitDistance(),
		w:       w,
		h:       h,
		d:       d,
		sx:      cal.SX,
		sy:      cal.SY,
		sz:      cal.SZ,
	}, nil
}

// Run executes the configured search to completion or interruption.
func (e *Engine) Run() Result {
	start := e.newSide(e.cfg.Start, e.cfg.Goal, voxelstore.OpenFromStart, voxelstore.ClosedFromStart)
	var goal *side
	if e.cfg.Bidirectional {
		s := e.newSide(e.cfg.Goal, e.cfg.Start, voxelstore.OpenFromGoal, voxelstore.ClosedFromGoal)
		goal = &s
	}

	deadline := progress.NewDeadline(e.cfg.Timeout)
	var lastReport time.Time
	iterations := 0

	for {
		iterations++
		if iterations%pollEvery == 0 {
			if e.cfg.Cancel.Cancelled() {
				return e.result(progress.Cancelled, nil, start, goal)
			}
			if deadline.Expired() {
				return e.result(progress.TimedOut, nil, start, goal)
			}
		}
		e.maybeReport(&lastReport, start, goal, progress.Running)

		activeIsStart := true
		active, other := &start, goal
		if e.cfg.Bidirectional && goal.heap.Len() > start.heap.Len() {
			activeIsStart = false
			active, other = goal, &start
		}

		if active.heap.Len() == 0 {
			if other == nil || other.heap.Len() == 0 {
				reason := progress.Success
				if e.cfg.DefinedGoal {
					reason = progress.PointsExhausted
				}
				return e.result(reason, nil, start, goal)
			}
			active, other = other, active
			activeIsStart = !activeIsStart
		}

		p := active.heap.PopMin()
		active.store.MarkClosed(p, active.closedStatus)

		if e.cfg.DefinedGoal {
			if !e.cfg.Bidirectional {
				if p.X == e.cfg.Goal[0] && p.Y == e.cfg.Goal[1] && p.Z == e.cfg.Goal[2] {
					pts, err := e.reconstructUnidirectional(p)
					if err != nil {
						return e.result(progress.OutOfMemory, nil, start, goal)
					}
					return e.result(progress.Success, pts, start, goal)
				}
			} else if otherNode, ok := other.store.Get(p.X, p.Y, p.Z); ok && otherNode.Status.Closed() {
				pts, err := e.reconstructBidirectional(activeIsStart, p, otherNode)
				if err != nil {
					return e.result(progress.OutOfMemory, nil, start, goal)
				}
				return e.result(progress.Success, pts, start, goal)
			}
		}

		if pts, ok, err := e.relaxNeighbors(active, other, activeIsStart, p); err != nil {
			return e.result(progress.OutOfMemory, nil, start, goal)
		} else if ok {
			return e.result(progress.Success, pts, start, goal)
		}
	}
}

func (e *Engine) newSide(origin, opposite [3]int, openStatus, closedStatus voxelstore.Status) side {
	store := voxelstore.NewNodeStore(e.d)
	h := voxelstore.NewOpenHeap()
	var hVal float64
	if e.cfg.DefinedGoal {
		hVal = e.physicalDist(origin, opposite) * e.minCost
	}
	n := store.Insert(origin[0], origin[1], origin[2], 0, hVal, nil, openStatus)
	h.Insert(n)
	return side{store: store, heap: h, origin: origin, opposite: opposite, openStatus: openStatus, closedStatus: closedStatus}
}

func (e *Engine) physicalDist(a, b [3]int) float64 {
	dx := float64(a[0]-b[0]) * e.sx
	dy := float64(a[1]-b[1]) * e.sy
	dz := float64(a[2]-b[2]) * e.sz
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func (e *Engine) is2D() bool { return e.d == 1 }

func (e *Engine) neighborOffsets() [][3]int {
	if e.is2D() {
		return volume.NeighborOffsets2D()
	}
	return volume.NeighborOffsets3D()
}

// relaxNeighbors enumerates p's neighbourhood and relaxes each in-bounds
// voxel against active's store/heap, returning a reconstructed path
// (and ok=true) the instant a bidirectional meeting is observed.
func (e *Engine) relaxNeighbors(active, other *side, activeIsStart bool, p *voxelstore.SearchNode) ([]Point, bool, error) {
	for _, off := range e.neighborOffsets() {
		nx, ny, nz := p.X+off[0], p.Y+off[1], p.Z+off[2]
		if nx < 0 || nx >= e.w || ny < 0 || ny >= e.h || nz < 0 || nz >= e.d {
			continue
		}
		stepDist := e.physicalDist([3]int{p.X, p.Y, p.Z}, [3]int{nx, ny, nz})
		value := e.cfg.Volume.Value(nx, ny, nz)
		stepCost := e.cfg.CostFn.CostMovingTo(value)
		if stepCost < e.minCost {
			stepCost = e.minCost
		}
		gPrime := p.G + stepDist*stepCost
		if !e.cfg.DefinedGoal && gPrime > e.cfg.DrawThreshold {
			continue
		}
		var hPrime float64
		if e.cfg.DefinedGoal {
			hPrime = e.physicalDist([3]int{nx, ny, nz}, active.opposite) * e.minCost
		}

		existing, ok := active.store.Get(nx, ny, nz)
		switch {
		case !ok:
			n := active.store.Insert(nx, ny, nz, gPrime, hPrime, p, active.openStatus)
			active.heap.Insert(n)
		case existing.Status.Open():
			if existing.F > gPrime+hPrime {
				active.store.Update(existing, gPrime, hPrime, p)
				if err := active.heap.DecreaseKey(existing); err != nil {
					return nil, false, err
				}
			}
		case existing.Status.Closed():
			if existing.F > gPrime+hPrime {
				active.store.ReopenFromClosed(existing, gPrime, hPrime, p, active.openStatus)
				active.heap.Insert(existing)
			}
		}

		if e.cfg.Bidirectional && e.cfg.DefinedGoal && other != nil {
			if oppNode, ok := other.store.Get(nx, ny, nz); ok && oppNode.Status.Closed() {
				updated, _ := active.store.Get(nx, ny, nz)
				pts, err := e.reconstructBidirectional(activeIsStart, updated, oppNode)
				return pts, err == nil, err
			}
		}
	}
	return nil, false, nil
}

func (e *Engine) reconstructUnidirectional(goal *voxelstore.SearchNode) ([]Point, error) {
	chain, err := voxelstore.WalkPredecessors(goal)
	if err != nil {
		return nil, err
	}
	return e.toPoints(chain), nil
}

func (e *Engine) reconstructBidirectional(activeIsStart bool, activeNode, otherNode *voxelstore.SearchNode) ([]Point, error) {
	activeChain, err := voxelstore.WalkPredecessors(activeNode)
	if err != nil {
		return nil, err
	}
	otherChain, err := voxelstore.WalkPredecessors(otherNode)
	if err != nil {
		return nil, err
	}
	var startChain, goalChain []*voxelstore.SearchNode
	if activeIsStart {
		startChain, goalChain = activeChain, otherChain
	} else {
		startChain, goalChain = otherChain, activeChain
	}
	pts := e.toPoints(startChain)
	goalPts := e.toPoints(goalChain)
	for i := len(goalPts) - 2; i >= 0; i-- { // skip goalPts[len-1]: duplicates the meeting point
		pts = append(pts, goalPts[i])
	}
	return pts, nil
}

func (e *Engine) toPoints(chain []*voxelstore.SearchNode) []Point {
	out := make([]Point, len(chain))
	for i, n := range chain {
		out[i] = Point{X: float64(n.X) * e.sx, Y: float64(n.Y) * e.sy, Z: float64(n.Z) * e.sz}
	}
	return out
}

func (e *Engine) maybeReport(last *time.Time, start side, goal *side, status progress.ThreadStatus) {
	if e.cfg.Reporter == nil || e.cfg.ReportInterval <= 0 {
		return
	}
	now := time.Now()
	if !last.IsZero() && now.Sub(*last) < e.cfg.ReportInterval {
		return
	}
	*last = now
	st := start.store.Stats()
	open, closed := st.Open, st.Closed
	if goal != nil {
		gs := goal.store.Stats()
		open += gs.Open
		closed += gs.Closed
	}
	e.cfg.Reporter(progress.Event{Open: open, Closed: closed, Status: status})
}

func (e *Engine) result(reason progress.ExitReason, pts []Point, start side, goal *side) Result {
	st := start.store.Stats()
	res := Result{Reason: reason, Path: pts, Stats: Stats{StartOpen: st.Open, StartClosed: st.Closed}}
	if goal != nil {
		gs := goal.store.Stats()
		res.Stats.GoalOpen, res.Stats.GoalClosed = gs.Open, gs.Closed
	}
	if e.cfg.Reporter != nil {
		e.cfg.Reporter(progress.Event{
			Open: res.Stats.StartOpen + res.Stats.GoalOpen, Closed: res.Stats.StartClosed + res.Stats.GoalClosed,
			Status: progress.Stopping, Finished: true, Success: reason == progress.Success, Reason: reason,
		})
	}
	return res
}

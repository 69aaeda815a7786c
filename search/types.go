package search

import (
	"errors"
	"time"

	"github.com/morphonets/snt-trace/costfn"
	"github.com/morphonets/snt-trace/progress"
	"github.com/morphonets/snt-trace/volume"
)

// Sentinel errors for Config validation, mirroring bfs's fail-fast
// ErrGraphNil/ErrStartVertexNotFound checks.
var (
	ErrNilVolume      = errors.New("search: volume must not be nil")
	ErrNilCostFn      = errors.New("search: cost function must not be nil")
	ErrStartOOB       = errors.New("search: start point out of bounds")
	ErrGoalOOB        = errors.New("search: goal point out of bounds")
	ErrStartEqualsGoal = errors.New("search: start and goal must differ")
	ErrGoalRequired   = errors.New("search: goal is required when DefinedGoal is set")
)

// Config configures one Engine run: a single start/goal pair (or a
// single seed with no goal, for a Dijkstra fill-style run) over one
// Volume with one CostFunction.
type Config struct {
	// Volume is read from at each neighbour relaxation; never mutated.
	Volume volume.Volume
	// CostFn maps a neighbour's raw value to a movement cost.
	CostFn costfn.CostFunction

	// Bidirectional runs simultaneous start-side and goal-side
	// frontiers that meet in the middle; DefinedGoal must be true.
	Bidirectional bool
	// DefinedGoal selects A* (true) over DrawThreshold-bounded Dijkstra (false).
	DefinedGoal bool

	Start [3]int
	Goal  [3]int

	// Timeout is a wall-clock ceiling; zero means none.
	Timeout time.Duration
	// ReportInterval paces progress callbacks; zero disables them.
	ReportInterval time.Duration
	// Reporter receives progress events; may be nil.
	Reporter progress.Reporter
	// Cancel is polled cooperatively; may be nil.
	Cancel *progress.Token

	// DrawThreshold bounds a Dijkstra (DefinedGoal==false) run's
	// explored g-distance; unused when DefinedGoal is true.
	DrawThreshold float64
}

func (c Config) validate() error {
	if c.Volume == nil {
		return ErrNilVolume
	}
	if c.CostFn == nil {
		return ErrNilCostFn
	}
	if !c.Volume.InBounds(c.Start[0], c.Start[1], c.Start[2]) {
		return ErrStartOOB
	}
	if c.DefinedGoal {
		if c.Goal == c.Start {
			return ErrStartEqualsGoal
		}
		if !c.Volume.InBounds(c.Goal[0], c.Goal[1], c.Goal[2]) {
			return ErrGoalOOB
		}
	} else if c.Bidirectional {
		return ErrGoalRequired
	}
	return nil
}

// Result is the outcome of one Engine.Run.
type Result struct {
	Reason progress.ExitReason
	// Path is populated only when Reason == progress.Success and
	// DefinedGoal was set.
	Path []Point
	// Stats reports the final open/closed counts of each side's store.
	Stats Stats
}

// Point is a physical-coordinate point on a successful search's path,
// kept local to this package (rather than importing tracepath directly
// into the hot loop) so the engine's inner loop has no dependency on the
// tree/arena machinery; callers that want a tracepath.Path convert each
// Point to a tracepath.Point and pass the result to tracepath.NewPath.
type Point struct {
	X, Y, Z float64
}

// Stats summarizes the final size of the start-side and (if
// bidirectional) goal-side stores.
type Stats struct {
	StartOpen, StartClosed int
	GoalOpen, GoalClosed   int
}

// pollEvery bounds how many popped nodes elapse between cooperative
// cancellation/timeout checks, per the spec's "checks it every ~10000
// iterations" guidance.
const pollEvery = 10_000

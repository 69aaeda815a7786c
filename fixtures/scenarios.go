package fixtures

import (
	"math"

	"github.com/morphonets/snt-trace/volume"
)

// Endpoints pairs a built Volume with the start/goal voxels a scenario
// expects a search to connect.
type Endpoints struct {
	Vol   *volume.Dense
	Start [3]int
	Goal  [3]int
}

// StraightLine builds a uniform-cost volume with start and goal on
// opposite ends of the x axis, grounded on the spec's "straight line,
// uniform cost" end-to-end scenario: a 100x10x10 volume at a single
// bright value, connecting (0,5,5) to (w-1,5,5).
func StraightLine(w, h, d int, opts ...Option) Endpoints {
	cfg := resolve(opts)
	planes := make([][][]float64, d)
	for z := range planes {
		planes[z] = uniformPlane(w, h, cfg.bright, cfg)
	}
	vol := mustDense(planes, cfg)
	midY, midZ := h/2, d/2
	return Endpoints{
		Vol:   vol,
		Start: [3]int{0, midY, midZ},
		Goal:  [3]int{w - 1, midY, midZ},
	}
}

// LShapedTube builds a 2D volume with a bright L-shaped corridor
// against a dim background: one arm at y=turnY for x in [0,turnX], the
// other at x=turnX for y in [0,turnY]. Grounded on the spec's
// "L-shaped bright tube" scenario.
func LShapedTube(w, h, turnX, turnY int, opts ...Option) Endpoints {
	cfg := resolve(opts)
	plane := uniformPlane(w, h, cfg.background, cfg)
	for x := 0; x <= turnX && x < w; x++ {
		plane[turnY][x] = cfg.bright
	}
	for y := 0; y <= turnY && y < h; y++ {
		plane[y][turnX] = cfg.bright
	}
	vol := mustDense([][][]float64{plane}, cfg)
	return Endpoints{
		Vol:   vol,
		Start: [3]int{0, turnY, 0},
		Goal:  [3]int{turnX, 0, 0},
	}
}

// Barrier builds a 2D volume at a uniform bright value with a single
// nearly-impassable column at x=wallX, pierced by one gap at y=gapY,
// forcing any search connecting the two sides to detour through the
// gap. Grounded on the spec's "Barrier" scenario.
func Barrier(w, h, wallX, gapY int, opts ...Option) Endpoints {
	cfg := resolve(opts)
	plane := uniformPlane(w, h, cfg.bright, cfg)
	for y := 0; y < h; y++ {
		if y != gapY {
			plane[y][wallX] = 0
		}
	}
	vol := mustDense([][][]float64{plane}, cfg)
	return Endpoints{
		Vol:   vol,
		Start: [3]int{0, gapY, 0},
		Goal:  [3]int{w - 1, gapY, 0},
	}
}

// Uniform builds a flat volume at a single value, with no embedded
// structure — the minimal fixture for Dijkstra-fill scenarios where the
// shape of the resulting region, not a path, is under test.
func Uniform(w, h, d int, value float64, opts ...Option) *volume.Dense {
	cfg := resolve(opts)
	planes := make([][][]float64, d)
	for z := range planes {
		planes[z] = uniformPlane(w, h, value, cfg)
	}
	return mustDense(planes, cfg)
}

// GaussianCylinder builds a 3D volume containing a Gaussian-intensity
// cylinder of the given radius running the full length of the z axis
// through (cx,cy), against a dim background. Grounded on the spec's
// "Frangi on synthetic tube" scenario.
func GaussianCylinder(w, h, d int, cx, cy int, radius float64, opts ...Option) *volume.Dense {
	cfg := resolve(opts)
	planes := make([][][]float64, d)
	for z := range planes {
		plane := make([][]float64, h)
		for y := range plane {
			row := make([]float64, w)
			for x := range row {
				dx, dy := float64(x-cx), float64(y-cy)
				r2 := dx*dx + dy*dy
				// Gaussian cross-section: background plus a bump that
				// decays with squared radial distance, using radius as
				// the bump's standard deviation.
				bump := (cfg.bright - cfg.background) * math.Exp(-r2/(2*radius*radius))
				row[x] = cfg.background + bump + cfg.jitter()
			}
			plane[y] = row
		}
		planes[z] = plane
	}
	return mustDense(planes, cfg)
}

func uniformPlane(w, h int, value float64, cfg config) [][]float64 {
	plane := make([][]float64, h)
	for y := range plane {
		row := make([]float64, w)
		for x := range row {
			row[x] = value + cfg.jitter()
		}
		plane[y] = row
	}
	return plane
}

func mustDense(planes [][][]float64, cfg config) *volume.Dense {
	v, err := volume.NewDense(planes, cfg.cal, volume.EightBit)
	if err != nil {
		// Every plane built in this package is rectangular by
		// construction and cfg.cal always validates, so NewDense can
		// only fail here on a programmer error in this package.
		panic(err)
	}
	return v
}

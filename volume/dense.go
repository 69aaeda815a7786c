package volume

import "fmt"

// Dense is a row-major, depth-major scalar volume backed by a single flat
// slice. Index order is z*H*W + y*W + x. It deep-copies its input so the
// caller's slices remain free to mutate afterward.
type Dense struct {
	w, h, d int
	cal     Calibration
	depth   BitDepth
	data    []float64
}

// NewDense builds a Dense volume from a [z][y][x] nested slice. All planes
// must share the same rectangular shape. Complexity: O(W*H*D) time/memory.
func NewDense(planes [][][]float64, cal Calibration, depth BitDepth) (*Dense, error) {
	if len(planes) == 0 || len(planes[0]) == 0 || len(planes[0][0]) == 0 {
		return nil, ErrEmptyVolume
	}
	d := len(planes)
	h := len(planes[0])
	w := len(planes[0][0])
	if err := cal.Validate(); err != nil {
		return nil, err
	}

	data := make([]float64, w*h*d)
	for z, plane := range planes {
		if len(plane) != h {
			return nil, fmt.Errorf("%w: plane %d has %d rows, want %d", ErrNonRectangular, z, len(plane), h)
		}
		for y, row := range plane {
			if len(row) != w {
				return nil, fmt.Errorf("%w: plane %d row %d has %d cols, want %d", ErrNonRectangular, z, y, len(row), w)
			}
			copy(data[z*h*w+y*w:z*h*w+y*w+w], row)
		}
	}

	return &Dense{w: w, h: h, d: d, cal: cal, depth: depth, data: data}, nil
}

// NewDense2D builds a 2D Dense volume (D=1) from a [y][x] slice.
// Complexity: O(W*H) time/memory.
func NewDense2D(plane [][]float64, cal Calibration, depth BitDepth) (*Dense, error) {
	cal.SZ = 1 // 2D volumes carry a unit z-spacing so step-distance math never divides by zero
	return NewDense([][][]float64{plane}, cal, depth)
}

// Dimensions returns (W,H,D).
func (v *Dense) Dimensions() (w, h, d int) { return v.w, v.h, v.d }

// Spacing returns the volume's calibration.
func (v *Dense) Spacing() Calibration { return v.cal }

// BitDepth reports the sample precision.
func (v *Dense) BitDepth() BitDepth { return v.depth }

// InBounds reports whether (x,y,z) lies within [0,W)x[0,H)x[0,D).
func (v *Dense) InBounds(x, y, z int) bool {
	return x >= 0 && x < v.w && y >= 0 && y < v.h && z >= 0 && z < v.d
}

// Value returns the scalar at (x,y,z). For a 2D volume (D==1) z is
// ignored, so every z reads the single plane. Panics with ErrOutOfBounds
// if x or y (or, for D>1, z) is outside the volume: callers must filter
// with InBounds first, per the engine's neighbourhood-enumeration contract.
func (v *Dense) Value(x, y, z int) float64 {
	if v.d == 1 {
		z = 0
	}
	if !v.InBounds(x, y, z) {
		panic(fmt.Errorf("%w: (%d,%d,%d) in %dx%dx%d", ErrOutOfBounds, x, y, z, v.w, v.h, v.d))
	}
	return v.data[z*v.h*v.w+y*v.w+x]
}

// Set overwrites the scalar at (x,y,z). Used internally by filter and
// rasterisation stages that build a Dense volume voxel-by-voxel; not part
// of the read-only Volume interface.
func (v *Dense) Set(x, y, z int, val float64) {
	if !v.InBounds(x, y, z) {
		panic(fmt.Errorf("%w: (%d,%d,%d) in %dx%dx%d", ErrOutOfBounds, x, y, z, v.w, v.h, v.d))
	}
	v.data[z*v.h*v.w+y*v.w+x] = val
}

// NewBlank allocates a zero-filled Dense volume with the given dimensions,
// spacing and bit depth. Used by the Hessian engine to accumulate a
// derived (tubeness/Frangi) response volume.
func NewBlank(w, h, d int, cal Calibration, depth BitDepth) *Dense {
	return &Dense{w: w, h: h, d: d, cal: cal, depth: depth, data: make([]float64, w*h*d)}
}

// Is2D reports whether this volume presents as a 2D image (D==1).
func (v *Dense) Is2D() bool { return v.d == 1 }

// NeighborOffsets3D returns the 26 integer offsets used for 3D
// neighbourhood enumeration (all of {-1,0,1}^3 except the origin).
func NeighborOffsets3D() [][3]int {
	offsets := make([][3]int, 0, 26)
	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				offsets = append(offsets, [3]int{dx, dy, dz})
			}
		}
	}
	return offsets
}

// NeighborOffsets2D returns the 8 integer (x,y) offsets used for 2D
// neighbourhood enumeration, in clockwise order starting from N.
func NeighborOffsets2D() [][3]int {
	return [][3]int{
		{0, -1, 0}, {1, -1, 0}, {1, 0, 0}, {1, 1, 0},
		{0, 1, 0}, {-1, 1, 0}, {-1, 0, 0}, {-1, -1, 0},
	}
}

// NeighborOffsets returns the connectivity-appropriate offsets for this
// volume: 8-connected if D==1, 26-connected otherwise.
func (v *Dense) NeighborOffsets() [][3]int {
	if v.Is2D() {
		return NeighborOffsets2D()
	}
	return NeighborOffsets3D()
}

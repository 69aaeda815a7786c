package hessian

import (
	"math"
	"sync"

	"github.com/morphonets/snt-trace/volume"
)

// Run computes the Hessian-derived response volume (tubeness or Frangi,
// per opts.Response) for vol at every scale in opts.Scales, reduced
// across scales and blocks by a per-voxel maximum. The block x scale
// outer loop runs sequentially; within each block, per-voxel eigenvalue
// and response computation is parallelised over a semaphore-bounded
// worker pool, the same acquire/release-permit shape the Geek0x0-pdf
// pack's enhanced parallel page processor uses.
func Run(vol volume.Volume, opts Options) (*volume.Dense, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	w, h, d := vol.Dimensions()
	cal := vol.Spacing()
	is2D := d == 1

	bw, bh, bd := opts.BlockSize[0], opts.BlockSize[1], opts.BlockSize[2]
	if bw <= 0 || bh <= 0 || bd <= 0 {
		var err error
		bw, bh, bd, err = planBlockSize(w, h, d, opts.MaxBytes, is2D)
		if err != nil {
			return nil, err
		}
	}
	if bw > w {
		bw = w
	}
	if bh > h {
		bh = h
	}
	if bd > d {
		bd = d
	}

	out := volume.NewBlank(w, h, d, cal, volume.ThirtyTwoBit)
	fillMinusInf(out, w, h, d)

	// c (Frangi's structureness normalizer) is updated monotonically
	// across blocks, per the spec's "max Frobenius^2 of Hessian over
	// blocks visited so far".
	maxFrob2 := 0.0

	for _, zr := range tileRanges(d, bd) {
		for _, yr := range tileRanges(h, bh) {
			for _, xr := range tileRanges(w, bw) {
				if opts.Cancel != nil && opts.Cancel() {
					return out, ErrCancelled
				}
				blockMaxFrob2 := processBlock(vol, out, opts, cal, is2D, xr, yr, zr, maxFrob2)
				if blockMaxFrob2 > maxFrob2 {
					maxFrob2 = blockMaxFrob2
				}
			}
		}
	}
	return out, nil
}

// processBlock runs the per-scale pipeline for one spatial tile and
// reduces into out by per-voxel maximum; it returns the larger of cMax2
// and the largest squared Hessian Frobenius norm observed in this block
// (for the caller to fold into the running Frangi normalizer).
func processBlock(vol volume.Volume, out *volume.Dense, opts Options, cal volume.Calibration, is2D bool, xr, yr, zr [2]int, cMax2 float64) float64 {
	bw, bh, bd := xr[1]-xr[0], yr[1]-yr[0], zr[1]-zr[0]

	for _, sigma := range opts.Scales {
		sigmaXAxis := sigma / cal.SX
		sigmaYAxis := sigma / cal.SY
		sigmaZAxis := 0.0
		if !is2D {
			sigmaZAxis = sigma / cal.SZ
		}
		padX := paddingFor(sigmaXAxis)
		padY := paddingFor(sigmaYAxis)
		padZ := 0
		if !is2D {
			padZ = paddingFor(sigmaZAxis)
		}

		raw := extractPadded(vol, xr[0], yr[0], zr[0], bw, bh, bd, padX, padY, padZ)
		blurred := gaussianBlur3D(raw, sigmaXAxis, sigmaYAxis, sigmaZAxis)

		sigmaMean := sigma
		if !is2D {
			sigmaMean = (sigmaXAxis*cal.SX + sigmaYAxis*cal.SY + sigmaZAxis*cal.SZ) / 3
		}

		localMax := runVoxelWorkers(blurred, bw, bh, bd, padX, padY, padZ, is2D, opts, sigma, sigmaMean, cMax2, out, xr[0], yr[0], zr[0])
		if localMax > cMax2 {
			cMax2 = localMax
		}
	}
	return cMax2
}

// paddingFor returns the padding needed on one side of a block so that
// gaussianBlur3D's kernel never needs to reflect against the block's own
// edge rather than the true volume boundary already mirrored in by
// extractPadded. At least 2 voxels of margin are kept regardless of
// sigma, since the Hessian's mixed second partials reach one voxel past
// the blurred value itself.
func paddingFor(sigmaAxis float64) int {
	radius := int(math.Ceil(3 * sigmaAxis))
	if radius < 1 {
		radius = 1
	}
	return radius + 1
}

// extractPadded copies a (bw+2padX)x(bh+2padY)x(bd+2padZ) sub-volume of
// vol starting at (x0,y0,z0), reflecting out-of-range reads at the true
// volume boundary via mirror indexing (never at the block's own edge).
func extractPadded(vol volume.Volume, x0, y0, z0, bw, bh, bd, padX, padY, padZ int) *block3D {
	w, h, d := vol.Dimensions()
	out := newBlock3D(bw+2*padX, bh+2*padY, bd+2*padZ)
	for z := 0; z < out.d; z++ {
		vz := mirrorIndex(z0+z-padZ, d)
		for y := 0; y < out.h; y++ {
			vy := mirrorIndex(y0+y-padY, h)
			for x := 0; x < out.w; x++ {
				vx := mirrorIndex(x0+x-padX, w)
				out.set(x, y, z, vol.Value(vx, vy, vz))
			}
		}
	}
	return out
}

// runVoxelWorkers parallelises the per-voxel Hessian/eigenvalue/response
// computation over blurred's interior (the crop region offset by the
// padding), writing the per-voxel maximum across scales directly into
// out. Returns the largest squared Frobenius norm of any Hessian visited.
func runVoxelWorkers(blurred *block3D, bw, bh, bd, padX, padY, padZ int, is2D bool, opts Options, sigma, sigmaMean, cMax2 float64, out *volume.Dense, ox, oy, oz int) float64 {
	workers := opts.threads()
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	var mu sync.Mutex
	localMax := cMax2

	for z := 0; z < bd; z++ {
		z := z
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			rowMax := 0.0
			for y := 0; y < bh; y++ {
				for x := 0; x < bw; x++ {
					bx, by, bz := x+padX, y+padY, z+padZ
					resp, frob2 := voxelResponse(blurred, bx, by, bz, is2D, opts, sigma, sigmaMean, cMax2)
					if frob2 > rowMax {
						rowMax = frob2
					}
					vx, vy, vz := ox+x, oy+y, oz+z
					if resp > out.Value(vx, vy, vz) {
						out.Set(vx, vy, vz, resp)
					}
				}
			}
			mu.Lock()
			if rowMax > localMax {
				localMax = rowMax
			}
			mu.Unlock()
		}()
	}
	wg.Wait()
	return localMax
}

// voxelResponse computes the tubeness or Frangi response (per
// opts.Response) at the single voxel (bx,by,bz) of the padded, blurred
// block, along with the squared Frobenius norm of its Hessian.
func voxelResponse(b *block3D, bx, by, bz int, is2D bool, opts Options, sigma, sigmaMean float64, cMax2 float64) (resp float64, frob2 float64) {
	sigma2 := sigmaMean * sigmaMean

	if is2D {
		hxx := secondDeriv(b, bx, by, bz, 0, 0)
		hyy := secondDeriv(b, bx, by, bz, 1, 1)
		hxy := mixedDeriv(b, bx, by, bz, 0, 1)
		hxx *= sigma2
		hyy *= sigma2
		hxy *= sigma2
		frob2 = hxx*hxx + hyy*hyy + 2*hxy*hxy

		e0, e1 := eigenSym2(hxx, hxy, hyy)
		if opts.Response == Tubeness {
			if e1 < 0 {
				resp = -e1 * sigma2
			}
			return clampNaN(resp), frob2
		}
		if e1 >= 0 {
			return 0, frob2
		}
		beta := opts.beta()
		c := math.Sqrt(cMax2) / 2
		if c == 0 {
			c = 1
		}
		s := math.Sqrt(e0*e0 + e1*e1)
		resp = math.Exp(-(e0/e1)*(e0/e1)/(2*beta*beta)) * (1 - math.Exp(-(s*s)/(2*c*c)))
		return clampNaN(resp), frob2
	}

	hxx := secondDeriv(b, bx, by, bz, 0, 0) * sigma2
	hyy := secondDeriv(b, bx, by, bz, 1, 1) * sigma2
	hzz := secondDeriv(b, bx, by, bz, 2, 2) * sigma2
	hxy := mixedDeriv(b, bx, by, bz, 0, 1) * sigma2
	hxz := mixedDeriv(b, bx, by, bz, 0, 2) * sigma2
	hyz := mixedDeriv(b, bx, by, bz, 1, 2) * sigma2
	frob2 = hxx*hxx + hyy*hyy + hzz*hzz + 2*(hxy*hxy+hxz*hxz+hyz*hyz)

	e0, e1, e2 := eigenSym3(hxx, hyy, hzz, hxy, hxz, hyz)
	if opts.Response == Tubeness {
		if e1 < 0 && e2 < 0 {
			resp = math.Sqrt(e1*e2) * sigma2
		}
		return clampNaN(resp), frob2
	}
	if !(e1 < 0 && e2 < 0) {
		return 0, frob2
	}
	alpha, beta := opts.alpha(), opts.beta()
	c := math.Sqrt(cMax2) / 2
	if c == 0 {
		c = 1
	}
	ra := math.Abs(e1) / math.Abs(e2)
	rb := math.Abs(e0) / math.Sqrt(math.Abs(e1*e2))
	s := math.Sqrt(e0*e0 + e1*e1 + e2*e2)
	resp = (1 - math.Exp(-(ra*ra)/(2*alpha*alpha))) *
		math.Exp(-(rb*rb)/(2*beta*beta)) *
		(1 - math.Exp(-(s*s)/(2*c*c)))
	return clampNaN(resp), frob2
}

func clampNaN(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// secondDeriv computes d^2/d(axis)^2 via the standard 3-point central
// difference, only valid for axis==axis2 (the diagonal Hessian entries).
func secondDeriv(b *block3D, x, y, z, axis, axis2 int) float64 {
	_ = axis2
	switch axis {
	case 0:
		return b.at(x+1, y, z) - 2*b.at(x, y, z) + b.at(x-1, y, z)
	case 1:
		return b.at(x, y+1, z) - 2*b.at(x, y, z) + b.at(x, y-1, z)
	default:
		return b.at(x, y, z+1) - 2*b.at(x, y, z) + b.at(x, y, z-1)
	}
}

// mixedDeriv computes the mixed second partial d^2/d(a)d(c) via the
// 4-point central difference over the diagonal neighbors, for one of the
// three axis pairs (0,1), (0,2), (1,2).
func mixedDeriv(b *block3D, x, y, z, a, c int) float64 {
	corner := func(da, dc int) float64 {
		px, py, pz := x, y, z
		switch a {
		case 0:
			px += da
		case 1:
			py += da
		default:
			pz += da
		}
		switch c {
		case 0:
			px += dc
		case 1:
			py += dc
		default:
			pz += dc
		}
		return b.at(px, py, pz)
	}
	return (corner(1, 1) - corner(1, -1) - corner(-1, 1) + corner(-1, -1)) / 4
}

func fillMinusInf(out *volume.Dense, w, h, d int) {
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				out.Set(x, y, z, math.Inf(-1))
			}
		}
	}
}

package hessian

// defaultMaxBytes is the built-in working-set budget used when
// Options.MaxBytes is unset.
const defaultMaxBytes int64 = 256 << 20 // 256 MiB

// bytesPerVoxelWorkingSet approximates the per-voxel float64 working set
// the pipeline holds live at once for a block: the output response,
// the padded-for-Gaussian copy, the gradient (one scalar per axis,
// approximated here as 3), and the Hessian (up to 6 independent entries
// in 3D). This is deliberately a coarse over-estimate, matching the
// spec's "approx. output + padded_gaussian + gradient + hessian".
const bytesPerVoxelWorkingSet = 8 * (1 + 1 + 3 + 6)

// planBlockSize picks a block shape (bw,bh,bd) for a volume of size
// (w,h,d) that fits maxBytes, starting from the full volume and halving
// its longest axis until the estimate fits. Returns ErrInsufficientMemory
// if halving would take any axis below minBlockAxis. is2D volumes (d==1)
// never shrink their z axis.
func planBlockSize(w, h, d int, maxBytes int64, is2D bool) (int, int, int, error) {
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}
	bw, bh, bd := w, h, d
	for estimateBytes(bw, bh, bd) > maxBytes {
		ax := longestAxis(bw, bh, bd, is2D)
		switch ax {
		case 0:
			bw /= 2
		case 1:
			bh /= 2
		case 2:
			bd /= 2
		default:
			return 0, 0, 0, ErrInsufficientMemory
		}
		if bw < minBlockAxis || bh < minBlockAxis || (!is2D && bd < minBlockAxis) {
			return 0, 0, 0, ErrInsufficientMemory
		}
	}
	if bw < 1 {
		bw = 1
	}
	if bh < 1 {
		bh = 1
	}
	if bd < 1 {
		bd = 1
	}
	return bw, bh, bd, nil
}

func estimateBytes(w, h, d int) int64 {
	return int64(w) * int64(h) * int64(d) * bytesPerVoxelWorkingSet
}

// longestAxis returns the index (0=x,1=y,2=z) of the longest shrinkable
// axis, excluding z entirely for 2D volumes. Returns -1 if every
// shrinkable axis is already at the minimum.
func longestAxis(w, h, d int, is2D bool) int {
	best := -1
	bestLen := minBlockAxis
	if w > bestLen {
		bestLen, best = w, 0
	}
	if h > bestLen {
		bestLen, best = h, 1
	}
	if !is2D && d > bestLen {
		bestLen, best = d, 2
	}
	return best
}

// tileRanges splits [0,total) into tiles of size blockSize (the final
// tile may be shorter), returning each tile's [start,end) bounds.
func tileRanges(total, blockSize int) [][2]int {
	if blockSize <= 0 || blockSize >= total {
		return [][2]int{{0, total}}
	}
	var out [][2]int
	for start := 0; start < total; start += blockSize {
		end := start + blockSize
		if end > total {
			end = total
		}
		out = append(out, [2]int{start, end})
	}
	return out
}

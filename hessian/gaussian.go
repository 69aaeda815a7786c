package hessian

import "math"

// gaussianKernel1D returns a normalized, mirror-safe 1D Gaussian kernel
// for the given pixel-unit sigma, truncated at radius = ceil(3*sigma)
// per the spec's "padded by 3*sigma" convolution rule. sigma <= 0
// degenerates to the identity kernel [1].
func gaussianKernel1D(sigma float64) []float64 {
	if sigma <= 0 {
		return []float64{1}
	}
	radius := int(math.Ceil(3 * sigma))
	if radius < 1 {
		radius = 1
	}
	k := make([]float64, 2*radius+1)
	var sum float64
	for i := -radius; i <= radius; i++ {
		v := math.Exp(-float64(i*i) / (2 * sigma * sigma))
		k[i+radius] = v
		sum += v
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

// mirrorIndex reflects i back into [0,n) using mirror boundary handling
// that does not repeat the edge sample (reflect-101), e.g. for n=5:
// -1->1, -2->2, 5->3, 6->2.
func mirrorIndex(i, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * (n - 1)
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - i
	}
	return i
}

// block3D is a dense, row-major float64 scalar field covering one tile
// of the volume, sized (w,h,d) and indexed (x,y,z).
type block3D struct {
	w, h, d int
	data    []float64
}

func newBlock3D(w, h, d int) *block3D {
	return &block3D{w: w, h: h, d: d, data: make([]float64, w*h*d)}
}

func (b *block3D) idx(x, y, z int) int { return (z*b.h+y)*b.w + x }

func (b *block3D) at(x, y, z int) float64 { return b.data[b.idx(x, y, z)] }

func (b *block3D) set(x, y, z int, v float64) { b.data[b.idx(x, y, z)] = v }

// convolveAxis1D convolves b with kernel k along the given axis (0=x,
// 1=y, 2=z) using mirror boundary handling, returning a new block of the
// same dimensions.
func convolveAxis1D(b *block3D, k []float64, axis int) *block3D {
	out := newBlock3D(b.w, b.h, b.d)
	radius := len(k) / 2
	for z := 0; z < b.d; z++ {
		for y := 0; y < b.h; y++ {
			for x := 0; x < b.w; x++ {
				var acc float64
				for t := -radius; t <= radius; t++ {
					kv := k[t+radius]
					var sx, sy, sz int
					switch axis {
					case 0:
						sx, sy, sz = mirrorIndex(x+t, b.w), y, z
					case 1:
						sx, sy, sz = x, mirrorIndex(y+t, b.h), z
					default:
						sx, sy, sz = x, y, mirrorIndex(z+t, b.d)
					}
					acc += kv * b.at(sx, sy, sz)
				}
				out.set(x, y, z, acc)
			}
		}
	}
	return out
}

// gaussianBlur3D applies separable Gaussian convolution along each axis
// in turn using per-axis pixel sigmas, skipping degenerate axes (e.g.
// the z axis of a 2D volume, where sigmaZ is 0).
func gaussianBlur3D(b *block3D, sigmaX, sigmaY, sigmaZ float64) *block3D {
	out := b
	if sigmaX > 0 {
		out = convolveAxis1D(out, gaussianKernel1D(sigmaX), 0)
	}
	if sigmaY > 0 {
		out = convolveAxis1D(out, gaussianKernel1D(sigmaY), 1)
	}
	if sigmaZ > 0 && b.d > 1 {
		out = convolveAxis1D(out, gaussianKernel1D(sigmaZ), 2)
	}
	return out
}

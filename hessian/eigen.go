package hessian

import "math"

// jacobiTol is the off-diagonal convergence tolerance and jacobiMaxIter
// the sweep cap for the fixed-size eigensolvers below, chosen generously
// since n<=3 Jacobi sweeps converge in a handful of rotations.
const (
	jacobiTol     = 1e-10
	jacobiMaxIter = 50
)

// eigenSym2 returns the real eigenvalues of the symmetric 2x2 matrix
//
//	[a b]
//	[b d]
//
// sorted by ascending absolute value, the order the spec's tubeness and
// Frangi formulas expect. Adapted from the teacher's matrix/ops.Eigen
// Jacobi-rotation sweep, specialized to a single fixed pivot (0,1)
// instead of a largest-off-diagonal search over an NxN matrix: with only
// one off-diagonal entry, a single rotation always zeroes it exactly.
func eigenSym2(a, b, d float64) (e0, e1 float64) {
	if b == 0 {
		e0, e1 = a, d
	} else {
		theta := (d - a) / (2 * b)
		t := math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c := 1.0 / math.Sqrt(t*t+1)
		s := t * c
		e0 = c*c*a - 2*c*s*b + s*s*d
		e1 = s*s*a + 2*c*s*b + c*c*d
	}
	if math.Abs(e0) > math.Abs(e1) {
		e0, e1 = e1, e0
	}
	return e0, e1
}

// eigenSym3 returns the real eigenvalues of the symmetric 3x3 matrix
//
//	[a d e]
//	[d b f]
//	[e f c]
//
// sorted by ascending absolute value. Runs cyclic Jacobi sweeps over the
// three off-diagonal pairs (0,1),(0,2),(1,2) exactly as the teacher's
// matrix/ops.Eigen does for a general NxN matrix, but unrolled: with a
// fixed 3x3 shape there is no need to search for the largest
// off-diagonal entry each sweep, so every sweep simply zeroes each pair
// in turn until all three are within tolerance.
func eigenSym3(a, b, c, d, e, f float64) (e0, e1, e2 float64) {
	m := [3][3]float64{
		{a, d, e},
		{d, b, f},
		{e, f, c},
	}
	rotate := func(p, q int) {
		apq := m[p][q]
		if apq == 0 {
			return
		}
		app, aqq := m[p][p], m[q][q]
		theta := (aqq - app) / (2 * apq)
		t := math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		cs := 1.0 / math.Sqrt(t*t+1)
		sn := t * cs

		// Identify the third index distinct from p and q.
		var k int
		for k = 0; k < 3; k++ {
			if k != p && k != q {
				break
			}
		}
		akp, akq := m[k][p], m[k][q]
		newKP := cs*akp - sn*akq
		newKQ := sn*akp + cs*akq
		m[k][p], m[p][k] = newKP, newKP
		m[k][q], m[q][k] = newKQ, newKQ

		m[p][p] = cs*cs*app - 2*cs*sn*apq + sn*sn*aqq
		m[q][q] = sn*sn*app + 2*cs*sn*apq + cs*cs*aqq
		m[p][q] = 0
		m[q][p] = 0
	}

	offMag := func() float64 {
		return math.Abs(m[0][1]) + math.Abs(m[0][2]) + math.Abs(m[1][2])
	}
	for iter := 0; iter < jacobiMaxIter && offMag() > jacobiTol; iter++ {
		rotate(0, 1)
		rotate(0, 2)
		rotate(1, 2)
	}

	vals := []float64{m[0][0], m[1][1], m[2][2]}
	for i := 1; i < len(vals); i++ {
		v := vals[i]
		j := i - 1
		for j >= 0 && math.Abs(vals[j]) > math.Abs(v) {
			vals[j+1] = vals[j]
			j--
		}
		vals[j+1] = v
	}
	return vals[0], vals[1], vals[2]
}

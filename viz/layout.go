package viz

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Layout projects 3D points onto the plane with classical
// multidimensional scaling: double-center the squared-distance matrix
// and keep the two dominant eigendirections. For a fixed input the
// output is identical across runs. Positions are presentation only;
// they never feed back into any numeric result.
func Layout(points [][3]float64) [][2]float64 {
	n := len(points)
	out := make([][2]float64, n)
	if n < 2 {
		return out
	}

	d2 := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := points[i][0] - points[j][0]
			dy := points[i][1] - points[j][1]
			dz := points[i][2] - points[j][2]
			d := dx*dx + dy*dy + dz*dz
			d2[i*n+j] = d
			d2[j*n+i] = d
		}
	}

	// Double centering: b_ij = -(d2_ij - rowMean_i - colMean_j + mean)/2.
	rowMean := make([]float64, n)
	var mean float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			rowMean[i] += d2[i*n+j]
		}
		rowMean[i] /= float64(n)
		mean += rowMean[i]
	}
	mean /= float64(n)

	b := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			b.SetSym(i, j, -0.5*(d2[i*n+j]-rowMean[i]-rowMean[j]+mean))
		}
	}

	var eig mat.EigenSym
	if !eig.Factorize(b, true) {
		return fallbackLayout(n)
	}
	vals := eig.Values(nil) // ascending
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	for d := 0; d < 2; d++ {
		col := n - 1 - d
		scale := math.Sqrt(math.Max(vals[col], 0))
		for i := 0; i < n; i++ {
			out[i][d] = vecs.At(i, col) * scale
		}
	}
	return out
}

// fallbackLayout spreads points evenly on a circle. Only used if the
// eigendecomposition fails to converge.
func fallbackLayout(n int) [][2]float64 {
	out := make([][2]float64, n)
	for i := range out {
		a := 2 * math.Pi * float64(i) / float64(n)
		out[i] = [2]float64{math.Cos(a), math.Sin(a)}
	}
	return out
}

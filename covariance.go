package clusters

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Covariance returns the unbiased sample covariance of the rows of x.
func Covariance(x mat.Matrix) *mat.SymDense {
	_, d := x.Dims()
	cov := mat.NewSymDense(d, nil)
	stat.CovarianceMatrix(cov, x, nil)
	return cov
}

// weightedCovariance computes sum_i w_i (x_i-mean)(x_i-mean)^T / sum_i w_i.
// The rows of x are scaled by sqrt(w_i) so the sum is a single outer product.
func weightedCovariance(x mat.Matrix, w, mean []float64, total float64) *mat.SymDense {
	n, d := x.Dims()
	centered := mat.NewDense(n, d, nil)
	row := make([]float64, d)

	for i := 0; i < n; i++ {
		mat.Row(row, i, x)
		s := math.Sqrt(w[i])
		for j := range row {
			row[j] = (row[j] - mean[j]) * s
		}
		centered.SetRow(i, row)
	}

	var cov mat.SymDense
	cov.SymOuterK(1/total, centered.T())
	return &cov
}

// regularize adds eps to the diagonal of cov in place.
func regularize(cov *mat.SymDense, eps float64) {
	if eps == 0 {
		return
	}
	for i := 0; i < cov.SymmetricDim(); i++ {
		cov.SetSym(i, i, cov.At(i, i)+eps)
	}
}

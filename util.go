package clusters

import (
	"gonum.org/v1/gonum/mat"
)

func squaredDistance(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += (a[i] - b[i]) * (a[i] - b[i])
	}
	return s
}

// toDense copies a rectangular training set into a dense matrix.
func toDense(data [][]float64) (*mat.Dense, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, ErrEmptySet
	}

	var (
		n = len(data)
		d = len(data[0])
		m = mat.NewDense(n, d, nil)
	)

	for i, row := range data {
		if len(row) != d {
			return nil, ErrRaggedSet
		}
		m.SetRow(i, row)
	}

	return m, nil
}

// rows returns a copy of m as a slice of rows.
func rows(m mat.Matrix) [][]float64 {
	r, _ := m.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = mat.Row(nil, i, m)
	}
	return out
}

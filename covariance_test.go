package clusters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCovarianceIsUnbiased(t *testing.T) {
	cov := Covariance(dense(t, blobs))

	assert.InDelta(t, 100.0/3, cov.At(0, 0), 1e-9)
	assert.InDelta(t, 1.0/3, cov.At(1, 1), 1e-9)
	assert.InDelta(t, 0, cov.At(0, 1), 1e-9)
}

func TestWeightedCovarianceUniformWeights(t *testing.T) {
	var (
		x    = dense(t, scattered)
		n, d = x.Dims()
		w    = make([]float64, n)
		mean = make([]float64, d)
	)

	for i := range w {
		w[i] = 1
	}
	for i := 0; i < n; i++ {
		for j := range mean {
			mean[j] += x.At(i, j) / float64(n)
		}
	}

	got := weightedCovariance(x, w, mean, float64(n))
	want := Covariance(x)

	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			assert.InDelta(t, want.At(i, j)*float64(n-1)/float64(n), got.At(i, j), 1e-9)
		}
	}
}

func TestRegularize(t *testing.T) {
	cov := Covariance(dense(t, blobs))

	regularize(cov, 0)
	assert.InDelta(t, 1.0/3, cov.At(1, 1), 1e-12)

	regularize(cov, 1)
	assert.InDelta(t, 100.0/3+1, cov.At(0, 0), 1e-9)
	assert.InDelta(t, 4.0/3, cov.At(1, 1), 1e-9)
	assert.InDelta(t, 0, cov.At(0, 1), 1e-9)
}

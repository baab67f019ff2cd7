package pca

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// Points on the line (t, 2t, 0).
func line() *mat.Dense {
	x := mat.NewDense(5, 3, nil)
	for i := 0; i < 5; i++ {
		x.SetRow(i, []float64{float64(i), 2 * float64(i), 0})
	}
	return x
}

func TestReduceLine(t *testing.T) {
	proj, err := Reduce(line(), 1)
	require.NoError(t, err)

	n, c := proj.Dims()
	assert.Equal(t, 5, n)
	assert.Equal(t, 1, c)

	for i := 0; i < n; i++ {
		want := math.Abs(float64(i)-2) * math.Sqrt(5)
		assert.InDelta(t, want, math.Abs(proj.At(i, 0)), 1e-9)
	}

	// Opposite ends of the line land on opposite sides.
	assert.Less(t, proj.At(0, 0)*proj.At(4, 0), 0.0)
}

func TestReduceInvalidComponents(t *testing.T) {
	_, err := Reduce(line(), 0)
	assert.ErrorIs(t, err, ErrInvalidComponents)

	_, err = Reduce(line(), 4)
	assert.ErrorIs(t, err, ErrInvalidComponents)
}

func TestVariances(t *testing.T) {
	vars, err := Variances(line())
	require.NoError(t, err)
	require.NotEmpty(t, vars)

	// All of the spread lies along the line.
	assert.Greater(t, vars[0], 9.0)
	for _, v := range vars[1:] {
		assert.InDelta(t, 0, v, 1e-9)
	}
}

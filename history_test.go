package clusters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryKeepsLastTwo(t *testing.T) {
	var h history

	_, _, ok := h.last()
	assert.False(t, ok)

	h.push([]float64{1})
	_, _, ok = h.last()
	assert.False(t, ok)

	h.push([]float64{2})
	h.push([]float64{3})

	cur, prev, ok := h.last()
	require.True(t, ok)
	assert.Equal(t, []float64{3}, cur)
	assert.Equal(t, []float64{2}, prev)

	h.reset()
	_, _, ok = h.last()
	assert.False(t, ok)
}

func TestConverged(t *testing.T) {
	m, err := EM(2, 10, 0, WithSeed(1))
	require.NoError(t, err)

	assert.False(t, m.converged())

	m.history.push([]float64{0.9, 0.8})
	assert.False(t, m.converged())

	// Identical vectors converge even with a zero tolerance.
	m.history.push([]float64{0.9, 0.8})
	assert.True(t, m.converged())

	m.history.push([]float64{0.9, 0.7})
	assert.False(t, m.converged())
}

func TestConvergedWithinTolerance(t *testing.T) {
	m, err := EM(2, 10, 0.6, WithSeed(1))
	require.NoError(t, err)

	m.history.push([]float64{0, 0})
	m.history.push([]float64{0.3, 0.4})
	assert.True(t, m.converged())

	m.history.push([]float64{0.6, 0.8})
	assert.True(t, m.converged())

	m.history.push([]float64{1.2, 1.6})
	assert.False(t, m.converged())
}

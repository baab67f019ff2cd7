// Package clusters groups numeric samples. The Gaussian mixture model fits a
// mixture of multivariate normals with Expectation-Maximization and exposes
// both hard assignments and per-cluster responsibilities.
package clusters

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

type DistanceFunc func(a, b []float64) float64

// ClusterParams holds the parameters of a single mixture component. Clusters
// are identified by their index in the model's parameter slice.
type ClusterParams struct {
	Mean       []float64
	Covariance *mat.SymDense
}

// Stats describes the last fit of a model.
type Stats struct {
	// Iterations is the number of expectation/maximization pairs performed.
	Iterations int

	// Converged is false when the iteration cap was hit first.
	Converged bool
}

type Clusterer interface {
	Learn(data [][]float64) error
}

type HardClusterer interface {
	Guesses() []int

	Predict(data [][]float64) ([]int, error)

	Clusterer
}

type SoftClusterer interface {
	Responsibilities() [][]float64

	Params() []ClusterParams

	Priors() []float64

	HardClusterer
}

var (
	EuclideanDistance = func(a, b []float64) float64 {
		return floats.Distance(a, b, 2)
	}
)

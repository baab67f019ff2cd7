package clusters

import (
	"github.com/rs/zerolog"
)

// Option adjusts a model at construction time.
type Option func(*GaussianMixtureModel)

// WithSeed makes initialization reproducible.
func WithSeed(seed uint64) Option {
	return func(m *GaussianMixtureModel) {
		m.cfg.Seed = &seed
	}
}

// WithLogger replaces the global zerolog logger used for diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(m *GaussianMixtureModel) {
		m.logger = l
	}
}

// WithWorkers bounds the number of clusters evaluated concurrently.
func WithWorkers(n int) Option {
	return func(m *GaussianMixtureModel) {
		m.cfg.Workers = n
	}
}

// WithRegularization sets the value added to the diagonal of every
// re-estimated covariance. Zero disables it.
func WithRegularization(eps float64) Option {
	return func(m *GaussianMixtureModel) {
		m.cfg.Regularization = eps
	}
}

func WithInit(s InitStrategy) Option {
	return func(m *GaussianMixtureModel) {
		m.cfg.Init = s
	}
}

func WithDistance(d DistanceFunc) Option {
	return func(m *GaussianMixtureModel) {
		m.distance = d
	}
}

package clusters

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var _ SoftClusterer = (*GaussianMixtureModel)(nil)

// GaussianMixtureModel clusters samples by fitting a mixture of multivariate
// Gaussians with Expectation-Maximization.
//
// A fit either converges, when the per-sample maximal responsibility stops
// moving by more than the tolerance, or stops at the iteration cap. Both
// outcomes yield assignments; Stats tells them apart.
type GaussianMixtureModel struct {
	cfg      Config
	logger   zerolog.Logger
	distance DistanceFunc
	rng      *rand.Rand

	history history

	// Model state. Access is synchronized so that accessors never observe a fit
	// in progress.
	mu             sync.RWMutex
	params         []ClusterParams
	priors         []float64
	responsibility *mat.Dense
	assignments    []int
	stats          Stats
	trained        bool
}

// EM returns a model with the given number of clusters, iteration cap and
// convergence tolerance; everything else takes its default.
func EM(clusters, iterations int, tolerance float64, opts ...Option) (*GaussianMixtureModel, error) {
	cfg := DefaultConfig()
	cfg.Clusters = clusters
	cfg.Iterations = iterations
	cfg.Tolerance = tolerance

	return NewGaussianMixtureModel(cfg, opts...)
}

func NewGaussianMixtureModel(cfg Config, opts ...Option) (*GaussianMixtureModel, error) {
	m := &GaussianMixtureModel{
		cfg:    cfg,
		logger: log.Logger,
	}

	for _, o := range opts {
		o(m)
	}

	if err := m.cfg.Validate(); err != nil {
		return nil, err
	}

	var seed uint64
	{
		if m.cfg.Seed != nil {
			seed = *m.cfg.Seed
		} else {
			seed = uint64(time.Now().UnixNano())
		}
	}

	m.rng = rand.New(rand.NewPCG(seed, seed))
	m.logger = m.logger.With().
		Str("component", "gmm").
		Int("k", m.cfg.Clusters).
		Logger()

	return m, nil
}

func (m *GaussianMixtureModel) Learn(data [][]float64) error {
	_, err := m.Predict(data)
	return err
}

// Predict fits the mixture to data and returns the cluster index of every
// sample.
func (m *GaussianMixtureModel) Predict(data [][]float64) ([]int, error) {
	x, err := toDense(data)
	if err != nil {
		return nil, err
	}

	return m.fit(x)
}

// PredictMatrix is Predict for data that already lives in a gonum matrix,
// such as the output of a dimensionality reduction.
func (m *GaussianMixtureModel) PredictMatrix(x mat.Matrix) ([]int, error) {
	if r, c := x.Dims(); r == 0 || c == 0 {
		return nil, ErrEmptySet
	}

	return m.fit(mat.DenseCopyOf(x))
}

func (m *GaussianMixtureModel) fit(x *mat.Dense) ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.trained = false

	if err := m.initialize(x); err != nil {
		return nil, err
	}

	n, d := x.Dims()
	m.logger.Debug().
		Int("samples", n).
		Int("features", d).
		Str("init", string(m.cfg.Init)).
		Msg("Initialized gaussians")

	var stats Stats

	for stats.Iterations < m.cfg.Iterations {
		if err := m.expectation(x); err != nil {
			return nil, err
		}

		if err := m.maximization(x); err != nil {
			return nil, err
		}

		stats.Iterations++

		if m.converged() {
			stats.Converged = true
			break
		}
	}

	// Assignments must reflect the parameters of the last maximization.
	if err := m.expectation(x); err != nil {
		return nil, err
	}

	m.stats = stats
	m.trained = true

	m.logger.Debug().
		Int("iterations", stats.Iterations).
		Bool("converged", stats.Converged).
		Msg("Fit finished")

	return append([]int(nil), m.assignments...), nil
}

// expectation turns likelihoods and priors into responsibilities, derives the
// hard assignments and records the per-sample maximal responsibility.
func (m *GaussianMixtureModel) expectation(x *mat.Dense) error {
	l, err := m.likelihoods(x)
	if err != nil {
		return err
	}

	var (
		n, k        = l.Dims()
		resp        = mat.NewDense(n, k, nil)
		assignments = make([]int, n)
		maxima      = make([]float64, n)
	)

	for i := 0; i < n; i++ {
		row := resp.RawRowView(i)
		floats.MulTo(row, l.RawRowView(i), m.priors)

		s := floats.Sum(row)
		if !(s > 0) {
			return clusterError(ErrDegenerateSample, -1, i)
		}

		for j := range row {
			row[j] /= s
		}

		// MaxIdx breaks ties towards the lowest index.
		j := floats.MaxIdx(row)
		assignments[i] = j
		maxima[i] = row[j]
	}

	m.responsibility = resp
	m.assignments = assignments
	m.history.push(maxima)

	return nil
}

// maximization re-estimates means, covariances and priors from the current
// responsibilities. Nothing is replaced unless every cluster succeeds.
func (m *GaussianMixtureModel) maximization(x *mat.Dense) error {
	var (
		n, d   = x.Dims()
		k      = m.cfg.Clusters
		params = make([]ClusterParams, k)
		priors = make([]float64, k)
	)

	err := m.forEachCluster(func(j int) error {
		r := mat.Col(nil, j, m.responsibility)

		total := floats.Sum(r)
		if !(total > 0) {
			return clusterError(ErrEmptyCluster, j, -1)
		}

		mean := make([]float64, d)
		for i := 0; i < n; i++ {
			floats.AddScaled(mean, r[i], x.RawRowView(i))
		}
		floats.Scale(1/total, mean)

		cov := weightedCovariance(x, r, mean, total)
		regularize(cov, m.cfg.Regularization)

		params[j] = ClusterParams{Mean: mean, Covariance: cov}
		priors[j] = total / float64(n)

		return nil
	})
	if err != nil {
		return err
	}

	m.params = params
	m.priors = priors

	return nil
}

// Guesses returns the assignments of the last successful fit, or nil.
func (m *GaussianMixtureModel) Guesses() []int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.trained {
		return nil
	}

	return append([]int(nil), m.assignments...)
}

// Responsibilities returns a copy of the n x k responsibility matrix of the
// last successful fit, or nil.
func (m *GaussianMixtureModel) Responsibilities() [][]float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.trained {
		return nil
	}

	return rows(m.responsibility)
}

func (m *GaussianMixtureModel) Params() []ClusterParams {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.trained {
		return nil
	}

	out := make([]ClusterParams, len(m.params))
	for i, p := range m.params {
		c := mat.NewSymDense(p.Covariance.SymmetricDim(), nil)
		c.CopySym(p.Covariance)

		out[i] = ClusterParams{
			Mean:       append([]float64(nil), p.Mean...),
			Covariance: c,
		}
	}

	return out
}

func (m *GaussianMixtureModel) Priors() []float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.trained {
		return nil
	}

	return append([]float64(nil), m.priors...)
}

// Stats returns the iteration count and convergence of the last successful
// fit. It returns ErrNotTrained before one.
func (m *GaussianMixtureModel) Stats() (Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.trained {
		return Stats{}, ErrNotTrained
	}

	return m.stats, nil
}

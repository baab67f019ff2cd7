package clusters

import (
	"gonum.org/v1/gonum/mat"
)

// initialize sets uniform priors, picks the initial means and gives every
// cluster the covariance of the whole training set.
func (m *GaussianMixtureModel) initialize(x *mat.Dense) error {
	n, d := x.Dims()
	if n == 0 || d == 0 {
		return ErrEmptySet
	}

	k := m.cfg.Clusters
	if k < 1 {
		return ErrZeroClusters
	}

	var means [][]float64
	switch m.cfg.Init {
	case InitKMeansPlusPlus:
		means = m.seedPlusPlus(x)
	default:
		means = m.seedRandom(x)
	}

	cov := Covariance(x)

	m.params = make([]ClusterParams, k)
	m.priors = make([]float64, k)

	for i := 0; i < k; i++ {
		c := mat.NewSymDense(d, nil)
		c.CopySym(cov)

		m.params[i] = ClusterParams{Mean: means[i], Covariance: c}
		m.priors[i] = 1 / float64(k)
	}

	m.responsibility = nil
	m.assignments = nil
	m.history.reset()

	return nil
}

// seedRandom draws every mean independently from the rows of x.
func (m *GaussianMixtureModel) seedRandom(x *mat.Dense) [][]float64 {
	n, _ := x.Dims()
	means := make([][]float64, m.cfg.Clusters)

	for i := range means {
		means[i] = mat.Row(nil, m.rng.IntN(n), x)
	}

	return means
}

// seedPlusPlus picks the first mean uniformly and every following one with
// probability proportional to its squared distance from the closest mean
// already chosen.
func (m *GaussianMixtureModel) seedPlusPlus(x *mat.Dense) [][]float64 {
	var (
		n, _  = x.Dims()
		means = make([][]float64, m.cfg.Clusters)
		d     = make([]float64, n)
	)

	weight := squaredDistance
	if m.distance != nil {
		weight = func(a, b []float64) float64 {
			l := m.distance(a, b)
			return l * l
		}
	}

	means[0] = mat.Row(nil, m.rng.IntN(n), x)

	for i := 1; i < len(means); i++ {
		var s float64

		for j := 0; j < n; j++ {
			row := x.RawRowView(j)

			l := weight(means[0], row)
			for g := 1; g < i; g++ {
				if f := weight(means[g], row); f < l {
					l = f
				}
			}

			d[j] = l
			s += l
		}

		// Every row coincides with a chosen mean.
		if s == 0 {
			means[i] = mat.Row(nil, m.rng.IntN(n), x)
			continue
		}

		var (
			t = m.rng.Float64() * s
			k = 0
		)

		for s = d[0]; s < t && k < n-1; s += d[k] {
			k++
		}

		means[i] = mat.Row(nil, k, x)
	}

	return means
}

package clusters

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// gaussian is a multivariate normal prepared for repeated density evaluation:
// the inverse covariance and the normalizing coefficient are computed once.
type gaussian struct {
	mean  []float64
	inv   mat.Dense
	coeff float64
}

func newGaussian(p ClusterParams) (*gaussian, error) {
	var (
		d   = len(p.Mean)
		det = mat.Det(p.Covariance)
	)

	// Also rejects NaN, which a one-sample covariance produces.
	if !(det > 0) {
		return nil, fmt.Errorf("%w: determinant %g", ErrSingularCovariance, det)
	}

	g := &gaussian{mean: p.Mean}
	if err := g.inv.Inverse(p.Covariance); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularCovariance, err)
	}

	g.coeff = 1 / (math.Pow(2*math.Pi, float64(d)/2) * math.Sqrt(det))

	return g, nil
}

// density writes the density of every row of x into dst.
func (g *gaussian) density(dst []float64, x *mat.Dense) {
	var (
		n, d = x.Dims()
		diff = make([]float64, d)
		v    = mat.NewVecDense(d, diff)
	)

	for i := 0; i < n; i++ {
		floats.SubTo(diff, x.RawRowView(i), g.mean)
		dst[i] = g.coeff * math.Exp(-0.5*mat.Inner(v, &g.inv, v))
	}
}

// likelihoods evaluates every sample under every cluster and returns the
// n x k likelihood matrix.
func (m *GaussianMixtureModel) likelihoods(x *mat.Dense) (*mat.Dense, error) {
	var (
		n, _ = x.Dims()
		k    = len(m.params)
		cols = make([][]float64, k)
	)

	err := m.forEachCluster(func(j int) error {
		g, err := newGaussian(m.params[j])
		if err != nil {
			return clusterError(err, j, -1)
		}

		cols[j] = make([]float64, n)
		g.density(cols[j], x)

		return nil
	})
	if err != nil {
		return nil, err
	}

	l := mat.NewDense(n, k, nil)
	for j, col := range cols {
		l.SetCol(j, col)
	}

	return l, nil
}

// forEachCluster runs fn for every cluster index. Clusters are independent
// within a step, so with more than one worker they are fanned out.
func (m *GaussianMixtureModel) forEachCluster(fn func(j int) error) error {
	k := m.cfg.Clusters

	if m.cfg.Workers <= 1 {
		for j := 0; j < k; j++ {
			if err := fn(j); err != nil {
				return err
			}
		}
		return nil
	}

	var g errgroup.Group
	g.SetLimit(m.cfg.Workers)

	for j := 0; j < k; j++ {
		g.Go(func() error {
			return fn(j)
		})
	}

	return g.Wait()
}

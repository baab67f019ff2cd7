package clusters

// history keeps the two most recent max-responsibility vectors, which is all
// the convergence check ever compares.
type history struct {
	buf  [2][]float64
	head int
	size int
}

func (h *history) push(v []float64) {
	h.head ^= 1
	h.buf[h.head] = v
	if h.size < 2 {
		h.size++
	}
}

// last returns the newest and the previous entry.
func (h *history) last() (cur, prev []float64, ok bool) {
	if h.size < 2 {
		return nil, nil, false
	}
	return h.buf[h.head], h.buf[h.head^1], true
}

func (h *history) reset() {
	h.buf = [2][]float64{}
	h.head = 0
	h.size = 0
}

// converged reports whether the last two entries are within tol of each
// other. It never converges before two expectation steps were recorded.
func (m *GaussianMixtureModel) converged() bool {
	cur, prev, ok := m.history.last()
	if !ok {
		return false
	}

	diff := EuclideanDistance(cur, prev)

	m.logger.Debug().
		Float64("diff", diff).
		Float64("tol", m.cfg.Tolerance).
		Msg("Likelihood update")

	return diff <= m.cfg.Tolerance
}

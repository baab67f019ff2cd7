package clusters

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfiguration = errors.New("Invalid configuration")
	ErrSingularCovariance   = errors.New("Covariance matrix is singular")
	ErrDegenerateSample     = errors.New("Sample has zero likelihood under every cluster")
	ErrEmptyCluster         = errors.New("Cluster carries zero responsibility")

	ErrEmptySet       = fmt.Errorf("%w: empty training set", ErrInvalidConfiguration)
	ErrRaggedSet      = fmt.Errorf("%w: rows of the training set differ in length", ErrInvalidConfiguration)
	ErrZeroClusters   = fmt.Errorf("%w: number of clusters cannot be less than 1", ErrInvalidConfiguration)
	ErrZeroIterations = fmt.Errorf("%w: number of iterations cannot be less than 1", ErrInvalidConfiguration)
	ErrNegativeTol    = fmt.Errorf("%w: tolerance cannot be negative", ErrInvalidConfiguration)
	ErrNegativeReg    = fmt.Errorf("%w: regularization cannot be negative", ErrInvalidConfiguration)
	ErrUnknownInit    = fmt.Errorf("%w: unknown initialization strategy", ErrInvalidConfiguration)
	ErrNotTrained     = errors.New("You need to train the algorithm first")
	ErrInvalidRange   = errors.New("Invalid column range")
)

// ClusterError reports a numerical failure tied to a cluster, a sample or
// both. Either index is -1 when the failure is not specific to it.
//
// The sentinel cause can be matched with errors.Is.
type ClusterError struct {
	Cluster int
	Sample  int
	cause   error
}

func (e *ClusterError) Error() string {
	switch {
	case e.Cluster >= 0 && e.Sample >= 0:
		return fmt.Sprintf("%s (cluster %d, sample %d)", e.cause, e.Cluster, e.Sample)
	case e.Sample >= 0:
		return fmt.Sprintf("%s (sample %d)", e.cause, e.Sample)
	default:
		return fmt.Sprintf("%s (cluster %d)", e.cause, e.Cluster)
	}
}

func (e *ClusterError) Unwrap() error { return e.cause }

func clusterError(cause error, cluster, sample int) error {
	return &ClusterError{Cluster: cluster, Sample: sample, cause: cause}
}

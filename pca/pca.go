// Package pca reduces the width of a training set before clustering by
// projecting it onto its leading principal components.
package pca

import (
	"errors"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrInvalidComponents = errors.New("Number of components must be between 1 and the number of features")
	ErrDecomposition     = errors.New("Principal component decomposition failed")
)

// Reduce centers the columns of x and projects every row onto the first
// components principal directions. The result has one row per row of x.
func Reduce(x mat.Matrix, components int) (*mat.Dense, error) {
	n, d := x.Dims()
	if components < 1 || components > d {
		return nil, ErrInvalidComponents
	}

	var pc stat.PC
	if ok := pc.PrincipalComponents(x, nil); !ok {
		return nil, ErrDecomposition
	}

	var vecs mat.Dense
	pc.VectorsTo(&vecs)

	// Fewer samples than features yield fewer directions.
	if _, c := vecs.Dims(); components > c {
		return nil, ErrInvalidComponents
	}

	centered := mat.DenseCopyOf(x)
	for j := 0; j < d; j++ {
		mean := stat.Mean(mat.Col(nil, j, x), nil)
		for i := 0; i < n; i++ {
			centered.Set(i, j, centered.At(i, j)-mean)
		}
	}

	var proj mat.Dense
	proj.Mul(centered, vecs.Slice(0, d, 0, components))

	return &proj, nil
}

// Variances returns the variance explained by each principal component of x,
// largest first.
func Variances(x mat.Matrix) ([]float64, error) {
	var pc stat.PC
	if ok := pc.PrincipalComponents(x, nil); !ok {
		return nil, ErrDecomposition
	}
	return pc.VarsTo(nil), nil
}

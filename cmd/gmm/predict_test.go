package main

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpraski/clusters"
	"github.com/mpraski/clusters/pca"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))

	err := cmd.Execute()
	return out.String(), err
}

func parseLabels(t *testing.T, out string) []int {
	t.Helper()

	var ls []int
	for _, line := range strings.Fields(out) {
		l, err := strconv.Atoi(line)
		require.NoError(t, err)
		ls = append(ls, l)
	}
	return ls
}

func TestPredictFromFile(t *testing.T) {
	out, err := execute(t, "", "predict", "--input", "../../testdata/blobs.csv", "--start", "0", "--end", "1", "--k", "2", "--seed", "1")
	require.NoError(t, err)

	ls := parseLabels(t, out)
	require.Len(t, ls, 4)
	for _, l := range ls {
		assert.Contains(t, []int{0, 1}, l)
	}
}

func TestPredictFromStdinWithReduction(t *testing.T) {
	in := "0,0\n0,1\n10,0\n10,1\n"

	out, err := execute(t, in, "predict", "--components", "1", "--k", "2", "--seed", "4")
	require.NoError(t, err)

	ls := parseLabels(t, out)
	require.Len(t, ls, 4)
	assert.Equal(t, ls[0], ls[1])
	assert.Equal(t, ls[2], ls[3])
}

func TestPredictWithConfigFile(t *testing.T) {
	out, err := execute(t, "", "predict", "--input", "../../testdata/blobs.csv", "--config", "../../testdata/gmm.yaml", "--k", "1")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0}, parseLabels(t, out))
}

func TestPredictErrors(t *testing.T) {
	_, err := execute(t, "", "predict", "--input", "../../testdata/missing.csv")
	assert.Error(t, err)

	_, err = execute(t, "", "predict", "--input", "../../testdata/blobs.csv", "--k", "0")
	assert.ErrorIs(t, err, clusters.ErrZeroClusters)

	_, err = execute(t, "0,0\n1,1\n", "predict", "--components", "3")
	assert.ErrorIs(t, err, pca.ErrInvalidComponents)

	_, err = execute(t, "1,1\n1,1\n1,1\n", "predict", "--seed", "1")
	assert.ErrorIs(t, err, clusters.ErrSingularCovariance)
}

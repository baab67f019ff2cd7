package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/mpraski/clusters"
	"github.com/mpraski/clusters/pca"
)

func newPredictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Print the cluster index of every row",
		Long: `Reads columns --start through --end of every row of --input ("-" for stdin),
optionally reduces them to --components principal components and prints one cluster index per line.
Flags override values from --config.`,
		RunE: runPredict,
	}

	defaults := clusters.DefaultConfig()

	cmd.Flags().String("input", "-", "CSV file to cluster, - for stdin")
	cmd.Flags().Int("start", 0, "First column to read")
	cmd.Flags().Int("end", 1, "Last column to read (inclusive)")
	cmd.Flags().String("config", "", "YAML model configuration")
	cmd.Flags().Int("k", defaults.Clusters, "Number of clusters")
	cmd.Flags().Int("max-iterations", defaults.Iterations, "Maximum number of EM iterations")
	cmd.Flags().Float64("tolerance", defaults.Tolerance, "Convergence tolerance")
	cmd.Flags().Float64("regularization", defaults.Regularization, "Value added to covariance diagonals, 0 to disable")
	cmd.Flags().String("init", string(defaults.Init), "Initialization strategy (random|kmeans++)")
	cmd.Flags().Uint64("seed", 0, "Seed for initialization (default: time based)")
	cmd.Flags().Int("workers", defaults.Workers, "Clusters evaluated concurrently")
	cmd.Flags().Int("components", 0, "Reduce to this many principal components first, 0 to keep all columns")

	return cmd
}

func runPredict(cmd *cobra.Command, _ []string) error {
	cfg, err := modelConfig(cmd)
	if err != nil {
		return err
	}

	var (
		input, _      = cmd.Flags().GetString("input")
		start, _      = cmd.Flags().GetInt("start")
		end, _        = cmd.Flags().GetInt("end")
		components, _ = cmd.Flags().GetInt("components")
	)

	data, err := readData(cmd, input, start, end)
	if err != nil {
		return err
	}

	log.Debug().
		Str("input", input).
		Int("rows", len(data)).
		Msg("Data loaded")

	model, err := clusters.NewGaussianMixtureModel(cfg)
	if err != nil {
		return err
	}

	var labels []int
	if components > 0 {
		labels, err = predictReduced(model, data, components)
	} else {
		labels, err = model.Predict(data)
	}
	if err != nil {
		return err
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	for _, l := range labels {
		fmt.Fprintln(w, l)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	stats, err := model.Stats()
	if err != nil {
		return err
	}

	log.Info().
		Int("samples", len(labels)).
		Int("k", cfg.Clusters).
		Int("iterations", stats.Iterations).
		Bool("converged", stats.Converged).
		Msg("Clustering finished")

	return nil
}

// modelConfig layers explicitly set flags over the config file, if any.
func modelConfig(cmd *cobra.Command) (clusters.Config, error) {
	var (
		flags = cmd.Flags()
		cfg   = clusters.DefaultConfig()
	)

	if path, _ := flags.GetString("config"); path != "" {
		var err error
		if cfg, err = clusters.LoadConfig(path); err != nil {
			return cfg, err
		}
	}

	if flags.Changed("k") {
		cfg.Clusters, _ = flags.GetInt("k")
	}
	if flags.Changed("max-iterations") {
		cfg.Iterations, _ = flags.GetInt("max-iterations")
	}
	if flags.Changed("tolerance") {
		cfg.Tolerance, _ = flags.GetFloat64("tolerance")
	}
	if flags.Changed("regularization") {
		cfg.Regularization, _ = flags.GetFloat64("regularization")
	}
	if flags.Changed("init") {
		s, _ := flags.GetString("init")
		cfg.Init = clusters.InitStrategy(s)
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("seed") {
		seed, _ := flags.GetUint64("seed")
		cfg.Seed = &seed
	}

	return cfg, cfg.Validate()
}

func readData(cmd *cobra.Command, input string, start, end int) ([][]float64, error) {
	importer := clusters.NewCsvImporter()

	if input == "-" {
		return importer.Read(cmd.InOrStdin(), start, end)
	}

	if _, err := os.Stat(input); err != nil {
		return nil, fmt.Errorf("input %s: %w", input, err)
	}

	return importer.Import(input, start, end)
}

func predictReduced(model *clusters.GaussianMixtureModel, data [][]float64, components int) ([]int, error) {
	if len(data) == 0 {
		return nil, clusters.ErrEmptySet
	}

	x := mat.NewDense(len(data), len(data[0]), nil)
	for i, row := range data {
		x.SetRow(i, row)
	}

	reduced, err := pca.Reduce(x, components)
	if err != nil {
		return nil, err
	}

	_, d := reduced.Dims()
	log.Debug().Int("components", d).Msg("Data reduced")

	return model.PredictMatrix(reduced)
}

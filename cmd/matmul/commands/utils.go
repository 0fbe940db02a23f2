package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matmul/internal/config"
	"github.com/katalvlaran/matmul/internal/logging"
	"github.com/katalvlaran/matmul/matrix"
	"github.com/katalvlaran/matmul/multiply"
)

// shapeFlags are per-invocation overrides of the generate section.
type shapeFlags struct {
	rows, inner, cols int
	seed              uint64
	workers           int
}

func (f *shapeFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.rows, "rows", 0, "rows of the left operand")
	cmd.Flags().IntVar(&f.inner, "inner", 0, "columns of the left / rows of the right operand")
	cmd.Flags().IntVar(&f.cols, "cols", 0, "columns of the right operand")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "random seed")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "parallel worker count (0 = GOMAXPROCS)")
}

// apply copies explicitly set flags over cfg and re-validates.
func (f *shapeFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("rows") {
		cfg.Generate.Rows = f.rows
	}
	if flags.Changed("inner") {
		cfg.Generate.Inner = f.inner
	}
	if flags.Changed("cols") {
		cfg.Generate.Cols = f.cols
	}
	if flags.Changed("seed") {
		cfg.Generate.Seed = f.seed
	}
	if flags.Changed("workers") {
		cfg.Multiply.Workers = f.workers
	}

	return cfg.Validate()
}

// generateOperands draws left (Rows×Inner) then right (Inner×Cols) from one seeded source.
func generateOperands(g config.GenerateConfig) (left, right *matrix.Dense, err error) {
	rng := matrix.NewSource(g.Seed)
	left, err = matrix.GenerateMatrix(g.Rows, g.Inner, rng, int32(g.Min), int32(g.Max))
	if err != nil {
		return nil, nil, fmt.Errorf("generating left operand: %w", err)
	}
	right, err = matrix.GenerateMatrix(g.Inner, g.Cols, rng, int32(g.Min), int32(g.Max))
	if err != nil {
		return nil, nil, fmt.Errorf("generating right operand: %w", err)
	}

	return left, right, nil
}

// newMultiplier builds the multiplier for kind, wired to the CLI logger.
func newMultiplier(kind multiply.Kind, cfg *config.Config) (multiply.Multiplier, error) {
	return multiply.New(kind,
		multiply.WithWorkers(cfg.Multiply.Workers),
		multiply.WithLogger(logging.Get()),
	)
}

// checksum folds every element into a wrapping int64 sum.
func checksum(m *matrix.Dense) int64 {
	var sum int64
	m.Do(func(_, _ int, v int32) bool {
		sum += int64(v)
		return true
	})

	return sum
}

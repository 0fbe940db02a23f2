package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matmul/internal/logging"
	"github.com/katalvlaran/matmul/matrix"
	"github.com/katalvlaran/matmul/multiply"
)

// errShapeRejected is returned when a multiplier refuses the operands.
var errShapeRejected = errors.New("multiplier rejected operand shapes")

func newRunCmd(a *app) *cobra.Command {
	var (
		flags shapeFlags
		kind  string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Multiply two seeded random matrices",
		Long: `Generate a rows×inner and an inner×cols matrix from the seed, multiply
them with the selected algorithm and print the elapsed time and a checksum
of the result.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if cmd.Flags().Changed("kind") {
				cfg.Multiply.Kind = kind
			}
			if err := flags.apply(cmd, cfg); err != nil {
				return err
			}

			left, right, err := generateOperands(cfg.Generate)
			if err != nil {
				return err
			}
			m, err := newMultiplier(cfg.Kind(), cfg)
			if err != nil {
				return err
			}

			result, elapsed, err := timedMultiply(m, left, right)
			if err != nil {
				return err
			}
			logging.WithField("kind", cfg.Kind()).Infof("multiplied %dx%d by %dx%d in %s",
				left.Rows(), left.Cols(), right.Rows(), right.Cols(), elapsed)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "kind:     %s\n", cfg.Kind())
			fmt.Fprintf(out, "shape:    %dx%d\n", result.Rows(), result.Cols())
			fmt.Fprintf(out, "elapsed:  %s\n", elapsed)
			fmt.Fprintf(out, "checksum: %d\n", checksum(result))

			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&kind, "kind", "", "multiplier kind: serial or parallel")

	return cmd
}

// timedMultiply allocates the result and multiplies into it.
func timedMultiply(m multiply.Multiplier, left, right *matrix.Dense) (*matrix.Dense, time.Duration, error) {
	rows, cols, ok := matrix.VerifyMultiplication(left, right)
	if !ok {
		return nil, 0, errShapeRejected
	}
	result, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, 0, err
	}

	start := time.Now()
	if !m.Multiply(left, right, result) {
		return nil, 0, errShapeRejected
	}

	return result, time.Since(start), nil
}

package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matmul/internal/logging"
	"github.com/katalvlaran/matmul/multiply"
)

// errMismatch is returned when serial and parallel results differ.
var errMismatch = errors.New("serial and parallel results differ")

func newVerifyCmd(a *app) *cobra.Command {
	var flags shapeFlags

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that serial and parallel multiplication agree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if err := flags.apply(cmd, cfg); err != nil {
				return err
			}

			left, right, err := generateOperands(cfg.Generate)
			if err != nil {
				return err
			}

			serial, err := newMultiplier(multiply.KindSerial, cfg)
			if err != nil {
				return err
			}
			parallel, err := newMultiplier(multiply.KindParallel, cfg)
			if err != nil {
				return err
			}

			want, serialTime, err := timedMultiply(serial, left, right)
			if err != nil {
				return err
			}
			got, parallelTime, err := timedMultiply(parallel, left, right)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "serial:   %s\n", serialTime)
			fmt.Fprintf(out, "parallel: %s\n", parallelTime)

			mismatched := 0
			for row := 0; row < want.Rows(); row++ {
				eq, err := want.RowEqual(got, row)
				if err != nil {
					return err
				}
				if !eq {
					mismatched++
					logging.WithField("row", row).Errorf("row mismatch")
				}
			}
			if mismatched > 0 {
				fmt.Fprintf(out, "mismatched rows: %d of %d\n", mismatched, want.Rows())
				return errMismatch
			}
			fmt.Fprintf(out, "ok: %d rows identical\n", want.Rows())

			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

// Package commands implements the matmul command tree.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/matmul/internal/config"
	"github.com/katalvlaran/matmul/internal/logging"
)

// Version is the CLI version reported by `matmul version`.
const Version = "0.1.0"

// app carries state shared by subcommands of one invocation.
type app struct {
	cfgFile string
	verbose bool
	cfg     *config.Config
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "matmul",
		Short: "Dense int32 matrix multiplication, serial or parallel",
		Long: `matmul generates seeded random int32 matrices and multiplies them with
either the serial or the parallel (worker pool) algorithm.

Both algorithms produce bit-identical results; "verify" checks that claim
for the configured shape and seed.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.matmul/matmul.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(
		newRunCmd(a),
		newVerifyCmd(a),
		newInfoCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// load reads configuration and initializes logging.
func (a *app) load() error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Init(cfg.Logging.Level, cfg.Logging.File, cfg.Logging.Console); err != nil {
		return err
	}
	a.cfg = cfg
	logging.Debugf("configuration loaded: %+v", *cfg)

	return nil
}

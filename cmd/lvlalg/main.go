// SPDX-License-Identifier: MIT

// Command lvlalg evaluates linear-algebra workloads described in YAML.
//
//	lvlalg eval workload.yaml
//	lvlalg eval -f yaml - < workload.yaml
//	LVLALG_LOG_LEVEL=debug lvlalg eval workload.yaml
package main

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries the state resolved in PersistentPreRunE.
type app struct {
	cfg *Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "lvlalg",
		Short: "lvlalg - lazy dense/packed/sparse linear algebra",
		Long: `lvlalg evaluates matrix and vector expressions over dense, packed and
sparse containers, choosing a traversal per storage category and detecting
aliasing between a destination and its expression.

Available commands:
  eval     - Evaluate a YAML workload
  version  - Show version information

Examples:
  lvlalg eval workload.yaml
  lvlalg eval --format yaml --noalias workload.yaml`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(cmd)
			if err != nil {
				return err
			}
			log, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogJSON)
			if err != nil {
				return err
			}
			a.cfg, a.log = cfg, log

			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	bindFlags(root)
	root.AddCommand(newEvalCmd(a), newVersionCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newEvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <workload.yaml | ->",
		Short: "Evaluate a YAML workload",
		Long: `Evaluate the steps of a workload file in order and print the targets.

A workload declares operands (dense, banded, lower, upper, mapped, compressed,
coordinate, vector, sparse-vector) and steps. Each step assigns ("=") or
accumulates ("+=", "-=", ".*=", "./=") an expression into a target:

  operands:
    A: {kind: dense, data: [[1, 2], [3, 4]]}
  steps:
    - {target: A, expr: {add: [A, {trans: A}]}}

Operators: add sub emul ediv prod outer inner neg conj trans herm
scale div row col range.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := LoadWorkload(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			s, err := NewSession(w, a.cfg.NoAlias, a.log)
			if err != nil {
				return err
			}
			if err = s.Run(w.Steps); err != nil {
				return err
			}
			a.log.Info("workload evaluated", zap.Int("steps", len(w.Steps)), zap.Strings("targets", s.Targets()))
			res, err := s.Results(w.Print)
			if err != nil {
				return err
			}

			return Render(cmd.OutOrStdout(), a.cfg.Format, res)
		},
	}
}

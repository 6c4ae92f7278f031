package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/duopath/instance"
	"github.com/katalvlaran/duopath/runner"
	"github.com/katalvlaran/duopath/solver"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		strategy string
		capped   bool
		verify   bool
	)
	cmd := &cobra.Command{
		Use:   "solve <file.in>",
		Short: "Solve one instance and print k and both paths",
		Long: `Solve one instance file and print the minimum number of steps k,
then the vertices of agent A and of agent B (1-indexed), one path per line.
An infeasible instance prints only k = T+1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("strategy") {
				strategy = a.cfg.Solver.Strategy
			}
			if !cmd.Flags().Changed("capped") {
				capped = a.cfg.Solver.Capped
			}
			if !cmd.Flags().Changed("verify") {
				verify = a.cfg.Solver.Verify
			}
			s, err := solver.ParseStrategy(strategy)
			if err != nil {
				return err
			}

			in, err := instance.Load(args[0])
			if err != nil {
				return err
			}
			out, err := runner.Solve(cmd.Context(), in, s, capped)
			if err != nil {
				return err
			}
			if verify {
				if err = solver.Verify(out.Problem, out.Result); err != nil {
					return err
				}
			}
			a.logger.Info("instance solved",
				"file", in.Name,
				"strategy", s.String(),
				"k", out.Result.K,
				"feasible", out.Result.Feasible,
				"oracle", out.OracleTime,
				"search", out.SearchTime,
				"expanded", out.Result.Stats.Expanded,
			)

			return printResult(cmd.OutOrStdout(), out.Result)
		},
	}

	f := cmd.Flags()
	f.StringVar(&strategy, "strategy", "", "unidirectional, bidirectional, bidirectional-early-exit or halfstep")
	f.BoolVar(&capped, "capped", false, "cap the distance oracle at D (exact rows for the targets)")
	f.BoolVar(&verify, "verify", false, "check the returned paths before printing")

	return cmd
}

func printResult(w io.Writer, r solver.Result) error {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(r.K))
	sb.WriteByte('\n')
	if r.Feasible {
		writeInts(&sb, r.PathA)
		writeInts(&sb, r.PathB)
	}
	_, err := fmt.Fprint(w, sb.String())

	return err
}

func writeInts(sb *strings.Builder, vs []int) {
	for i, v := range vs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte('\n')
}

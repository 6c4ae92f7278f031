package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/duopath/runner"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		folder, out, xlsxOut, yamlOut, metricsFile, strategy string
		workers                                              int
		timeout                                              time.Duration
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Solve every .in file of a folder and write a report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			f := cmd.Flags()
			if f.Changed("folder") {
				cfg.Batch.Folder = folder
			}
			if f.Changed("out") {
				cfg.Batch.CSV = out
			}
			if f.Changed("xlsx") {
				cfg.Batch.XLSX = xlsxOut
			}
			if f.Changed("yaml") {
				cfg.Batch.YAML = yamlOut
			}
			if f.Changed("metrics-file") {
				cfg.Batch.MetricsFile = metricsFile
			}
			if f.Changed("workers") {
				cfg.Batch.Workers = workers
			}
			if f.Changed("timeout") {
				cfg.Batch.Timeout = timeout
			}
			if f.Changed("strategy") {
				cfg.Solver.Strategy = strategy
			}

			r, err := runner.New(cfg, a.logger)
			if err != nil {
				return err
			}
			b, err := r.Run(cmd.Context())
			if werr := r.WriteReports(b); werr != nil && err == nil {
				err = werr
			}

			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&folder, "folder", "", "folder with .in (and optional .out) files")
	f.StringVar(&out, "out", "", "CSV report path (empty disables)")
	f.StringVar(&xlsxOut, "xlsx", "", "xlsx workbook report path")
	f.StringVar(&yamlOut, "yaml", "", "YAML report path")
	f.StringVar(&metricsFile, "metrics-file", "", "Prometheus textfile path")
	f.StringVar(&strategy, "strategy", "", "search strategy")
	f.IntVar(&workers, "workers", 1, "instances solved in parallel")
	f.DurationVar(&timeout, "timeout", 0, "per-instance time limit (0 = none)")

	return cmd
}

// SPDX-License-Identifier: MIT
// Package: duopath/runner
//
// runner.go - folder batches on a bounded worker pool.

package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"go.opentelemetry.io/otel/codes"

	"github.com/katalvlaran/duopath/config"
	"github.com/katalvlaran/duopath/instance"
	"github.com/katalvlaran/duopath/report"
	"github.com/katalvlaran/duopath/solver"
)

// Runner executes batches with one validated configuration.
type Runner struct {
	cfg      config.Config
	strategy solver.Strategy
	logger   *slog.Logger
	metrics  *Metrics
}

// Batch is the result of Run.
type Batch struct {
	RunID   string
	Started time.Time
	Rows    []report.Row
}

// New validates cfg and returns a Runner. A nil logger discards output.
func New(cfg config.Config, logger *slog.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s, err := solver.ParseStrategy(cfg.Solver.Strategy)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Runner{cfg: cfg, strategy: s, logger: logger, metrics: NewMetrics()}, nil
}

// Strategy returns the configured search strategy.
func (r *Runner) Strategy() solver.Strategy { return r.strategy }

// Metrics returns the runner's Prometheus collectors.
func (r *Runner) Metrics() *Metrics { return r.metrics }

// Files lists the *.in files of the batch folder in name order.
func (r *Runner) Files() ([]string, error) {
	entries, err := os.ReadDir(r.cfg.Batch.Folder)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.cfg.Batch.Folder, err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".in") {
			continue
		}
		out = append(out, filepath.Join(r.cfg.Batch.Folder, e.Name()))
	}

	return out, nil
}

// Run solves every file of the folder. Rows keep the Files order whatever
// the worker count. The error is non-nil only when listing fails or ctx ends;
// the rows gathered so far are returned with it.
func (r *Runner) Run(ctx context.Context) (Batch, error) {
	b := Batch{RunID: uuid.NewString(), Started: time.Now()}
	files, err := r.Files()
	if err != nil {
		return b, err
	}

	ctx, span := startBatchSpan(ctx, b.RunID, len(files))
	defer span.End()

	r.logger.Info("batch started",
		"run_id", b.RunID,
		"folder", r.cfg.Batch.Folder,
		"files", len(files),
		"strategy", r.strategy.String(),
		"workers", r.cfg.Batch.Workers,
	)

	b.Rows = make([]report.Row, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Batch.Workers)
	for i, path := range files {
		g.Go(func() error {
			b.Rows[i] = r.RunFile(gctx, path, b.RunID)
			return nil
		})
	}
	_ = g.Wait()

	sum := report.Summarize(b.Rows)
	r.logger.Info("batch finished",
		"run_id", b.RunID,
		"total", sum.Total,
		"feasible", sum.Feasible,
		"infeasible", sum.Infeasible,
		"failed", sum.Failed,
		"mismatched", sum.Mismatched,
		"elapsed", time.Since(b.Started),
	)
	if err = ctx.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "batch cancelled")
		return b, err
	}

	return b, nil
}

// RunFile solves one instance file and never fails: problems end up in
// Row.Error. The reference .out file is read when present.
func (r *Runner) RunFile(ctx context.Context, path, runID string) report.Row {
	row := report.Row{RunID: runID, File: filepath.Base(path), Strategy: r.strategy.String()}
	ctx, span := startSolveSpan(ctx, row.File, row.Strategy)
	defer span.End()

	if r.cfg.Batch.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.Batch.Timeout)
		defer cancel()
	}

	log := r.logger.With("run_id", runID, "file", row.File)
	out, err := r.solveFile(ctx, path, &row)
	row.ActualSeconds = out.Elapsed().Seconds()
	if err != nil {
		row.Error = err.Error()
		span.RecordError(err)
		span.SetStatus(codes.Error, "solve failed")
		log.Error("instance failed", "error", err)
	} else {
		row.K, row.Feasible = out.Result.K, out.Result.Feasible
		row.Expanded = out.Result.Stats.Expanded
		setSolveSpanResult(span, row.N, row.M, row.K, row.Feasible)
	}

	exp, err := instance.ReadExpected(instance.ExpectedPath(path))
	switch {
	case err == nil:
		row.SetExpected(exp.K, exp.Seconds)
	case errors.Is(err, fs.ErrNotExist):
		log.Debug("no reference answer")
	default:
		log.Warn("reference answer unreadable", "error", err)
	}

	outcome := outcomeOf(row)
	mismatch := row.Match != nil && !*row.Match
	if row.Error == "" {
		attrs := []any{"k", row.K, "feasible", row.Feasible, "seconds", row.ActualSeconds, "expanded", row.Expanded}
		if mismatch {
			log.Warn("answer differs from reference", append(attrs, "expected_k", *row.ExpectedK)...)
		} else {
			log.Info("instance solved", attrs...)
		}
	}
	recordSolveMetrics(ctx, row.Strategy, outcome, out.Elapsed(), row.Expanded)
	r.metrics.observe(row.Strategy, outcome, row.ActualSeconds, row.Expanded, mismatch)

	return row
}

func (r *Runner) solveFile(ctx context.Context, path string, row *report.Row) (Outcome, error) {
	in, err := instance.Load(path)
	if err != nil {
		return Outcome{}, err
	}
	row.N, row.M, row.T, row.D = in.N, in.M, in.T, in.D

	out, err := Solve(ctx, in, r.strategy, r.cfg.Solver.Capped)
	if err != nil {
		return out, err
	}
	if r.cfg.Solver.Verify {
		if err = solver.Verify(out.Problem, out.Result); err != nil {
			return out, fmt.Errorf("%s: %w", in.Name, err)
		}
	}

	return out, nil
}

func outcomeOf(row report.Row) string {
	switch {
	case row.Error != "":
		return outcomeError
	case row.Feasible:
		return outcomeFeasible
	default:
		return outcomeInfeasible
	}
}

// WriteReports writes the configured CSV, xlsx, YAML and metrics files;
// empty paths are skipped.
func (r *Runner) WriteReports(b Batch) error {
	if p := r.cfg.Batch.CSV; p != "" {
		if err := writeFile(p, func(w io.Writer) error { return report.WriteCSV(w, b.Rows) }); err != nil {
			return err
		}
		r.logger.Info("csv report written", "path", p)
	}
	if p := r.cfg.Batch.XLSX; p != "" {
		if err := writeFile(p, func(w io.Writer) error { return report.WriteXLSX(w, b.Rows) }); err != nil {
			return err
		}
		r.logger.Info("xlsx report written", "path", p)
	}
	if p := r.cfg.Batch.YAML; p != "" {
		doc := report.Document{
			RunID:    b.RunID,
			Started:  b.Started,
			Strategy: r.strategy.String(),
			Summary:  report.Summarize(b.Rows),
			Rows:     b.Rows,
		}
		if err := writeFile(p, func(w io.Writer) error { return report.WriteYAML(w, doc) }); err != nil {
			return err
		}
		r.logger.Info("yaml report written", "path", p)
	}
	if p := r.cfg.Batch.MetricsFile; p != "" {
		if err := r.metrics.WriteTextfile(p); err != nil {
			return fmt.Errorf("failed to write metrics to %s: %w", p, err)
		}
		r.logger.Info("metrics written", "path", p)
	}

	return nil
}

func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err = fn(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return f.Close()
}

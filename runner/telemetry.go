package runner

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Package-level tracer and meter for batch operations.
var (
	tracer = otel.Tracer("duopath.runner")
	meter  = otel.Meter("duopath.runner")
)

var (
	solveLatency   metric.Float64Histogram
	solveTotal     metric.Int64Counter
	statesExpanded metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		solveLatency, err = meter.Float64Histogram(
			"duopath_solve_duration_seconds",
			metric.WithDescription("Oracle plus search time per instance"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		solveTotal, err = meter.Int64Counter(
			"duopath_solve_total",
			metric.WithDescription("Instances processed"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		statesExpanded, err = meter.Int64Histogram(
			"duopath_states_expanded",
			metric.WithDescription("Product states expanded per search"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordSolveMetrics records one processed instance.
func recordSolveMetrics(ctx context.Context, strategy, outcome string, duration time.Duration, expanded int) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("strategy", strategy),
		attribute.String("outcome", outcome),
	)
	solveLatency.Record(ctx, duration.Seconds(), attrs)
	solveTotal.Add(ctx, 1, attrs)
	if outcome != outcomeError {
		statesExpanded.Record(ctx, int64(expanded), metric.WithAttributes(attribute.String("strategy", strategy)))
	}
}

// startSolveSpan creates a span for one instance.
func startSolveSpan(ctx context.Context, file, strategy string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "Runner.RunFile",
		trace.WithAttributes(
			attribute.String("duopath.file", file),
			attribute.String("duopath.strategy", strategy),
		),
	)
}

// setSolveSpanResult sets the result attributes on an instance span.
func setSolveSpanResult(span trace.Span, n, m, k int, feasible bool) {
	span.SetAttributes(
		attribute.Int("duopath.n", n),
		attribute.Int("duopath.m", m),
		attribute.Int("duopath.k", k),
		attribute.Bool("duopath.feasible", feasible),
	)
}

// startBatchSpan creates the parent span of a folder run.
func startBatchSpan(ctx context.Context, runID string, files int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "Runner.Run",
		trace.WithAttributes(
			attribute.String("duopath.run_id", runID),
			attribute.Int("duopath.file_count", files),
		),
	)
}

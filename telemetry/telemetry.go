// Package telemetry installs the OpenTelemetry tracer provider used by the
// runner spans. Tracing is off unless enabled in the configuration; the
// exporter pretty-prints finished spans to a writer.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/katalvlaran/duopath/config"
)

// ErrNilWriter is returned when tracing is enabled without an output.
var ErrNilWriter = errors.New("telemetry: nil span writer")

// Init installs a global tracer provider when cfg.Tracing is set and returns
// its shutdown function, which flushes pending spans. When tracing is off the
// shutdown function is a no-op.
//
// Example:
//
//	shutdown, err := telemetry.Init(cfg.Telemetry, os.Stderr)
//	if err != nil { ... }
//	defer shutdown(context.Background())
func Init(cfg config.TelemetryConfig, w io.Writer) (shutdown func(context.Context) error, err error) {
	if !cfg.Tracing {
		return func(context.Context) error { return nil }, nil
	}
	if w == nil {
		return nil, ErrNilWriter
	}

	tp, err := NewTracerProvider(cfg.ServiceName, w)
	if err != nil {
		return nil, err
	}
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}

// NewTracerProvider builds a batching provider exporting to w.
func NewTracerProvider(serviceName string, w io.Writer) (*sdktrace.TracerProvider, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("create exporter: %w", err)
	}

	res := resource.NewWithAttributes(
		"",
		attribute.String("service.name", serviceName),
	)

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	), nil
}

package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// InitTracerProvider wires a tracer provider exporting to otlpEndpoint via
// OTLP/gRPC under serviceName, or a no-op provider when otlpEndpoint is
// empty — mirroring the original's conditional OTLP pipeline in
// init_logging (tracing_utils.rs), always-on sampling to match its
// Sampler::AlwaysOn.
func InitTracerProvider(ctx context.Context, serviceName, otlpEndpoint string) (trace.TracerProvider, error) {
	if otlpEndpoint == "" {
		return noop.NewTracerProvider(), nil
	}

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(otlpEndpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName)))
	if err != nil {
		return nil, fmt.Errorf("failed to build telemetry resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	return tp, nil
}

// Tracer returns the named tracer off the global provider, set by
// InitTracerProvider (or a no-op default before it runs).
func Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}

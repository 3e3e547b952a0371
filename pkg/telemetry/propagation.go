// Package telemetry implements C3: distributed tracing across the gRPC
// boundary to upstream model servers, and the Prometheus metrics that
// ride alongside every RPC and HTTP call
// (spec.md §4.3, §9 "Tracing propagation").
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"google.golang.org/grpc/metadata"
)

// metadataCarrier adapts gRPC metadata.MD to otel's propagation.TextMapCarrier
// so a W3C traceparent/tracestate pair can ride inbound and outbound
// metadata exactly like the Rust original's MetadataExtractor/Injector
// pair over tonic::metadata::MetadataMap.
type metadataCarrier struct {
	md metadata.MD
}

func (c metadataCarrier) Get(key string) string {
	vals := c.md.Get(key)
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}

func (c metadataCarrier) Set(key, value string) {
	c.md.Set(key, value)
}

func (c metadataCarrier) Keys() []string {
	keys := make([]string, 0, len(c.md))
	for k := range c.md {
		keys = append(keys, k)
	}
	return keys
}

// propagator is the W3C Trace Context format the original binds via
// opentelemetry's TraceContextPropagator.
var propagator = propagation.TraceContext{}

// ExtractContext reads a trace context out of inbound gRPC metadata, if
// present, returning ctx unmodified when there is none to extract.
func ExtractContext(ctx context.Context) context.Context {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		md = metadata.MD{}
	}
	return propagator.Extract(ctx, metadataCarrier{md: md})
}

// InjectContext writes ctx's current span context into outgoing gRPC
// metadata, returning a context carrying the augmented metadata for use
// as the parent of an upstream call.
func InjectContext(ctx context.Context) context.Context {
	md, ok := metadata.FromOutgoingContext(ctx)
	if !ok {
		md = metadata.MD{}
	} else {
		md = md.Copy()
	}
	propagator.Inject(ctx, metadataCarrier{md: md})
	return metadata.NewOutgoingContext(ctx, md)
}

func init() {
	otel.SetTextMapPropagator(propagator)
}

package telemetry

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// UnaryServerInterceptor extracts any inbound W3C trace context, starts a
// span for the call, and records gRPC metrics on completion — the Go
// equivalent of the original's per-request ExtractTelemetryContext call
// plus its tracing_utils span bookkeeping.
func UnaryServerInterceptor(metrics *Metrics) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()
		ctx = ExtractContext(ctx)

		service, method := splitFullMethod(info.FullMethod)
		ctx, span := Tracer("fmaas-router.grpc").Start(ctx, info.FullMethod,
			trace.WithAttributes(
				attribute.String("rpc.system", "grpc"),
				attribute.String("rpc.service", service),
				attribute.String("rpc.method", method),
			),
		)
		defer span.End()

		resp, err := handler(ctx, req)
		duration := time.Since(start)

		grpcStatus, _ := status.FromError(err)
		code := grpcStatus.Code()
		span.SetAttributes(attribute.String("rpc.grpc.status_code", code.String()))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, grpcStatus.Message())
		} else {
			span.SetStatus(codes.Ok, "")
		}

		metrics.RecordGRPCCall(service, method, code.String(), duration)
		return resp, err
	}
}

// StreamServerInterceptor is UnaryServerInterceptor's counterpart for
// server-streaming and bidi-streaming RPCs. Every chunk written by the
// handler is counted via the wrapped stream's SendMsg.
func StreamServerInterceptor(metrics *Metrics) grpc.StreamServerInterceptor {
	return func(
		srv interface{},
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		start := time.Now()
		ctx := ExtractContext(ss.Context())

		service, method := splitFullMethod(info.FullMethod)
		ctx, span := Tracer("fmaas-router.grpc").Start(ctx, info.FullMethod,
			trace.WithAttributes(
				attribute.String("rpc.system", "grpc"),
				attribute.String("rpc.service", service),
				attribute.String("rpc.method", method),
				attribute.Bool("rpc.is_client_stream", info.IsClientStream),
				attribute.Bool("rpc.is_server_stream", info.IsServerStream),
			),
		)
		defer span.End()

		wrapped := &countingServerStream{
			ServerStream: ss,
			ctx:          ctx,
			onSend: func() {
				metrics.RecordStreamChunk(service, method)
			},
		}

		err := handler(srv, wrapped)
		duration := time.Since(start)

		grpcStatus, _ := status.FromError(err)
		code := grpcStatus.Code()
		span.SetAttributes(attribute.String("rpc.grpc.status_code", code.String()))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, grpcStatus.Message())
		} else {
			span.SetStatus(codes.Ok, "")
		}

		metrics.RecordGRPCCall(service, method, code.String(), duration)
		return err
	}
}

type countingServerStream struct {
	grpc.ServerStream
	ctx    context.Context
	onSend func()
}

func (w *countingServerStream) Context() context.Context { return w.ctx }

func (w *countingServerStream) SendMsg(m interface{}) error {
	err := w.ServerStream.SendMsg(m)
	if err == nil {
		w.onSend()
	}
	return err
}

func splitFullMethod(fullMethod string) (service, method string) {
	trimmed := strings.TrimPrefix(fullMethod, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 {
		return "unknown", trimmed
	}
	return trimmed[:idx], trimmed[idx+1:]
}

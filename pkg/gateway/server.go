// Package gateway implements C8: loading configuration, building the
// upstream client registries and compiled chat templates, and driving the
// native gRPC server and the OpenAI-compatible HTTP server for the
// process lifetime (spec.md §4.8).
package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	"github.com/fmaas-project/router/pkg/chattemplate"
	"github.com/fmaas-project/router/pkg/clients"
	"github.com/fmaas-project/router/pkg/modelmap"
	"github.com/fmaas-project/router/pkg/openaiapi"
	"github.com/fmaas-project/router/pkg/pb/caikit/info"
	"github.com/fmaas-project/router/pkg/pb/caikit/nlp"
	"github.com/fmaas-project/router/pkg/pb/codec"
	"github.com/fmaas-project/router/pkg/pb/fmaas"
	"github.com/fmaas-project/router/pkg/rpcservices"
	"github.com/fmaas-project/router/pkg/telemetry"
)

// Config gathers the CLI/environment-resolved settings the gateway needs
// at startup (spec.md §6, CLI surface).
type Config struct {
	GRPCPort            uint16
	HTTPPort            uint16
	DefaultUpstreamPort uint16

	ModelMapConfig string

	TLSCertPath           string
	TLSKeyPath            string
	TLSClientCACertPath   string
	UpstreamTLS           bool
	UpstreamTLSCACertPath string

	OTLPEndpoint    string
	OTLPServiceName string
}

// startupProbeDelay is how long Run waits after bringing both servers up
// before checking whether the native RPC server already died (spec.md
// §4.8 step 5).
const startupProbeDelay = 2 * time.Second

// Run executes the full startup sequence, then blocks until ctx is
// cancelled (by a caught signal) or a server task fails, at which point
// it drains in-flight requests and returns. A non-nil return is a
// startup or runtime fatal (spec.md §4.8, §6 "Exit codes").
func Run(ctx context.Context, cfg Config) error {
	mm, err := modelmap.Load(cfg.ModelMapConfig)
	if err != nil {
		return err
	}

	tlsMaterial, err := clients.BuildTLSMaterial(cfg.TLSCertPath, cfg.TLSKeyPath, cfg.TLSClientCACertPath, cfg.UpstreamTLS, cfg.UpstreamTLSCACertPath)
	if err != nil {
		return err
	}

	generationClients, nlpClients, infoClients, err := buildClientRegistries(ctx, cfg, mm, tlsMaterial)
	if err != nil {
		return err
	}

	chatTemplates, err := compileChatTemplates(mm)
	if err != nil {
		return err
	}

	tp, err := telemetry.InitTracerProvider(ctx, cfg.OTLPServiceName, cfg.OTLPEndpoint)
	if err != nil {
		return err
	}
	defer shutdownTracerProvider(context.Background(), tp)

	metrics := telemetry.NewMetrics()

	grpcServer := newGRPCServer(metrics, tlsMaterial.ServerCreds, generationClients, nlpClients, infoClients)
	httpServer := newHTTPServer(cfg.HTTPPort, metrics, generationClients, chatTemplates)

	grpcListener, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen on gRPC port %d: %w", cfg.GRPCPort, err)
	}

	grpcErrCh := make(chan error, 1)
	go func() {
		slog.Info("native RPC server listening", "addr", grpcListener.Addr().String())
		grpcErrCh <- grpcServer.Serve(grpcListener)
	}()

	httpErrCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		err := httpServer.ListenAndServe()
		if err == http.ErrServerClosed {
			err = nil
		}
		httpErrCh <- err
	}()

	// After the startup probe delay, a native RPC server that has already
	// exited is a startup fatal (spec.md §4.8 step 5).
	select {
	case err := <-grpcErrCh:
		if err != nil {
			return fmt.Errorf("native RPC server exited during startup: %w", err)
		}
	case <-time.After(startupProbeDelay):
	case <-ctx.Done():
	}

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-grpcErrCh:
	case runErr = <-httpErrCh:
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-shutdownCtx.Done():
		grpcServer.Stop()
	}
	_ = httpServer.Shutdown(shutdownCtx)

	return runErr
}

func buildClientRegistries(ctx context.Context, cfg Config, mm *modelmap.ModelMap, tlsMaterial *clients.TLSMaterial) (
	map[string]fmaas.GenerationServiceClient,
	map[string]nlp.NlpServiceClient,
	map[string]info.InfoServiceClient,
	error,
) {
	var (
		generationClients map[string]fmaas.GenerationServiceClient
		nlpClients        map[string]nlp.NlpServiceClient
		infoClients       map[string]info.InfoServiceClient
	)

	g, gctx := errgroup.WithContext(ctx)

	if genMap, ok := mm.GenerationMap(); ok {
		g.Go(func() error {
			built, err := clients.BuildClients(gctx, cfg.DefaultUpstreamPort, tlsMaterial.ClientCreds, genMap, fmaas.NewGenerationServiceClient)
			if err != nil {
				return err
			}
			generationClients = built
			return nil
		})
	}

	if embMap, ok := mm.EmbeddingsMap(); ok {
		g.Go(func() error {
			built, err := clients.BuildClients(gctx, cfg.DefaultUpstreamPort, tlsMaterial.ClientCreds, embMap, nlp.NewNlpServiceClient)
			if err != nil {
				return err
			}
			nlpClients = built
			return nil
		})
		g.Go(func() error {
			built, err := clients.BuildClients(gctx, cfg.DefaultUpstreamPort, tlsMaterial.ClientCreds, embMap, info.NewInfoServiceClient)
			if err != nil {
				return err
			}
			infoClients = built
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}
	return generationClients, nlpClients, infoClients, nil
}

func compileChatTemplates(mm *modelmap.ModelMap) (map[string]*chattemplate.ChatTemplate, error) {
	specs := mm.ChatTemplateSpecs()
	out := make(map[string]*chattemplate.ChatTemplate, len(specs))
	for modelID, spec := range specs {
		tmpl, err := chattemplate.Compile(spec.BOSToken, spec.EOSToken, spec.Source)
		if err != nil {
			return nil, fmt.Errorf("invalid chat template for model %s: %w", modelID, err)
		}
		out[modelID] = tmpl
	}
	return out, nil
}

func newGRPCServer(
	metrics *telemetry.Metrics,
	serverCreds credentials.TransportCredentials,
	generationClients map[string]fmaas.GenerationServiceClient,
	nlpClients map[string]nlp.NlpServiceClient,
	infoClients map[string]info.InfoServiceClient,
) *grpc.Server {
	opts := []grpc.ServerOption{
		grpc.ForceServerCodec(codec.Codec{}),
		grpc.UnaryInterceptor(telemetry.UnaryServerInterceptor(metrics)),
		grpc.StreamInterceptor(telemetry.StreamServerInterceptor(metrics)),
	}
	if serverCreds != nil {
		opts = append(opts, grpc.Creds(serverCreds))
	}
	srv := grpc.NewServer(opts...)

	// Only the service facades whose sub-map is populated are registered
	// (spec.md §4.8 step 4).
	if len(generationClients) > 0 {
		fmaas.RegisterGenerationServiceServer(srv, &rpcservices.GenerationServicer{Clients: generationClients})
	}
	if len(nlpClients) > 0 {
		nlp.RegisterNlpServiceServer(srv, &rpcservices.NlpServicer{Clients: nlpClients})
	}
	if len(infoClients) > 0 {
		info.RegisterInfoServiceServer(srv, &rpcservices.InfoServicer{Clients: infoClients})
	}

	return srv
}

func newHTTPServer(
	port uint16,
	metrics *telemetry.Metrics,
	generationClients map[string]fmaas.GenerationServiceClient,
	chatTemplates map[string]*chattemplate.ChatTemplate,
) *http.Server {
	handler := &openaiapi.Handler{
		Clients:       generationClients,
		ChatTemplates: chatTemplates,
		Metrics:       metrics,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Ok"))
	})
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/v1/chat/completions", instrument(metrics, "/v1/chat/completions", handler.ChatCompletions))
	mux.HandleFunc("/v1/completions", instrument(metrics, "/v1/completions", handler.Completions))

	return &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}
}

// instrument wraps an HTTP handler with the request-duration/status
// metric the native RPC side gets from its server interceptors.
func instrument(metrics *telemetry.Metrics, path string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next(sw, r)
		metrics.RecordHTTPRequest(path, r.Method, sw.status, time.Since(start))
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// shutdownTracerProvider flushes and closes tp if it exposes the SDK's
// Shutdown method; the no-op provider used when OTLP export is disabled
// does not.
func shutdownTracerProvider(ctx context.Context, tp trace.TracerProvider) {
	if shutdowner, ok := tp.(interface{ Shutdown(context.Context) error }); ok {
		_ = shutdowner.Shutdown(ctx)
	}
}

// Copyright 2025 Kadir Pekel
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command fmaas-router fans out inference RPC traffic to per-model
// upstream servers, over both a native gRPC facade and an
// OpenAI-compatible HTTP facade (spec.md §1).
//
// Usage:
//
//	fmaas-router --model-map-config config.yaml
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/fmaas-project/router/pkg/gateway"
)

// CLI is the flat flag surface spec.md §6 names; every flag also binds
// an environment variable (kong's env tag), matching the original's
// clap(env) derive. The variable is the upper-cased flag name, except
// --otlp-endpoint, which binds OTEL_EXPORTER_OTLP_ENDPOINT.
type CLI struct {
	GRPCPort            uint16 `name:"grpc-port" env:"GRPC_PORT" default:"8033" help:"Port for the native gRPC facade."`
	Port                uint16 `name:"port" env:"PORT" default:"3000" help:"Port for the HTTP facade and health probe."`
	DefaultUpstreamPort uint16 `name:"default-upstream-port" env:"DEFAULT_UPSTREAM_PORT" default:"8033" help:"Port used for a model-map entry with no explicit port."`
	JSONOutput          bool   `name:"json-output" env:"JSON_OUTPUT" help:"Emit structured (JSON) logs instead of text."`

	ModelMapConfig string `name:"model-map-config" env:"MODEL_MAP_CONFIG" required:"" type:"path" help:"Path to the model-map configuration file."`

	TLSCertPath         string `name:"tls-cert-path" env:"TLS_CERT_PATH" type:"path" help:"Server TLS certificate path."`
	TLSKeyPath          string `name:"tls-key-path" env:"TLS_KEY_PATH" type:"path" help:"Server TLS private key path."`
	TLSClientCACertPath string `name:"tls-client-ca-cert-path" env:"TLS_CLIENT_CA_CERT_PATH" type:"path" help:"CA bundle for verifying inbound client certificates."`
	UpstreamTLS         bool   `name:"upstream-tls" env:"UPSTREAM_TLS" help:"Use TLS for outbound connections to upstream model servers."`
	UpstreamTLSCACertPath string `name:"upstream-tls-ca-cert-path" env:"UPSTREAM_TLS_CA_CERT_PATH" type:"path" help:"CA bundle for verifying upstream model servers."`

	OTLPEndpoint    string `name:"otlp-endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" help:"OTLP/gRPC collector endpoint; tracing is disabled when empty."`
	OTLPServiceName string `name:"otlp-service-name" env:"OTLP_SERVICE_NAME" default:"fmaas-router" help:"service.name resource attribute for emitted spans."`
}

func (c *CLI) validate() error {
	if (c.TLSCertPath == "") != (c.TLSKeyPath == "") {
		return fmt.Errorf("--tls-cert-path and --tls-key-path must be given together")
	}
	if c.TLSClientCACertPath != "" && c.TLSCertPath == "" {
		return fmt.Errorf("--tls-client-ca-cert-path requires --tls-cert-path and --tls-key-path")
	}
	return nil
}

func (c *CLI) gatewayConfig() gateway.Config {
	return gateway.Config{
		GRPCPort:              c.GRPCPort,
		HTTPPort:              c.Port,
		DefaultUpstreamPort:   c.DefaultUpstreamPort,
		ModelMapConfig:        c.ModelMapConfig,
		TLSCertPath:           c.TLSCertPath,
		TLSKeyPath:            c.TLSKeyPath,
		TLSClientCACertPath:   c.TLSClientCACertPath,
		UpstreamTLS:           c.UpstreamTLS,
		UpstreamTLSCACertPath: c.UpstreamTLSCACertPath,
		OTLPEndpoint:          c.OTLPEndpoint,
		OTLPServiceName:       c.OTLPServiceName,
	}
}

func initLogger(jsonOutput bool) {
	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if jsonOutput {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("fmaas-router"),
		kong.Description("Model-aware gateway fanning out inference RPC traffic to per-model upstream servers."),
		kong.UsageOnError(),
	)

	initLogger(cli.JSONOutput)

	if err := cli.validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		slog.Info("received shutdown signal")
		cancel()
	}()

	if err := gateway.Run(ctx, cli.gatewayConfig()); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

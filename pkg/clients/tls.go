// Package clients implements C2: building per-model, load-balanced,
// optionally-TLS gRPC channels from a modelmap sub-map, and C8's TLS
// identity setup (spec.md §4.2, §4.8 step 2).
package clients

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"

	"google.golang.org/grpc/credentials"
)

// TLSMaterial is the pair of transport credentials the gateway needs: one
// for its own gRPC server identity (and optional inbound mTLS), one for
// outbound calls to upstream model servers. Either may be nil, meaning
// "use an insecure transport."
type TLSMaterial struct {
	ServerCreds credentials.TransportCredentials
	ClientCreds credentials.TransportCredentials
}

// BuildTLSMaterial configures the server and, optionally, the upstream
// client transport credentials. When upstreamTLS is set and the server
// was given its own identity, that identity is reused for outbound calls
// (spec.md §4.8 step 2: "the same identity is reused for outbound client
// TLS"). An outbound CA may be configured independently of the server
// identity. It is fatal to request upstream TLS with neither an identity
// nor a CA to trust.
func BuildTLSMaterial(certPath, keyPath, clientCACertPath string, upstreamTLS bool, upstreamCACertPath string) (*TLSMaterial, error) {
	var identity *tls.Certificate
	var serverCreds credentials.TransportCredentials

	if certPath != "" && keyPath != "" {
		cert, err := tls.LoadX509KeyPair(certPath, keyPath)
		if err != nil {
			return nil, fmt.Errorf("couldn't load server TLS identity: %w", err)
		}
		identity = &cert

		serverTLSConfig := &tls.Config{Certificates: []tls.Certificate{cert}}
		if clientCACertPath != "" {
			pool, err := loadCAPool(clientCACertPath)
			if err != nil {
				return nil, fmt.Errorf("couldn't load client ca cert: %w", err)
			}
			serverTLSConfig.ClientCAs = pool
			serverTLSConfig.ClientAuth = tls.RequireAndVerifyClientCert
		}
		serverCreds = credentials.NewTLS(serverTLSConfig)
	}

	var clientCreds credentials.TransportCredentials
	if upstreamTLS {
		clientTLSConfig := &tls.Config{}
		if upstreamCACertPath != "" {
			pool, err := loadCAPool(upstreamCACertPath)
			if err != nil {
				return nil, fmt.Errorf("couldn't load cert: %w", err)
			}
			clientTLSConfig.RootCAs = pool
		}
		if identity != nil {
			clientTLSConfig.Certificates = []tls.Certificate{*identity}
		} else if upstreamCACertPath == "" {
			return nil, fmt.Errorf("upstream TLS enabled without any certificates")
		}
		clientCreds = credentials.NewTLS(clientTLSConfig)
	}

	return &TLSMaterial{ServerCreds: serverCreds, ClientCreds: clientCreds}, nil
}

func loadCAPool(path string) (*x509.CertPool, error) {
	pem, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("no certificates found in %s", path)
	}
	return pool, nil
}

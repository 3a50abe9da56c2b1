// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by every
// process of go-config-keeper. It is populated by merging defaults,
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Identity holds the client identity allowlist used by the configuration server.
	Identity Identity `envPrefix:"IDENTITY_"`

	// Source selects and tunes the backend node configurations are resolved from.
	Source Source `envPrefix:"SOURCE_"`

	// Server holds listen addresses and shutdown settings of the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds outbound endpoints: the configuration server for the
	// gateway and the gateway for the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from the other sources.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the version string exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Identity holds the static client allowlist. It is read once at startup.
type Identity struct {
	// AllowedClientIPs lists the client machine IPs allowed to receive
	// their configuration.
	// Env: IDENTITY_ALLOWED_CLIENT_IPS (comma separated)
	AllowedClientIPs []string `env:"ALLOWED_CLIENT_IPS" envSeparator:","`
}

// Source configures the node configuration backend.
type Source struct {
	// NodesFile is the path to a YAML node definitions file. When empty the
	// random reference backend is used.
	// Env: SOURCE_NODES_FILE
	NodesFile string `env:"NODES_FILE"`

	// MaxLatency is the upper bound of the simulated lookup latency applied
	// before each streamed element.
	// Env: SOURCE_MAX_LATENCY
	MaxLatency time.Duration `env:"MAX_LATENCY"`

	// NoLatency disables the simulated lookup latency.
	// Env: SOURCE_NO_LATENCY
	NoLatency bool `env:"NO_LATENCY"`
}

// Server holds network and shutdown settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address on which the gRPC server listens,
	// in "host:port" format (e.g. "0.0.0.0:9090").
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// ShutdownTimeout bounds graceful shutdown of the listeners.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Adapter holds configuration of outbound integrations.
type Adapter struct {
	// ConfigurationServerURL is the absolute URI of the configuration server
	// gRPC endpoint (e.g. "http://localhost:9090"). Used by the gateway.
	// Env: ADAPTER_CONFIGURATION_SERVER_URL
	ConfigurationServerURL string `env:"CONFIGURATION_SERVER_URL"`

	// GatewayURL is the base URL of the HTTP gateway. Used by the client.
	// Env: ADAPTER_GATEWAY_URL
	GatewayURL string `env:"GATEWAY_URL"`

	// RequestTimeout bounds a single client request to the gateway.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Default values applied before any other source.
const (
	DefaultVersion         = "N/A"
	DefaultMaxLatency      = time.Second
	DefaultShutdownTimeout = 5 * time.Second
	DefaultRequestTimeout  = 30 * time.Second
)

// DefaultAllowedClientIPs is the allowlist used when none is configured.
var DefaultAllowedClientIPs = []string{"10.20.30.1", "10.20.30.15"}

// GetServerConfig loads, merges and validates the configuration server
// settings. A gRPC listen address is required; the HTTP address is optional
// and enables the version and metrics endpoints.
func GetServerConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(serverFlagSet, os.Args[1:]).
		withJSON().
		build((*StructuredConfig).validateServer)
}

// GetGatewayConfig loads, merges and validates the HTTP gateway settings.
// The configuration server URL must be a well-formed absolute URI.
func GetGatewayConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(gatewayFlagSet, os.Args[1:]).
		withJSON().
		build((*StructuredConfig).validateGateway)
}

// GetClientConfig loads, merges and validates the client settings from
// args. Global flags must precede the command; the command and its own
// arguments are returned untouched.
func GetClientConfig(args []string) (*StructuredConfig, []string, error) {
	b := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(clientFlagSet, args).
		withJSON()

	cfg, err := b.build((*StructuredConfig).validateClient)
	if err != nil {
		return nil, nil, err
	}

	return cfg, b.rest, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound transports of go-config-keeper.
//
// [ConfigurationServerAdapter] is the gateway's gRPC channel to the
// configuration server; [GatewayAdapter] is the client's HTTP connection to
// the gateway. Transport failures are mapped to the sentinel values defined
// in errors.go so callers can use [errors.Is] regardless of the protocol.
package adapter

import (
	"context"
	"iter"

	"github.com/MKhiriev/go-config-keeper/internal/configrpc"
	"github.com/MKhiriev/go-config-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ConfigurationServerAdapter calls the configuration server. One adapter owns
// one channel and is safe for concurrent use by independent requests.
type ConfigurationServerAdapter interface {
	// LoadConfiguration performs the unary call for identity and returns the
	// raw response; interpreting its oneof is up to the caller.
	LoadConfiguration(ctx context.Context, identity models.ClientIdentity) (*configrpc.LoadConfigurationResponse, error)

	// LoadNodesConfiguration opens the server stream for request. The
	// sequence yields every received response in order and ends after the
	// server closes the stream. A transport failure is yielded once as the
	// error of the final pair. Stopping early cancels the stream.
	LoadNodesConfiguration(ctx context.Context, request models.NodeRequest) iter.Seq2[*configrpc.LoadNodesConfigurationResponse, error]

	// Close releases the channel.
	Close() error
}

// GatewayAdapter calls the HTTP gateway on behalf of the command-line client.
type GatewayAdapter interface {
	// LoadConfiguration requests the configuration of the identified client
	// machine. A rejected identity yields the decoded error list together
	// with an error wrapping [ErrBadRequest].
	LoadConfiguration(ctx context.Context, identity models.ClientIdentity) (models.LoadConfigurationResponse, error)

	// LoadNodesConfiguration requests the aggregated configuration of the
	// named nodes, or of every node when request is empty.
	LoadNodesConfiguration(ctx context.Context, request models.NodeRequest) (models.LoadNodesConfigurationResponse, error)

	// AppVersion returns the version string served by the gateway.
	AppVersion(ctx context.Context) (string, error)
}

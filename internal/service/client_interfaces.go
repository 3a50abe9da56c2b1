package service

import (
	"context"

	"github.com/MKhiriev/go-config-keeper/models"
)

// ClientConfigurationService defines the client-side contract for fetching
// configurations through the HTTP gateway.
type ClientConfigurationService interface {
	// FetchConfiguration requests the configuration of the given client
	// machine. When the gateway rejects the identity, the returned response
	// carries the error list and the error wraps ErrConfigurationRejected.
	FetchConfiguration(ctx context.Context, identity models.ClientIdentity) (models.LoadConfigurationResponse, error)

	// FetchNodesConfiguration requests the aggregated configuration of the
	// named nodes. Blank names are dropped; no names means every node.
	FetchNodesConfiguration(ctx context.Context, names []string) (models.LoadNodesConfigurationResponse, error)

	// FetchGatewayVersion returns the version reported by the gateway.
	FetchGatewayVersion(ctx context.Context) (string, error)
}

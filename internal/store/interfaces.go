package store

import (
	"context"

	"github.com/MKhiriev/go-config-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ConfigSource supplies node configurations. Implementations must be safe for
// concurrent use by independent requests.
type ConfigSource interface {
	// DefaultConfig returns the configuration handed out to a validated
	// client machine.
	DefaultConfig(ctx context.Context) (models.NodeConfig, error)

	// NodeConfig resolves the configuration of the node called name.
	// Returns ErrNodeNotFound when the source does not know the node.
	NodeConfig(ctx context.Context, name string) (models.NodeConfig, error)

	// NodeConfigs returns every node known to the source. The order is
	// stable within one call.
	NodeConfigs(ctx context.Context) ([]models.NodeConfig, error)
}

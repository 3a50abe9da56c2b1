package service

import (
	"context"
	"iter"
	"time"

	"github.com/MKhiriev/go-config-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=ConfigurationServiceWrapper

// ConfigurationService answers configuration requests on the configuration
// server.
type ConfigurationService interface {
	// LoadConfig validates identity and resolves the configuration handed
	// out to that client machine.
	LoadConfig(ctx context.Context, identity models.ClientIdentity) models.ConfigResult

	// LoadNodesConfig returns a lazy sequence with one result per requested
	// node, or one per known node when request is empty. The sequence can be
	// consumed once. When ctx is done production stops and the sequence
	// ends without an error element.
	LoadNodesConfig(ctx context.Context, request models.NodeRequest) iter.Seq[models.ConfigResult]
}

// ConfigurationServiceWrapper defines middleware composition for
// ConfigurationService. Implementations wrap an existing ConfigurationService
// to add behavior such as metrics.
type ConfigurationServiceWrapper interface {
	Wrap(ConfigurationService) ConfigurationService
}

// GatewayService turns configuration server answers into gateway responses.
type GatewayService interface {
	// LoadConfiguration returns the configuration of identity. A rejected
	// identity is not an error: the response then carries only Errors.
	LoadConfiguration(ctx context.Context, identity models.ClientIdentity) (models.LoadConfigurationResponse, error)

	// LoadNodesConfiguration drains the node stream and returns every
	// received entry in order.
	LoadNodesConfiguration(ctx context.Context, request models.NodeRequest) (models.LoadNodesConfigurationResponse, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// Delayer decides how long the streaming responder waits before producing
// the next element.
type Delayer interface {
	Delay() time.Duration
}

package grpc

import (
	"github.com/MKhiriev/go-config-keeper/internal/configrpc"
	"github.com/MKhiriev/go-config-keeper/internal/logger"
	"github.com/MKhiriev/go-config-keeper/internal/metric"
	"github.com/MKhiriev/go-config-keeper/internal/service"
)

// Handler is the gRPC transport handler of the configuration server.
// It implements [configrpc.ConfigurationServerServer].
type Handler struct {
	configurationService service.ConfigurationService

	// metrics is optional; a nil value disables RPC duration metrics.
	metrics *metric.Metrics

	logger *logger.Logger
}

var _ configrpc.ConfigurationServerServer = (*Handler)(nil)

// NewHandler constructs a [Handler] on top of the configuration responders.
func NewHandler(services *service.Services, metrics *metric.Metrics, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		configurationService: services.ConfigurationService,
		metrics:              metrics,
		logger:               logger,
	}
}

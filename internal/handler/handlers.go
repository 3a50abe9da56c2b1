package handler

import (
	"github.com/MKhiriev/go-config-keeper/internal/config"
	"github.com/MKhiriev/go-config-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-config-keeper/internal/handler/http"
	"github.com/MKhiriev/go-config-keeper/internal/logger"
	"github.com/MKhiriev/go-config-keeper/internal/metric"
	"github.com/MKhiriev/go-config-keeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates the transport handlers of the configuration server:
// the gRPC handler for the configuration service and, when an HTTP address
// is set, the HTTP handler for version and metrics.
func NewHandlers(services *service.Services, metrics *metric.MetricsRegistry, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewServerHandler(services, metrics, logger)
	}
	if cfg.GRPCAddress != "" {
		var core *metric.Metrics
		if metrics != nil {
			core = metrics.CoreMetrics()
		}
		handlers.GRPC = grpc.NewHandler(services, core, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}

// NewGatewayHandlers creates the HTTP handler of the gateway. The gateway
// serves no gRPC, so cfg.GRPCAddress is ignored.
func NewGatewayHandlers(services *service.GatewayServices, metrics *metric.MetricsRegistry, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new gateway handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewGatewayHandler(services, metrics, logger)}, nil
}

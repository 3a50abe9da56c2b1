package http

import (
	"github.com/MKhiriev/go-config-keeper/internal/logger"
	"github.com/MKhiriev/go-config-keeper/internal/metric"
	"github.com/MKhiriev/go-config-keeper/internal/service"
)

type Handler struct {
	gatewayService service.GatewayService
	appInfoService service.AppInfoService

	metrics *metric.MetricsRegistry

	logger *logger.Logger
}

// NewGatewayHandler builds the HTTP handler of the gateway: configuration,
// version and metrics routes.
func NewGatewayHandler(services *service.GatewayServices, metrics *metric.MetricsRegistry, logger *logger.Logger) *Handler {
	logger.Info().Msg("gateway http handler created")
	return &Handler{
		gatewayService: services.GatewayService,
		appInfoService: services.AppInfoService,
		metrics:        metrics,
		logger:         logger,
	}
}

// NewServerHandler builds the HTTP handler of the configuration server:
// version and metrics routes only.
func NewServerHandler(services *service.Services, metrics *metric.MetricsRegistry, logger *logger.Logger) *Handler {
	logger.Info().Msg("server http handler created")
	return &Handler{
		appInfoService: services.AppInfoService,
		metrics:        metrics,
		logger:         logger,
	}
}

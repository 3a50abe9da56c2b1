package service

import (
	"fmt"

	"github.com/MKhiriev/go-config-keeper/internal/adapter"
	"github.com/MKhiriev/go-config-keeper/internal/config"
	"github.com/MKhiriev/go-config-keeper/internal/logger"
	"github.com/MKhiriev/go-config-keeper/internal/metric"
	"github.com/MKhiriev/go-config-keeper/internal/store"
	"github.com/MKhiriev/go-config-keeper/internal/validators"
)

// Services groups the services of the configuration server.
type Services struct {
	ConfigurationService ConfigurationService
	AppInfoService       AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, metrics *metric.Metrics, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	validator := validators.NewIdentityValidator(validators.NewAllowlist(cfg.Identity.AllowedClientIPs...))

	var configurationService ConfigurationService = NewConfigurationService(validator, storages.ConfigSource, NewDelayer(cfg.Source), logger)
	if metrics != nil {
		configurationService = NewConfigurationMetricsService(metrics).Wrap(configurationService)
	}

	return &Services{
		ConfigurationService: configurationService,
		AppInfoService:       appInfoService,
	}, nil
}

// GatewayServices groups the services of the HTTP gateway.
type GatewayServices struct {
	GatewayService GatewayService
	AppInfoService AppInfoService
}

func NewGatewayServices(adapter adapter.ConfigurationServerAdapter, cfg *config.StructuredConfig, logger *logger.Logger) (*GatewayServices, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &GatewayServices{
		GatewayService: NewGatewayService(adapter, logger),
		AppInfoService: appInfoService,
	}, nil
}

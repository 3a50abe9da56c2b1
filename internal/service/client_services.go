package service

import (
	"github.com/MKhiriev/go-config-keeper/internal/adapter"
	"github.com/MKhiriev/go-config-keeper/internal/logger"
)

type ClientServices struct {
	ConfigurationService ClientConfigurationService
}

func NewClientServices(gatewayAdapter adapter.GatewayAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		ConfigurationService: NewClientConfigurationService(gatewayAdapter, logger),
	}
}

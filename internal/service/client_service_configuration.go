package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-config-keeper/internal/adapter"
	"github.com/MKhiriev/go-config-keeper/internal/logger"
	"github.com/MKhiriev/go-config-keeper/models"
)

type clientConfigurationService struct {
	gatewayAdapter adapter.GatewayAdapter

	logger *logger.Logger
}

func NewClientConfigurationService(gatewayAdapter adapter.GatewayAdapter, logger *logger.Logger) ClientConfigurationService {
	return &clientConfigurationService{
		gatewayAdapter: gatewayAdapter,
		logger:         logger,
	}
}

func (s *clientConfigurationService) FetchConfiguration(ctx context.Context, identity models.ClientIdentity) (models.LoadConfigurationResponse, error) {
	identity.IP = strings.TrimSpace(identity.IP)
	identity.Name = strings.TrimSpace(identity.Name)

	resp, err := s.gatewayAdapter.LoadConfiguration(ctx, identity)
	if errors.Is(err, adapter.ErrBadRequest) && len(resp.Errors) > 0 {
		return resp, fmt.Errorf("%w: %d error(s)", ErrConfigurationRejected, len(resp.Errors))
	}
	if err != nil {
		return models.LoadConfigurationResponse{}, fmt.Errorf("error fetching configuration: %w", err)
	}

	return resp, nil
}

func (s *clientConfigurationService) FetchNodesConfiguration(ctx context.Context, names []string) (models.LoadNodesConfigurationResponse, error) {
	request := models.NodeRequest{RequestedNames: make([]string, 0, len(names))}
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			request.RequestedNames = append(request.RequestedNames, name)
		}
	}

	resp, err := s.gatewayAdapter.LoadNodesConfiguration(ctx, request)
	if err != nil {
		return models.LoadNodesConfigurationResponse{}, fmt.Errorf("error fetching nodes configuration: %w", err)
	}

	return resp, nil
}

func (s *clientConfigurationService) FetchGatewayVersion(ctx context.Context) (string, error) {
	version, err := s.gatewayAdapter.AppVersion(ctx)
	if err != nil {
		return "", fmt.Errorf("error fetching gateway version: %w", err)
	}

	return version, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-config-keeper/internal/adapter"
	"github.com/MKhiriev/go-config-keeper/internal/configrpc"
	"github.com/MKhiriev/go-config-keeper/internal/logger"
	"github.com/MKhiriev/go-config-keeper/models"
)

type gatewayService struct {
	adapter adapter.ConfigurationServerAdapter

	logger *logger.Logger
}

func NewGatewayService(adapter adapter.ConfigurationServerAdapter, logger *logger.Logger) GatewayService {
	return &gatewayService{adapter: adapter, logger: logger}
}

func (s *gatewayService) LoadConfiguration(ctx context.Context, identity models.ClientIdentity) (models.LoadConfigurationResponse, error) {
	resp, err := s.adapter.LoadConfiguration(ctx, identity)
	if err != nil {
		return models.LoadConfigurationResponse{}, fmt.Errorf("error loading configuration: %w", err)
	}

	switch v := resp.BodyOrError.(type) {
	case *configrpc.LoadConfigurationResponseBody:
		return models.LoadConfigurationResponse{
			AppConfig: toExternalAppConfig(v.App),
			DBConfig:  toExternalDBConfig(v.Database),
		}, nil
	case *configrpc.ErrorContainer:
		if len(v.Errors) == 0 {
			return models.LoadConfigurationResponse{}, fmt.Errorf("%w: empty error container", ErrProtocolSkew)
		}
		return models.LoadConfigurationResponse{Errors: toExternalErrors(v.Errors)}, nil
	default:
		return models.LoadConfigurationResponse{}, fmt.Errorf("%w: case %d", ErrProtocolSkew, resp.BodyOrErrorCase())
	}
}

// LoadNodesConfiguration implements [GatewayService]. The response is built
// only after the stream ended. A cancelled stream yields the entries received
// so far.
func (s *gatewayService) LoadNodesConfiguration(ctx context.Context, request models.NodeRequest) (models.LoadNodesConfigurationResponse, error) {
	nodes := make([]models.NodeConfigurationResponse, 0, len(request.RequestedNames))

	for resp, err := range s.adapter.LoadNodesConfiguration(ctx, request) {
		if errors.Is(err, context.Canceled) {
			break
		}
		if err != nil {
			return models.LoadNodesConfigurationResponse{}, fmt.Errorf("error loading nodes configuration: %w", err)
		}

		switch v := resp.BodyOrError.(type) {
		case *configrpc.LoadNodesConfigurationResponseBody:
			nodes = append(nodes, models.NodeConfigurationResponse{
				NodeName:  v.NodeName,
				AppConfig: toExternalAppConfig(v.App),
				DBConfig:  toExternalDBConfig(v.Database),
			})
		case *configrpc.ErrorContainer:
			if len(v.Errors) == 0 {
				return models.LoadNodesConfigurationResponse{}, fmt.Errorf("%w: empty error container in element %d", ErrProtocolSkew, len(nodes))
			}
			nodes = append(nodes, models.NodeConfigurationResponse{Errors: toExternalErrors(v.Errors)})
		default:
			return models.LoadNodesConfigurationResponse{}, fmt.Errorf("%w: case %d in element %d", ErrProtocolSkew, resp.BodyOrErrorCase(), len(nodes))
		}
	}

	return models.LoadNodesConfigurationResponse{NodesConfiguration: nodes}, nil
}

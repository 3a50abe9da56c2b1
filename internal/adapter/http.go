// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-config-keeper/internal/config"
	"github.com/MKhiriev/go-config-keeper/internal/logger"
	"github.com/MKhiriev/go-config-keeper/internal/utils"
	"github.com/MKhiriev/go-config-keeper/models"
)

// Gateway routes called by [GatewayAdapter].
const (
	LoadConfigurationPath      = "/configuration/LoadConfigurationFromServer"
	LoadNodesConfigurationPath = "/configuration/LoadNodesConfigurationFromServer"
	VersionPath                = "/api/version/"
)

type httpGatewayAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPGatewayAdapter constructs an HTTP implementation of [GatewayAdapter]
// using cfg.GatewayURL as base URL and cfg.RequestTimeout per request.
func NewHTTPGatewayAdapter(cfg config.Adapter, logger *logger.Logger) (GatewayAdapter, error) {
	if strings.TrimSpace(cfg.GatewayURL) == "" {
		return nil, fmt.Errorf("%w: empty address", ErrInvalidGatewayURL)
	}

	client := utils.NewHTTPClient(cfg.GatewayURL, cfg.RequestTimeout).
		WithTraceID(utils.NewTraceID())

	return &httpGatewayAdapter{client: client, logger: logger}, nil
}

// LoadConfiguration implements [GatewayAdapter]. It sends
// GET /configuration/LoadConfigurationFromServer?ip=&name=.
func (h *httpGatewayAdapter) LoadConfiguration(ctx context.Context, identity models.ClientIdentity) (models.LoadConfigurationResponse, error) {
	var result models.LoadConfigurationResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("ip", identity.IP).
		SetQueryParam("name", identity.Name).
		Get(LoadConfigurationPath)
	if err != nil {
		return result, fmt.Errorf("load configuration request: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
	case http.StatusBadRequest:
		if err = json.Unmarshal(resp.Body(), &result); err != nil {
			return result, fmt.Errorf("decode load configuration errors: %w", err)
		}
		return result, fmt.Errorf("%w: configuration request was rejected", ErrBadRequest)
	default:
		return result, mapHTTPError(resp)
	}

	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return result, fmt.Errorf("decode load configuration response: %w", err)
	}

	return result, nil
}

// LoadNodesConfiguration implements [GatewayAdapter]. It sends
// GET /configuration/LoadNodesConfigurationFromServer with one nodeNames
// parameter per requested node.
func (h *httpGatewayAdapter) LoadNodesConfiguration(ctx context.Context, request models.NodeRequest) (models.LoadNodesConfigurationResponse, error) {
	var result models.LoadNodesConfigurationResponse

	req := h.client.R().SetContext(ctx)
	if !request.All() {
		req.SetQueryParamsFromValues(map[string][]string{"nodeNames": request.RequestedNames})
	}

	resp, err := req.Get(LoadNodesConfigurationPath)
	if err != nil {
		return result, fmt.Errorf("load nodes configuration request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return result, fmt.Errorf("decode load nodes configuration response: %w", err)
	}

	return result, nil
}

// AppVersion implements [GatewayAdapter]. It sends GET /api/version/.
func (h *httpGatewayAdapter) AppVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get(VersionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

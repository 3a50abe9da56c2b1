// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"github.com/MKhiriev/go-config-keeper/internal/configrpc"
	"github.com/MKhiriev/go-config-keeper/internal/logger"
	"github.com/MKhiriev/go-config-keeper/models"
	"google.golang.org/grpc"
)

// LoadConfiguration resolves the configuration of the calling machine.
// Validation and resolution failures travel inside the error_container
// variant; the call itself only fails on transport problems.
func (h *Handler) LoadConfiguration(ctx context.Context, req *configrpc.LoadConfigurationRequest) (*configrpc.LoadConfigurationResponse, error) {
	identity := models.ClientIdentity{
		IP:   req.ClientMachineIP,
		Name: req.ClientMachineName,
	}

	return toWireConfigurationResponse(h.configurationService.LoadConfig(ctx, identity)), nil
}

// LoadNodesConfiguration streams one element per resolved node. A cancelled
// caller ends the stream early; elements already sent stay delivered.
func (h *Handler) LoadNodesConfiguration(req *configrpc.LoadNodesConfigurationRequest, stream grpc.ServerStreamingServer[configrpc.LoadNodesConfigurationResponse]) error {
	ctx := stream.Context()
	request := models.NodeRequest{RequestedNames: req.NodeNames}

	sent := 0
	for result := range h.configurationService.LoadNodesConfig(ctx, request) {
		if err := stream.Send(toWireNodesResponse(result)); err != nil {
			logger.FromContext(ctx).Err(err).Int("sent", sent).Msg("error sending nodes configuration element")
			return err
		}
		sent++
	}

	logger.FromContext(ctx).Debug().Int("sent", sent).Msg("nodes configuration stream finished")
	return nil
}

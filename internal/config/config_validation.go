// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
)

// validateServer checks the settings the configuration server depends on.
func (cfg *StructuredConfig) validateServer() error {
	if cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: grpc address is required", ErrInvalidServerConfigs)
	}

	for _, ip := range cfg.Identity.AllowedClientIPs {
		if net.ParseIP(ip) == nil {
			return fmt.Errorf("%w: %q is not an ip address", ErrInvalidIdentityConfigs, ip)
		}
	}

	if cfg.Source.MaxLatency < 0 {
		return fmt.Errorf("%w: max latency must not be negative", ErrInvalidSourceConfigs)
	}

	return nil
}

// validateGateway checks the settings the HTTP gateway depends on.
func (cfg *StructuredConfig) validateGateway() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}

	if err := validateAbsoluteURL(cfg.Adapter.ConfigurationServerURL); err != nil {
		return fmt.Errorf("%w: configuration server url: %w", ErrInvalidAdapterConfigs, err)
	}

	return nil
}

// validateClient checks the settings the command-line client depends on.
func (cfg *StructuredConfig) validateClient() error {
	if err := validateAbsoluteURL(cfg.Adapter.GatewayURL); err != nil {
		return fmt.Errorf("%w: gateway url: %w", ErrInvalidAdapterConfigs, err)
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	return nil
}

func validateAbsoluteURL(raw string) error {
	if raw == "" {
		return errors.New("url is required")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return err
	}

	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("%q is not an absolute uri", raw)
	}

	return nil
}

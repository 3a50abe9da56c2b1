// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-config-keeper/internal/logger"
	"github.com/MKhiriev/go-config-keeper/internal/store"
	"github.com/MKhiriev/go-config-keeper/internal/utils"
	"github.com/MKhiriev/go-config-keeper/internal/validators"
	"github.com/MKhiriev/go-config-keeper/models"
)

type configurationService struct {
	validator *validators.IdentityValidator
	source    store.ConfigSource
	delayer   Delayer

	logger *logger.Logger
}

func NewConfigurationService(validator *validators.IdentityValidator, source store.ConfigSource, delayer Delayer, logger *logger.Logger) ConfigurationService {
	if delayer == nil {
		delayer = NoDelay()
	}

	return &configurationService{
		validator: validator,
		source:    source,
		delayer:   delayer,
		logger:    logger,
	}
}

func (s *configurationService) LoadConfig(ctx context.Context, identity models.ClientIdentity) models.ConfigResult {
	validated := s.validator.ValidateIdentity(ctx, identity)
	if rejected, ok := validated.(models.Err[models.ClientIdentity]); ok {
		return models.Fail[models.NodeConfig](rejected.Errors...)
	}

	cfg, err := s.source.DefaultConfig(ctx)
	if err != nil {
		return s.resolutionFailure(ctx, identity.Name, err)
	}
	cfg.NodeName = identity.Name

	return models.Succeed(cfg)
}

func (s *configurationService) LoadNodesConfig(ctx context.Context, request models.NodeRequest) iter.Seq[models.ConfigResult] {
	var consumed atomic.Bool

	return func(yield func(models.ConfigResult) bool) {
		if !consumed.CompareAndSwap(false, true) {
			s.logger.Warn().Msg("node configuration sequence consumed twice, nothing produced")
			return
		}

		if !request.All() {
			s.produce(ctx, len(request.RequestedNames), func(i int) models.ConfigResult {
				return s.resolveNode(ctx, request.RequestedNames[i])
			}, yield)
			return
		}

		if ctx.Err() != nil {
			return
		}
		configs, err := s.source.NodeConfigs(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			yield(s.resolutionFailure(ctx, "", err))
			return
		}

		s.produce(ctx, len(configs), func(i int) models.ConfigResult {
			return models.Succeed(configs[i])
		}, yield)
	}
}

// produce emits n results in order. Cancellation is checked before every
// element, while waiting and after resolving; once ctx is done nothing more
// is yielded.
func (s *configurationService) produce(ctx context.Context, n int, resolve func(i int) models.ConfigResult, yield func(models.ConfigResult) bool) {
	for i := range n {
		if ctx.Err() != nil {
			return
		}
		if !s.wait(ctx) {
			return
		}

		result := resolve(i)
		if ctx.Err() != nil {
			return
		}
		if !yield(result) {
			return
		}
	}
}

func (s *configurationService) wait(ctx context.Context) bool {
	delay := s.delayer.Delay()
	if delay <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (s *configurationService) resolveNode(ctx context.Context, name string) models.ConfigResult {
	cfg, err := s.source.NodeConfig(ctx, name)
	if err != nil {
		return s.resolutionFailure(ctx, name, err)
	}
	cfg.NodeName = name

	return models.Succeed(cfg)
}

func (s *configurationService) resolutionFailure(ctx context.Context, name string, err error) models.ConfigResult {
	if errors.Is(err, store.ErrNodeNotFound) {
		return models.Fail[models.NodeConfig](models.Error{
			Code:    models.CodeNodeNotFound,
			Message: fmt.Sprintf("Node %s is not found.", name),
		})
	}

	log := s.logger
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		log = log.WithTraceID(traceID)
	}
	log.Err(err).Str("node", name).Msg("configuration source failed")

	return models.Fail[models.NodeConfig](models.Error{
		Code:    models.CodeSourceUnavailable,
		Message: "Configuration source is unavailable.",
	})
}

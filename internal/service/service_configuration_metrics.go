package service

import (
	"context"
	"iter"

	"github.com/MKhiriev/go-config-keeper/internal/metric"
	"github.com/MKhiriev/go-config-keeper/models"
)

const (
	methodLoadConfig      = "LoadConfig"
	methodLoadNodesConfig = "LoadNodesConfig"
)

// ConfigurationMetricsService records responder results in prometheus
// metrics and otherwise passes calls through unchanged.
type ConfigurationMetricsService struct {
	inner   ConfigurationService
	metrics *metric.Metrics
}

func NewConfigurationMetricsService(metrics *metric.Metrics) ConfigurationServiceWrapper {
	return &ConfigurationMetricsService{metrics: metrics}
}

func (m *ConfigurationMetricsService) LoadConfig(ctx context.Context, identity models.ClientIdentity) models.ConfigResult {
	result := m.inner.LoadConfig(ctx, identity)
	m.metrics.RecordResult(methodLoadConfig, resultKind(result))
	return result
}

func (m *ConfigurationMetricsService) LoadNodesConfig(ctx context.Context, request models.NodeRequest) iter.Seq[models.ConfigResult] {
	seq := m.inner.LoadNodesConfig(ctx, request)

	return func(yield func(models.ConfigResult) bool) {
		for result := range seq {
			m.metrics.RecordResult(methodLoadNodesConfig, resultKind(result))
			m.metrics.StreamedElements.Inc()
			if !yield(result) {
				return
			}
		}

		if ctx.Err() != nil {
			m.metrics.TruncatedStreams.Inc()
		}
	}
}

func (m *ConfigurationMetricsService) Wrap(inner ConfigurationService) ConfigurationService {
	m.inner = inner
	return m
}

func resultKind(result models.ConfigResult) string {
	if _, ok := result.(models.Err[models.NodeConfig]); ok {
		return metric.KindErr
	}
	return metric.KindOk
}

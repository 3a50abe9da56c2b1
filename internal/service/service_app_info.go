package service

import (
	"context"

	"github.com/MKhiriev/go-config-keeper/internal/config"
	"github.com/MKhiriev/go-config-keeper/internal/logger"
	"github.com/MKhiriev/go-config-keeper/internal/utils"
)

// versionService answers GET /version for the gateway and the server.
type versionService struct {
	version string
	log     *logger.Logger
}

// NewAppInfoService fails with ErrVersionIsNotSpecified when cfg carries no version.
func NewAppInfoService(cfg config.App, log *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &versionService{
		version: cfg.Version,
		log:     log.GetChildLogger(),
	}, nil
}

func (s *versionService) GetAppVersion(ctx context.Context) string {
	log := s.log
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		log = log.WithTraceID(traceID)
	}
	log.Debug().Str("version", s.version).Msg("version requested")

	return s.version
}

package service

import (
	"context"

	"github.com/MKhiriev/passout/internal/logger"
	"github.com/MKhiriev/passout/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService returns an [AppInfoService] for buildInfo. Metadata that
// was not injected at build time is reported as [models.NotAvailable].
func NewAppInfoService(buildInfo models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		buildInfo: buildInfo,
		logger:    logger,
	}
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	if s.buildInfo.BuildVersion() == models.NotAvailable {
		s.logger.Debug().Msg("binary built without version metadata")
	}
	return s.buildInfo
}

package service

import (
	"context"

	"github.com/MKhiriev/pi-settings-sync/internal/logger"
	"github.com/MKhiriev/pi-settings-sync/models"
)

// notAvailable replaces build metadata that was not injected at link time.
const notAvailable = "N/A"

type appInfoService struct {
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewAppInfoService(buildInfo models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		buildInfo: models.NewAppBuildInfo(
			orNotAvailable(buildInfo.BuildVersion()),
			orNotAvailable(buildInfo.BuildDate()),
			orNotAvailable(buildInfo.BuildCommit()),
		),
		logger: logger,
	}
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.buildInfo
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}

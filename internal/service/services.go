package service

import (
	"github.com/MKhiriev/pi-settings-sync/internal/logger"
	"github.com/MKhiriev/pi-settings-sync/internal/store"
	"github.com/MKhiriev/pi-settings-sync/models"
)

type Services struct {
	SyncService    SettingsSyncService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		SyncService:    NewSettingsSyncService(storages.Settings, logger),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}

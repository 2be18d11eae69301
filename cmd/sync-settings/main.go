package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"github.com/MKhiriev/pi-settings-sync/internal/app"
	"github.com/MKhiriev/pi-settings-sync/internal/client"
	"github.com/MKhiriev/pi-settings-sync/internal/config"
	"github.com/MKhiriev/pi-settings-sync/internal/logger"
	"github.com/MKhiriev/pi-settings-sync/internal/service"
	"github.com/MKhiriev/pi-settings-sync/internal/store"
	"github.com/MKhiriev/pi-settings-sync/internal/utils"
	"github.com/MKhiriev/pi-settings-sync/models"
)

const role = "sync-settings"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	environ := config.OSEnviron()

	cfg, err := config.GetSyncConfig(os.Args[1:], environ)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			config.PrintUsage(os.Stdout)
			return
		}
		log := logger.NewCLILogger(role, config.DefaultLogLevel, os.Stderr)
		log.Fatal().Err(err).Msg(app.MsgConfigFailed)
	}

	log := logger.NewCLILogger(role, cfg.LogLevel, os.Stderr).
		WithRunID(utils.NewUUIDGenerator().Generate())

	storages := store.NewStorages(log)
	services := service.NewServices(storages, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)

	syncApp, err := client.NewApp(services, cfg, environ, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg(app.MsgInitFailed)
	}

	if err = syncApp.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg(app.MsgSyncFailed)
	}
}

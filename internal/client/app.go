package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/pi-settings-sync/internal/app"
	"github.com/MKhiriev/pi-settings-sync/internal/config"
	"github.com/MKhiriev/pi-settings-sync/internal/logger"
	"github.com/MKhiriev/pi-settings-sync/internal/service"
)

var (
	errNoServices = errors.New("no services provided")
	errNoConfig   = errors.New("no config provided")
)

var _ Client = (*App)(nil)

// App runs a single settings sync.
type App struct {
	services *service.Services
	cfg      *config.SyncConfig
	environ  config.Environ
	stdout   io.Writer

	logger *logger.Logger
}

// NewApp assembles an [App]. environ is consulted for USERPROFILE when no
// explicit source is configured; stdout receives the command's result.
func NewApp(services *service.Services, cfg *config.SyncConfig, environ config.Environ, stdout io.Writer, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errNoServices
	}
	if cfg == nil {
		return nil, errNoConfig
	}

	return &App{
		services: services,
		cfg:      cfg,
		environ:  environ,
		stdout:   stdout,
		logger:   logger,
	}, nil
}

// Run prints build information when requested, otherwise syncs the live
// settings file and prints the canonical and normalized output paths.
// Nothing is printed to stdout when the sync fails.
func (a *App) Run(ctx context.Context) error {
	if a.cfg.ShowVersion {
		_, err := fmt.Fprintln(a.stdout, a.services.AppInfoService.GetBuildInfo(ctx))
		return err
	}

	source, err := config.ResolveSource(a.cfg.Source, a.environ)
	if err != nil {
		return fmt.Errorf("resolve source: %w", err)
	}

	targets := a.cfg.Targets()
	a.logger.Debug().
		Str("source", source).
		Str("canonical", targets.Canonical).
		Str("normalized", targets.Normalized).
		Msg(app.MsgSyncStarted)

	res, err := a.services.SyncService.Sync(ctx, source, targets)
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintf(a.stdout, "%s\n%s\n", res.Canonical, res.Normalized); err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	return nil
}

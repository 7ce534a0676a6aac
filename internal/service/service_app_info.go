package service

import (
	"context"

	"github.com/MKhiriev/go-refute/internal/adapter"
	"github.com/MKhiriev/go-refute/internal/config"
	"github.com/MKhiriev/go-refute/internal/logger"
)

// notAvailable is reported when a version cannot be determined.
const notAvailable = "N/A"

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// remoteAppInfoService asks the server for its version.
type remoteAppInfoService struct {
	adapter adapter.ServerAdapter

	logger *logger.Logger
}

// NewRemoteAppInfoService returns an [AppInfoService] that reports the
// version of the server behind serverAdapter, or "N/A" when it cannot be
// reached.
func NewRemoteAppInfoService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) AppInfoService {
	return &remoteAppInfoService{adapter: serverAdapter, logger: logger}
}

func (s *remoteAppInfoService) GetAppVersion(ctx context.Context) string {
	version, err := s.adapter.Version(ctx)
	if err != nil || version == "" {
		s.logger.Err(err).Str("func", "*remoteAppInfoService.GetAppVersion").Msg("server version unavailable")
		return notAvailable
	}
	return version
}

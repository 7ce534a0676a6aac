package service

import (
	"fmt"

	"github.com/MKhiriev/go-refute/internal/adapter"
	"github.com/MKhiriev/go-refute/internal/config"
	"github.com/MKhiriev/go-refute/internal/crypto"
	"github.com/MKhiriev/go-refute/internal/logger"
)

type Services struct {
	ShareService   ShareService
	AppInfoService AppInfoService
}

// NewServices builds the server-side services. The application version is
// mandatory.
func NewServices(cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		ShareService:   newLocalShareService(cfg.Candidates, cfg.TrialWorkers, logger),
		AppInfoService: appInfo,
	}, nil
}

// NewClientServices builds the CLI services. With a nil serverAdapter the
// cipher runs in-process and AppInfoService is nil; otherwise every call is
// forwarded to the server. Requests are validated locally in both modes.
func NewClientServices(cfg config.ClientApp, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *Services {
	if serverAdapter == nil {
		return &Services{
			ShareService: newLocalShareService(cfg.Candidates, cfg.TrialWorkers, logger),
		}
	}

	return &Services{
		ShareService:   NewShareValidationService().Wrap(NewRemoteShareService(serverAdapter, logger)),
		AppInfoService: NewRemoteAppInfoService(serverAdapter, logger),
	}
}

func newLocalShareService(candidates []string, trialWorkers int, logger *logger.Logger) ShareService {
	deriver := crypto.NewKeyDeriver()
	engine := crypto.NewCipherEngine(deriver, crypto.WithTrialWorkers(trialWorkers))

	return NewShareValidationService().Wrap(NewShareService(deriver, engine, candidates, logger))
}

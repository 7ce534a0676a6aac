package service

import (
	"context"

	"github.com/MKhiriev/go-refute/internal/adapter"
	"github.com/MKhiriev/go-refute/internal/logger"
	"github.com/MKhiriev/go-refute/models"
)

// remoteShareService forwards every call to a refute server.
type remoteShareService struct {
	adapter adapter.ServerAdapter

	logger *logger.Logger
}

// NewRemoteShareService returns a [ShareService] backed by serverAdapter.
// Transport errors are translated back into this package's sentinels where
// the server's message identifies one.
func NewRemoteShareService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ShareService {
	return &remoteShareService{
		adapter: serverAdapter,
		logger:  logger,
	}
}

func (s *remoteShareService) Encrypt(ctx context.Context, req models.EncryptRequest) (models.EncryptResponse, error) {
	resp, err := s.adapter.Encrypt(ctx, req)
	if err != nil {
		s.logger.Err(err).Str("func", "*remoteShareService.Encrypt").Msg("remote encrypt failed")
		return models.EncryptResponse{}, mapAdapterError(err)
	}
	return resp, nil
}

func (s *remoteShareService) Decrypt(ctx context.Context, req models.DecryptRequest) (models.DecryptResponse, error) {
	resp, err := s.adapter.Decrypt(ctx, req)
	if err != nil {
		s.logger.Err(err).Str("func", "*remoteShareService.Decrypt").Msg("remote decrypt failed")
		return models.DecryptResponse{}, mapAdapterError(err)
	}
	return resp, nil
}

func (s *remoteShareService) Candidates(ctx context.Context) (models.CandidatesResponse, error) {
	resp, err := s.adapter.Candidates(ctx)
	if err != nil {
		return models.CandidatesResponse{}, mapAdapterError(err)
	}
	return resp, nil
}

func (s *remoteShareService) CheckCandidates(ctx context.Context) (models.CheckResponse, error) {
	resp, err := s.adapter.CheckCandidates(ctx)
	if err != nil {
		return models.CheckResponse{}, mapAdapterError(err)
	}
	if resp.Collisions == nil {
		resp.Collisions = []models.Collision{}
	}
	return resp, nil
}

package grpc

import (
	"context"

	"github.com/MKhiriev/go-refute/internal/logger"
	"github.com/MKhiriev/go-refute/internal/rpc"
	"github.com/MKhiriev/go-refute/models"
)

var _ rpc.ShareServer = (*Handler)(nil)

func (h *Handler) Encrypt(ctx context.Context, in *models.EncryptRequest) (*models.EncryptResponse, error) {
	resp, err := h.services.ShareService.Encrypt(ctx, *in)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*Handler.Encrypt").Msg("error encrypting")
		return nil, statusFromError(err)
	}

	return &resp, nil
}

func (h *Handler) Decrypt(ctx context.Context, in *models.DecryptRequest) (*models.DecryptResponse, error) {
	resp, err := h.services.ShareService.Decrypt(ctx, *in)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*Handler.Decrypt").Msg("error decrypting")
		return nil, statusFromError(err)
	}

	return &resp, nil
}

func (h *Handler) Candidates(ctx context.Context, _ *rpc.Empty) (*models.CandidatesResponse, error) {
	resp, err := h.services.ShareService.Candidates(ctx)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &resp, nil
}

func (h *Handler) CheckCandidates(ctx context.Context, _ *rpc.Empty) (*models.CheckResponse, error) {
	resp, err := h.services.ShareService.CheckCandidates(ctx)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &resp, nil
}

func (h *Handler) Version(ctx context.Context, _ *rpc.Empty) (*rpc.VersionResponse, error) {
	return &rpc.VersionResponse{Version: h.services.AppInfoService.GetAppVersion(ctx)}, nil
}

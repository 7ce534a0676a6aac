package service

import (
	"context"

	"github.com/MKhiriev/go-refute/models"
)

//go:generate mockgen -destination=../mock/service_mock.go -package=mock github.com/MKhiriev/go-refute/internal/service ShareService,AppInfoService

// ShareService encrypts the fixed message under a phrase-derived key and
// recovers it from a blob by trial decryption.
type ShareService interface {
	Encrypt(ctx context.Context, req models.EncryptRequest) (models.EncryptResponse, error)
	Decrypt(ctx context.Context, req models.DecryptRequest) (models.DecryptResponse, error)

	// Candidates and CheckCandidates only fail in the remote implementation,
	// when the transport does.
	Candidates(ctx context.Context) (models.CandidatesResponse, error)
	CheckCandidates(ctx context.Context) (models.CheckResponse, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ShareServiceWrapper defines middleware composition for ShareService.
// Implementations wrap an existing ShareService to add behavior such as
// validating.
type ShareServiceWrapper interface {
	Wrap(ShareService) ShareService // returns a decorated ShareService applying additional behavior
}

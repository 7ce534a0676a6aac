package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-refute/internal/validators"
	"github.com/MKhiriev/go-refute/models"
)

type ShareValidationService struct {
	inner     ShareService
	validator validators.Validator
}

func NewShareValidationService() ShareServiceWrapper {
	return &ShareValidationService{
		validator: validators.NewShareValidator(),
	}
}

func (v *ShareValidationService) Encrypt(ctx context.Context, req models.EncryptRequest) (models.EncryptResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.EncryptResponse{}, fmt.Errorf("error during encrypt request validation: %w", err)
	}

	return v.inner.Encrypt(ctx, req)
}

func (v *ShareValidationService) Decrypt(ctx context.Context, req models.DecryptRequest) (models.DecryptResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.DecryptResponse{}, fmt.Errorf("error during decrypt request validation: %w", err)
	}

	return v.inner.Decrypt(ctx, req)
}

func (v *ShareValidationService) Candidates(ctx context.Context) (models.CandidatesResponse, error) {
	return v.inner.Candidates(ctx)
}

func (v *ShareValidationService) CheckCandidates(ctx context.Context) (models.CheckResponse, error) {
	return v.inner.CheckCandidates(ctx)
}

func (v *ShareValidationService) Wrap(wrapper ShareService) ShareService {
	v.inner = wrapper
	return v
}

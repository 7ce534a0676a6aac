package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-refute/internal/adapter"
	"github.com/MKhiriev/go-refute/internal/app"
	"github.com/MKhiriev/go-refute/internal/logger"
	"github.com/MKhiriev/go-refute/internal/mock"
	"github.com/MKhiriev/go-refute/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRemoteSvc(t *testing.T) (ShareService, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	return NewRemoteShareService(mockAdapter, logger.Nop()), mockAdapter
}

func TestRemoteShareService_Encrypt_Success(t *testing.T) {
	svc, mockAdapter := newTestRemoteSvc(t)
	ctx := context.Background()
	req := models.EncryptRequest{Input: "he/him"}

	mockAdapter.EXPECT().Encrypt(ctx, req).Return(models.EncryptResponse{Blob: "b"}, nil)

	got, err := svc.Encrypt(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, "b", got.Blob)
}

func TestRemoteShareService_Decrypt_MapsFailure(t *testing.T) {
	svc, mockAdapter := newTestRemoteSvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().
		Decrypt(ctx, gomock.Any()).
		Return(models.DecryptResponse{}, fmt.Errorf("%w: %s", adapter.ErrUnprocessableEntity, app.MsgDecryptFailed))

	_, err := svc.Decrypt(ctx, models.DecryptRequest{Blob: "b"})

	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestRemoteShareService_Decrypt_Success(t *testing.T) {
	svc, mockAdapter := newTestRemoteSvc(t)
	ctx := context.Background()
	want := models.DecryptResponse{Message: "m", Key: "he/him"}

	mockAdapter.EXPECT().Decrypt(ctx, models.DecryptRequest{Blob: "b"}).Return(want, nil)

	got, err := svc.Decrypt(ctx, models.DecryptRequest{Blob: "b"})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRemoteShareService_Candidates_TransportError(t *testing.T) {
	svc, mockAdapter := newTestRemoteSvc(t)
	ctx := context.Background()
	transportErr := fmt.Errorf("%w: dial tcp: connection refused", adapter.ErrUnavailable)

	mockAdapter.EXPECT().Candidates(ctx).Return(models.CandidatesResponse{}, transportErr)

	_, err := svc.Candidates(ctx)

	assert.ErrorIs(t, err, adapter.ErrUnavailable)
}

func TestRemoteShareService_CheckCandidates_NilCollisionsBecomeEmpty(t *testing.T) {
	svc, mockAdapter := newTestRemoteSvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().CheckCandidates(ctx).Return(models.CheckResponse{OK: true}, nil)

	got, err := svc.CheckCandidates(ctx)

	require.NoError(t, err)
	assert.NotNil(t, got.Collisions)
	assert.True(t, got.OK)
}

// ── mapAdapterError ──────────────────────────────────────────────────────────

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "empty input", err: fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgEmptyInput), want: ErrEmptyInput},
		{name: "empty blob", err: fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgEmptyBlob), want: ErrEmptyBlob},
		{name: "malformed blob", err: fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgMalformedBlob), want: ErrMalformedBlob},
		{name: "input too long", err: fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgInputTooLong), want: ErrInputTooLong},
		{name: "blob too long", err: fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgBlobTooLong), want: ErrBlobTooLong},
		{name: "invalid data", err: fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgInvalidDataProvided), want: ErrInvalidDataProvided},
		{name: "exhausted over http", err: fmt.Errorf("%w: %s", adapter.ErrUnprocessableEntity, app.MsgDecryptFailed), want: ErrDecryptionFailed},
		{name: "exhausted over grpc", err: fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgDecryptFailed), want: ErrDecryptionFailed},
		{name: "no version", err: fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgVersionIsNotSpecified), want: ErrVersionIsNotSpecified},
		{name: "unknown bad request", err: fmt.Errorf("%w: %s", adapter.ErrBadRequest, "something else"), want: adapter.ErrBadRequest},
		{name: "internal", err: fmt.Errorf("%w: %s", adapter.ErrInternalServerError, app.MsgInternalServerError), want: adapter.ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapAdapterError(tt.err), tt.want)
		})
	}
}

func TestMapAdapterError_Nil(t *testing.T) {
	assert.NoError(t, mapAdapterError(nil))
}

func TestExtractBody(t *testing.T) {
	err := fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgMalformedBlob)

	assert.Equal(t, app.MsgMalformedBlob, extractBody(err))
}

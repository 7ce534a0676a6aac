package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-refute/internal/config"
	"github.com/MKhiriev/go-refute/internal/logger"
	"github.com/MKhiriev/go-refute/internal/mock"
	"github.com/MKhiriev/go-refute/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewServices_RequiresVersion(t *testing.T) {
	svcs, err := NewServices(config.App{}, logger.Nop())

	require.ErrorIs(t, err, ErrVersionIsNotSpecified)
	assert.Nil(t, svcs)
}

func TestNewServices_UsesConfiguredCandidates(t *testing.T) {
	svcs, err := NewServices(config.App{Version: "1.0.0", Candidates: []string{"he/him", "she/her"}, TrialWorkers: 4}, logger.Nop())
	require.NoError(t, err)

	got, err := svcs.ShareService.Candidates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"he/him", "she/her"}, got.Candidates)
	assert.Equal(t, "1.0.0", svcs.AppInfoService.GetAppVersion(context.Background()))
}

func TestNewServices_ShareServiceIsValidated(t *testing.T) {
	svcs, err := NewServices(config.App{Version: "1.0.0"}, logger.Nop())
	require.NoError(t, err)

	_, err = svcs.ShareService.Decrypt(context.Background(), models.DecryptRequest{})

	assert.ErrorIs(t, err, ErrEmptyBlob)
}

func TestNewServices_ParallelTrialsOpenKnownBlob(t *testing.T) {
	svcs, err := NewServices(config.App{Version: "1.0.0", TrialWorkers: 3}, logger.Nop())
	require.NoError(t, err)

	got, err := svcs.ShareService.Decrypt(context.Background(), models.DecryptRequest{Blob: heHimBlob})

	require.NoError(t, err)
	assert.Equal(t, "he/him", got.Key)
}

func TestNewClientServices_LocalMode(t *testing.T) {
	svcs := NewClientServices(config.ClientApp{}, nil, logger.Nop())

	require.NotNil(t, svcs.ShareService)
	assert.Nil(t, svcs.AppInfoService)

	got, err := svcs.ShareService.Decrypt(context.Background(), models.DecryptRequest{Blob: heHimBlob})
	require.NoError(t, err)
	assert.Equal(t, "he/him", got.Key)
}

func TestNewClientServices_RemoteMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Encrypt(ctx, models.EncryptRequest{Input: "he/him"}).Return(models.EncryptResponse{Blob: "b"}, nil)

	svcs := NewClientServices(config.ClientApp{}, mockAdapter, logger.Nop())
	require.NotNil(t, svcs.AppInfoService)

	got, err := svcs.ShareService.Encrypt(ctx, models.EncryptRequest{Input: "he/him"})
	require.NoError(t, err)
	assert.Equal(t, "b", got.Blob)

	// validated locally, never reaches the adapter
	_, err = svcs.ShareService.Encrypt(ctx, models.EncryptRequest{})
	assert.ErrorIs(t, err, ErrEmptyInput)
}

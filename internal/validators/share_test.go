// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-refute/internal/crypto"
	"github.com/MKhiriev/go-refute/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShareValidator(t *testing.T) {
	require.NotNil(t, NewShareValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewShareValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, "a string")
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("EncryptRequest value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.EncryptRequest{Input: "he/him"}))
	})

	t.Run("EncryptRequest pointer", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, &models.EncryptRequest{Input: "he/him"}))
	})

	t.Run("DecryptRequest value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.DecryptRequest{Blob: "AAAA"}))
	})

	t.Run("DecryptRequest pointer", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, &models.DecryptRequest{Blob: "AAAA", Candidate: "she/her"}))
	})
}

func TestValidate_EncryptRequest(t *testing.T) {
	v := NewShareValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.EncryptRequest
		fields  []string
		wantErr error
	}{
		{name: "valid", req: models.EncryptRequest{Input: "they/them"}},
		{name: "spaces only are a phrase", req: models.EncryptRequest{Input: "   "}},
		{name: "empty", req: models.EncryptRequest{}, wantErr: ErrEmptyInput},
		{name: "at limit", req: models.EncryptRequest{Input: strings.Repeat("ä", MaxInputLength)}},
		{name: "over limit", req: models.EncryptRequest{Input: strings.Repeat("a", MaxInputLength+1)}, wantErr: ErrInputTooLong},
		{name: "unknown field", req: models.EncryptRequest{Input: "x"}, fields: []string{"nope"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_EmptyInputIsCryptoSentinel(t *testing.T) {
	err := NewShareValidator().Validate(context.Background(), models.EncryptRequest{})
	assert.ErrorIs(t, err, crypto.ErrEmptyInput)
}

func TestValidate_DecryptRequest(t *testing.T) {
	v := NewShareValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.DecryptRequest
		fields  []string
		wantErr error
	}{
		{name: "blob only", req: models.DecryptRequest{Blob: "AQID"}},
		{name: "blob and candidate", req: models.DecryptRequest{Blob: "AQID", Candidate: "he/him"}},
		{name: "empty blob", req: models.DecryptRequest{Candidate: "he/him"}, wantErr: ErrEmptyBlob},
		{name: "blob too long", req: models.DecryptRequest{Blob: strings.Repeat("A", MaxBlobLength+1)}, wantErr: ErrBlobTooLong},
		{name: "blob limit counts characters", req: models.DecryptRequest{Blob: strings.Repeat("ä", MaxBlobLength)}},
		{
			name:    "candidate too long",
			req:     models.DecryptRequest{Blob: "AQID", Candidate: strings.Repeat("c", MaxInputLength+1)},
			wantErr: ErrInputTooLong,
		},
		{
			name:   "candidate field only skips blob",
			req:    models.DecryptRequest{Candidate: "he/him"},
			fields: []string{FieldCandidate},
		},
		{name: "unknown field", req: models.DecryptRequest{Blob: "AQID"}, fields: []string{FieldInput}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

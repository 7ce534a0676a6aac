// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-refute/models"
)

// Limits applied to share requests, in characters.
const (
	MaxInputLength = 256
	MaxBlobLength  = 4096
)

// Field names accepted by [ShareValidator.Validate].
const (
	// FieldInput targets the phrase of an encrypt request.
	FieldInput = "input"

	// FieldBlob targets the base64 blob of a decrypt request.
	FieldBlob = "blob"

	// FieldCandidate targets the optional hinted phrase of a decrypt request.
	FieldCandidate = "candidate"
)

// ShareValidator implements [Validator] for [models.EncryptRequest] and
// [models.DecryptRequest], in value and pointer form.
//
// It checks presence and size only. Whether a blob is well-formed base64 is
// the cipher's call, so a syntactically broken blob passes here and fails
// later with the cipher's own error.
type ShareValidator struct{}

// NewShareValidator returns a [ShareValidator] as a [Validator].
func NewShareValidator() Validator {
	return &ShareValidator{}
}

// Validate dispatches on the dynamic type of obj. It returns
// [ErrUnsupportedType] for anything else.
func (v *ShareValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.EncryptRequest:
		return v.validateEncryptRequest(ctx, value, fields...)
	case *models.EncryptRequest:
		return v.validateEncryptRequest(ctx, *value, fields...)

	case models.DecryptRequest:
		return v.validateDecryptRequest(ctx, value, fields...)
	case *models.DecryptRequest:
		return v.validateDecryptRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateEncryptRequest checks that the phrase is present and bounded.
func (v *ShareValidator) validateEncryptRequest(_ context.Context, request models.EncryptRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldInput}
	}

	for _, f := range fields {
		switch f {
		case FieldInput:
			if request.Input == "" {
				return ErrEmptyInput
			}
			if n := utf8.RuneCountInString(request.Input); n > MaxInputLength {
				return fmt.Errorf("%w: %d characters, limit %d", ErrInputTooLong, n, MaxInputLength)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateDecryptRequest checks the blob and, when set, the hinted phrase.
// An empty candidate is valid and means "use the candidate list".
func (v *ShareValidator) validateDecryptRequest(_ context.Context, request models.DecryptRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBlob, FieldCandidate}
	}

	for _, f := range fields {
		switch f {
		case FieldBlob:
			if request.Blob == "" {
				return ErrEmptyBlob
			}
			if n := utf8.RuneCountInString(request.Blob); n > MaxBlobLength {
				return fmt.Errorf("%w: %d characters, limit %d", ErrBlobTooLong, n, MaxBlobLength)
			}
		case FieldCandidate:
			if n := utf8.RuneCountInString(request.Candidate); n > MaxInputLength {
				return fmt.Errorf("%w: %d characters, limit %d", ErrInputTooLong, n, MaxInputLength)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

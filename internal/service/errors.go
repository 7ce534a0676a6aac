package service

import (
	"errors"

	"github.com/MKhiriev/go-refute/internal/crypto"
	"github.com/MKhiriev/go-refute/internal/validators"
)

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrEmptyInput       = crypto.ErrEmptyInput
	ErrMalformedBlob    = crypto.ErrMalformedBlob
	ErrDecryptionFailed = crypto.ErrAllCandidatesExhausted

	ErrEmptyBlob    = validators.ErrEmptyBlob
	ErrInputTooLong = validators.ErrInputTooLong
	ErrBlobTooLong  = validators.ErrBlobTooLong
)

package validators

import (
	"errors"

	"github.com/MKhiriev/go-refute/internal/crypto"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrEmptyInput is the crypto sentinel so callers need a single errors.Is.
	ErrEmptyInput   = crypto.ErrEmptyInput
	ErrEmptyBlob    = errors.New("blob is required")
	ErrBlobTooLong  = errors.New("blob is too long")
	ErrInputTooLong = errors.New("input phrase is too long")
)

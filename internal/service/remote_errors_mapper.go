// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-refute/internal/adapter"
	"github.com/MKhiriev/go-refute/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		case app.MsgEmptyInput:
			return ErrEmptyInput
		case app.MsgEmptyBlob:
			return ErrEmptyBlob
		case app.MsgMalformedBlob:
			return ErrMalformedBlob
		case app.MsgInputTooLong:
			return ErrInputTooLong
		case app.MsgBlobTooLong:
			return ErrBlobTooLong
		case app.MsgVersionIsNotSpecified:
			return ErrVersionIsNotSpecified
		}

	// HTTP answers 422, gRPC answers NotFound
	case errors.Is(err, adapter.ErrUnprocessableEntity), errors.Is(err, adapter.ErrNotFound):
		if msg == app.MsgDecryptFailed {
			return ErrDecryptionFailed
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"errors"

	"github.com/MKhiriev/go-refute/internal/app"
	"github.com/MKhiriev/go-refute/internal/service"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type errorStatus struct {
	target  error
	code    codes.Code
	message string
}

// errorStatusList is checked in order; the first match wins.
var errorStatusList = []errorStatus{
	{service.ErrInvalidDataProvided, codes.InvalidArgument, app.MsgInvalidDataProvided},
	{service.ErrEmptyInput, codes.InvalidArgument, app.MsgEmptyInput},
	{service.ErrEmptyBlob, codes.InvalidArgument, app.MsgEmptyBlob},
	{service.ErrMalformedBlob, codes.InvalidArgument, app.MsgMalformedBlob},
	{service.ErrInputTooLong, codes.InvalidArgument, app.MsgInputTooLong},
	{service.ErrBlobTooLong, codes.InvalidArgument, app.MsgBlobTooLong},
	{service.ErrVersionIsNotSpecified, codes.InvalidArgument, app.MsgVersionIsNotSpecified},
	{service.ErrDecryptionFailed, codes.NotFound, app.MsgDecryptFailed},
}

// statusFromError converts a service error into a gRPC status carrying the
// user-facing message.
func statusFromError(err error) error {
	for _, es := range errorStatusList {
		if errors.Is(err, es.target) {
			return status.Error(es.code, es.message)
		}
	}
	return status.Error(codes.Internal, app.MsgInternalServerError)
}

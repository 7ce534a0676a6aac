package adapter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMapGRPCError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{name: "invalid argument", err: status.Error(codes.InvalidArgument, "x"), target: ErrBadRequest},
		{name: "not found", err: status.Error(codes.NotFound, "x"), target: ErrNotFound},
		{name: "failed precondition", err: status.Error(codes.FailedPrecondition, "x"), target: ErrUnprocessableEntity},
		{name: "internal", err: status.Error(codes.Internal, "x"), target: ErrInternalServerError},
		{name: "unavailable", err: status.Error(codes.Unavailable, "x"), target: ErrUnavailable},
		{name: "deadline", err: status.Error(codes.DeadlineExceeded, "x"), target: ErrUnavailable},
		{name: "not a status", err: errors.New("boom"), target: ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapGRPCError(tt.err), tt.target)
		})
	}
}

func TestMapGRPCError_KeepsMessage(t *testing.T) {
	err := mapGRPCError(status.Error(codes.InvalidArgument, "Decryption failed: Invalid input or keys."))

	assert.Equal(t, "bad request: Decryption failed: Invalid input or keys.", err.Error())
}

func TestMapGRPCError_Nil(t *testing.T) {
	assert.NoError(t, mapGRPCError(nil))
}

func TestMapGRPCError_UnknownCode(t *testing.T) {
	err := mapGRPCError(status.Error(codes.PermissionDenied, "nope"))

	assert.EqualError(t, err, "grpc PermissionDenied: nope")
}

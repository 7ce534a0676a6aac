// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for talking to a
// remote refute server.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. Two implementations ship with the
// package: HTTP/REST over resty ([NewHTTPServerAdapter]) and gRPC with the
// JSON codec ([NewGRPCServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError and from gRPC status codes by mapGRPCError, so callers can use
// [errors.Is] without caring which transport produced them. The server's
// message is kept after the sentinel ("bad request: <message>").
package adapter

import (
	"context"

	"github.com/MKhiriev/go-refute/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the refute
// server.
type ServerAdapter interface {
	// Encrypt asks the server to seal the fixed message under the key derived
	// from req.Input.
	Encrypt(ctx context.Context, req models.EncryptRequest) (models.EncryptResponse, error)

	// Decrypt asks the server to open req.Blob with req.Candidate or, when it
	// is empty, with the server's candidate list.
	Decrypt(ctx context.Context, req models.DecryptRequest) (models.DecryptResponse, error)

	// Candidates returns the server's candidate list.
	Candidates(ctx context.Context) (models.CandidatesResponse, error)

	// CheckCandidates returns the key collisions in the server's candidate
	// list.
	CheckCandidates(ctx context.Context) (models.CheckResponse, error)

	// Version returns the server application version.
	Version(ctx context.Context) (string, error)

	// Close releases the underlying connection.
	Close() error
}

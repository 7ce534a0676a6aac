// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-refute/internal/config"
	"github.com/MKhiriev/go-refute/internal/logger"
	"github.com/MKhiriev/go-refute/internal/rpc"
	"github.com/MKhiriev/go-refute/internal/utils"
	"github.com/MKhiriev/go-refute/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

// TraceIDMetadataKey is the gRPC metadata key carrying the trace id.
const TraceIDMetadataKey = "x-trace-id"

type grpcServerAdapter struct {
	conn    *grpc.ClientConn
	client  rpc.ShareClient
	timeout time.Duration
	ids     *utils.UUIDGenerator

	logger *logger.Logger
}

// NewGRPCServerAdapter constructs a gRPC implementation of [ServerAdapter]
// talking to adapterCfg.GRPCAddress over a plaintext connection. Extra dial
// options are appended after the defaults.
//
// The connection is established lazily by grpc-go, so an unreachable server
// surfaces as [ErrUnavailable] on the first call rather than here.
func NewGRPCServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger, opts ...grpc.DialOption) (ServerAdapter, error) {
	address := strings.TrimSpace(adapterCfg.GRPCAddress)
	if address == "" {
		return nil, fmt.Errorf("invalid adapter grpc address: %w", errEmptyAddress)
	}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts...)

	conn, err := grpc.NewClient(address, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("create grpc client: %w", err)
	}

	timeout := adapterCfg.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	return &grpcServerAdapter{
		conn:    conn,
		client:  rpc.NewShareClient(conn),
		timeout: timeout,
		ids:     utils.NewUUIDGenerator(),
		logger:  logger,
	}, nil
}

// callContext bounds ctx with the request timeout and attaches the trace id
// of ctx, generating one when absent.
func (g *grpcServerAdapter) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	return metadata.AppendToOutgoingContext(ctx, TraceIDMetadataKey, g.ids.ForContext(ctx)), cancel
}

func (g *grpcServerAdapter) Encrypt(ctx context.Context, req models.EncryptRequest) (models.EncryptResponse, error) {
	ctx, cancel := g.callContext(ctx)
	defer cancel()

	resp, err := g.client.Encrypt(ctx, &req)
	if err != nil {
		return models.EncryptResponse{}, mapGRPCError(err)
	}
	return *resp, nil
}

func (g *grpcServerAdapter) Decrypt(ctx context.Context, req models.DecryptRequest) (models.DecryptResponse, error) {
	ctx, cancel := g.callContext(ctx)
	defer cancel()

	resp, err := g.client.Decrypt(ctx, &req)
	if err != nil {
		return models.DecryptResponse{}, mapGRPCError(err)
	}
	return *resp, nil
}

func (g *grpcServerAdapter) Candidates(ctx context.Context) (models.CandidatesResponse, error) {
	ctx, cancel := g.callContext(ctx)
	defer cancel()

	resp, err := g.client.Candidates(ctx, &rpc.Empty{})
	if err != nil {
		return models.CandidatesResponse{}, mapGRPCError(err)
	}
	return *resp, nil
}

func (g *grpcServerAdapter) CheckCandidates(ctx context.Context) (models.CheckResponse, error) {
	ctx, cancel := g.callContext(ctx)
	defer cancel()

	resp, err := g.client.CheckCandidates(ctx, &rpc.Empty{})
	if err != nil {
		return models.CheckResponse{}, mapGRPCError(err)
	}
	return *resp, nil
}

func (g *grpcServerAdapter) Version(ctx context.Context) (string, error) {
	ctx, cancel := g.callContext(ctx)
	defer cancel()

	resp, err := g.client.Version(ctx, &rpc.Empty{})
	if err != nil {
		return "", mapGRPCError(err)
	}
	return resp.Version, nil
}

func (g *grpcServerAdapter) Close() error {
	g.logger.Debug().Msg("closing gRPC connection")
	return g.conn.Close()
}

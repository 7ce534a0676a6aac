package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/MKhiriev/go-refute/internal/config"
	myGRPC "github.com/MKhiriev/go-refute/internal/handler/grpc"
	"github.com/MKhiriev/go-refute/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener
	requestTimeout  time.Duration

	logger *logger.Logger
}

// newGRPCServer binds cfg.GRPCAddress right away so a busy port fails
// startup instead of a background goroutine.
func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("listen gRPC on %q: %w", cfg.GRPCAddress, err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	opts := append(handler.ServerOptions(), grpc.ChainUnaryInterceptor(withRequestTimeout(timeout)))
	s := grpc.NewServer(opts...)
	handler.Register(s)

	return &grpcServer{
		handler:         handler,
		server:          s,
		gRPCNetListener: listener,
		requestTimeout:  timeout,
		logger:          logger,
	}, nil
}

// withRequestTimeout bounds every unary call by timeout, the gRPC
// counterpart of the HTTP server's read and write timeouts.
func withRequestTimeout(timeout time.Duration) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		return next(ctx, req)
	}
}

func (g *grpcServer) RunServer() {
	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		g.logger.Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
}
